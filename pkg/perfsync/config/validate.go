package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report yaml names, which are what users write
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks struct constraints and the cross-field rules: canonical
// names and spellings are unique, and the key field and every group member
// are in the table.
func (c *Config) Validate() error {
	var problems []string

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		for _, fe := range verrs {
			problems = append(problems, formatFieldError(fe))
		}
	}

	names := make(map[string]bool, len(c.Fields))
	raws := make(map[string]bool, len(c.Fields))
	templates := make(map[string]bool, len(c.Fields))
	for _, f := range c.Fields {
		if names[f.Name] {
			problems = append(problems, fmt.Sprintf("duplicate field name %q", f.Name))
		}
		if f.Raw != "" && raws[f.Raw] {
			problems = append(problems, fmt.Sprintf("duplicate raw label %q", f.Raw))
		}
		if f.Template != "" && templates[f.Template] {
			problems = append(problems, fmt.Sprintf("duplicate template label %q", f.Template))
		}
		names[f.Name] = true
		raws[f.Raw] = true
		templates[f.Template] = true
	}

	if c.KeyField != "" && !names[c.KeyField] {
		problems = append(problems, fmt.Sprintf("key_field %q is not in fields", c.KeyField))
	}

	grouped := make(map[string]string)
	for _, g := range c.Groups {
		for _, f := range g.Fields {
			if !names[f] {
				problems = append(problems, fmt.Sprintf("group %q member %q is not in fields", g.Name, f))
			}
			if other, ok := grouped[f]; ok && other != g.Name {
				problems = append(problems, fmt.Sprintf("field %q is in groups %q and %q", f, other, g.Name))
			}
			grouped[f] = g.Name
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func formatFieldError(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", ns)
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", ns, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", ns, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", ns, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", ns, fe.Param(), fmt.Sprint(fe.Value()))
	}
	return fmt.Sprintf("%s failed %s", ns, fe.Tag())
}
