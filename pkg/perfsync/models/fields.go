package models

// FieldSpec is one row of the equivalence table: a canonical field name with
// its spelling in the raw export and in the template.
type FieldSpec struct {
	Name     string `json:"name"`
	Raw      string `json:"raw"`
	Template string `json:"template"`
}

// FieldGroup is a set of categorical fields that must be read from a single
// period per row.
type FieldGroup struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// EquivalenceTable maps header labels on either side to canonical fields.
type EquivalenceTable struct {
	Fields []FieldSpec
	// DateField is the reserved canonical name given to date-valued headers.
	DateField string

	raw      map[string]string
	template map[string]string
}

// NewEquivalenceTable indexes fields by their raw and template spellings.
// When two fields share a spelling the first one keeps it.
func NewEquivalenceTable(fields []FieldSpec, dateField string) EquivalenceTable {
	t := EquivalenceTable{
		Fields:    fields,
		DateField: dateField,
		raw:       make(map[string]string, len(fields)),
		template:  make(map[string]string, len(fields)),
	}
	for _, f := range fields {
		if _, ok := t.raw[f.Raw]; !ok {
			t.raw[f.Raw] = f.Name
		}
		if _, ok := t.template[f.Template]; !ok {
			t.template[f.Template] = f.Name
		}
	}
	return t
}

// CanonicalForRaw returns the canonical field for a raw header label.
func (t EquivalenceTable) CanonicalForRaw(label string) (string, bool) {
	name, ok := t.raw[label]
	return name, ok
}

// CanonicalForTemplate returns the canonical field for a template header label.
func (t EquivalenceTable) CanonicalForTemplate(label string) (string, bool) {
	name, ok := t.template[label]
	return name, ok
}

// Names returns canonical names in table order followed by the date field.
func (t EquivalenceTable) Names() []string {
	names := make([]string, 0, len(t.Fields)+1)
	seen := make(map[string]bool, len(t.Fields)+1)
	for _, f := range t.Fields {
		if !seen[f.Name] {
			seen[f.Name] = true
			names = append(names, f.Name)
		}
	}
	if t.DateField != "" && !seen[t.DateField] {
		names = append(names, t.DateField)
	}
	return names
}

// BenchmarkPolicy selects what happens to the benchmark block.
type BenchmarkPolicy string

const (
	// BenchmarkTransfer copies the raw benchmark block over the template's.
	BenchmarkTransfer BenchmarkPolicy = "transfer"
	// BenchmarkRemove deletes the template's benchmark rows.
	BenchmarkRemove BenchmarkPolicy = "remove"
	// BenchmarkSkip leaves the template's benchmark block untouched.
	BenchmarkSkip BenchmarkPolicy = "skip"
)

// Valid reports whether p is a known policy.
func (p BenchmarkPolicy) Valid() bool {
	switch p {
	case BenchmarkTransfer, BenchmarkRemove, BenchmarkSkip:
		return true
	}
	return false
}
