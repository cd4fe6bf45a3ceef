// Package models defines the data structures shared by the transfer engine.
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValueKind is the scalar type held by a cell.
type ValueKind int

const (
	// KindEmpty marks a cell with no value.
	KindEmpty ValueKind = iota
	// KindText marks a string cell.
	KindText
	// KindNumber marks a numeric cell.
	KindNumber
	// KindDate marks a date or date-time cell.
	KindDate
)

// String returns the lower-case name of the kind.
func (k ValueKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	default:
		return "empty"
	}
}

// DateLayout is the layout used when a date value is rendered as text.
const DateLayout = "2006-01-02"

// Value is a single cell value.
type Value struct {
	Kind   ValueKind
	Text   string
	Number float64
	Time   time.Time
}

// Empty returns the empty value.
func Empty() Value {
	return Value{}
}

// NewText returns a text value.
func NewText(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// NewNumber returns a numeric value.
func NewNumber(n float64) Value {
	return Value{Kind: KindNumber, Number: n}
}

// NewDate returns a date value.
func NewDate(t time.Time) Value {
	return Value{Kind: KindDate, Time: t}
}

// IsEmpty reports whether the cell holds no value at all.
func (v Value) IsEmpty() bool {
	return v.Kind == KindEmpty
}

// IsBlank reports whether the cell is empty or holds only whitespace.
func (v Value) IsBlank() bool {
	switch v.Kind {
	case KindEmpty:
		return true
	case KindText:
		return strings.TrimSpace(v.Text) == ""
	}
	return false
}

// String renders the value the way a header comparison sees it.
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case KindDate:
		return v.Time.Format(DateLayout)
	default:
		return ""
	}
}

// Interface returns the value as a plain Go value suitable for a cell writer:
// nil, string, float64 or time.Time.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return v.Number
	case KindDate:
		return v.Time
	default:
		return nil
	}
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindText:
		return v.Text == o.Text
	case KindNumber:
		return v.Number == o.Number
	case KindDate:
		return v.Time.Equal(o.Time)
	}
	return true
}

// MarshalJSON encodes the value as its natural JSON scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Kind == KindDate {
		return json.Marshal(v.Time.Format(DateLayout))
	}
	return json.Marshal(v.Interface())
}

// ValueOf converts a plain Go value into a Value. Empty strings and nil are
// empty; unknown types are rendered as text.
func ValueOf(x interface{}) Value {
	switch v := x.(type) {
	case nil:
		return Empty()
	case Value:
		return v
	case string:
		if v == "" {
			return Empty()
		}
		return NewText(v)
	case float64:
		return NewNumber(v)
	case float32:
		return NewNumber(float64(v))
	case int:
		return NewNumber(float64(v))
	case int64:
		return NewNumber(float64(v))
	case time.Time:
		return NewDate(v)
	default:
		return NewText(fmt.Sprint(v))
	}
}
