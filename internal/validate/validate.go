// Package validate evaluates a field descriptor against its optional
// constraints. It has no dependency on the store or the UI.
package validate

import "strings"

// Field describes a single input value and the constraints that apply to it.
// Nil constraints are unconstrained. Required means a value is present at
// all; whether an empty string passes is governed by MinLength, so a field
// can be required yet allow "". Length constraints apply to string values
// (checked after trimming surrounding whitespace); Min/Max apply to numeric
// values, compared raw.
type Field struct {
	Value     any
	Required  bool
	MinLength *int
	MaxLength *int
	Min       *float64
	Max       *float64
}

// OK reports whether every constraint present on the field and applicable
// to the value's type is satisfied. All checks combine with logical AND;
// there is no partial-success reporting.
func OK(f Field) bool {
	valid := true

	if f.Required {
		valid = valid && f.Value != nil
	}

	if s, ok := f.Value.(string); ok {
		trimmed := strings.TrimSpace(s)
		if f.MinLength != nil {
			valid = valid && len(trimmed) >= *f.MinLength
		}
		if f.MaxLength != nil {
			valid = valid && len(trimmed) <= *f.MaxLength
		}
	}

	if n, ok := asNumber(f.Value); ok {
		if f.Min != nil {
			valid = valid && n >= *f.Min
		}
		if f.Max != nil {
			valid = valid && n <= *f.Max
		}
	}

	return valid
}

// Int and Float are constraint literal helpers for building Field values.
func Int(v int) *int { return &v }

func Float(v float64) *float64 { return &v }

func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case float64:
		return t, true
	case float32:
		return float64(t), true
	default:
		return 0, false
	}
}
