// Package filter evaluates filter conditions against measurement records and
// holds the two-group comparison filter state.
//
// A Model is an ordered conjunction of conditions: a row matches when it
// satisfies every condition, and the empty model matches everything. The
// operator set mirrors what data-grid filter UIs emit, including the "is"
// alias that enum/categorical filter editors produce for equality.
//
// Unrecognized operators match. A filter UI newer than the engine must never
// silently hide rows, so the unknown case fails open; hosts that want to warn
// can check Operator.Known before evaluating.
package filter

import (
	"strings"

	"github.com/heatwise/coptrend/dataset"
)

// Operator identifies one filter comparison.
type Operator string

const (
	// OpContains matches when the stringified field value contains the
	// condition value, case-insensitively.
	OpContains Operator = "contains"
	// OpEquals matches on strict scalar equality.
	OpEquals Operator = "equals"
	// OpIs is the equality alias emitted by enum/categorical filter UIs.
	OpIs Operator = "is"
	// OpStartsWith matches a case-insensitive string prefix.
	OpStartsWith Operator = "startsWith"
	// OpEndsWith matches a case-insensitive string suffix.
	OpEndsWith Operator = "endsWith"
	// OpGreater, OpGreaterEqual, OpLess and OpLessEqual compare numerically
	// after coercion; values that do not coerce never match.
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
	// OpIsEmpty matches absent, nil and empty-string values.
	OpIsEmpty Operator = "isEmpty"
	// OpIsNotEmpty is the negation of OpIsEmpty.
	OpIsNotEmpty Operator = "isNotEmpty"
)

// Known reports whether op belongs to the closed operator set. Unknown
// operators still evaluate (they match every row); Known lets hosts surface a
// warning instead.
func (op Operator) Known() bool {
	switch op {
	case OpContains, OpEquals, OpIs, OpStartsWith, OpEndsWith,
		OpGreater, OpGreaterEqual, OpLess, OpLessEqual,
		OpIsEmpty, OpIsNotEmpty:
		return true
	default:
		return false
	}
}

// Condition is one filter clause: a field, an operator and a scalar value.
type Condition struct {
	Field    string
	Operator Operator
	Value    any
}

// Model is an ordered list of conditions combined with logical AND.
// The zero value (no conditions) matches every row.
type Model struct {
	Items []Condition
}

// Empty reports whether the model carries no conditions.
func (m Model) Empty() bool { return len(m.Items) == 0 }

// Matches reports whether row satisfies every condition in the model.
// An empty model is vacuously true.
func (m Model) Matches(row dataset.Record) bool {
	for _, cond := range m.Items {
		if !Matches(row, cond) {
			return false
		}
	}

	return true
}

// Matches evaluates a single condition against a row. Malformed conditions
// never panic: failed numeric coercion compares false, and unknown operators
// match.
func Matches(row dataset.Record, cond Condition) bool {
	val, _ := row.Field(cond.Field)

	switch cond.Operator {
	case OpContains:
		return strings.Contains(lower(val), lower(cond.Value))
	case OpEquals, OpIs:
		return equalScalars(val, cond.Value)
	case OpStartsWith:
		return strings.HasPrefix(lower(val), lower(cond.Value))
	case OpEndsWith:
		return strings.HasSuffix(lower(val), lower(cond.Value))
	case OpGreater, OpGreaterEqual, OpLess, OpLessEqual:
		return compareNumeric(val, cond.Operator, cond.Value)
	case OpIsEmpty:
		return dataset.Empty(val)
	case OpIsNotEmpty:
		return !dataset.Empty(val)
	default:
		return true
	}
}

// Apply returns the rows matching the model. An empty model returns the
// input slice unchanged.
func Apply(rows []dataset.Record, m Model) []dataset.Record {
	if m.Empty() {
		return rows
	}

	out := make([]dataset.Record, 0, len(rows))
	for _, row := range rows {
		if m.Matches(row) {
			out = append(out, row)
		}
	}

	return out
}

func lower(v any) string {
	return strings.ToLower(dataset.Text(v))
}

// equalScalars is strict equality across loosely typed scalars: when both
// sides coerce numerically they compare as numbers (so a numeric column value
// 5.0 equals the filter value "5"), otherwise as exact, case-sensitive
// strings. Mixed numeric/non-numeric pairs never match.
func equalScalars(a, b any) bool {
	fa, aok := dataset.Float(a)
	fb, bok := dataset.Float(b)
	if aok && bok {
		return fa == fb
	}
	if aok != bok {
		return false
	}

	return dataset.Text(a) == dataset.Text(b)
}

func compareNumeric(val any, op Operator, target any) bool {
	f, ok := dataset.Float(val)
	if !ok {
		return false
	}
	t, ok := dataset.Float(target)
	if !ok {
		return false
	}

	switch op {
	case OpGreater:
		return f > t
	case OpGreaterEqual:
		return f >= t
	case OpLess:
		return f < t
	case OpLessEqual:
		return f <= t
	default:
		return false
	}
}
