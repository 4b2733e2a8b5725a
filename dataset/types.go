package dataset

import (
	"fmt"
	"strconv"
)

// Point is a single (x, y) observation. X is typically an outdoor temperature
// or a time-derived numeric index, Y a metric value such as COP or flow
// temperature.
type Point struct {
	X float64
	Y float64
}

// Record is one measurement or billing-period row: an arbitrary mapping of
// named fields to scalars (numbers, strings, nil). The engine imposes no
// schema; field names are supplied by the caller.
type Record map[string]any

// Field returns the raw value of a named field and whether it is present.
func (r Record) Field(name string) (any, bool) {
	v, ok := r[name]
	return v, ok
}

// Float returns the named field coerced to float64. The second return value
// is false when the field is absent or not numerically coercible.
func (r Record) Float(name string) (float64, bool) {
	return Float(r[name])
}

// Text returns the named field stringified; absent and nil fields yield "".
func (r Record) Text(name string) string {
	return Text(r[name])
}

// Empty reports whether the named field is absent, nil or an empty string.
func (r Record) Empty(name string) bool {
	return Empty(r[name])
}

// AggregatedRow is one output row of the aggregator: an index value (e.g.
// month "1".."12" or a calendar date) and one or more named numeric series.
type AggregatedRow struct {
	Index  string
	Values map[string]float64
}

// Float coerces a scalar to float64. Numeric types convert directly; strings
// are parsed. Anything else (nil, booleans, unparsable strings) reports false.
func Float(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}

		return f, true
	default:
		return 0, false
	}
}

// Text stringifies a scalar. Floats print without a fixed precision so that
// integral values render as "12" rather than "12.000000"; nil yields "".
func Text(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

// Empty reports whether a scalar is nil or an empty string.
func Empty(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)

	return ok && s == ""
}
