package dataset

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MonthIndexValues is the canonical calendar-month ordering for monthly
// charts. Passing it as Config.IndexValues keeps month buckets in calendar
// order regardless of which months the data happens to contain.
var MonthIndexValues = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}

// Metric describes how one bucket value is computed.
//
// With a Denominator the bucket value is the ratio of sums,
// Σ Numerator / Σ Denominator (the COP style of metric). With an empty
// Denominator the bucket value is the mean of the Numerator field.
type Metric struct {
	// Name is the output series name.
	Name string
	// Numerator is the field summed (or averaged) per bucket.
	Numerator string
	// Denominator is the field whose sum divides the numerator sum.
	// Empty selects averaging instead of a ratio.
	Denominator string
}

func (m Metric) ratio() bool { return m.Denominator != "" }

// Config configures one aggregation run.
type Config struct {
	// IndexField names the field rows are bucketed by.
	IndexField string
	// Metric describes the per-bucket value.
	Metric Metric
	// IndexValues optionally restricts and orders the output rows. Index
	// values found in the data but not listed here are dropped; listed
	// values without data are left absent rather than invented.
	IndexValues []string
	// Passthrough disables bucketing: one output row per input row, with
	// the metric computed from that row alone.
	Passthrough bool
}

// Group is one named, already-filtered row set for comparison aggregation.
type Group struct {
	Name string
	Rows []Record
}

// Aggregate buckets rows by the configured index field and computes one
// metric value per bucket. Without Config.IndexValues the output preserves
// data-discovery order. Buckets with a zero denominator sum, or with no
// numeric metric values at all, are dropped.
func Aggregate(rows []Record, cfg Config) []AggregatedRow {
	if cfg.Passthrough {
		return passthrough(rows, cfg)
	}

	buckets, order := bucketize(rows, cfg)

	out := make([]AggregatedRow, 0, len(order))
	for _, idx := range order {
		v, ok := bucketValue(buckets[idx], cfg.Metric)
		if !ok {
			continue
		}
		out = append(out, AggregatedRow{
			Index:  idx,
			Values: map[string]float64{cfg.Metric.Name: v},
		})
	}

	return out
}

// AggregateGroups aggregates each group independently and merges the results
// into one table keyed by index value. Each group's metric is stored under
// the series name "<metric> (<group>)". Row presence is decided by the union
// of index values across groups, ordered by Config.IndexValues when given and
// by the canonical index sort otherwise, so groups with disjoint index
// coverage still line up.
func AggregateGroups(groups []Group, cfg Config) []AggregatedRow {
	perGroup := cfg
	perGroup.Passthrough = false

	merged := make(map[string]map[string]float64)
	for _, g := range groups {
		key := fmt.Sprintf("%s (%s)", cfg.Metric.Name, g.Name)
		for _, row := range Aggregate(g.Rows, perGroup) {
			if merged[row.Index] == nil {
				merged[row.Index] = make(map[string]float64, len(groups))
			}
			merged[row.Index][key] = row.Values[cfg.Metric.Name]
		}
	}

	var order []string
	if len(cfg.IndexValues) > 0 {
		for _, idx := range cfg.IndexValues {
			if merged[idx] != nil {
				order = append(order, idx)
			}
		}
	} else {
		order = make([]string, 0, len(merged))
		for idx := range merged {
			order = append(order, idx)
		}
		sortIndexValues(order)
	}

	out := make([]AggregatedRow, 0, len(order))
	for _, idx := range order {
		out = append(out, AggregatedRow{Index: idx, Values: merged[idx]})
	}

	return out
}

// passthrough emits one row per input record, computing the metric from the
// single row. Rows whose metric cannot be computed are skipped.
func passthrough(rows []Record, cfg Config) []AggregatedRow {
	out := make([]AggregatedRow, 0, len(rows))
	for _, row := range rows {
		v, ok := rowValue(row, cfg.Metric)
		if !ok {
			continue
		}
		out = append(out, AggregatedRow{
			Index:  row.Text(cfg.IndexField),
			Values: map[string]float64{cfg.Metric.Name: v},
		})
	}

	return out
}

// bucketize groups rows by index value, returning the buckets and the output
// order: the caller-supplied canonical order when present (restricting to
// listed values), data-discovery order otherwise.
func bucketize(rows []Record, cfg Config) (map[string][]Record, []string) {
	buckets := make(map[string][]Record)
	var order []string

	for _, row := range rows {
		idx := row.Text(cfg.IndexField)
		if idx == "" {
			continue
		}
		if _, seen := buckets[idx]; !seen {
			order = append(order, idx)
		}
		buckets[idx] = append(buckets[idx], row)
	}

	if len(cfg.IndexValues) > 0 {
		order = order[:0]
		for _, idx := range cfg.IndexValues {
			if _, ok := buckets[idx]; ok {
				order = append(order, idx)
			}
		}
	}

	return buckets, order
}

func bucketValue(rows []Record, m Metric) (float64, bool) {
	if m.ratio() {
		num := floats.Sum(collect(rows, m.Numerator))
		den := floats.Sum(collect(rows, m.Denominator))
		if den == 0 {
			return 0, false
		}

		return num / den, true
	}

	vals := collect(rows, m.Numerator)
	if len(vals) == 0 {
		return 0, false
	}

	return stat.Mean(vals, nil), true
}

func rowValue(row Record, m Metric) (float64, bool) {
	num, ok := row.Float(m.Numerator)
	if !ok {
		return 0, false
	}
	if !m.ratio() {
		return num, true
	}

	den, ok := row.Float(m.Denominator)
	if !ok || den == 0 {
		return 0, false
	}

	return num / den, true
}

// collect gathers the numeric values of a field across rows, skipping rows
// where the field is absent or not coercible.
func collect(rows []Record, field string) []float64 {
	vals := make([]float64, 0, len(rows))
	for _, row := range rows {
		if v, ok := row.Float(field); ok {
			vals = append(vals, v)
		}
	}

	return vals
}

// sortIndexValues orders index values numerically when every compared pair
// parses as a number (months "2" before "10") and lexicographically otherwise
// (ISO calendar dates sort chronologically). Numbers sort before text.
func sortIndexValues(vals []string) {
	sort.SliceStable(vals, func(i, j int) bool {
		a, aerr := strconv.ParseFloat(vals[i], 64)
		b, berr := strconv.ParseFloat(vals[j], 64)
		switch {
		case aerr == nil && berr == nil:
			return a < b
		case aerr == nil:
			return true
		case berr == nil:
			return false
		default:
			return vals[i] < vals[j]
		}
	})
}
