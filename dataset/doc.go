// Package dataset holds the engine's data model and the dataset aggregator.
//
// The analytics engine is schema-agnostic: a Record is a plain field map as
// delivered by the host application's data layer, and every field of interest
// (index field, metric numerator/denominator, temperature columns) is named by
// the caller through configuration rather than baked into a row type.
//
// # Aggregation
//
// Aggregate buckets rows by an index field (month, day, hour, calendar date)
// and computes one metric value per bucket. Ratio metrics are computed as the
// ratio of sums, not the mean of per-row ratios:
//
//	COP = Σ thermal energy / Σ electrical energy
//
// which keeps buckets containing many small-sample rows from biasing the
// result. Buckets whose denominator sums to zero are dropped rather than
// divided.
//
// AggregateGroups runs the same aggregation independently per comparison
// group and merges the results into a single table keyed by index value, with
// each group's metric stored under a group-qualified series name so the chart
// can render the groups side by side:
//
//	groups := []dataset.Group{
//	    {Name: "2023", Rows: rows2023},
//	    {Name: "2024", Rows: rows2024},
//	}
//	table := dataset.AggregateGroups(groups, dataset.Config{
//	    IndexField:  "month",
//	    Metric:      dataset.Metric{Name: "cop", Numerator: "heat_kwh", Denominator: "power_kwh"},
//	    IndexValues: dataset.MonthIndexValues,
//	})
//
// # Error philosophy
//
// Nothing in this package returns an error. Missing fields, non-numeric
// values and empty inputs degrade to skipped rows, dropped buckets or default
// scales so the consuming chart always receives a renderable (possibly empty)
// dataset.
package dataset
