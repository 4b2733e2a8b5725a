// Package coptrend is the analytics engine behind a heat-pump efficiency
// dashboard: it turns noisy, partial measurement rows into robust trend
// curves and comparison-ready aggregated datasets.
//
// The engine is pure, synchronous, in-memory computation. It consumes plain
// record maps and filter specifications from the host application and
// produces numeric curve points and aggregated tables for the host's chart
// renderer; it performs no I/O, owns no storage and renders nothing. Every
// function is referentially transparent given its arguments, so concurrent
// re-invocation with different inputs is safe. The one mutable object, the
// per-session filter.ComparisonState, must be serialized by its owner.
//
// # Pipeline
//
// Raw rows flow through the filter predicate per comparison group, into the
// dataset aggregator and on to the curve fitters:
//
//	rows := loadRows()                       // host data layer
//	state := filter.NewComparisonState()
//	state.UpdateGroup1(filter.Model{Items: []filter.Condition{
//	    {Field: "source", Operator: filter.OpIs, Value: "manual"},
//	}})
//
//	table := coptrend.AggregateComparison(rows, state, dataset.Config{
//	    IndexField:  "month",
//	    Metric:      dataset.Metric{Name: "cop", Numerator: "heat_kwh", Denominator: "power_kwh"},
//	    IndexValues: dataset.MonthIndexValues,
//	})
//
//	points := dataset.XYPairs(coptrend.FilterRecords(rows, state.ActiveModel()), "outdoor_temp", "cop")
//	fit := coptrend.RobustLinearRegression(points)
//	curve := coptrend.GenerateCurvePoints(fit, -15, 20, 100)
//
// # Degraded results instead of errors
//
// The algorithmic surface never returns an error value: too few points, a
// degenerate x column, a zero-denominator bucket or an unknown filter
// operator all produce a defined nil/empty/fallback result, because the
// consuming chart must always have some renderable state. See the package
// documentation of regression, loess, dataset and filter for the exact rules.
//
// This package provides convenient top-level wrappers around the domain
// packages for the most common dashboard calls; use the packages directly for
// fine-grained control.
package coptrend

import (
	"github.com/heatwise/coptrend/curve"
	"github.com/heatwise/coptrend/dataset"
	"github.com/heatwise/coptrend/filter"
	"github.com/heatwise/coptrend/loess"
	"github.com/heatwise/coptrend/regression"
)

// RobustLinearRegression fits an outlier-resistant line over points. It
// returns nil for fewer than two points or an x column without variance. See
// regression.RobustLinear.
func RobustLinearRegression(points []dataset.Point, opts ...regression.Option) *regression.Result {
	return regression.RobustLinear(points, opts...)
}

// LoessSmooth builds a LOESS smoother over points, nil for fewer than three
// points. See loess.New.
func LoessSmooth(points []dataset.Point, opts ...loess.Option) *loess.Smoother {
	return loess.New(points, opts...)
}

// GenerateCurvePoints samples a fitted line at n evenly spaced x values over
// [xMin, xMax] for plotting.
func GenerateCurvePoints(result *regression.Result, xMin, xMax float64, n int) []dataset.Point {
	return curve.Linear(result, xMin, xMax, n)
}

// GenerateLoessCurvePoints fits a LOESS smoother over points and samples it
// at curve.DefaultSamples evenly spaced x values over [xMin, xMax]. It
// returns nil when points is below the three-point minimum.
func GenerateLoessCurvePoints(points []dataset.Point, xMin, xMax float64, opts ...loess.Option) []dataset.Point {
	return curve.Loess(points, xMin, xMax, curve.DefaultSamples, opts...)
}

// FilterRecords returns the rows matching the filter model; an empty model
// returns rows unchanged.
func FilterRecords(rows []dataset.Record, model filter.Model) []dataset.Record {
	return filter.Apply(rows, model)
}

// AggregateComparison runs the full comparison pipeline: it filters rows once
// per comparison group held by state and merges the per-group aggregates into
// a single table with group-qualified series names. While comparison mode is
// off it aggregates the active group's rows alone, with the plain metric
// name.
func AggregateComparison(rows []dataset.Record, state *filter.ComparisonState, cfg dataset.Config) []dataset.AggregatedRow {
	if !state.ComparisonMode() {
		return dataset.Aggregate(filter.Apply(rows, state.ActiveModel()), cfg)
	}

	comparison := state.Groups()
	groups := make([]dataset.Group, len(comparison))
	for i, g := range comparison {
		groups[i] = dataset.Group{Name: g.Name, Rows: filter.Apply(rows, g.Model)}
	}

	return dataset.AggregateGroups(groups, cfg)
}
