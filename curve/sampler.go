// Package curve samples fitted models into evenly spaced plot points.
package curve

import (
	"gonum.org/v1/gonum/floats"

	"github.com/heatwise/coptrend/dataset"
	"github.com/heatwise/coptrend/loess"
	"github.com/heatwise/coptrend/regression"
)

// DefaultSamples is the number of points sampled across a domain when the
// caller has no reason to choose otherwise.
const DefaultSamples = 100

// Linear samples a fitted line at n evenly spaced x values over
// [xMin, xMax] inclusive; n = 1 yields just xMin. This is pure evaluation of
// the already-fitted slope and intercept. A nil result or n < 1 yields nil.
func Linear(result *regression.Result, xMin, xMax float64, n int) []dataset.Point {
	if result == nil || n < 1 {
		return nil
	}

	points := make([]dataset.Point, n)
	for i, x := range grid(xMin, xMax, n) {
		points[i] = dataset.Point{X: x, Y: result.Eval(x)}
	}

	return points
}

// Loess fits a smoother over points and samples it at n evenly spaced x
// values over [xMin, xMax], identically to Linear. It returns nil when the
// input is below the three-point minimum or n < 1.
func Loess(points []dataset.Point, xMin, xMax float64, n int, opts ...loess.Option) []dataset.Point {
	if n < 1 {
		return nil
	}
	smoother := loess.New(points, opts...)
	if smoother == nil {
		return nil
	}

	sampled := make([]dataset.Point, n)
	for i, x := range grid(xMin, xMax, n) {
		sampled[i] = dataset.Point{X: x, Y: smoother.Predict(x)}
	}

	return sampled
}

func grid(lo, hi float64, n int) []float64 {
	if n == 1 {
		return []float64{lo}
	}

	return floats.Span(make([]float64, n), lo, hi)
}
