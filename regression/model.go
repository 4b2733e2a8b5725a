package regression

import "fmt"

// Result describes a fitted line y = Slope*x + Intercept.
//
// RSquared, MeanAbsoluteError and SampleSize are computed against the full,
// unweighted input (see the package documentation); RSquared may be negative
// for pathological robust fits.
type Result struct {
	Slope     float64
	Intercept float64
	// RSquared is the coefficient of determination of the final line on the
	// unweighted data.
	RSquared float64
	// SampleSize is the number of input points, not the count remaining
	// after down-weighting.
	SampleSize int
	// MeanAbsoluteError is the mean unweighted absolute residual.
	MeanAbsoluteError float64
}

// Eval returns the fitted value at x.
func (r *Result) Eval(x float64) float64 {
	return r.Slope*x + r.Intercept
}

// String returns a human-readable summary of the fit.
func (r *Result) String() string {
	return fmt.Sprintf("Result{Slope: %.4f, Intercept: %.4f, R²: %.4f, MAE: %.4f, N: %d}",
		r.Slope, r.Intercept, r.RSquared, r.MeanAbsoluteError, r.SampleSize)
}
