// Package regression fits outlier-resistant trend lines over (x, y)
// observations, e.g. COP against outdoor temperature.
//
// Heat-pump measurement rows are noisy: a defrost cycle, a meter glitch or a
// partially recorded period produces points far off the real trend, and an
// ordinary least-squares line tilts toward them. RobustLinear instead runs
// iteratively re-weighted least squares (IRLS): it seeds with the OLS fit,
// standardizes the residuals by a floored median-absolute-deviation scale,
// down-weights points with large standardized residuals through a Tukey
// bisquare weight function, refits with those weights, and repeats until the
// fit stops moving or the iteration budget is spent.
//
// # Fit quality is reported against the original data
//
// Result.RSquared and Result.MeanAbsoluteError are computed from unweighted
// residuals of the final line, and Result.SampleSize is the input length. A
// gross outlier therefore still lowers RSquared even though it no longer
// dominates the slope; the metrics describe how well the line explains what
// was actually measured, not the down-weighted view the fitter converged on.
// RSquared can be negative when a robust line deliberately ignores extreme
// points; it is reported as computed, never clamped.
//
// # Usage
//
//	points := dataset.XYPairs(rows, "outdoor_temp", "cop")
//	result := regression.RobustLinear(points)
//	if result == nil {
//	    // fewer than two points, or no x variance: nothing to chart
//	    return
//	}
//	fmt.Println(result.Slope, result.Intercept, result.RSquared)
//
// Following the engine-wide error philosophy, RobustLinear returns nil rather
// than an error for inputs no line can be fitted to.
package regression
