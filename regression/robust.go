package regression

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/heatwise/coptrend/dataset"
	"github.com/heatwise/coptrend/internal/options"
)

// convergeTol stops the IRLS loop once slope and intercept together move less
// than this between rounds.
const convergeTol = 1e-10

// madConsistency rescales the median absolute deviation to estimate the
// standard deviation of normally distributed residuals.
const madConsistency = 0.6745

// RobustLinear fits an outlier-resistant line over points using IRLS.
//
// It returns nil when fewer than two points are supplied or when the x values
// carry no variance (a vertical point column has no defined slope); both are
// InsufficientData/DegenerateInput cases the caller renders as "no trend".
func RobustLinear(points []dataset.Point, opts ...Option) *Result {
	if len(points) < 2 {
		return nil
	}

	cfg := defaultConfig()
	_ = options.Apply(&cfg, opts...) // options validate by ignoring bad values

	n := len(points)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	if stat.Variance(xs, nil) == 0 {
		return nil
	}

	// OLS seed.
	intercept, slope := stat.LinearRegression(xs, ys, nil, false)

	resid := make([]float64, n)
	weights := make([]float64, n)

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		for i := range xs {
			resid[i] = ys[i] - (intercept + slope*xs[i])
		}

		scale := madScale(resid, cfg.ScaleFloor)
		supported := 0
		for i, r := range resid {
			weights[i] = bisquare(r / (scale * cfg.Tuning))
			if weights[i] > 0 {
				supported++
			}
		}
		// A weighted refit needs at least two supported points; otherwise
		// keep the current fit.
		if supported < 2 {
			break
		}

		a, b := stat.LinearRegression(xs, ys, weights, false)
		if math.IsNaN(a) || math.IsNaN(b) {
			// Weights collapsed onto a single x location.
			break
		}

		moved := math.Abs(a-intercept) + math.Abs(b-slope)
		intercept, slope = a, b
		if moved < convergeTol {
			break
		}
	}

	rSquared, mae := fitQuality(xs, ys, slope, intercept)

	return &Result{
		Slope:             slope,
		Intercept:         intercept,
		RSquared:          rSquared,
		SampleSize:        n,
		MeanAbsoluteError: mae,
	}
}

// bisquare is the Tukey redescending weight function over the standardized,
// tuning-scaled residual u: ≈1 near zero, 0 at and beyond |u| = 1.
func bisquare(u float64) float64 {
	u = math.Abs(u)
	if u >= 1 {
		return 0
	}
	t := 1 - u*u

	return t * t
}

// madScale estimates the residual scale as MAD/0.6745, floored so degenerate
// (all-zero) residuals never divide by zero.
func madScale(resid []float64, floor float64) float64 {
	abs := make([]float64, len(resid))
	for i, r := range resid {
		abs[i] = math.Abs(r)
	}
	sort.Float64s(abs)

	scale := stat.Quantile(0.5, stat.Empirical, abs, nil) / madConsistency
	if scale < floor {
		scale = floor
	}

	return scale
}

// fitQuality computes R² and mean absolute error of the final line against
// the unweighted data.
func fitQuality(xs, ys []float64, slope, intercept float64) (rSquared, mae float64) {
	meanY := stat.Mean(ys, nil)

	var ssTot, ssRes, sumAbs float64
	for i := range xs {
		r := ys[i] - (intercept + slope*xs[i])
		d := ys[i] - meanY
		ssRes += r * r
		ssTot += d * d
		sumAbs += math.Abs(r)
	}

	if ssTot == 0 {
		rSquared = 0
	} else {
		rSquared = 1 - ssRes/ssTot
	}
	mae = sumAbs / float64(len(xs))

	return rSquared, mae
}
