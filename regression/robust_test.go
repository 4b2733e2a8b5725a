package regression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heatwise/coptrend/dataset"
)

func TestRobustLinear_InsufficientData(t *testing.T) {
	require.Nil(t, RobustLinear(nil))
	require.Nil(t, RobustLinear([]dataset.Point{}))
	require.Nil(t, RobustLinear([]dataset.Point{{X: 1, Y: 2}}))
}

func TestRobustLinear_ZeroVarianceX(t *testing.T) {
	points := []dataset.Point{{X: 2, Y: 1}, {X: 2, Y: 5}, {X: 2, Y: 9}}

	require.Nil(t, RobustLinear(points))
}

func TestRobustLinear_Collinear(t *testing.T) {
	// y = 2x + 1, exactly.
	points := []dataset.Point{{X: 0, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 5}, {X: 3, Y: 7}}

	result := RobustLinear(points)
	require.NotNil(t, result)
	require.InDelta(t, 2.0, result.Slope, 1e-9)
	require.InDelta(t, 1.0, result.Intercept, 1e-9)
	require.InDelta(t, 1.0, result.RSquared, 1e-9)
	require.InDelta(t, 0.0, result.MeanAbsoluteError, 1e-9)
	require.Equal(t, 4, result.SampleSize)
}

func TestRobustLinear_OutlierResistance(t *testing.T) {
	// Four points on y = 2x + 1 plus one gross outlier. Plain least squares
	// fits a slope around 20; the robust fit must stay clear of it.
	points := []dataset.Point{
		{X: 0, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 5}, {X: 3, Y: 7}, {X: 4, Y: 100},
	}

	result := RobustLinear(points)
	require.NotNil(t, result)
	require.Greater(t, result.Slope, 1.5)
	require.Less(t, result.Slope, 20.0)
	require.InDelta(t, 2.0, result.Slope, 0.2)
	require.InDelta(t, 1.0, result.Intercept, 0.5)

	// Quality metrics are computed against the unweighted data: the ignored
	// outlier still produces a large mean absolute error and drags R² down
	// (negative is legitimate here).
	require.Equal(t, 5, result.SampleSize)
	require.InDelta(t, 18.2, result.MeanAbsoluteError, 1.0)
	require.Less(t, result.RSquared, 0.0)
}

func TestRobustLinear_TuningConstant(t *testing.T) {
	points := []dataset.Point{
		{X: 0, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 5}, {X: 3, Y: 7}, {X: 4, Y: 100},
	}

	// A very loose tuning constant leaves the outlier with full weight, so
	// the fit stays near plain least squares.
	loose := RobustLinear(points, WithTuningConstant(100))
	require.NotNil(t, loose)
	require.InDelta(t, 20.2, loose.Slope, 0.5)

	// Invalid option values are ignored and the defaults still apply.
	guarded := RobustLinear(points, WithTuningConstant(-1), WithMaxIterations(0), WithScaleFloor(0))
	require.NotNil(t, guarded)
	require.InDelta(t, 2.0, guarded.Slope, 0.2)
}

func TestRobustLinear_NoisyTrend(t *testing.T) {
	// Mildly noisy points around y = -0.1x + 4 (a COP-vs-outdoor-temperature
	// shape); the fit should land near the underlying trend.
	points := []dataset.Point{
		{X: -10, Y: 5.1}, {X: -5, Y: 4.4}, {X: 0, Y: 4.05}, {X: 5, Y: 3.45},
		{X: 10, Y: 3.1}, {X: 15, Y: 2.4}, {X: 20, Y: 2.05},
	}

	result := RobustLinear(points)
	require.NotNil(t, result)
	require.InDelta(t, -0.1, result.Slope, 0.02)
	require.InDelta(t, 3.5, result.Eval(5), 0.2)
	require.Greater(t, result.RSquared, 0.95)
}

func TestResult_String(t *testing.T) {
	result := RobustLinear([]dataset.Point{{X: 0, Y: 1}, {X: 1, Y: 3}})
	require.NotNil(t, result)
	require.Contains(t, result.String(), "Slope: 2.0000")
}
