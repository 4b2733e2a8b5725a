package loess

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heatwise/coptrend/dataset"
)

func linearPoints(n int, slope, intercept float64) []dataset.Point {
	points := make([]dataset.Point, n)
	for i := range points {
		x := float64(i)
		points[i] = dataset.Point{X: x, Y: slope*x + intercept}
	}

	return points
}

func TestNew_InsufficientData(t *testing.T) {
	require.Nil(t, New(nil))
	require.Nil(t, New([]dataset.Point{{X: 1, Y: 2}}))
	require.Nil(t, New([]dataset.Point{{X: 1, Y: 2}, {X: 2, Y: 3}}))
}

func TestPredict_ReproducesLinearData(t *testing.T) {
	points := linearPoints(10, 2, 1)

	// A local linear fit reproduces linear data exactly, regardless of
	// bandwidth.
	for _, bw := range []float64{0.2, 0.3, 0.5, 1.0} {
		smoother := New(points, WithBandwidth(bw))
		require.NotNil(t, smoother)

		for _, x := range []float64{0, 0.7, 4.5, 8.2, 9} {
			require.InDelta(t, 2*x+1, smoother.Predict(x), 1e-9, "bandwidth %v at x=%v", bw, x)
		}
	}
}

func TestPredict_Extrapolates(t *testing.T) {
	smoother := New(linearPoints(10, 2, 1))
	require.NotNil(t, smoother)

	// Outside the observed x-range the nearest local line carries on; for
	// collinear data that is the true line.
	require.InDelta(t, 2*(-5)+1, smoother.Predict(-5), 1e-9)
	require.InDelta(t, 2*20+1, smoother.Predict(20), 1e-9)
}

func TestPredict_CoincidentNeighbors(t *testing.T) {
	points := []dataset.Point{{X: 1, Y: 2}, {X: 1, Y: 4}, {X: 1, Y: 6}}

	smoother := New(points)
	require.NotNil(t, smoother)

	// Every neighbor coincides with the query: the local value is returned
	// directly, and queries away from the column stay finite.
	require.InDelta(t, 4.0, smoother.Predict(1), 1e-12)
	got := smoother.Predict(2)
	require.False(t, math.IsNaN(got))
	require.False(t, math.IsInf(got, 0))
}

func TestPredict_SmallBandwidthIsMoreLocal(t *testing.T) {
	// A hockey-stick shape: flat, then steep.
	points := make([]dataset.Point, 0, 20)
	for i := 0; i < 10; i++ {
		points = append(points, dataset.Point{X: float64(i), Y: 1})
	}
	for i := 10; i < 20; i++ {
		points = append(points, dataset.Point{X: float64(i), Y: float64(i) - 9})
	}

	local := New(points, WithBandwidth(0.2))
	global := New(points, WithBandwidth(1.0))
	require.NotNil(t, local)
	require.NotNil(t, global)

	// In the flat region the narrow bandwidth hugs the data while the global
	// fit is pulled up by the steep half.
	require.InDelta(t, 1.0, local.Predict(3), 0.1)
	require.Greater(t, math.Abs(global.Predict(3)-1.0), math.Abs(local.Predict(3)-1.0))
}

func TestNew_IgnoresInvalidBandwidth(t *testing.T) {
	points := linearPoints(10, 1, 0)

	for _, bw := range []float64{-0.5, 0, 1.5} {
		smoother := New(points, WithBandwidth(bw))
		require.NotNil(t, smoother)
		require.InDelta(t, 4.5, smoother.Predict(4.5), 1e-9)
	}
}
