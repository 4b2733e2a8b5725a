// Package loess builds non-parametric trend functions over (x, y)
// observations using locally estimated scatterplot smoothing.
//
// For each query x the smoother selects the k = ⌈bandwidth·n⌉ nearest
// neighbors by x-distance, weights them with the tricube kernel against the
// farthest selected neighbor, fits a weighted degree-1 line and evaluates it
// at the query. Smaller bandwidths follow the data more closely; larger ones
// approach a single global line.
package loess

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/heatwise/coptrend/dataset"
	"github.com/heatwise/coptrend/internal/options"
)

// minNeighbors is the smallest local fit window. Two supported points
// identify a line and the tricube kernel zeroes the farthest neighbor, so
// three is the floor at which every local fit stays well-posed.
const minNeighbors = 3

// Smoother evaluates a LOESS fit at arbitrary x. It is immutable after
// construction and safe for concurrent Predict calls. Queries outside the
// observed x-range extrapolate the nearest local line; that is defined
// behavior, not an error.
type Smoother struct {
	xs []float64 // sorted ascending
	ys []float64 // parallel to xs
	k  int
}

// New builds a smoother over points. It returns nil when fewer than three
// points are supplied, the minimum for a meaningful local fit.
func New(points []dataset.Point, opts ...Option) *Smoother {
	if len(points) < 3 {
		return nil
	}

	cfg := defaultConfig()
	_ = options.Apply(&cfg, opts...)

	n := len(points)
	sorted := make([]dataset.Point, n)
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range sorted {
		xs[i] = p.X
		ys[i] = p.Y
	}

	k := int(math.Ceil(cfg.Bandwidth * float64(n)))
	if k < minNeighbors {
		k = minNeighbors
	}
	if k > n {
		k = n
	}

	return &Smoother{xs: xs, ys: ys, k: k}
}

// Predict evaluates the smoother at x.
func (s *Smoother) Predict(x float64) float64 {
	lo, hi := s.window(x)
	nbx := s.xs[lo:hi]
	nby := s.ys[lo:hi]

	dmax := math.Max(math.Abs(x-nbx[0]), math.Abs(nbx[len(nbx)-1]-x))
	if dmax == 0 {
		// Every selected neighbor coincides with the query.
		return stat.Mean(nby, nil)
	}

	weights := make([]float64, len(nbx))
	for i, xi := range nbx {
		weights[i] = tricube(math.Abs(xi-x) / dmax)
	}

	return localFit(nbx, nby, weights, x)
}

// window returns the half-open range of the k nearest neighbors of x in the
// sorted sample, grown greedily from the insertion point.
func (s *Smoother) window(x float64) (lo, hi int) {
	n := len(s.xs)
	lo = sort.SearchFloat64s(s.xs, x)
	hi = lo

	for hi-lo < s.k {
		switch {
		case lo == 0:
			hi++
		case hi == n:
			lo--
		case x-s.xs[lo-1] <= s.xs[hi]-x:
			lo--
		default:
			hi++
		}
	}

	return lo, hi
}

// localFit evaluates a weighted degree-1 fit at x, degrading to the weighted
// mean when the weighted sample has no usable x spread.
func localFit(xs, ys, weights []float64, x float64) float64 {
	var wsum float64
	for _, w := range weights {
		wsum += w
	}
	if wsum == 0 {
		return stat.Mean(ys, nil)
	}

	if stat.Variance(xs, weights) == 0 {
		return stat.Mean(ys, weights)
	}

	alpha, beta := stat.LinearRegression(xs, ys, weights, false)
	if math.IsNaN(alpha) || math.IsNaN(beta) {
		return stat.Mean(ys, weights)
	}

	return alpha + beta*x
}

// tricube is the kernel (1 - t³)³ over the normalized distance t ∈ [0, 1],
// zero beyond the neighborhood radius.
func tricube(t float64) float64 {
	if t >= 1 {
		return 0
	}
	u := 1 - t*t*t

	return u * u * u
}
