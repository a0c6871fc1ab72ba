// Package statkit provides aggregate-preserving temporal downscaling
// of interval data, plus a few small statistical helpers. Given one
// aggregate value per interval, Downscale reconstructs a finer-grained
// series whose per-interval mean reproduces each aggregate exactly
// while keeping the reconstruction as smooth as possible across
// interval boundaries.
package statkit

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Line is an affine per-interval model y = Slope*x + Intercept.
type Line struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Chain is a fitted piecewise-linear reconstruction: one Line per
// interval, valid between consecutive entries of Boundaries.
// len(Boundaries) == len(Lines)+1, and adjacent lines agree at their
// shared boundary, so the chain is continuous.
type Chain struct {
	Boundaries []float64
	Lines      []Line
}

// Fit builds the downscaling chain for interval centers x and
// aggregates y, using y0 as the reconstructed value at the leftmost
// boundary. Interval i's line passes exactly through the carried
// boundary point and (x[i], y[i]); the value carried to the next
// boundary is that line evaluated there.
//
// For evenly spaced x, the per-interval mean of the chain over the
// subsegment centers equals y[i] for every choice of y0; see Downscale.
func Fit(y, x []float64, y0 float64) (Chain, error) {
	if len(x) != len(y) {
		return Chain{}, fmt.Errorf("fit: len(x)=%d, len(y)=%d: %w", len(x), len(y), ErrLengthMismatch)
	}
	b, err := Centers(x, true)
	if err != nil {
		return Chain{}, fmt.Errorf("fit: %w", err)
	}
	lines := make([]Line, len(x))
	carried := y0
	for i := range x {
		dx := x[i] - b[i]
		if dx == 0 {
			return Chain{}, fmt.Errorf("fit: boundary %v of interval %d: %w", b[i], i, ErrDegenerateInterval)
		}
		slope := (y[i] - carried) / dx
		lines[i] = Line{Slope: slope, Intercept: y[i] - slope*x[i]}
		carried = lines[i].At(b[i+1])
	}
	return Chain{Boundaries: b, Lines: lines}, nil
}

// Unsmoothness is the total variation of the slope sequence: the sum
// of absolute slope changes across interior boundaries. Zero means the
// reconstruction has a continuous derivative everywhere.
func (c Chain) Unsmoothness() float64 {
	var total float64
	for i := 0; i+1 < len(c.Lines); i++ {
		total += math.Abs(c.Lines[i+1].Slope - c.Lines[i].Slope)
	}
	return total
}

// At evaluates the chain at x. Points left of the first boundary are
// extrapolated with the first line, points right of the last boundary
// with the last line.
func (c Chain) At(x float64) float64 {
	i, _ := slices.BinarySearch(c.Boundaries, x)
	i-- // the interval left of the insertion point
	if i < 0 {
		i = 0
	}
	if i >= len(c.Lines) {
		i = len(c.Lines) - 1
	}
	return c.Lines[i].At(x)
}

// Downscale reconstructs a finer-grained series from interval
// aggregates. x holds the interval centers, y one aggregate per
// interval, and n the subsegment counts (a single shared count or one
// count per interval). The result concatenates, in interval order, each
// interval's line evaluated at its subsegment centers; its length is
// the sum of the counts.
//
// The value at the leftmost boundary is the chain's single free
// parameter. It is chosen by a bounded golden-section search over
// [3*min(y), 3*max(y)] to minimize the chain's unsmoothness;
// DownscaleWithin accepts an explicit bracket. The search is
// deterministic and returns the best value inside the bracket, which
// need not be the global minimum when the bracket excludes it.
//
// For evenly spaced interval centers, the mean of each interval's
// output slice equals its aggregate up to floating-point rounding
// regardless of the search outcome: the subsegment centers are then
// symmetric about x[i] and the model is affine. When every
// aggregate is equal the default bracket collapses to a single point;
// the search is skipped and the constant reconstruction is returned.
//
// Non-finite inputs (NaN, ±Inf) propagate through the arithmetic and
// produce non-finite outputs rather than an error.
func Downscale(y, x []float64, n []int) ([]float64, error) {
	if len(y) < 2 {
		return nil, fmt.Errorf("downscale: got %d aggregates: %w", len(y), ErrInsufficientPoints)
	}
	lo, hi := 3*floats.Min(y), 3*floats.Max(y)
	if lo == hi {
		// Constant aggregates: the flat chain at y[0] is already
		// perfectly smooth.
		return evaluate(y, x, n, y[0])
	}
	return DownscaleWithin(y, x, n, lo, hi)
}

// DownscaleWithin is Downscale with an explicit search bracket
// [lo, hi] for the leftmost boundary value.
func DownscaleWithin(y, x []float64, n []int, lo, hi float64) ([]float64, error) {
	if !(lo < hi) {
		return nil, fmt.Errorf("downscale: bracket [%v, %v]: %w", lo, hi, ErrInvalidSearchInterval)
	}
	// Validate shape and geometry once; the objective cannot fail
	// after this, since the boundary layout does not depend on y0.
	if _, err := spreadCounts(n, len(x)); err != nil {
		return nil, fmt.Errorf("downscale: %w", err)
	}
	if _, err := Fit(y, x, lo); err != nil {
		return nil, fmt.Errorf("downscale: %w", err)
	}
	y0 := goldenSection(func(y0 float64) float64 {
		c, _ := Fit(y, x, y0)
		return c.Unsmoothness()
	}, lo, hi, searchTol(lo, hi))
	return evaluate(y, x, n, y0)
}

// evaluate rebuilds the chain at y0 and samples every interval's line
// at its subsegment centers, concatenated in interval order.
func evaluate(y, x []float64, n []int, y0 float64) ([]float64, error) {
	chain, err := Fit(y, x, y0)
	if err != nil {
		return nil, fmt.Errorf("downscale: %w", err)
	}
	segs, err := SubsegmentCenters(x, n)
	if err != nil {
		return nil, fmt.Errorf("downscale: %w", err)
	}
	total := 0
	for _, s := range segs {
		total += len(s)
	}
	out := make([]float64, 0, total)
	for i, s := range segs {
		for _, p := range s {
			out = append(out, chain.Lines[i].At(p))
		}
	}
	return out, nil
}
