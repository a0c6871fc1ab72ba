package statkit

import "fmt"

// Centers returns the midpoints between consecutive entries of x.
//
// Without borders the result has len(x)-1 entries, entry i being the
// midpoint of x[i] and x[i+1]. With borders the result has len(x)+1
// entries: the interior midpoints preceded by the reflection of the
// first midpoint about x[0] and followed by the reflection of the last
// midpoint about the final entry of x. When x is evenly spaced, the
// with-borders form makes every x[i] the arithmetic mean of its two
// enclosing boundaries.
//
// x is not required to be sorted, but the result is only meaningful
// for sorted input.
func Centers(x []float64, withBorders bool) ([]float64, error) {
	m := len(x)
	if m < 2 {
		return nil, fmt.Errorf("centers: got %d points: %w", m, ErrInsufficientPoints)
	}
	mid := make([]float64, m-1)
	for i := range mid {
		mid[i] = (x[i] + x[i+1]) / 2
	}
	if !withBorders {
		return mid, nil
	}
	out := make([]float64, m+1)
	out[0] = 2*x[0] - mid[0]
	copy(out[1:m], mid)
	out[m] = 2*x[m-1] - mid[m-2]
	return out, nil
}

// SubsegmentCenters splits each interval around an entry of x into
// evenly sized subsegments and returns the center of every subsegment,
// one slice per interval. Interval edges are Centers(x, true); for
// evenly spaced x the subsegment centers of interval i are symmetric
// about x[i].
//
// n holds either a single shared subdivision count or one count per
// interval.
func SubsegmentCenters(x []float64, n []int) ([][]float64, error) {
	counts, err := spreadCounts(n, len(x))
	if err != nil {
		return nil, err
	}
	b, err := Centers(x, true)
	if err != nil {
		return nil, fmt.Errorf("subsegment centers: %w", err)
	}
	out := make([][]float64, len(x))
	for i := range x {
		step := (b[i+1] - b[i]) / float64(counts[i])
		slot := make([]float64, counts[i])
		for k := range slot {
			slot[k] = b[i] + step/2 + float64(k)*step
		}
		out[i] = slot
	}
	return out, nil
}

// spreadCounts normalizes a subdivision spec to one count per interval.
func spreadCounts(n []int, m int) ([]int, error) {
	switch len(n) {
	case 1:
		if n[0] <= 0 {
			return nil, fmt.Errorf("subsegment centers: count %d: %w", n[0], ErrInvalidSubdivision)
		}
		counts := make([]int, m)
		for i := range counts {
			counts[i] = n[0]
		}
		return counts, nil
	case m:
		for i, c := range n {
			if c <= 0 {
				return nil, fmt.Errorf("subsegment centers: count %d at interval %d: %w", c, i, ErrInvalidSubdivision)
			}
		}
		return n, nil
	default:
		return nil, fmt.Errorf("subsegment centers: %d counts for %d intervals: %w", len(n), m, ErrLengthMismatch)
	}
}
