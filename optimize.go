package statkit

import "math"

// invPhi is 1/phi, the golden-section bracket shrink factor.
var invPhi = (math.Sqrt(5) - 1) / 2

const maxSearchIter = 200

// goldenSection minimizes f over [a, b] by golden-section search:
// deterministic, derivative-free, one bracket shrink per objective
// evaluation. It stops once the bracket width drops below tol (or the
// iteration budget runs out) and returns the bracket midpoint. If the
// minimum lies outside [a, b] the search converges to the nearer
// endpoint.
func goldenSection(f func(float64) float64, a, b, tol float64) float64 {
	x1 := b - invPhi*(b-a)
	x2 := a + invPhi*(b-a)
	f1, f2 := f(x1), f(x2)
	for i := 0; i < maxSearchIter && b-a > tol; i++ {
		if f1 <= f2 {
			b, x2, f2 = x2, x1, f1
			x1 = b - invPhi*(b-a)
			f1 = f(x1)
		} else {
			a, x1, f1 = x1, x2, f2
			x2 = a + invPhi*(b-a)
			f2 = f(x2)
		}
	}
	return (a + b) / 2
}

// searchTol scales the convergence tolerance to the bracket magnitude.
func searchTol(lo, hi float64) float64 {
	return 1e-10 * math.Max(1, math.Max(math.Abs(lo), math.Abs(hi)))
}
