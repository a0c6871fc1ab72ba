package statkit

// ExtendRange widens [lo, hi] symmetrically by frac of its span on
// each side, the usual plotting-range expansion. A negative frac
// shrinks the range instead.
func ExtendRange(lo, hi, frac float64) (float64, float64) {
	d := frac * (hi - lo)
	return lo - d, hi + d
}
