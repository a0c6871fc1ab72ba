package statkit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Estimate is a binomial proportion estimate with its confidence bounds.
type Estimate struct {
	PointEst float64 `json:"est"`
	Lower    float64 `json:"lower"`
	Upper    float64 `json:"upper"`
}

// BinomialCI estimates a binomial proportion from successes out of
// trials and returns the Wilson score interval at the given confidence
// level (e.g. 0.95). The Wilson interval stays inside [0, 1] and
// remains usable for small trial counts and proportions near the
// edges, unlike the plain normal approximation.
func BinomialCI(successes, trials int, confidence float64) (Estimate, error) {
	if trials <= 0 || successes < 0 || successes > trials {
		return Estimate{}, fmt.Errorf("binomial ci: %d out of %d: %w", successes, trials, ErrInvalidTrials)
	}
	if confidence <= 0 || confidence >= 1 {
		return Estimate{}, fmt.Errorf("binomial ci: level %v: %w", confidence, ErrInvalidConfidence)
	}
	n := float64(trials)
	p := float64(successes) / n
	z := distuv.UnitNormal.Quantile(1 - (1-confidence)/2)
	z2 := z * z
	den := 1 + z2/n
	center := p + z2/(2*n)
	rad := z * math.Sqrt((p*(1-p)+z2/(4*n))/n)
	return Estimate{
		PointEst: p,
		Lower:    math.Max(0, (center-rad)/den),
		Upper:    math.Min(1, (center+rad)/den),
	}, nil
}
