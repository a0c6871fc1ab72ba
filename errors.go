package statkit

import "errors"

// Validation errors are raised before any computation begins; a
// degenerate-interval error indicates a structurally broken input
// configuration discovered while fitting.
var (
	ErrLengthMismatch        = errors.New("statkit: sequence lengths are inconsistent")
	ErrInsufficientPoints    = errors.New("statkit: need at least two interval centers")
	ErrInvalidSubdivision    = errors.New("statkit: subdivision counts must be positive")
	ErrInvalidSearchInterval = errors.New("statkit: search interval is empty or reversed")
	ErrDegenerateInterval    = errors.New("statkit: interval boundary coincides with its center")
	ErrUnsortedBoundaries    = errors.New("statkit: boundaries are not in ascending order")
	ErrInvalidTrials         = errors.New("statkit: successes must lie in [0, trials] with trials > 0")
	ErrInvalidConfidence     = errors.New("statkit: confidence level must be in (0, 1)")
)
