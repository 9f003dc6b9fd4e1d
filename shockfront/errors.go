package shockfront

import "errors"

var (
	// ErrDimension indicates density, radius edge and time edge arrays that do not agree.
	ErrDimension = errors.New("shockfront: inconsistent array dimensions")
	// ErrThreshold indicates a density-ratio threshold that is NaN or not positive.
	ErrThreshold = errors.New("shockfront: density ratio threshold must be positive")
)
