package smoothing

import "errors"

var (
	// ErrSeriesTooShort is returned when a series has fewer than 3 samples.
	ErrSeriesTooShort = errors.New("smoothing: series too short")
	// ErrPolyOrder is returned for a negative polynomial order.
	ErrPolyOrder = errors.New("smoothing: invalid polynomial order")
)
