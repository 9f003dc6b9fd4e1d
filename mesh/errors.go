package mesh

import "errors"

var (
	// ErrTooFewSamples indicates fewer than two samples along the differenced axis.
	ErrTooFewSamples = errors.New("mesh: at least two samples are required along the interpolated axis")
	// ErrShape indicates an edge or center array whose extent does not match its partner.
	ErrShape = errors.New("mesh: array shape mismatch")
	// ErrLayout indicates an unknown edge layout tag.
	ErrLayout = errors.New("mesh: unknown edge layout")
)
