package dataio

import "errors"

var (
	// ErrFormat is returned for a file extension with no codec.
	ErrFormat = errors.New("dataio: unsupported file format")
	// ErrShape is returned when a variable does not match the (T, Z) grid.
	ErrShape = errors.New("dataio: variable shape mismatch")
	// ErrMissingVariable is returned when a required variable is absent.
	ErrMissingVariable = errors.New("dataio: missing variable")
	// ErrNonFinite is returned when a variable holds NaN values.
	ErrNonFinite = errors.New("dataio: non-finite values")
	// ErrMissingCollaborator is returned by NewHelios for a nil source or renderer.
	ErrMissingCollaborator = errors.New("dataio: missing collaborator")
)
