package stoppage

import "errors"

var (
	// ErrStoppageNotFound indicates the stoppage doesn't exist.
	ErrStoppageNotFound = errors.New("stoppage not found")
	// ErrInvalidInput indicates invalid stoppage input.
	ErrInvalidInput = errors.New("invalid stoppage input")
)
