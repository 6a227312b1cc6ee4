package shift

import "errors"

var (
	// ErrShiftNotFound indicates the shift doesn't exist.
	ErrShiftNotFound = errors.New("shift not found")
	// ErrInvalidInput indicates invalid shift input.
	ErrInvalidInput = errors.New("invalid shift input")
)
