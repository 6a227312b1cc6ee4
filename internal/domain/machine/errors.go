package machine

import "errors"

var (
	// ErrMachineNotFound indicates the machine doesn't exist.
	ErrMachineNotFound = errors.New("machine not found")
	// ErrInvalidInput indicates invalid machine input.
	ErrInvalidInput = errors.New("invalid machine input")
)
