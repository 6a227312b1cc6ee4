package order

import "errors"

var (
	// ErrOrderNotFound indicates the order doesn't exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidInput indicates invalid order input.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrNoMachineLink indicates the product is not linked to the machine.
	ErrNoMachineLink = errors.New("product is not linked to machine")
	// ErrInvalidTransition indicates the order is not in a state that allows
	// the requested operation.
	ErrInvalidTransition = errors.New("invalid order state transition")
)
