package product

import "errors"

var (
	// ErrProductNotFound indicates the product doesn't exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrLinkNotFound indicates no link exists between the product and machine.
	ErrLinkNotFound = errors.New("product-machine link not found")
	// ErrInvalidInput indicates invalid product input.
	ErrInvalidInput = errors.New("invalid product input")
)
