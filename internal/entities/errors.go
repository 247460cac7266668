package entities

import "errors"

var (
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("order was modified concurrently")

	ErrOrderNotFound   = errors.New("order not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrProductNotFound = errors.New("product not found")
)
