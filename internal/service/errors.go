package service

import "errors"

// Common service errors
var (
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyCart is returned when checking out a cart with no lines
	ErrEmptyCart = errors.New("cart is empty")

	// ErrSessionRequired is returned when no cart session is bound to the request
	ErrSessionRequired = errors.New("session required")
)
