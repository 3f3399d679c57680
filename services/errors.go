package services

import "errors"

// Domain error kinds. All are local, recoverable conditions the transport
// maps to user-facing replies; none are fatal. Match with errors.Is.
var (
	ErrProductUnavailable     = errors.New("product missing or inactive")
	ErrEmptyCart              = errors.New("cart is empty")
	ErrInvalidCheckoutDetails = errors.New("invalid checkout details")
	ErrOrderNotFound          = errors.New("order not found")
	ErrNotOrderOwner          = errors.New("order belongs to another user")
	ErrUnauthorized           = errors.New("operator privilege required")
	ErrOrderTerminal          = errors.New("order is in a terminal status")
	ErrTransitionNotAllowed   = errors.New("status transition not allowed")
)
