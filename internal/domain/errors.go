package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation")         // 400
	ErrEmptyCart         = errors.New("empty cart")         // 400
	ErrNotFound          = errors.New("not found")          // 404
	ErrNotAuthorized     = errors.New("not authorized")     // 403
	ErrInsufficientStock = errors.New("insufficient stock") // 409
	ErrInvalidTransition = errors.New("invalid transition") // 409
	ErrConflict          = errors.New("conflict")           // 409
)

// StockError is returned by the inventory guard when a requested quantity
// cannot be satisfied. AvailableKg carries the point-in-time remaining stock.
type StockError struct {
	RequestedKg int
	AvailableKg int
}

func (e *StockError) Error() string {
	if e.AvailableKg <= 0 {
		return "out of stock"
	}
	return fmt.Sprintf("only %d kg available, requested %d kg", e.AvailableKg, e.RequestedKg)
}

func (e *StockError) Unwrap() error { return ErrInsufficientStock }

// TransitionError records the illegal (status, action) pair that was attempted.
type TransitionError struct {
	Status OrderStatus
	Action Action
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s an order in status %q", e.Action, e.Status)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }
