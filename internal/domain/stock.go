package domain

import "fmt"

// CheckStock validates a prospective purchase of quantity units against the
// available stock in kilograms. The check is advisory: nothing is reserved,
// so the caller must re-check inside the checkout transaction.
func CheckStock(availableKg int, unit Unit, quantity int) error {
	if !unit.Valid() {
		return fmt.Errorf("%w: unknown unit %q", ErrValidation, unit)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be > 0", ErrValidation)
	}

	requested := unit.Kilograms(quantity)
	if availableKg <= 0 {
		return &StockError{RequestedKg: requested, AvailableKg: 0}
	}
	if requested > availableKg {
		return &StockError{RequestedKg: requested, AvailableKg: availableKg}
	}
	return nil
}
