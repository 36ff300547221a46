package domain

// Unit is the purchase unit a buyer orders in. Stock is always tracked in
// kilograms; sack units convert by a fixed factor.
type Unit string

const (
	UnitKg   Unit = "kg"
	Unit25Kg Unit = "25kg"
	Unit50Kg Unit = "50kg"
)

func (u Unit) Valid() bool {
	switch u {
	case UnitKg, Unit25Kg, Unit50Kg:
		return true
	}
	return false
}

// Kilograms converts a quantity of this unit into kilograms.
func (u Unit) Kilograms(quantity int) int {
	switch u {
	case Unit25Kg:
		return quantity * 25
	case Unit50Kg:
		return quantity * 50
	default:
		return quantity
	}
}

type DeliveryMethod string

const (
	DeliveryMethodDelivery DeliveryMethod = "delivery"
	DeliveryMethodPickup   DeliveryMethod = "pickup"
)

func (m DeliveryMethod) Valid() bool {
	return m == DeliveryMethodDelivery || m == DeliveryMethodPickup
}
