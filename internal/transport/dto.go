package transport

import "github.com/bigasanhub/bigasan_hub/internal/domain"

type LoginRequest struct {
	Email string `json:"email"`
}

type AddToCartRequest struct {
	VariantID uint        `json:"variant_id"`
	SellerID  uint        `json:"seller_id"`
	Unit      domain.Unit `json:"unit"`
	Quantity  int         `json:"quantity"`
}

type RemoveCartItemRequest struct {
	VariantID uint        `json:"variant_id"`
	SellerID  uint        `json:"seller_id"`
	Unit      domain.Unit `json:"unit"`
}

type CheckoutRequest struct {
	DeliveryMethod  domain.DeliveryMethod `json:"delivery_method"`
	DeliveryAddress string                `json:"delivery_address"`
}

type CreateVariantRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type SetPricingRequest struct {
	VariantID    uint    `json:"variant_id"`
	PricePerKg   float64 `json:"price_per_kg"`
	PricePer25Kg float64 `json:"price_per_25kg"`
	PricePer50Kg float64 `json:"price_per_50kg"`
}

type SetStockRequest struct {
	VariantID uint `json:"variant_id"`
	StockKg   int  `json:"stock_kg"`
}

type ErrorResponse struct {
	Error       string `json:"error"`
	AvailableKg *int   `json:"available_kg,omitempty"`
}
