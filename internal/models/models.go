package models

import (
	"time"

	"github.com/bigasanhub/bigasan_hub/internal/domain"
)

type User struct {
	ID     uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string            `gorm:"not null"                 json:"name"`
	Email  string            `gorm:"uniqueIndex;not null"     json:"email"`
	Role   domain.Role       `gorm:"not null"                 json:"role"`
	Status domain.UserStatus `gorm:"not null"                 json:"status"`
}

// SellerProfile is the business entity record for a seller-role user,
// distinct from the User record itself. Resolved by UserID, never by
// arithmetic on ids.
type SellerProfile struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint    `gorm:"uniqueIndex;not null"     json:"user_id"`
	ShopName    string  `gorm:"not null"                 json:"shop_name"`
	Address     string  `json:"address"`
	Contact     string  `json:"contact"`
	DeliveryFee float64 `json:"delivery_fee"`
}

type RiceVariant struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null"   json:"name"`
	Description string `gorm:"not null"   json:"description"`
	ImageURL    string `gorm:"not null"   json:"image_url"`
}

// SellerPricing holds a seller's three independently set price tiers for one
// variant. No arithmetic relationship between the tiers is enforced.
type SellerPricing struct {
	ID           uint    `gorm:"primaryKey;autoIncrement"                   json:"id"`
	SellerID     uint    `gorm:"uniqueIndex:idx_pricing_seller_variant;not null" json:"seller_id"`
	VariantID    uint    `gorm:"uniqueIndex:idx_pricing_seller_variant;not null" json:"variant_id"`
	PricePerKg   float64 `gorm:"column:price_per_kg;not null"   json:"price_per_kg"`
	PricePer25Kg float64 `gorm:"column:price_per_25kg;not null" json:"price_per_25kg"`
	PricePer50Kg float64 `gorm:"column:price_per_50kg;not null" json:"price_per_50kg"`
}

type Inventory struct {
	ID        uint `gorm:"primaryKey;autoIncrement"                          json:"id"`
	SellerID  uint `gorm:"uniqueIndex:idx_inventory_seller_variant;not null" json:"seller_id"`
	VariantID uint `gorm:"uniqueIndex:idx_inventory_seller_variant;not null" json:"variant_id"`
	StockKg   int  `gorm:"not null;check:stock_kg>=0"                        json:"stock_kg"`
}

func (Inventory) TableName() string {
	return "inventory"
}

// CartItem is one pending line of a buyer's cart. Lines merge on
// (buyer, variant, seller, unit); Price is the per-unit price snapshotted at
// the first add.
type CartItem struct {
	ID        uint        `gorm:"primaryKey;autoIncrement"                json:"id"`
	BuyerID   uint        `gorm:"uniqueIndex:idx_cart_line;not null"      json:"buyer_id"`
	VariantID uint        `gorm:"uniqueIndex:idx_cart_line;not null"      json:"variant_id"`
	SellerID  uint        `gorm:"uniqueIndex:idx_cart_line;not null"      json:"seller_id"`
	Unit      domain.Unit `gorm:"uniqueIndex:idx_cart_line;not null"      json:"unit"`
	Quantity  int         `gorm:"not null;check:quantity>0"               json:"quantity"`
	Price     float64     `gorm:"not null"                                json:"price"`
}

// Order is an immutable snapshot of a checkout; Status is the only field
// mutated after creation.
type Order struct {
	ID              uint                  `gorm:"primaryKey;autoIncrement" json:"id"`
	BuyerID         uint                  `gorm:"index;not null"           json:"buyer_id"`
	SellerID        uint                  `gorm:"index;not null"           json:"seller_id"`
	Items           []OrderItem           `gorm:"foreignKey:OrderID"       json:"items"`
	TotalAmount     float64               `gorm:"not null"                 json:"total_amount"`
	DeliveryMethod  domain.DeliveryMethod `gorm:"not null"                 json:"delivery_method"`
	Status          domain.OrderStatus    `gorm:"not null"                 json:"status"`
	CreatedAt       time.Time             `gorm:"not null"                 json:"created_at"`
	DeliveryAddress string                `json:"delivery_address"`
}

// OrderItem quantities are normalized to kilograms regardless of the cart
// unit they originated from; Price keeps the cart line's per-unit price.
type OrderItem struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    uint    `gorm:"index;not null"           json:"order_id"`
	VariantID  uint    `gorm:"not null"                 json:"variant_id"`
	QuantityKg int     `gorm:"not null"                 json:"quantity_kg"`
	Price      float64 `gorm:"not null"                 json:"price"`
}
