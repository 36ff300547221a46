// Package fixtures seeds the demo storefront data set: one admin, two
// sellers (one still pending approval), one buyer, four rice variants and the
// first seller's pricing, stock and order history.
package fixtures

import (
	"time"

	"gorm.io/gorm"

	"github.com/bigasanhub/bigasan_hub/internal/domain"
	"github.com/bigasanhub/bigasan_hub/internal/models"
)

// Seed populates an empty database. It is a no-op when users already exist,
// so restarts against a persistent store keep their data.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users := []models.User{
		{ID: 1, Name: "Admin User", Email: "admin@bigasan.com", Role: domain.RoleAdmin, Status: domain.UserActive},
		{ID: 2, Name: "Juan Dela Cruz", Email: "juan@seller.com", Role: domain.RoleSeller, Status: domain.UserActive},
		{ID: 3, Name: "Maria Santos", Email: "maria@buyer.com", Role: domain.RoleBuyer, Status: domain.UserActive},
		{ID: 4, Name: "Pedro Penduko", Email: "pedro@seller.com", Role: domain.RoleSeller, Status: domain.UserPending},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	profiles := []models.SellerProfile{
		{ID: 1, UserID: 2, ShopName: "Juan's Rice Emporium", Address: "123 Rice St, Manila", Contact: "09171234567", DeliveryFee: 50},
		{ID: 2, UserID: 4, ShopName: "Pedro's Premium Grains", Address: "456 Grain Ave, Quezon City", Contact: "09187654321", DeliveryFee: 60},
	}
	if err := db.Create(&profiles).Error; err != nil {
		return err
	}

	variants := []models.RiceVariant{
		{
			ID:          1,
			Name:        "HAPiNOY Ivory (Premium Rice)",
			Description: "A premium quality white rice, known for its soft texture and fragrant aroma. Perfect for everyday meals.",
			ImageURL:    "https://picsum.photos/seed/rice1/400/300",
		},
		{
			ID:          2,
			Name:        "HAPiNOY Long Grain Hasmin",
			Description: "Long grain rice that stays fluffy and separate after cooking. Ideal for fried rice and other special dishes.",
			ImageURL:    "https://picsum.photos/seed/rice2/400/300",
		},
		{
			ID:          3,
			Name:        "HAPiNOY Dinorado Long Grain",
			Description: "A traditional Filipino favorite, Dinorado rice is slightly sticky with a sweet taste and aroma.",
			ImageURL:    "https://picsum.photos/seed/rice3/400/300",
		},
		{
			ID:          4,
			Name:        "Oregon Rice",
			Description: "Imported quality rice from Oregon, known for its consistent quality and clean taste.",
			ImageURL:    "https://picsum.photos/seed/rice4/400/300",
		},
	}
	if err := db.Create(&variants).Error; err != nil {
		return err
	}

	pricing := []models.SellerPricing{
		{ID: 1, SellerID: 1, VariantID: 1, PricePerKg: 55, PricePer25Kg: 1350, PricePer50Kg: 2650},
		{ID: 2, SellerID: 1, VariantID: 2, PricePerKg: 52, PricePer25Kg: 1280, PricePer50Kg: 2500},
		{ID: 3, SellerID: 1, VariantID: 3, PricePerKg: 60, PricePer25Kg: 1480, PricePer50Kg: 2900},
	}
	if err := db.Create(&pricing).Error; err != nil {
		return err
	}

	inventory := []models.Inventory{
		{ID: 1, SellerID: 1, VariantID: 1, StockKg: 500},
		{ID: 2, SellerID: 1, VariantID: 2, StockKg: 350},
		{ID: 3, SellerID: 1, VariantID: 3, StockKg: 25},
	}
	if err := db.Create(&inventory).Error; err != nil {
		return err
	}

	orders := []models.Order{
		{
			ID:       1,
			BuyerID:  3,
			SellerID: 1,
			Items: []models.OrderItem{
				{VariantID: 1, QuantityKg: 5, Price: 55},
			},
			TotalAmount:     275,
			DeliveryMethod:  domain.DeliveryMethodDelivery,
			Status:          domain.StatusPending,
			CreatedAt:       time.Date(2023, 10, 27, 10, 0, 0, 0, time.UTC),
			DeliveryAddress: "456 Client Ave, Pasig City",
		},
		{
			ID:       2,
			BuyerID:  3,
			SellerID: 1,
			Items: []models.OrderItem{
				{VariantID: 2, QuantityKg: 25, Price: 1280},
			},
			TotalAmount:    1280,
			DeliveryMethod: domain.DeliveryMethodPickup,
			Status:         domain.StatusCompleted,
			CreatedAt:      time.Date(2023, 10, 25, 14, 30, 0, 0, time.UTC),
		},
	}
	return db.Create(&orders).Error
}
