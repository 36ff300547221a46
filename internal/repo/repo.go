package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/bigasanhub/bigasan_hub/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

// WithTx runs fn against a transaction-bound copy of the repo.
func (r *GormRepo) WithTx(ctx context.Context, fn func(tx *GormRepo) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepo{DB: tx})
	})
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.SellerProfile{},
		&models.RiceVariant{},
		&models.SellerPricing{},
		&models.Inventory{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
}
