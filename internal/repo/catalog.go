package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bigasanhub/bigasan_hub/internal/models"
)

func (r *GormRepo) ListVariants(ctx context.Context) ([]models.RiceVariant, error) {
	var variants []models.RiceVariant
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}

func (r *GormRepo) GetVariant(ctx context.Context, id uint) (*models.RiceVariant, error) {
	var variant models.RiceVariant
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&variant).Error; err != nil {
		return nil, err
	}
	return &variant, nil
}

// CreateVariant assigns the next sequential id (max existing id + 1, or 1 for
// an empty table). Variants are append-only, so ids are never reused.
func (r *GormRepo) CreateVariant(ctx context.Context, variant *models.RiceVariant) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxID uint
		if err := tx.Model(&models.RiceVariant{}).
			Select("COALESCE(MAX(id), 0)").
			Scan(&maxID).Error; err != nil {
			return err
		}
		variant.ID = maxID + 1
		return tx.Create(variant).Error
	})
}

// ListPricing returns pricing rows in insertion order; buyer-facing listings
// preserve this order.
func (r *GormRepo) ListPricing(ctx context.Context) ([]models.SellerPricing, error) {
	var rows []models.SellerPricing
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepo) ListPricingBySeller(ctx context.Context, sellerID uint) ([]models.SellerPricing, error) {
	var rows []models.SellerPricing
	if err := r.DB.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpsertPricing creates or replaces a seller's three price tiers for a variant.
func (r *GormRepo) UpsertPricing(ctx context.Context, row *models.SellerPricing) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "seller_id"}, {Name: "variant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"price_per_kg", "price_per_25kg", "price_per_50kg",
		}),
	}).Create(row).Error
}
