package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/bigasanhub/bigasan_hub/internal/models"
)

func (r *GormRepo) GetInventory(ctx context.Context, sellerID, variantID uint) (*models.Inventory, error) {
	var inv models.Inventory
	if err := r.DB.WithContext(ctx).
		Where("seller_id = ? AND variant_id = ?", sellerID, variantID).
		First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *GormRepo) ListInventory(ctx context.Context) ([]models.Inventory, error) {
	var rows []models.Inventory
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepo) ListInventoryBySeller(ctx context.Context, sellerID uint) ([]models.Inventory, error) {
	var rows []models.Inventory
	if err := r.DB.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SetStock overwrites a seller's stock for a variant, creating the row when
// the seller has not stocked that variant before.
func (r *GormRepo) SetStock(ctx context.Context, sellerID, variantID uint, stockKg int) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Inventory{}).
			Where("seller_id = ? AND variant_id = ?", sellerID, variantID).
			Update("stock_kg", stockKg)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		return tx.Create(&models.Inventory{
			SellerID:  sellerID,
			VariantID: variantID,
			StockKg:   stockKg,
		}).Error
	})
}

// DecrementStock atomically takes kg from the row, guarded so stock never
// goes negative. It reports whether the decrement happened; false means the
// row is missing or the remaining stock no longer covers the request.
func (r *GormRepo) DecrementStock(ctx context.Context, sellerID, variantID uint, kg int) (bool, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.Inventory{}).
		Where("seller_id = ? AND variant_id = ? AND stock_kg >= ?", sellerID, variantID, kg).
		Update("stock_kg", gorm.Expr("stock_kg - ?", kg))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// RestoreStock puts kg back after a rejection or cancellation.
func (r *GormRepo) RestoreStock(ctx context.Context, sellerID, variantID uint, kg int) error {
	return r.DB.WithContext(ctx).
		Model(&models.Inventory{}).
		Where("seller_id = ? AND variant_id = ?", sellerID, variantID).
		Update("stock_kg", gorm.Expr("stock_kg + ?", kg)).Error
}
