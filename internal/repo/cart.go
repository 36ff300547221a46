package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/bigasanhub/bigasan_hub/internal/domain"
	"github.com/bigasanhub/bigasan_hub/internal/models"
)

func (r *GormRepo) GetCart(ctx context.Context, buyerID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.DB.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart merges on (buyer, variant, seller, unit): an existing line only
// accumulates quantity, keeping its first-written price; otherwise the item
// is appended as a new line.
func (r *GormRepo) AddToCart(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).
			Where("buyer_id = ? AND variant_id = ? AND seller_id = ? AND unit = ?",
				item.BuyerID, item.VariantID, item.SellerID, item.Unit).
			Update("quantity", gorm.Expr("quantity + ?", item.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return tx.Where("buyer_id = ? AND variant_id = ? AND seller_id = ? AND unit = ?",
				item.BuyerID, item.VariantID, item.SellerID, item.Unit).
				First(item).Error
		}
		return tx.Create(item).Error
	})
}

// RemoveCartItem deletes the line matching all three keys; removing an absent
// line is a no-op, not an error.
func (r *GormRepo) RemoveCartItem(ctx context.Context, buyerID, variantID, sellerID uint, unit domain.Unit) error {
	return r.DB.WithContext(ctx).
		Where("buyer_id = ? AND variant_id = ? AND seller_id = ? AND unit = ?",
			buyerID, variantID, sellerID, unit).
		Delete(&models.CartItem{}).Error
}

func (r *GormRepo) ClearCart(ctx context.Context, buyerID uint) error {
	return r.DB.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Delete(&models.CartItem{}).Error
}
