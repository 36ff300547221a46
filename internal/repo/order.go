package repo

import (
	"context"

	"github.com/bigasanhub/bigasan_hub/internal/domain"
	"github.com/bigasanhub/bigasan_hub/internal/models"
)

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.DB.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListOrdersByBuyer(ctx context.Context, buyerID uint, limit, offset int) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) ListOrdersBySeller(ctx context.Context, sellerID uint, limit, offset int) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) UpdateOrderStatus(ctx context.Context, id uint, status domain.OrderStatus) error {
	return r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// CountOrdersByStatus feeds the admin dashboard chart.
func (r *GormRepo) CountOrdersByStatus(ctx context.Context) (map[domain.OrderStatus]int64, error) {
	var rows []struct {
		Status domain.OrderStatus
		Total  int64
	}
	if err := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[domain.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

// SellerRevenue sums totals over a seller's completed orders.
func (r *GormRepo) SellerRevenue(ctx context.Context, sellerID uint) (float64, error) {
	var revenue float64
	if err := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("seller_id = ? AND status = ?", sellerID, domain.StatusCompleted).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error; err != nil {
		return 0, err
	}
	return revenue, nil
}

func (r *GormRepo) CountSellerOrdersInStatus(ctx context.Context, sellerID uint, status domain.OrderStatus) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("seller_id = ? AND status = ?", sellerID, status).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormRepo) CountLowStock(ctx context.Context, sellerID uint, thresholdKg int) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).
		Model(&models.Inventory{}).
		Where("seller_id = ? AND stock_kg < ?", sellerID, thresholdKg).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
