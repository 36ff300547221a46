package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bigasanhub/bigasan_hub/internal/domain"
	"github.com/bigasanhub/bigasan_hub/internal/events"
	"github.com/bigasanhub/bigasan_hub/internal/logging"
	"github.com/bigasanhub/bigasan_hub/internal/models"
	"github.com/bigasanhub/bigasan_hub/internal/repo"
)

// LowStockThresholdKg marks a seller's inventory row as low on the dashboard.
const LowStockThresholdKg = 50

type OrderService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

// Actor is the authenticated user attempting an order action.
type Actor struct {
	UserID uint
	Role   domain.Role
}

type SellerStats struct {
	TotalRevenue  float64 `json:"total_revenue"`
	PendingOrders int64   `json:"pending_orders"`
	LowStockItems int64   `json:"low_stock_items"`
}

func (s *OrderService) ListBuyerOrders(ctx context.Context, buyerID uint, limit, offset int) ([]models.Order, error) {
	return s.Repo.ListOrdersByBuyer(ctx, buyerID, limit, offset)
}

func (s *OrderService) ListSellerOrders(ctx context.Context, sellerID uint, limit, offset int) ([]models.Order, error) {
	return s.Repo.ListOrdersBySeller(ctx, sellerID, limit, offset)
}

// Transition applies a lifecycle action to an order. Seller actions require
// the acting user to own the seller profile the order belongs to; cancel
// requires the acting user to be the order's buyer. Rejecting or cancelling
// restores the stock the checkout took.
func (s *OrderService) Transition(ctx context.Context, orderID uint, action domain.Action, actor Actor) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, order, action, actor); err != nil {
		return nil, err
	}

	next, err := domain.Next(order.Status, action)
	if err != nil {
		return nil, err
	}

	err = s.Repo.WithTx(ctx, func(tx *repo.GormRepo) error {
		if next == domain.StatusRejected || next == domain.StatusCancelled {
			for _, item := range order.Items {
				if err := tx.RestoreStock(ctx, order.SellerID, item.VariantID, item.QuantityKg); err != nil {
					return err
				}
			}
		}
		return tx.UpdateOrderStatus(ctx, order.ID, next)
	})
	if err != nil {
		return nil, err
	}
	order.Status = next

	if err := s.Producer.PublishEvent(ctx, events.TopicOrders, fmt.Sprint(order.ID), map[string]any{
		"type":      "order_status_changed",
		"order_id":  order.ID,
		"seller_id": order.SellerID,
		"status":    order.Status,
		"action":    action,
	}); err != nil {
		logging.FromContext(ctx).Error("order_event_publish_failed", "error", err)
	}

	return order, nil
}

func (s *OrderService) authorize(ctx context.Context, order *models.Order, action domain.Action, actor Actor) error {
	if action == domain.ActionCancel {
		if actor.Role != domain.RoleBuyer || order.BuyerID != actor.UserID {
			return fmt.Errorf("%w: only the order's buyer may cancel", domain.ErrNotAuthorized)
		}
		return nil
	}

	if actor.Role != domain.RoleSeller {
		return fmt.Errorf("%w: seller action", domain.ErrNotAuthorized)
	}
	profile, err := s.Repo.GetSellerProfileByUserID(ctx, actor.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: no seller profile for user %d", domain.ErrNotAuthorized, actor.UserID)
	}
	if err != nil {
		return err
	}
	if profile.ID != order.SellerID {
		return fmt.Errorf("%w: order belongs to another seller", domain.ErrNotAuthorized)
	}
	return nil
}

func (s *OrderService) SellerStats(ctx context.Context, sellerID uint) (*SellerStats, error) {
	revenue, err := s.Repo.SellerRevenue(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	pending, err := s.Repo.CountSellerOrdersInStatus(ctx, sellerID, domain.StatusPending)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.Repo.CountLowStock(ctx, sellerID, LowStockThresholdKg)
	if err != nil {
		return nil, err
	}
	return &SellerStats{
		TotalRevenue:  revenue,
		PendingOrders: pending,
		LowStockItems: lowStock,
	}, nil
}
