package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/bigasanhub/bigasan_hub/internal/domain"
	"github.com/bigasanhub/bigasan_hub/internal/events"
	"github.com/bigasanhub/bigasan_hub/internal/logging"
	"github.com/bigasanhub/bigasan_hub/internal/models"
	"github.com/bigasanhub/bigasan_hub/internal/repo"
)

// FlatDeliveryFee is the fee applied to every delivery-method order. The
// storefront charges this flat amount instead of SellerProfile.DeliveryFee.
const FlatDeliveryFee = 50

type CartService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Total       float64 `json:"total"`
}

// CartTotals prices a set of cart lines: subtotal over price x quantity, plus
// the flat fee when the method is delivery.
func CartTotals(items []models.CartItem, method domain.DeliveryMethod) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	var fee float64
	if method == domain.DeliveryMethodDelivery {
		fee = FlatDeliveryFee
	}
	return Totals{Subtotal: subtotal, DeliveryFee: fee, Total: subtotal + fee}
}

func (s *CartService) GetCart(ctx context.Context, buyerID uint) ([]models.CartItem, error) {
	return s.Repo.GetCart(ctx, buyerID)
}

// AddToCart validates the line, resolves the seller's current tier price for
// the chosen unit and checks stock before merging the line into the cart.
func (s *CartService) AddToCart(ctx context.Context, buyerID, variantID, sellerID uint, unit domain.Unit, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be > 0", domain.ErrValidation)
	}
	if !unit.Valid() {
		return nil, fmt.Errorf("%w: unknown unit %q", domain.ErrValidation, unit)
	}

	pricing, err := s.pricingFor(ctx, sellerID, variantID)
	if err != nil {
		return nil, err
	}

	inv, err := s.Repo.GetInventory(ctx, sellerID, variantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: seller %d does not stock variant %d", domain.ErrNotFound, sellerID, variantID)
	}
	if err != nil {
		return nil, err
	}
	if err := domain.CheckStock(inv.StockKg, unit, quantity); err != nil {
		return nil, err
	}

	item := &models.CartItem{
		BuyerID:   buyerID,
		VariantID: variantID,
		SellerID:  sellerID,
		Unit:      unit,
		Quantity:  quantity,
		Price:     tierPrice(pricing, unit),
	}
	if err := s.Repo.AddToCart(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) RemoveItem(ctx context.Context, buyerID, variantID, sellerID uint, unit domain.Unit) error {
	return s.Repo.RemoveCartItem(ctx, buyerID, variantID, sellerID, unit)
}

func (s *CartService) ClearCart(ctx context.Context, buyerID uint) error {
	return s.Repo.ClearCart(ctx, buyerID)
}

// Checkout snapshots the buyer's cart into orders, one per seller present in
// the cart, converts every line to kilograms, decrements stock inside the
// transaction (re-checking availability at commit time) and clears the cart.
func (s *CartService) Checkout(ctx context.Context, buyerID uint, method domain.DeliveryMethod, address string) ([]models.Order, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("%w: unknown delivery method %q", domain.ErrValidation, method)
	}
	if method == domain.DeliveryMethodDelivery && address == "" {
		return nil, fmt.Errorf("%w: delivery address required", domain.ErrValidation)
	}
	if method == domain.DeliveryMethodPickup {
		address = ""
	}

	items, err := s.Repo.GetCart(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	// Group lines per seller, preserving first-seen seller order.
	var sellerIDs []uint
	bySeller := make(map[uint][]models.CartItem)
	for _, item := range items {
		if _, seen := bySeller[item.SellerID]; !seen {
			sellerIDs = append(sellerIDs, item.SellerID)
		}
		bySeller[item.SellerID] = append(bySeller[item.SellerID], item)
	}

	now := time.Now().UTC()
	var orders []models.Order

	err = s.Repo.WithTx(ctx, func(tx *repo.GormRepo) error {
		for _, sellerID := range sellerIDs {
			lines := bySeller[sellerID]

			orderItems := make([]models.OrderItem, 0, len(lines))
			for _, line := range lines {
				kg := line.Unit.Kilograms(line.Quantity)
				ok, err := tx.DecrementStock(ctx, line.SellerID, line.VariantID, kg)
				if err != nil {
					return err
				}
				if !ok {
					available := 0
					if inv, invErr := tx.GetInventory(ctx, line.SellerID, line.VariantID); invErr == nil {
						available = inv.StockKg
					}
					return &domain.StockError{RequestedKg: kg, AvailableKg: available}
				}
				orderItems = append(orderItems, models.OrderItem{
					VariantID:  line.VariantID,
					QuantityKg: kg,
					Price:      line.Price,
				})
			}

			totals := CartTotals(lines, method)
			order := models.Order{
				BuyerID:         buyerID,
				SellerID:        sellerID,
				Items:           orderItems,
				TotalAmount:     totals.Total,
				DeliveryMethod:  method,
				Status:          domain.StatusPending,
				CreatedAt:       now,
				DeliveryAddress: address,
			}
			created, err := tx.CreateOrder(ctx, &order)
			if err != nil {
				return err
			}
			orders = append(orders, *created)
		}
		return tx.ClearCart(ctx, buyerID)
	})
	if err != nil {
		return nil, err
	}

	for _, order := range orders {
		if err := s.Producer.PublishEvent(ctx, events.TopicOrders, fmt.Sprint(order.ID), map[string]any{
			"type":      "order_created",
			"order_id":  order.ID,
			"buyer_id":  order.BuyerID,
			"seller_id": order.SellerID,
			"total":     order.TotalAmount,
		}); err != nil {
			logging.FromContext(ctx).Error("order_event_publish_failed", "error", err)
		}
	}
	return orders, nil
}

func (s *CartService) pricingFor(ctx context.Context, sellerID, variantID uint) (*models.SellerPricing, error) {
	rows, err := s.Repo.ListPricingBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].VariantID == variantID {
			return &rows[i], nil
		}
	}
	return nil, fmt.Errorf("%w: seller %d has no pricing for variant %d", domain.ErrNotFound, sellerID, variantID)
}

func tierPrice(p *models.SellerPricing, unit domain.Unit) float64 {
	switch unit {
	case domain.Unit25Kg:
		return p.PricePer25Kg
	case domain.Unit50Kg:
		return p.PricePer50Kg
	default:
		return p.PricePerKg
	}
}
