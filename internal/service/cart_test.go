package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigasanhub/bigasan_hub/internal/domain"
	"github.com/bigasanhub/bigasan_hub/internal/models"
)

func newCartService(t *testing.T) *CartService {
	t.Helper()

	r := newTestRepo(t)
	seedStore(t, r)
	return &CartService{Repo: r}
}

func TestAddToCart_MergesOnSameKey(t *testing.T) {
	t.Parallel()

	svc := newCartService(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, buyerID, 1, activeSellerID, domain.UnitKg, 2)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, buyerID, 1, activeSellerID, domain.UnitKg, 3)
	require.NoError(t, err)

	items, err := svc.GetCart(ctx, buyerID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 55.0, items[0].Price)
}

func TestAddToCart_DifferentUnitIsDistinctLine(t *testing.T) {
	t.Parallel()

	svc := newCartService(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, buyerID, 1, activeSellerID, domain.UnitKg, 2)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, buyerID, 1, activeSellerID, domain.Unit25Kg, 1)
	require.NoError(t, err)

	items, err := svc.GetCart(ctx, buyerID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 55.0, items[0].Price)
	assert.Equal(t, 1350.0, items[1].Price)
}

func TestAddToCart_RejectsNonPositiveQuantity(t *testing.T) {
	t.Parallel()

	svc := newCartService(t)
	ctx := context.Background()

	for _, quantity := range []int{0, -1} {
		_, err := svc.AddToCart(ctx, buyerID, 1, activeSellerID, domain.UnitKg, quantity)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}

	items, err := svc.GetCart(ctx, buyerID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddToCart_ChecksStock(t *testing.T) {
	t.Parallel()

	svc := newCartService(t)
	ctx := context.Background()

	// Variant 2 has 30 kg in stock: a 25 kg sack fits, a 50 kg sack does not.
	_, err := svc.AddToCart(ctx, buyerID, 2, activeSellerID, domain.Unit25Kg, 1)
	require.NoError(t, err)

	_, err = svc.AddToCart(ctx, buyerID, 2, activeSellerID, domain.Unit50Kg, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.StockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 30, stockErr.AvailableKg)
}

func TestAddToCart_UnknownOfferNotFound(t *testing.T) {
	t.Parallel()

	svc := newCartService(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, buyerID, 99, activeSellerID, domain.UnitKg, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveItem_NoopWhenAbsent(t *testing.T) {
	t.Parallel()

	svc := newCartService(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, buyerID, 1, activeSellerID, domain.UnitKg, 2)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, buyerID, 2, activeSellerID, domain.Unit50Kg))

	items, err := svc.GetCart(ctx, buyerID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, svc.RemoveItem(ctx, buyerID, 1, activeSellerID, domain.UnitKg))

	items, err = svc.GetCart(ctx, buyerID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartTotals_Linearity(t *testing.T) {
	t.Parallel()

	items := []models.CartItem{
		{Quantity: 2, Unit: domain.UnitKg, Price: 55},
		{Quantity: 1, Unit: domain.Unit25Kg, Price: 1350},
	}

	base := CartTotals(items, domain.DeliveryMethodDelivery)
	assert.Equal(t, 1460.0, base.Subtotal)
	assert.Equal(t, float64(FlatDeliveryFee), base.DeliveryFee)
	assert.Equal(t, 1510.0, base.Total)

	doubled := make([]models.CartItem, len(items))
	copy(doubled, items)
	for i := range doubled {
		doubled[i].Quantity *= 2
	}

	twice := CartTotals(doubled, domain.DeliveryMethodDelivery)
	assert.Equal(t, base.Subtotal*2, twice.Subtotal)
	assert.Equal(t, base.DeliveryFee, twice.DeliveryFee)

	pickup := CartTotals(items, domain.DeliveryMethodPickup)
	assert.Zero(t, pickup.DeliveryFee)
	assert.Equal(t, pickup.Subtotal, pickup.Total)
}

func TestCheckout_EmptyCart(t *testing.T) {
	t.Parallel()

	svc := newCartService(t)
	ctx := context.Background()

	_, err := svc.Checkout(ctx, buyerID, domain.DeliveryMethodPickup, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	var count int64
	require.NoError(t, svc.Repo.DB.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCheckout_EndToEnd(t *testing.T) {
	t.Parallel()

	svc := newCartService(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, buyerID, 1, activeSellerID, domain.UnitKg, 5)
	require.NoError(t, err)

	orders, err := svc.Checkout(ctx, buyerID, domain.DeliveryMethodDelivery, "456 Client Ave, Pasig City")
	require.NoError(t, err)
	require.Len(t, orders, 1)

	order := orders[0]
	assert.Equal(t, uint(buyerID), order.BuyerID)
	assert.Equal(t, uint(activeSellerID), order.SellerID)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, 325.0, order.TotalAmount) // 5 x 55 + 50 delivery
	require.Len(t, order.Items, 1)
	assert.Equal(t, uint(1), order.Items[0].VariantID)
	assert.Equal(t, 5, order.Items[0].QuantityKg)
	assert.Equal(t, 55.0, order.Items[0].Price)

	items, err := svc.GetCart(ctx, buyerID)
	require.NoError(t, err)
	assert.Empty(t, items, "checkout must clear the cart")

	inv, err := svc.Repo.GetInventory(ctx, activeSellerID, 1)
	require.NoError(t, err)
	assert.Equal(t, 495, inv.StockKg, "checkout must decrement stock")
}

func TestCheckout_SackConvertsToKilograms(t *testing.T) {
	t.Parallel()

	svc := newCartService(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, buyerID, 1, activeSellerID, domain.Unit25Kg, 2)
	require.NoError(t, err)

	orders, err := svc.Checkout(ctx, buyerID, domain.DeliveryMethodPickup, "")
	require.NoError(t, err)
	require.Len(t, orders, 1)

	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, 50, orders[0].Items[0].QuantityKg)
	assert.Equal(t, 1350.0, orders[0].Items[0].Price)
	assert.Equal(t, 2700.0, orders[0].TotalAmount)
}

func TestCheckout_OneOrderPerSeller(t *testing.T) {
	t.Parallel()

	svc := newCartService(t)
	ctx := context.Background()

	// Approve the second seller so their offer is purchasable.
	require.NoError(t, svc.Repo.UpdateUserStatus(ctx, pendingSellerUserID, domain.UserActive))

	_, err := svc.AddToCart(ctx, buyerID, 1, activeSellerID, domain.UnitKg, 2)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, buyerID, 1, pendingSellerID, domain.UnitKg, 3)
	require.NoError(t, err)

	orders, err := svc.Checkout(ctx, buyerID, domain.DeliveryMethodDelivery, "456 Client Ave")
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, uint(activeSellerID), orders[0].SellerID)
	assert.Equal(t, 2*55.0+FlatDeliveryFee, orders[0].TotalAmount)
	assert.Equal(t, uint(pendingSellerID), orders[1].SellerID)
	assert.Equal(t, 3*58.0+FlatDeliveryFee, orders[1].TotalAmount)
}

func TestCheckout_RechecksStockAtCommit(t *testing.T) {
	t.Parallel()

	svc := newCartService(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, buyerID, 2, activeSellerID, domain.Unit25Kg, 1)
	require.NoError(t, err)

	// Stock drops between the advisory check and checkout.
	require.NoError(t, svc.Repo.SetStock(ctx, activeSellerID, 2, 10))

	_, err = svc.Checkout(ctx, buyerID, domain.DeliveryMethodPickup, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.StockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 10, stockErr.AvailableKg)

	var count int64
	require.NoError(t, svc.Repo.DB.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count, "failed checkout must not leave orders behind")

	items, err := svc.GetCart(ctx, buyerID)
	require.NoError(t, err)
	assert.Len(t, items, 1, "failed checkout must keep the cart")
}

func TestCheckout_DeliveryRequiresAddress(t *testing.T) {
	t.Parallel()

	svc := newCartService(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, buyerID, 1, activeSellerID, domain.UnitKg, 1)
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, buyerID, domain.DeliveryMethodDelivery, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
