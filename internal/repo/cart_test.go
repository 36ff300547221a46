package repo

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bigasanhub/bigasan_hub/internal/domain"
	"github.com/bigasanhub/bigasan_hub/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	return &GormRepo{DB: db}
}

func TestAddToCart_FirstWriteWinsPrice(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	first := &models.CartItem{BuyerID: 3, VariantID: 1, SellerID: 1, Unit: domain.UnitKg, Quantity: 2, Price: 55}
	require.NoError(t, r.AddToCart(ctx, first))

	// Same merge key with a different price: quantity accumulates, the
	// stored price is untouched.
	second := &models.CartItem{BuyerID: 3, VariantID: 1, SellerID: 1, Unit: domain.UnitKg, Quantity: 3, Price: 60}
	require.NoError(t, r.AddToCart(ctx, second))

	items, err := r.GetCart(ctx, 3)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 55.0, items[0].Price)

	// The merged row is also reported back to the caller.
	assert.Equal(t, 5, second.Quantity)
	assert.Equal(t, 55.0, second.Price)
}

func TestAddToCart_DistinctKeysStaySeparate(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	lines := []models.CartItem{
		{BuyerID: 3, VariantID: 1, SellerID: 1, Unit: domain.UnitKg, Quantity: 2, Price: 55},
		{BuyerID: 3, VariantID: 1, SellerID: 1, Unit: domain.Unit25Kg, Quantity: 1, Price: 1350},
		{BuyerID: 3, VariantID: 1, SellerID: 2, Unit: domain.UnitKg, Quantity: 4, Price: 58},
		{BuyerID: 4, VariantID: 1, SellerID: 1, Unit: domain.UnitKg, Quantity: 1, Price: 55},
	}
	for i := range lines {
		require.NoError(t, r.AddToCart(ctx, &lines[i]))
	}

	items, err := r.GetCart(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, items, 3, "other buyers' lines must not leak in")
}

func TestDecrementStock_Guarded(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.DB.Create(&models.Inventory{SellerID: 1, VariantID: 1, StockKg: 30}).Error)

	ok, err := r.DecrementStock(ctx, 1, 1, 25)
	require.NoError(t, err)
	assert.True(t, ok)

	// Only 5 kg left; the guard refuses and leaves the row alone.
	ok, err = r.DecrementStock(ctx, 1, 1, 10)
	require.NoError(t, err)
	assert.False(t, ok)

	inv, err := r.GetInventory(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, inv.StockKg)

	require.NoError(t, r.RestoreStock(ctx, 1, 1, 25))
	inv, err = r.GetInventory(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 30, inv.StockKg)
}
