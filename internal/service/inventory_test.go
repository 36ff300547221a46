package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigasanhub/bigasan_hub/internal/domain"
)

func newInventoryService(t *testing.T) *InventoryService {
	t.Helper()

	r := newTestRepo(t)
	seedStore(t, r)
	return &InventoryService{Repo: r}
}

func TestCheckStock(t *testing.T) {
	t.Parallel()

	svc := newInventoryService(t)
	ctx := context.Background()

	require.NoError(t, svc.CheckStock(ctx, activeSellerID, 2, domain.Unit25Kg, 1))

	err := svc.CheckStock(ctx, activeSellerID, 2, domain.Unit50Kg, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	err = svc.CheckStock(ctx, pendingSellerID, 2, domain.UnitKg, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound, "seller without an inventory row")
}

func TestSetStock(t *testing.T) {
	t.Parallel()

	svc := newInventoryService(t)
	ctx := context.Background()

	// Restock an existing row.
	require.NoError(t, svc.SetStock(ctx, activeSellerID, 2, 200))
	inv, err := svc.Repo.GetInventory(ctx, activeSellerID, 2)
	require.NoError(t, err)
	assert.Equal(t, 200, inv.StockKg)

	// First stock for a variant the seller never carried.
	require.NoError(t, svc.SetStock(ctx, pendingSellerID, 2, 75))
	inv, err = svc.Repo.GetInventory(ctx, pendingSellerID, 2)
	require.NoError(t, err)
	assert.Equal(t, 75, inv.StockKg)

	assert.ErrorIs(t, svc.SetStock(ctx, activeSellerID, 2, -5), domain.ErrValidation)
	assert.ErrorIs(t, svc.SetStock(ctx, activeSellerID, 99, 10), domain.ErrNotFound)

	rows, err := svc.ListBySeller(ctx, activeSellerID)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
