package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bigasanhub/bigasan_hub/internal/domain"
	"github.com/bigasanhub/bigasan_hub/internal/models"
	"github.com/bigasanhub/bigasan_hub/internal/repo"
)

type InventoryService struct {
	Repo *repo.GormRepo
}

// CheckStock is the advisory point-in-time guard a buyer's add-to-cart goes
// through. Nothing is reserved; checkout re-checks under its transaction.
func (s *InventoryService) CheckStock(ctx context.Context, sellerID, variantID uint, unit domain.Unit, quantity int) error {
	inv, err := s.Repo.GetInventory(ctx, sellerID, variantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: seller %d does not stock variant %d", domain.ErrNotFound, sellerID, variantID)
	}
	if err != nil {
		return err
	}
	return domain.CheckStock(inv.StockKg, unit, quantity)
}

func (s *InventoryService) ListBySeller(ctx context.Context, sellerID uint) ([]models.Inventory, error) {
	return s.Repo.ListInventoryBySeller(ctx, sellerID)
}

// SetStock lets a seller restock or correct a variant's stock level.
func (s *InventoryService) SetStock(ctx context.Context, sellerID, variantID uint, stockKg int) error {
	if stockKg < 0 {
		return fmt.Errorf("%w: stock must be >= 0", domain.ErrValidation)
	}
	if _, err := s.Repo.GetVariant(ctx, variantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: variant %d", domain.ErrNotFound, variantID)
		}
		return err
	}
	return s.Repo.SetStock(ctx, sellerID, variantID, stockKg)
}
