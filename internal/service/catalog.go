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

type CatalogService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

// ProductListing is one buyer-visible offer: a variant sold by a seller with
// its price tiers and remaining stock.
type ProductListing struct {
	Variant   models.RiceVariant   `json:"variant"`
	Pricing   models.SellerPricing `json:"pricing"`
	Seller    models.SellerProfile `json:"seller"`
	Inventory models.Inventory     `json:"inventory"`
}

// ListAvailableProducts joins each pricing row to its variant, seller profile,
// the seller's user and the matching inventory row. A row is listed only when
// every reference resolves and the seller's user is active; orphaned rows are
// silently skipped. Output follows pricing-row insertion order.
func (s *CatalogService) ListAvailableProducts(ctx context.Context) ([]ProductListing, error) {
	pricing, err := s.Repo.ListPricing(ctx)
	if err != nil {
		return nil, err
	}
	variants, err := s.Repo.ListVariants(ctx)
	if err != nil {
		return nil, err
	}
	profiles, err := s.Repo.ListSellerProfiles(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.Repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	inventory, err := s.Repo.ListInventory(ctx)
	if err != nil {
		return nil, err
	}

	variantByID := make(map[uint]models.RiceVariant, len(variants))
	for _, v := range variants {
		variantByID[v.ID] = v
	}
	profileByID := make(map[uint]models.SellerProfile, len(profiles))
	for _, p := range profiles {
		profileByID[p.ID] = p
	}
	userByID := make(map[uint]models.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}
	type invKey struct{ sellerID, variantID uint }
	invByKey := make(map[invKey]models.Inventory, len(inventory))
	for _, inv := range inventory {
		invByKey[invKey{inv.SellerID, inv.VariantID}] = inv
	}

	listings := make([]ProductListing, 0, len(pricing))
	for _, row := range pricing {
		variant, ok := variantByID[row.VariantID]
		if !ok {
			continue
		}
		seller, ok := profileByID[row.SellerID]
		if !ok {
			continue
		}
		user, ok := userByID[seller.UserID]
		if !ok || user.Status != domain.UserActive {
			continue
		}
		inv, ok := invByKey[invKey{row.SellerID, row.VariantID}]
		if !ok {
			continue
		}
		listings = append(listings, ProductListing{
			Variant:   variant,
			Pricing:   row,
			Seller:    seller,
			Inventory: inv,
		})
	}
	return listings, nil
}

func (s *CatalogService) ListVariants(ctx context.Context) ([]models.RiceVariant, error) {
	return s.Repo.ListVariants(ctx)
}

func (s *CatalogService) GetVariant(ctx context.Context, id uint) (*models.RiceVariant, error) {
	variant, err := s.Repo.GetVariant(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: variant %d", domain.ErrNotFound, id)
	}
	return variant, err
}

func (s *CatalogService) AddVariant(ctx context.Context, name, description, imageURL string) (*models.RiceVariant, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrValidation)
	}
	if description == "" {
		return nil, fmt.Errorf("%w: description required", domain.ErrValidation)
	}
	if imageURL == "" {
		return nil, fmt.Errorf("%w: image_url required", domain.ErrValidation)
	}

	variant := &models.RiceVariant{
		Name:        name,
		Description: description,
		ImageURL:    imageURL,
	}
	if err := s.Repo.CreateVariant(ctx, variant); err != nil {
		return nil, err
	}

	if err := s.Producer.PublishEvent(ctx, events.TopicCatalog, fmt.Sprint(variant.ID), map[string]any{
		"type":       "variant_created",
		"variant_id": variant.ID,
		"name":       variant.Name,
	}); err != nil {
		logging.FromContext(ctx).Error("catalog_event_publish_failed", "error", err)
	}

	return variant, nil
}

// SetPricing upserts the seller's three price tiers for a variant. The tiers
// are independent; no per-kg consistency across them is enforced.
func (s *CatalogService) SetPricing(ctx context.Context, sellerID, variantID uint, perKg, per25Kg, per50Kg float64) (*models.SellerPricing, error) {
	if perKg < 0 || per25Kg < 0 || per50Kg < 0 {
		return nil, fmt.Errorf("%w: prices must be >= 0", domain.ErrValidation)
	}
	if _, err := s.Repo.GetVariant(ctx, variantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: variant %d", domain.ErrNotFound, variantID)
		}
		return nil, err
	}

	row := &models.SellerPricing{
		SellerID:     sellerID,
		VariantID:    variantID,
		PricePerKg:   perKg,
		PricePer25Kg: per25Kg,
		PricePer50Kg: per50Kg,
	}
	if err := s.Repo.UpsertPricing(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}
