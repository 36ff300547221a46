package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bigasanhub/bigasan_hub/internal/domain"
	"github.com/bigasanhub/bigasan_hub/internal/models"
	"github.com/bigasanhub/bigasan_hub/internal/repo"
)

// Fixture ids shared by the service tests.
const (
	adminUserID         = 1
	activeSellerUserID  = 2
	buyerID             = 3
	pendingSellerUserID = 4

	activeSellerID  = 1
	pendingSellerID = 2
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, repo.AutoMigrate(db))

	return &repo.GormRepo{DB: db}
}

// seedStore loads a small data set: an active seller with priced, stocked
// variants and a second seller whose user is still pending approval.
func seedStore(t *testing.T, r *repo.GormRepo) {
	t.Helper()

	users := []models.User{
		{ID: adminUserID, Name: "Admin", Email: "admin@bigasan.com", Role: domain.RoleAdmin, Status: domain.UserActive},
		{ID: activeSellerUserID, Name: "Juan", Email: "juan@seller.com", Role: domain.RoleSeller, Status: domain.UserActive},
		{ID: buyerID, Name: "Maria", Email: "maria@buyer.com", Role: domain.RoleBuyer, Status: domain.UserActive},
		{ID: pendingSellerUserID, Name: "Pedro", Email: "pedro@seller.com", Role: domain.RoleSeller, Status: domain.UserPending},
	}
	require.NoError(t, r.DB.Create(&users).Error)

	profiles := []models.SellerProfile{
		{ID: activeSellerID, UserID: activeSellerUserID, ShopName: "Juan's Rice Emporium", DeliveryFee: 50},
		{ID: pendingSellerID, UserID: pendingSellerUserID, ShopName: "Pedro's Premium Grains", DeliveryFee: 60},
	}
	require.NoError(t, r.DB.Create(&profiles).Error)

	variants := []models.RiceVariant{
		{ID: 1, Name: "Ivory Premium", Description: "Premium white rice", ImageURL: "https://example.com/rice1.jpg"},
		{ID: 2, Name: "Long Grain Hasmin", Description: "Long grain rice", ImageURL: "https://example.com/rice2.jpg"},
	}
	require.NoError(t, r.DB.Create(&variants).Error)

	pricing := []models.SellerPricing{
		{ID: 1, SellerID: activeSellerID, VariantID: 1, PricePerKg: 55, PricePer25Kg: 1350, PricePer50Kg: 2650},
		{ID: 2, SellerID: activeSellerID, VariantID: 2, PricePerKg: 52, PricePer25Kg: 1280, PricePer50Kg: 2500},
		{ID: 3, SellerID: pendingSellerID, VariantID: 1, PricePerKg: 58, PricePer25Kg: 1400, PricePer50Kg: 2700},
	}
	require.NoError(t, r.DB.Create(&pricing).Error)

	inventory := []models.Inventory{
		{ID: 1, SellerID: activeSellerID, VariantID: 1, StockKg: 500},
		{ID: 2, SellerID: activeSellerID, VariantID: 2, StockKg: 30},
		{ID: 3, SellerID: pendingSellerID, VariantID: 1, StockKg: 100},
	}
	require.NoError(t, r.DB.Create(&inventory).Error)
}
