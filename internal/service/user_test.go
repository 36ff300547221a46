package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigasanhub/bigasan_hub/internal/domain"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()

	r := newTestRepo(t)
	seedStore(t, r)
	return &UserService{Repo: r}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	svc := newUserService(t)
	ctx := context.Background()

	t.Run("buyer", func(t *testing.T) {
		user, profile, err := svc.Login(ctx, "maria@buyer.com")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleBuyer, user.Role)
		assert.Nil(t, profile)
	})

	t.Run("seller gets profile", func(t *testing.T) {
		user, profile, err := svc.Login(ctx, "juan@seller.com")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleSeller, user.Role)
		require.NotNil(t, profile)
		assert.Equal(t, uint(activeSellerID), profile.ID)
	})

	t.Run("pending seller refused", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "pedro@seller.com")
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "stranger@nowhere.com")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("empty email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestLogin_InactiveRefused(t *testing.T) {
	t.Parallel()

	svc := newUserService(t)
	ctx := context.Background()

	require.NoError(t, svc.Repo.UpdateUserStatus(ctx, buyerID, domain.UserInactive))

	_, _, err := svc.Login(ctx, "maria@buyer.com")
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestLogout_ClearsCart(t *testing.T) {
	t.Parallel()

	svc := newUserService(t)
	carts := &CartService{Repo: svc.Repo}
	ctx := context.Background()

	_, err := carts.AddToCart(ctx, buyerID, 1, activeSellerID, domain.UnitKg, 2)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, buyerID))

	items, err := carts.GetCart(ctx, buyerID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestApproveSeller(t *testing.T) {
	t.Parallel()

	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.ApproveSeller(ctx, pendingSellerUserID)
	require.NoError(t, err)
	assert.Equal(t, domain.UserActive, user.Status)

	// Already active.
	_, err = svc.ApproveSeller(ctx, pendingSellerUserID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = svc.ApproveSeller(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeactivate(t *testing.T) {
	t.Parallel()

	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.Deactivate(ctx, buyerID)
	require.NoError(t, err)
	assert.Equal(t, domain.UserInactive, user.Status)

	// Not active anymore.
	_, err = svc.Deactivate(ctx, buyerID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Admins are off limits.
	_, err = svc.Deactivate(ctx, adminUserID)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)

	// Pending accounts cannot be deactivated either.
	_, err = svc.Deactivate(ctx, pendingSellerUserID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAdminStats(t *testing.T) {
	t.Parallel()

	svc := newUserService(t)
	carts := &CartService{Repo: svc.Repo}
	ctx := context.Background()

	_, err := carts.AddToCart(ctx, buyerID, 1, activeSellerID, domain.UnitKg, 5)
	require.NoError(t, err)
	_, err = carts.Checkout(ctx, buyerID, domain.DeliveryMethodPickup, "")
	require.NoError(t, err)

	stats, err := svc.AdminStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.UsersByRole[domain.RoleAdmin])
	assert.Equal(t, int64(2), stats.UsersByRole[domain.RoleSeller])
	assert.Equal(t, int64(1), stats.UsersByRole[domain.RoleBuyer])
	assert.Equal(t, int64(3), stats.UsersByStatus[domain.UserActive])
	assert.Equal(t, int64(1), stats.UsersByStatus[domain.UserPending])
	assert.Equal(t, int64(1), stats.OrdersByStatus[domain.StatusPending])
}
