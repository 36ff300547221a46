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

type UserService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

type AdminStats struct {
	UsersByRole    map[domain.Role]int64        `json:"users_by_role"`
	UsersByStatus  map[domain.UserStatus]int64  `json:"users_by_status"`
	OrdersByStatus map[domain.OrderStatus]int64 `json:"orders_by_status"`
}

// Login resolves a user by email. There is no password: the storefront trusts
// the address and only gates on account status. Active sellers also get their
// profile back so the session can carry the seller id.
func (s *UserService) Login(ctx context.Context, email string) (*models.User, *models.SellerProfile, error) {
	if email == "" {
		return nil, nil, fmt.Errorf("%w: email required", domain.ErrValidation)
	}

	user, err := s.Repo.GetUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, fmt.Errorf("%w: no user with email %q", domain.ErrNotFound, email)
	}
	if err != nil {
		return nil, nil, err
	}
	if user.Status != domain.UserActive {
		return nil, nil, fmt.Errorf("%w: account is %s", domain.ErrNotAuthorized, user.Status)
	}

	var profile *models.SellerProfile
	if user.Role == domain.RoleSeller {
		profile, err = s.Repo.GetSellerProfileByUserID(ctx, user.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: seller has no profile", domain.ErrNotFound)
		}
		if err != nil {
			return nil, nil, err
		}
	}
	return user, profile, nil
}

// Logout drops the buyer's pending cart; carts are session-scoped.
func (s *UserService) Logout(ctx context.Context, userID uint) error {
	return s.Repo.ClearCart(ctx, userID)
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.ListUsers(ctx)
}

// ApproveSeller moves a pending account to active.
func (s *UserService) ApproveSeller(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Status != domain.UserPending {
		return nil, fmt.Errorf("%w: user is %s, not pending", domain.ErrConflict, user.Status)
	}

	if err := s.Repo.UpdateUserStatus(ctx, userID, domain.UserActive); err != nil {
		return nil, err
	}
	user.Status = domain.UserActive
	s.publishUserEvent(ctx, "user_approved", user)
	return user, nil
}

// Deactivate shuts off an active account. Admin accounts cannot be
// deactivated.
func (s *UserService) Deactivate(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role == domain.RoleAdmin {
		return nil, fmt.Errorf("%w: admin accounts cannot be deactivated", domain.ErrNotAuthorized)
	}
	if user.Status != domain.UserActive {
		return nil, fmt.Errorf("%w: user is %s, not active", domain.ErrConflict, user.Status)
	}

	if err := s.Repo.UpdateUserStatus(ctx, userID, domain.UserInactive); err != nil {
		return nil, err
	}
	user.Status = domain.UserInactive
	s.publishUserEvent(ctx, "user_deactivated", user)
	return user, nil
}

func (s *UserService) AdminStats(ctx context.Context) (*AdminStats, error) {
	users, err := s.Repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	ordersByStatus, err := s.Repo.CountOrdersByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &AdminStats{
		UsersByRole:    make(map[domain.Role]int64),
		UsersByStatus:  make(map[domain.UserStatus]int64),
		OrdersByStatus: ordersByStatus,
	}
	for _, u := range users {
		stats.UsersByRole[u.Role]++
		stats.UsersByStatus[u.Status]++
	}
	return stats, nil
}

func (s *UserService) getUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.Repo.GetUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, userID)
	}
	return user, err
}

func (s *UserService) publishUserEvent(ctx context.Context, kind string, user *models.User) {
	if err := s.Producer.PublishEvent(ctx, events.TopicUsers, fmt.Sprint(user.ID), map[string]any{
		"type":    kind,
		"user_id": user.ID,
		"role":    user.Role,
		"status":  user.Status,
	}); err != nil {
		logging.FromContext(ctx).Error("user_event_publish_failed", "error", err)
	}
}
