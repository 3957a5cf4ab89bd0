package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/comanda-app/comanda-service/internal/apperr"
	"github.com/comanda-app/comanda-service/internal/db/repository"
	"github.com/comanda-app/comanda-service/internal/models"
)

// UserService manages users and role promotion.
//
// Promotion policy: one-way STAFF → ADMIN. Promoting a user who is not
// STAFF (ADMIN or MASTER) is a conflict; MASTER is never produced or
// consumed here. The update is conditional on the previously-read role,
// so two concurrent promotions of the same user cannot both succeed.
type UserService struct {
	users UserStore
}

// NewUserService creates a new user service
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("user not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to get user", err)
	}

	return user, nil
}

// ListUsers retrieves all users
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list users", err)
	}

	return users, nil
}

// PromoteRole promotes a STAFF user to ADMIN
func (s *UserService) PromoteRole(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("user not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to promote user", err)
	}

	if user.Role != models.RoleStaff {
		return nil, apperr.Conflict("user is already an admin")
	}

	promoted, err := s.users.PromoteStaff(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		// The role changed between read and update.
		return nil, apperr.Conflict("user is already an admin")
	}
	if err != nil {
		return nil, apperr.Internal("failed to promote user", err)
	}

	return promoted, nil
}
