package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/comanda-app/comanda-service/internal/apperr"
	"github.com/comanda-app/comanda-service/internal/db/repository"
	"github.com/comanda-app/comanda-service/internal/models"
)

// Guard enforces minimum-role policies before mutations proceed. The
// caller's role is resolved by looking the user up by ID, so a stale
// token cannot outlive a demotion.
type Guard struct {
	users UserStore
}

// NewGuard creates a new access guard
func NewGuard(users UserStore) *Guard {
	return &Guard{users: users}
}

// Require resolves the caller and checks that their role carries at
// least min privilege. An absent user or an insufficient role both deny
// with Unauthorized. No side effects.
func (g *Guard) Require(ctx context.Context, userID uuid.UUID, min models.Role) (*models.User, error) {
	user, err := g.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.Unauthorized("user does not have permission")
	}
	if err != nil {
		return nil, apperr.Internal("failed to resolve user role", err)
	}

	if !user.Role.AtLeast(min) {
		return nil, apperr.Unauthorized("user does not have permission")
	}

	return user, nil
}

// RequireAdmin allows ADMIN and MASTER callers.
func (g *Guard) RequireAdmin(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return g.Require(ctx, userID, models.RoleAdmin)
}

// RequireAdminOrMaster is the historical alias for RequireAdmin; some
// routes were registered under either name.
func (g *Guard) RequireAdminOrMaster(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return g.Require(ctx, userID, models.RoleAdmin)
}

// RequireMaster allows only MASTER callers.
func (g *Guard) RequireMaster(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return g.Require(ctx, userID, models.RoleMaster)
}
