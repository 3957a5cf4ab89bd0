package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/comanda-app/comanda-service/internal/apperr"
	"github.com/comanda-app/comanda-service/internal/db/repository"
	"github.com/comanda-app/comanda-service/internal/models"
)

// Validator is the shared predicate set confirming that referenced
// entities exist and are in a usable state. Centralizing the lookups
// keeps the managers from duplicating them and gives caching a single
// seam later.
type Validator struct {
	categories CategoryStore
	orders     OrderStore
}

// NewValidator creates a new existence validator
func NewValidator(categories CategoryStore, orders OrderStore) *Validator {
	return &Validator{
		categories: categories,
		orders:     orders,
	}
}

// CategoryActive returns the category when it exists and is active.
func (v *Validator) CategoryActive(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := v.categories.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("category not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to look up category", err)
	}

	if !category.Active {
		return nil, apperr.NotFound("category not found")
	}

	return category, nil
}

// OrderExists returns the order when it exists, in any lifecycle state.
func (v *Validator) OrderExists(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := v.orders.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("order not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to look up order", err)
	}

	return order, nil
}
