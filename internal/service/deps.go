package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/comanda-app/comanda-service/internal/models"
)

// The store interfaces mirror the sqlx repositories in
// internal/db/repository. Services depend on these so tests can swap in
// in-memory fakes.

// UserStore provides user persistence.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, user models.User) (*models.User, error)
	PromoteStaff(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// CategoryStore provides category persistence.
type CategoryStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	FindActiveByName(ctx context.Context, name string, excludeID uuid.UUID) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, name string) (*models.Category, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (*models.Category, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// ProductStore provides product persistence.
type ProductStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	List(ctx context.Context, disabled bool) ([]models.Product, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error)
	Create(ctx context.Context, product models.Product) (*models.Product, error)
	Update(ctx context.Context, product models.Product) (*models.Product, error)
	Disable(ctx context.Context, id uuid.UUID) error
}

// OrderStore provides order and item persistence.
type OrderStore interface {
	Create(ctx context.Context, table int, name string) (*models.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	GetOrderItems(ctx context.Context, orderID uuid.UUID) ([]models.Item, error)
	GetItem(ctx context.Context, id uuid.UUID) (*models.Item, error)
	AddItem(ctx context.Context, orderID, productID uuid.UUID, amount int) (*models.Item, error)
	RemoveItem(ctx context.Context, id uuid.UUID) error
	Send(ctx context.Context, id uuid.UUID, name string) (*models.Order, error)
	Finish(ctx context.Context, id uuid.UUID) (*models.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
