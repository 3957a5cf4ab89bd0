package repository

import (
	"errors"

	"github.com/comanda-app/comanda-service/internal/db"
)

// ErrNotFound is returned when a lookup or conditional update matches no row.
var ErrNotFound = errors.New("not found")

// Repositories provides access to all repository instances
type Repositories struct {
	User     *UserRepository
	Category *CategoryRepository
	Product  *ProductRepository
	Order    *OrderRepository
}

// NewRepositories creates a new repositories container
func NewRepositories(database *db.Postgres) *Repositories {
	return &Repositories{
		User:     NewUserRepository(database.DB),
		Category: NewCategoryRepository(database.DB),
		Product:  NewProductRepository(database.DB),
		Order:    NewOrderRepository(database.DB),
	}
}
