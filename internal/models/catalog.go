package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a named grouping for products. Removing a category is a
// soft delete: Active flips to false and the row stays.
type Category struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Product is a sellable item. Price is in minor currency units (cents).
// Deleting a product is a soft delete via Disabled.
type Product struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Price       int64     `db:"price" json:"price"`
	CategoryID  uuid.UUID `db:"category_id" json:"category_id"`
	Banner      string    `db:"banner" json:"banner"`
	Disabled    bool      `db:"disabled" json:"disabled"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`

	// Not stored in the products table directly
	Category *Category `db:"-" json:"category,omitempty"`
}

// CategoryRequest is used for category creation/update
type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

// ProductRequest is used for product creation/update. The banner image
// itself arrives as a multipart file and is persisted by the uploader.
type ProductRequest struct {
	Name        string    `json:"name" validate:"required,min=1,max=100"`
	Description string    `json:"description" validate:"required"`
	Price       int64     `json:"price" validate:"required,gte=0"`
	CategoryID  uuid.UUID `json:"category_id" validate:"required"`
}
