package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/comanda-app/comanda-service/internal/models"
)

// ProductRepository handles product data access
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	query := `
		SELECT id, name, description, price, category_id, banner, disabled, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var product models.Product
	err := r.db.GetContext(ctx, &product, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}

// List retrieves products filtered by their disabled flag
func (r *ProductRepository) List(ctx context.Context, disabled bool) ([]models.Product, error) {
	query := `
		SELECT id, name, description, price, category_id, banner, disabled, created_at, updated_at
		FROM products
		WHERE disabled = $1
		ORDER BY name DESC
	`

	var products []models.Product
	err := r.db.SelectContext(ctx, &products, query, disabled)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// ListByCategory retrieves enabled products of a category
func (r *ProductRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	query := `
		SELECT id, name, description, price, category_id, banner, disabled, created_at, updated_at
		FROM products
		WHERE category_id = $1 AND NOT disabled
		ORDER BY name DESC
	`

	var products []models.Product
	err := r.db.SelectContext(ctx, &products, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products by category: %w", err)
	}

	return products, nil
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product models.Product) (*models.Product, error) {
	query := `
		INSERT INTO products (name, description, price, category_id, banner)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, price, category_id, banner, disabled, created_at, updated_at
	`

	var created models.Product
	err := r.db.GetContext(
		ctx,
		&created,
		query,
		product.Name,
		product.Description,
		product.Price,
		product.CategoryID,
		product.Banner,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &created, nil
}

// Update updates a product's display fields
func (r *ProductRepository) Update(ctx context.Context, product models.Product) (*models.Product, error) {
	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, banner = $4, updated_at = $5
		WHERE id = $6
		RETURNING id, name, description, price, category_id, banner, disabled, created_at, updated_at
	`

	var updated models.Product
	err := r.db.GetContext(
		ctx,
		&updated,
		query,
		product.Name,
		product.Description,
		product.Price,
		product.Banner,
		time.Now(),
		product.ID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &updated, nil
}

// Disable soft-deletes a product
func (r *ProductRepository) Disable(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE products
		SET disabled = TRUE, updated_at = $1
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to disable product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
