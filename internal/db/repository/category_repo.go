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

// CategoryRepository handles category data access
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	query := `
		SELECT id, name, active, created_at, updated_at
		FROM categories
		WHERE id = $1
	`

	var category models.Category
	err := r.db.GetContext(ctx, &category, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &category, nil
}

// FindActiveByName retrieves an active category by name, excluding the
// given ID. Pass uuid.Nil to match any category.
func (r *CategoryRepository) FindActiveByName(ctx context.Context, name string, excludeID uuid.UUID) (*models.Category, error) {
	query := `
		SELECT id, name, active, created_at, updated_at
		FROM categories
		WHERE name = $1 AND active AND id != $2
	`

	var category models.Category
	err := r.db.GetContext(ctx, &category, query, name, excludeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category by name: %w", err)
	}

	return &category, nil
}

// List retrieves all active categories
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT id, name, active, created_at, updated_at
		FROM categories
		WHERE active
		ORDER BY name DESC
	`

	var categories []models.Category
	err := r.db.SelectContext(ctx, &categories, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, name string) (*models.Category, error) {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, name, active, created_at, updated_at
	`

	var category models.Category
	err := r.db.GetContext(ctx, &category, query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &category, nil
}

// Rename updates a category's name
func (r *CategoryRepository) Rename(ctx context.Context, id uuid.UUID, name string) (*models.Category, error) {
	query := `
		UPDATE categories
		SET name = $1, updated_at = $2
		WHERE id = $3
		RETURNING id, name, active, created_at, updated_at
	`

	var category models.Category
	err := r.db.GetContext(ctx, &category, query, name, time.Now(), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to rename category: %w", err)
	}

	return &category, nil
}

// Deactivate soft-deletes a category. The update is conditional on the
// category still being active; ErrNotFound means it is absent or already
// inactive.
func (r *CategoryRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE categories
		SET active = FALSE, updated_at = $1
		WHERE id = $2 AND active
	`

	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to deactivate category: %w", err)
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
