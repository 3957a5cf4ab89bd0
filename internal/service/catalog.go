package service

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/comanda-app/comanda-service/internal/apperr"
	"github.com/comanda-app/comanda-service/internal/db/repository"
	"github.com/comanda-app/comanda-service/internal/models"
	"github.com/comanda-app/comanda-service/internal/storage"
)

// CatalogService manages categories and products. Removals are soft
// deletes: categories flip Active, products flip Disabled, and existing
// order items keep referencing them.
type CatalogService struct {
	categories CategoryStore
	products   ProductStore
	validator  *Validator
	uploader   storage.Uploader
}

// NewCatalogService creates a new catalog service
func NewCatalogService(categories CategoryStore, products ProductStore, validator *Validator, uploader storage.Uploader) *CatalogService {
	return &CatalogService{
		categories: categories,
		products:   products,
		validator:  validator,
		uploader:   uploader,
	}
}

// CreateCategory creates a category. Names must be unique among active
// categories.
func (s *CatalogService) CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	_, err := s.categories.FindActiveByName(ctx, req.Name, uuid.Nil)
	if err == nil {
		return nil, apperr.Conflict("category already registered")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.Internal("failed to create category", err)
	}

	category, err := s.categories.Create(ctx, req.Name)
	if err != nil {
		return nil, apperr.Internal("failed to create category", err)
	}

	return category, nil
}

// ListCategories returns all active categories
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list categories", err)
	}

	return categories, nil
}

// UpdateCategory renames a category. Renaming to the current name is a
// no-op; renaming onto another active category's name is a conflict.
func (s *CatalogService) UpdateCategory(ctx context.Context, id uuid.UUID, req models.CategoryRequest) (*models.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("category not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to update category", err)
	}

	if category.Name == req.Name {
		return category, nil
	}

	_, err = s.categories.FindActiveByName(ctx, req.Name, id)
	if err == nil {
		return nil, apperr.Conflict("category already registered")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.Internal("failed to update category", err)
	}

	updated, err := s.categories.Rename(ctx, id, req.Name)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("category not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to update category", err)
	}

	return updated, nil
}

// RemoveCategory soft-deletes a category
func (s *CatalogService) RemoveCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categories.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("category not found")
	}
	if err != nil {
		return apperr.Internal("failed to remove category", err)
	}

	if !category.Active {
		return apperr.Conflict("category already disabled")
	}

	err = s.categories.Deactivate(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		// Lost a race with a concurrent removal.
		return apperr.Conflict("category already disabled")
	}
	if err != nil {
		return apperr.Internal("failed to remove category", err)
	}

	return nil
}

// CreateProduct creates a product under an active category, persisting
// its banner image through the uploader.
func (s *CatalogService) CreateProduct(ctx context.Context, req models.ProductRequest, imageName string, image io.Reader) (*models.Product, error) {
	if _, err := s.validator.CategoryActive(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	bannerURL, err := s.uploader.Upload(ctx, imageName, image)
	if err != nil {
		return nil, apperr.Internal("failed to upload product image", err)
	}

	product, err := s.products.Create(ctx, models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Banner:      bannerURL,
	})
	if err != nil {
		return nil, apperr.Internal("failed to create product", err)
	}

	return product, nil
}

// ListProducts returns products filtered by their disabled flag
func (s *CatalogService) ListProducts(ctx context.Context, disabled bool) ([]models.Product, error) {
	products, err := s.products.List(ctx, disabled)
	if err != nil {
		return nil, apperr.Internal("failed to list products", err)
	}

	return products, nil
}

// ListProductsByCategory returns the enabled products of a category
func (s *CatalogService) ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	if _, err := s.validator.CategoryActive(ctx, categoryID); err != nil {
		return nil, err
	}

	products, err := s.products.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, apperr.Internal("failed to list products by category", err)
	}

	return products, nil
}

// UpdateProduct updates a product's display fields. A new banner image
// replaces the stored URL; omitting it keeps the current one.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, req models.ProductRequest, imageName string, image io.Reader) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("product not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to update product", err)
	}

	banner := product.Banner
	if image != nil {
		banner, err = s.uploader.Upload(ctx, imageName, image)
		if err != nil {
			return nil, apperr.Internal("failed to upload product image", err)
		}
	}

	updated, err := s.products.Update(ctx, models.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Banner:      banner,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("product not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to update product", err)
	}

	return updated, nil
}

// RemoveProduct soft-deletes a product
func (s *CatalogService) RemoveProduct(ctx context.Context, id uuid.UUID) error {
	err := s.products.Disable(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("product not found")
	}
	if err != nil {
		return apperr.Internal("failed to remove product", err)
	}

	return nil
}
