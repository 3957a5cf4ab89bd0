package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/comanda-app/comanda-service/internal/api"
	"github.com/comanda-app/comanda-service/internal/models"
	"github.com/comanda-app/comanda-service/internal/service"
)

// maxUploadSize bounds multipart product uploads (8MB).
const maxUploadSize = 8 << 20

// CatalogHandler handles category and product requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CreateCategory creates a category
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.BadRequest(w, "invalid request body")
		return
	}
	if req.Name == "" {
		api.BadRequest(w, "name is required")
		return
	}

	category, err := h.catalogService.CreateCategory(r.Context(), req)
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusCreated, category)
}

// ListCategories returns all active categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.ListCategories(r.Context())
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, categories)
}

// UpdateCategory renames a category
func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CategoryID uuid.UUID `json:"category_id"`
		Name       string    `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.BadRequest(w, "invalid request body")
		return
	}
	if req.Name == "" {
		api.BadRequest(w, "name is required")
		return
	}

	category, err := h.catalogService.UpdateCategory(r.Context(), req.CategoryID, models.CategoryRequest{Name: req.Name})
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, category)
}

// RemoveCategory soft-deletes a category
func (h *CatalogHandler) RemoveCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := queryID(w, r, "categoryId")
	if !ok {
		return
	}

	if err := h.catalogService.RemoveCategory(r.Context(), categoryID); err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, map[string]string{"message": "category disabled successfully"})
}

// CreateProduct creates a product with a multipart banner image
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	req, ok := parseProductForm(w, r)
	if !ok {
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		api.BadRequest(w, "product image is required")
		return
	}
	defer file.Close()

	product, err := h.catalogService.CreateProduct(r.Context(), req, header.Filename, file)
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusCreated, product)
}

// ListProducts returns products, enabled by default or disabled when
// requested with ?disabled=true
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	disabled := r.URL.Query().Get("disabled") == "true"

	products, err := h.catalogService.ListProducts(r.Context(), disabled)
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, products)
}

// ListProductsByCategory returns the enabled products of a category
func (h *CatalogHandler) ListProductsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := queryID(w, r, "categoryId")
	if !ok {
		return
	}

	products, err := h.catalogService.ListProductsByCategory(r.Context(), categoryID)
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, products)
}

// UpdateProduct updates a product; a new banner image is optional
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := queryID(w, r, "productId")
	if !ok {
		return
	}

	req, ok := parseProductForm(w, r)
	if !ok {
		return
	}

	var product *models.Product
	file, header, err := r.FormFile("file")
	if err != nil {
		product, err = h.catalogService.UpdateProduct(r.Context(), productID, req, "", nil)
	} else {
		defer file.Close()
		product, err = h.catalogService.UpdateProduct(r.Context(), productID, req, header.Filename, file)
	}
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, product)
}

// RemoveProduct soft-deletes a product
func (h *CatalogHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := queryID(w, r, "productId")
	if !ok {
		return
	}

	if err := h.catalogService.RemoveProduct(r.Context(), productID); err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, map[string]string{"message": "product deleted successfully"})
}

// parseProductForm reads the multipart product fields shared by create
// and update.
func parseProductForm(w http.ResponseWriter, r *http.Request) (models.ProductRequest, bool) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		api.BadRequest(w, "invalid multipart form")
		return models.ProductRequest{}, false
	}

	name := r.FormValue("name")
	description := r.FormValue("description")
	if name == "" || description == "" {
		api.BadRequest(w, "name and description are required")
		return models.ProductRequest{}, false
	}

	price, err := strconv.ParseInt(r.FormValue("price"), 10, 64)
	if err != nil || price < 0 {
		api.BadRequest(w, "price must be a non-negative integer")
		return models.ProductRequest{}, false
	}

	req := models.ProductRequest{
		Name:        name,
		Description: description,
		Price:       price,
	}

	if rawCategory := r.FormValue("category_id"); rawCategory != "" {
		categoryID, err := uuid.Parse(rawCategory)
		if err != nil {
			api.BadRequest(w, "invalid category_id")
			return models.ProductRequest{}, false
		}
		req.CategoryID = categoryID
	}

	return req, true
}
