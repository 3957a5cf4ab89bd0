package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/comanda-app/comanda-service/internal/apperr"
	"github.com/comanda-app/comanda-service/internal/db/repository"
	"github.com/comanda-app/comanda-service/internal/models"
)

// OrderService owns the order lifecycle and line-item management.
//
// Lifecycle transitions: draft → sent (Send) → finished (Finish). An
// order in the wrong state for a transition yields a conflict; a missing
// order yields not-found. Transitions are compare-and-swap updates at the
// store, so concurrent requests against the same order cannot both win.
type OrderService struct {
	orders    OrderStore
	validator *Validator
}

// NewOrderService creates a new order service
func NewOrderService(orders OrderStore, validator *Validator) *OrderService {
	return &OrderService{
		orders:    orders,
		validator: validator,
	}
}

// Create opens an empty draft order for a table
func (s *OrderService) Create(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	if req.Table <= 0 {
		return nil, apperr.Invalid("table must be a positive number")
	}

	order, err := s.orders.Create(ctx, req.Table, req.Name)
	if err != nil {
		return nil, apperr.Internal("failed to create order", err)
	}

	return order, nil
}

// List returns orders submitted to the kitchen and not yet finished
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list orders", err)
	}

	return orders, nil
}

// Detail returns an order with its items in creation order, each item
// carrying its product's current display fields. Read-only.
func (s *OrderService) Detail(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.validator.OrderExists(ctx, orderID)
	if err != nil {
		return nil, err
	}

	items, err := s.orders.GetOrderItems(ctx, orderID)
	if err != nil {
		return nil, apperr.Internal("failed to get order details", err)
	}
	order.Items = items

	return order, nil
}

// AddItem attaches a quantity of a product to an order. The order must
// exist and the product must exist and be enabled.
func (s *OrderService) AddItem(ctx context.Context, req models.AddItemRequest) (*models.Item, error) {
	if req.Amount <= 0 {
		return nil, apperr.Invalid("amount must be a positive number")
	}

	item, err := s.orders.AddItem(ctx, req.OrderID, req.ProductID, req.Amount)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, apperr.NotFound("order not found")
	}
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, apperr.NotFound("product not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to add item to order", err)
	}

	return item, nil
}

// RemoveItem deletes a single item. Quantity changes are modeled as
// remove-then-add, so there is no update path.
func (s *OrderService) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	err := s.orders.RemoveItem(ctx, itemID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("item not found")
	}
	if err != nil {
		return apperr.Internal("failed to remove item from order", err)
	}

	return nil
}

// Send submits a draft order to the kitchen and records its display name
func (s *OrderService) Send(ctx context.Context, req models.SendOrderRequest) (*models.Order, error) {
	order, err := s.orders.Send(ctx, req.OrderID, req.Name)
	if errors.Is(err, repository.ErrNotFound) {
		// The conditional update misses when the order is absent or
		// already past draft; a second lookup tells the two apart.
		if _, verr := s.validator.OrderExists(ctx, req.OrderID); verr != nil {
			return nil, verr
		}
		return nil, apperr.Conflict("order has already been sent")
	}
	if err != nil {
		return nil, apperr.Internal("failed to send order", err)
	}

	return order, nil
}

// Finish completes a sent order
func (s *OrderService) Finish(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.orders.Finish(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		if _, verr := s.validator.OrderExists(ctx, orderID); verr != nil {
			return nil, verr
		}
		return nil, apperr.Conflict("order is not in the kitchen")
	}
	if err != nil {
		return nil, apperr.Internal("failed to finish order", err)
	}

	return order, nil
}

// Delete removes an order and its items. Terminal.
func (s *OrderService) Delete(ctx context.Context, orderID uuid.UUID) error {
	err := s.orders.Delete(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("order not found")
	}
	if err != nil {
		return apperr.Internal("failed to delete order", err)
	}

	return nil
}
