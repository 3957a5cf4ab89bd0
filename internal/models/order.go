package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
//
// The state is an explicit tri-state instead of the draft/status boolean
// pair: an order is created as draft, becomes sent when submitted to the
// kitchen, and finished when the kitchen completes it. Illegal transitions
// are rejected with a conflict.
type OrderStatus string

const (
	OrderStatusDraft    OrderStatus = "draft"
	OrderStatusSent     OrderStatus = "sent"
	OrderStatusFinished OrderStatus = "finished"
)

// Order represents a table's order
type Order struct {
	ID        uuid.UUID   `db:"id" json:"id"`
	Table     int         `db:"table_number" json:"table"`
	Name      string      `db:"name" json:"name"`
	Status    OrderStatus `db:"status" json:"status"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt time.Time   `db:"updated_at" json:"updated_at"`

	// Not stored in the orders table directly
	Items []Item `db:"-" json:"items,omitempty"`
}

// Item is a quantity of one product attached to one order. Items are
// never updated in place; a quantity change is remove-then-add.
type Item struct {
	ID        uuid.UUID `db:"id" json:"id"`
	OrderID   uuid.UUID `db:"order_id" json:"order_id"`
	ProductID uuid.UUID `db:"product_id" json:"product_id"`
	Amount    int       `db:"amount" json:"amount"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// Joined from the products table for display
	Product *ProductSnapshot `db:"-" json:"product,omitempty"`
}

// ProductSnapshot carries the product display fields attached to an item.
type ProductSnapshot struct {
	ID          uuid.UUID `db:"product_id" json:"id"`
	Name        string    `db:"product_name" json:"name"`
	Price       int64     `db:"product_price" json:"price"`
	Description string    `db:"product_description" json:"description"`
	Banner      string    `db:"product_banner" json:"banner"`
}

// OrderRequest is used for order creation
type OrderRequest struct {
	Table int    `json:"table" validate:"required,gt=0"`
	Name  string `json:"name"`
}

// AddItemRequest is used for adding an item to an order
type AddItemRequest struct {
	OrderID   uuid.UUID `json:"order_id" validate:"required"`
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Amount    int       `json:"amount" validate:"required,gt=0"`
}

// SendOrderRequest is used for submitting an order to the kitchen
type SendOrderRequest struct {
	OrderID uuid.UUID `json:"order_id" validate:"required"`
	Name    string    `json:"name" validate:"required"`
}

// FinishOrderRequest is used for completing an order
type FinishOrderRequest struct {
	OrderID uuid.UUID `json:"order_id" validate:"required"`
}
