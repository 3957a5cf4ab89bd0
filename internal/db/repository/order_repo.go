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

// AddItem failure causes. Both check and insert run inside one
// transaction, so the caller can trust which entity was missing.
var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
)

// OrderRepository handles order and item data access
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create creates a new order in draft status
func (r *OrderRepository) Create(ctx context.Context, table int, name string) (*models.Order, error) {
	query := `
		INSERT INTO orders (table_number, name, status)
		VALUES ($1, $2, $3)
		RETURNING id, table_number, name, status, created_at, updated_at
	`

	var order models.Order
	err := r.db.GetContext(ctx, &order, query, table, name, models.OrderStatusDraft)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return &order, nil
}

// GetByID retrieves an order by ID, without its items
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	query := `
		SELECT id, table_number, name, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var order models.Order
	err := r.db.GetContext(ctx, &order, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}

// List retrieves orders submitted to the kitchen and not yet finished
func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	query := `
		SELECT id, table_number, name, status, created_at, updated_at
		FROM orders
		WHERE status = $1
		ORDER BY created_at ASC
	`

	var orders []models.Order
	err := r.db.SelectContext(ctx, &orders, query, models.OrderStatusSent)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// itemRow is the joined shape of an item with its product display fields.
type itemRow struct {
	ID        uuid.UUID `db:"id"`
	OrderID   uuid.UUID `db:"order_id"`
	Amount    int       `db:"amount"`
	CreatedAt time.Time `db:"created_at"`
	models.ProductSnapshot
}

func (row itemRow) toItem() models.Item {
	snapshot := row.ProductSnapshot
	return models.Item{
		ID:        row.ID,
		OrderID:   row.OrderID,
		ProductID: snapshot.ID,
		Amount:    row.Amount,
		CreatedAt: row.CreatedAt,
		Product:   &snapshot,
	}
}

// GetOrderItems retrieves the items of an order in creation order, each
// carrying its product's current display fields.
func (r *OrderRepository) GetOrderItems(ctx context.Context, orderID uuid.UUID) ([]models.Item, error) {
	query := `
		SELECT i.id, i.order_id, i.amount, i.created_at,
		       p.id AS product_id, p.name AS product_name, p.price AS product_price,
		       p.description AS product_description, p.banner AS product_banner
		FROM items i
		JOIN products p ON i.product_id = p.id
		WHERE i.order_id = $1
		ORDER BY i.created_at ASC, i.id ASC
	`

	var rows []itemRow
	err := r.db.SelectContext(ctx, &rows, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}

	items := make([]models.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toItem())
	}

	return items, nil
}

// GetItem retrieves a single item by ID
func (r *OrderRepository) GetItem(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	query := `
		SELECT id, order_id, product_id, amount, created_at
		FROM items
		WHERE id = $1
	`

	var item models.Item
	err := r.db.GetContext(ctx, &item, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return &item, nil
}

// AddItem links a product to an order. The order check, the enabled
// product check and the insert run in one transaction so a concurrent
// order delete cannot slip between check and insert.
func (r *OrderRepository) AddItem(ctx context.Context, orderID, productID uuid.UUID, amount int) (*models.Item, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var orderExists uuid.UUID
	err = tx.GetContext(ctx, &orderExists, "SELECT id FROM orders WHERE id = $1", orderID)
	if errors.Is(err, sql.ErrNoRows) {
		err = ErrOrderNotFound
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check order: %w", err)
	}

	var snapshot models.ProductSnapshot
	err = tx.GetContext(
		ctx,
		&snapshot,
		`SELECT id AS product_id, name AS product_name, price AS product_price,
		        description AS product_description, banner AS product_banner
		 FROM products
		 WHERE id = $1 AND NOT disabled`,
		productID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		err = ErrProductNotFound
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check product: %w", err)
	}

	var item models.Item
	err = tx.GetContext(
		ctx,
		&item,
		`INSERT INTO items (order_id, product_id, amount)
		 VALUES ($1, $2, $3)
		 RETURNING id, order_id, product_id, amount, created_at`,
		orderID,
		productID,
		amount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	item.Product = &snapshot
	return &item, nil
}

// RemoveItem deletes a single item by ID
func (r *OrderRepository) RemoveItem(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM items WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
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

// Send moves a draft order to sent and records its display name. The
// update is conditional on the current status, so the transition acts as
// a compare-and-swap; ErrNotFound means the order is absent or not draft.
func (r *OrderRepository) Send(ctx context.Context, id uuid.UUID, name string) (*models.Order, error) {
	query := `
		UPDATE orders
		SET status = $1, name = $2, updated_at = $3
		WHERE id = $4 AND status = $5
		RETURNING id, table_number, name, status, created_at, updated_at
	`

	var order models.Order
	err := r.db.GetContext(ctx, &order, query,
		models.OrderStatusSent, name, time.Now(), id, models.OrderStatusDraft)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to send order: %w", err)
	}

	return &order, nil
}

// Finish moves a sent order to finished, with the same compare-and-swap
// semantics as Send.
func (r *OrderRepository) Finish(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	query := `
		UPDATE orders
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
		RETURNING id, table_number, name, status, created_at, updated_at
	`

	var order models.Order
	err := r.db.GetContext(ctx, &order, query,
		models.OrderStatusFinished, time.Now(), id, models.OrderStatusSent)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to finish order: %w", err)
	}

	return &order, nil
}

// Delete hard-deletes an order and its items in one transaction
func (r *OrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, "DELETE FROM items WHERE order_id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		err = ErrNotFound
		return err
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
