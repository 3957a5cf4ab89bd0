package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/comanda-app/comanda-service/internal/apperr"
	"github.com/comanda-app/comanda-service/internal/models"
)

func newOrderService(f *fixture) *OrderService {
	return NewOrderService(f.orders, f.validator)
}

func TestCreateOrder(t *testing.T) {
	f := newFixture()
	svc := newOrderService(f)
	ctx := context.Background()

	order, err := svc.Create(ctx, models.OrderRequest{Table: 12})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if order.Table != 12 {
		t.Errorf("table = %d, want 12", order.Table)
	}
	if order.Status != models.OrderStatusDraft {
		t.Errorf("status = %q, want draft", order.Status)
	}
	if len(order.Items) != 0 {
		t.Errorf("new order has %d items, want 0", len(order.Items))
	}
}

func TestCreateOrderRejectsNonPositiveTable(t *testing.T) {
	f := newFixture()
	svc := newOrderService(f)

	for _, table := range []int{0, -3} {
		_, err := svc.Create(context.Background(), models.OrderRequest{Table: table})
		if !apperr.IsKind(err, apperr.KindInvalid) {
			t.Errorf("Create(table=%d) err = %v, want invalid", table, err)
		}
	}
}

func TestAddItem(t *testing.T) {
	f := newFixture()
	svc := newOrderService(f)
	ctx := context.Background()

	category, _ := f.categories.Create(ctx, "Pizzas")
	pizza := f.products.add("Margherita", 4500, category.ID, false)
	disabled := f.products.add("Calzone", 5200, category.ID, true)
	order, _ := svc.Create(ctx, models.OrderRequest{Table: 3})

	tests := []struct {
		name      string
		orderID   uuid.UUID
		productID uuid.UUID
		amount    int
		wantKind  apperr.Kind
	}{
		{"ok", order.ID, pizza.ID, 2, ""},
		{"zero amount", order.ID, pizza.ID, 0, apperr.KindInvalid},
		{"negative amount", order.ID, pizza.ID, -1, apperr.KindInvalid},
		{"missing order", uuid.New(), pizza.ID, 1, apperr.KindNotFound},
		{"missing product", order.ID, uuid.New(), 1, apperr.KindNotFound},
		{"disabled product", order.ID, disabled.ID, 1, apperr.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := svc.AddItem(ctx, models.AddItemRequest{
				OrderID:   tt.orderID,
				ProductID: tt.productID,
				Amount:    tt.amount,
			})
			if tt.wantKind != "" {
				if !apperr.IsKind(err, tt.wantKind) {
					t.Fatalf("err = %v, want kind %s", err, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("AddItem: %v", err)
			}
			if item.Amount != tt.amount {
				t.Errorf("amount = %d, want %d", item.Amount, tt.amount)
			}
			if item.Product == nil || item.Product.Name != "Margherita" {
				t.Errorf("item is missing its product snapshot: %+v", item.Product)
			}
		})
	}
}

func TestRemoveItemTwice(t *testing.T) {
	f := newFixture()
	svc := newOrderService(f)
	ctx := context.Background()

	category, _ := f.categories.Create(ctx, "Pizzas")
	pizza := f.products.add("Margherita", 4500, category.ID, false)
	order, _ := svc.Create(ctx, models.OrderRequest{Table: 7})
	item, err := svc.AddItem(ctx, models.AddItemRequest{OrderID: order.ID, ProductID: pizza.ID, Amount: 1})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if err := svc.RemoveItem(ctx, item.ID); err != nil {
		t.Fatalf("first RemoveItem: %v", err)
	}
	err = svc.RemoveItem(ctx, item.ID)
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("second RemoveItem err = %v, want not found", err)
	}
}

func TestDetailReturnsItemsInCreationOrder(t *testing.T) {
	f := newFixture()
	svc := newOrderService(f)
	ctx := context.Background()

	category, _ := f.categories.Create(ctx, "Pizzas")
	pizza := f.products.add("Margherita", 4500, category.ID, false)
	soda := f.products.add("Guarana", 800, category.ID, false)
	order, _ := svc.Create(ctx, models.OrderRequest{Table: 5})

	if _, err := svc.AddItem(ctx, models.AddItemRequest{OrderID: order.ID, ProductID: pizza.ID, Amount: 2}); err != nil {
		t.Fatalf("AddItem pizza: %v", err)
	}
	if _, err := svc.AddItem(ctx, models.AddItemRequest{OrderID: order.ID, ProductID: soda.ID, Amount: 1}); err != nil {
		t.Fatalf("AddItem soda: %v", err)
	}

	detail, err := svc.Detail(ctx, order.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if len(detail.Items) != 2 {
		t.Fatalf("detail has %d items, want 2", len(detail.Items))
	}
	first, second := detail.Items[0], detail.Items[1]
	if first.Product.Name != "Margherita" || first.Amount != 2 {
		t.Errorf("first item = %s x%d, want Margherita x2", first.Product.Name, first.Amount)
	}
	if second.Product.Name != "Guarana" || second.Amount != 1 {
		t.Errorf("second item = %s x%d, want Guarana x1", second.Product.Name, second.Amount)
	}
	if first.Product.Price != 4500 || first.Product.Banner == "" {
		t.Errorf("snapshot is missing product fields: %+v", first.Product)
	}
}

func TestDetailMissingOrder(t *testing.T) {
	f := newFixture()
	svc := newOrderService(f)

	_, err := svc.Detail(context.Background(), uuid.New())
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("Detail err = %v, want not found", err)
	}
}

func TestSendOrder(t *testing.T) {
	f := newFixture()
	svc := newOrderService(f)
	ctx := context.Background()

	order, _ := svc.Create(ctx, models.OrderRequest{Table: 12})

	sent, err := svc.Send(ctx, models.SendOrderRequest{OrderID: order.ID, Name: "Mesa 12"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if sent.Status != models.OrderStatusSent {
		t.Errorf("status = %q, want sent", sent.Status)
	}
	if sent.Name != "Mesa 12" {
		t.Errorf("name = %q, want Mesa 12", sent.Name)
	}

	// A sent order cannot be sent again.
	_, err = svc.Send(ctx, models.SendOrderRequest{OrderID: order.ID, Name: "Mesa 12"})
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Errorf("second Send err = %v, want conflict", err)
	}
}

func TestSendMissingOrder(t *testing.T) {
	f := newFixture()
	svc := newOrderService(f)

	_, err := svc.Send(context.Background(), models.SendOrderRequest{OrderID: uuid.New(), Name: "Mesa 1"})
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("Send err = %v, want not found", err)
	}
}

func TestFinishOrder(t *testing.T) {
	f := newFixture()
	svc := newOrderService(f)
	ctx := context.Background()

	order, _ := svc.Create(ctx, models.OrderRequest{Table: 4})

	// A draft order is not in the kitchen yet.
	_, err := svc.Finish(ctx, order.ID)
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("Finish draft err = %v, want conflict", err)
	}

	if _, err := svc.Send(ctx, models.SendOrderRequest{OrderID: order.ID, Name: "Mesa 4"}); err != nil {
		t.Fatalf("Send: %v", err)
	}

	finished, err := svc.Finish(ctx, order.ID)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if finished.Status != models.OrderStatusFinished {
		t.Errorf("status = %q, want finished", finished.Status)
	}

	_, err = svc.Finish(ctx, order.ID)
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Errorf("second Finish err = %v, want conflict", err)
	}

	_, err = svc.Finish(ctx, uuid.New())
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("Finish missing err = %v, want not found", err)
	}
}

func TestOrderLifecycleScenario(t *testing.T) {
	f := newFixture()
	svc := newOrderService(f)
	ctx := context.Background()

	category, _ := f.categories.Create(ctx, "Pizzas")
	pizza := f.products.add("Pepperoni", 5200, category.ID, false)

	order, err := svc.Create(ctx, models.OrderRequest{Table: 12})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if order.Status != models.OrderStatusDraft {
		t.Fatalf("status = %q, want draft", order.Status)
	}

	item, err := svc.AddItem(ctx, models.AddItemRequest{OrderID: order.ID, ProductID: pizza.ID, Amount: 2})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if item.Amount != 2 {
		t.Fatalf("amount = %d, want 2", item.Amount)
	}

	sent, err := svc.Send(ctx, models.SendOrderRequest{OrderID: order.ID, Name: "Mesa 12"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if sent.Status != models.OrderStatusSent || sent.Name != "Mesa 12" {
		t.Fatalf("after send: status=%q name=%q", sent.Status, sent.Name)
	}

	if err := svc.Delete(ctx, order.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err = svc.Detail(ctx, order.ID)
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("Detail after delete err = %v, want not found", err)
	}
	_, err = f.orders.GetItem(ctx, item.ID)
	if err == nil {
		t.Errorf("item survived order deletion")
	}
}

func TestDeleteMissingOrder(t *testing.T) {
	f := newFixture()
	svc := newOrderService(f)

	err := svc.Delete(context.Background(), uuid.New())
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("Delete err = %v, want not found", err)
	}
}

func TestListReturnsOnlySentOrders(t *testing.T) {
	f := newFixture()
	svc := newOrderService(f)
	ctx := context.Background()

	if _, err := svc.Create(ctx, models.OrderRequest{Table: 1}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	sent, _ := svc.Create(ctx, models.OrderRequest{Table: 2})
	if _, err := svc.Send(ctx, models.SendOrderRequest{OrderID: sent.ID, Name: "Mesa 2"}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	done, _ := svc.Create(ctx, models.OrderRequest{Table: 3})
	if _, err := svc.Send(ctx, models.SendOrderRequest{OrderID: done.ID, Name: "Mesa 3"}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if _, err := svc.Finish(ctx, done.ID); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	orders, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("List returned %d orders, want 1", len(orders))
	}
	if orders[0].ID != sent.ID {
		t.Errorf("List returned order %s, want %s", orders[0].ID, sent.ID)
	}
}
