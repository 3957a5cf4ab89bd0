package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/comanda-app/comanda-service/internal/api"
	"github.com/comanda-app/comanda-service/internal/models"
	"github.com/comanda-app/comanda-service/internal/service"
	"github.com/comanda-app/comanda-service/internal/websockets"
)

// OrderHandler handles order and item requests
type OrderHandler struct {
	orderService *service.OrderService
	hub          *websockets.Hub
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, hub *websockets.Hub) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		hub:          hub,
	}
}

// Create opens a new draft order for a table
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.BadRequest(w, "invalid request body")
		return
	}

	order, err := h.orderService.Create(r.Context(), req)
	if err != nil {
		api.Error(w, err)
		return
	}

	h.hub.BroadcastEvent(websockets.TypeOrderCreated, order)

	api.RespondJSON(w, http.StatusCreated, order)
}

// List returns the orders currently in the kitchen
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.List(r.Context())
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, orders)
}

// Detail returns an order with its items and product snapshots
func (h *OrderHandler) Detail(w http.ResponseWriter, r *http.Request) {
	orderID, ok := queryID(w, r, "orderId")
	if !ok {
		return
	}

	order, err := h.orderService.Detail(r.Context(), orderID)
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, order)
}

// AddItem attaches a product to an order
func (h *OrderHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req models.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.BadRequest(w, "invalid request body")
		return
	}

	item, err := h.orderService.AddItem(r.Context(), req)
	if err != nil {
		api.Error(w, err)
		return
	}

	h.hub.BroadcastEvent(websockets.TypeItemAdded, item)

	api.RespondJSON(w, http.StatusCreated, item)
}

// RemoveItem detaches a single item from its order
func (h *OrderHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := queryID(w, r, "itemId")
	if !ok {
		return
	}

	if err := h.orderService.RemoveItem(r.Context(), itemID); err != nil {
		api.Error(w, err)
		return
	}

	h.hub.BroadcastEvent(websockets.TypeItemRemoved, map[string]string{"id": itemID.String()})

	api.RespondJSON(w, http.StatusOK, map[string]string{"message": "item removed successfully"})
}

// Send submits a draft order to the kitchen
func (h *OrderHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req models.SendOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.BadRequest(w, "invalid request body")
		return
	}

	order, err := h.orderService.Send(r.Context(), req)
	if err != nil {
		api.Error(w, err)
		return
	}

	h.hub.BroadcastEvent(websockets.TypeOrderSent, order)

	api.RespondJSON(w, http.StatusOK, order)
}

// Finish completes a sent order
func (h *OrderHandler) Finish(w http.ResponseWriter, r *http.Request) {
	var req models.FinishOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.BadRequest(w, "invalid request body")
		return
	}

	order, err := h.orderService.Finish(r.Context(), req.OrderID)
	if err != nil {
		api.Error(w, err)
		return
	}

	h.hub.BroadcastEvent(websockets.TypeOrderFinished, order)

	api.RespondJSON(w, http.StatusOK, order)
}

// Delete removes an order and its items
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orderID, ok := queryID(w, r, "orderId")
	if !ok {
		return
	}

	if err := h.orderService.Delete(r.Context(), orderID); err != nil {
		api.Error(w, err)
		return
	}

	h.hub.BroadcastEvent(websockets.TypeOrderDeleted, map[string]string{"id": orderID.String()})

	api.RespondJSON(w, http.StatusOK, map[string]string{"message": "order deleted successfully"})
}

// queryID parses a UUID query parameter, writing a 400 when it is
// missing or malformed.
func queryID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		api.BadRequest(w, param+" is required")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		api.BadRequest(w, "invalid "+param)
		return uuid.Nil, false
	}

	return id, true
}
