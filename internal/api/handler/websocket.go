package handler

import (
	"net/http"

	"github.com/comanda-app/comanda-service/internal/api"
	"github.com/comanda-app/comanda-service/internal/websockets"
)

// WebSocketHandler upgrades dashboard connections
type WebSocketHandler struct {
	hub *websockets.Hub
}

// NewWebSocketHandler creates a new websocket handler
func NewWebSocketHandler(hub *websockets.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// Serve upgrades the HTTP connection and registers the client with the hub
func (h *WebSocketHandler) Serve(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		api.BadRequest(w, "user_id is required")
		return
	}

	clientType := websockets.ClientType(r.URL.Query().Get("client_type"))
	if !websockets.ValidClientType(clientType) {
		api.BadRequest(w, "invalid client_type")
		return
	}

	conn, err := websockets.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already written the error to the response.
		return
	}

	websockets.ServeWs(h.hub, conn, userID, clientType)
}
