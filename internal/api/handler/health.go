package handler

import (
	"net/http"

	"github.com/comanda-app/comanda-service/internal/api"
	"github.com/comanda-app/comanda-service/internal/db"
)

// HealthHandler reports service liveness
type HealthHandler struct {
	database *db.Postgres
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(database *db.Postgres) *HealthHandler {
	return &HealthHandler{database: database}
}

// Check pings the database and reports service health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.database.HealthCheck(r.Context()); err != nil {
		api.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	api.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
