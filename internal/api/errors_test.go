package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/comanda-app/comanda-service/internal/apperr"
)

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"not found", apperr.NotFound("order not found"), http.StatusNotFound, "order not found"},
		{"conflict", apperr.Conflict("order has already been sent"), http.StatusConflict, "order has already been sent"},
		{"invalid", apperr.Invalid("amount must be positive"), http.StatusBadRequest, "amount must be positive"},
		{"unauthorized", apperr.Unauthorized("user does not have permission"), http.StatusUnauthorized, "user does not have permission"},
		{"internal", apperr.Internal("failed to list orders", errors.New("pq: timeout")), http.StatusInternalServerError, "failed to list orders"},
		{"unclassified", errors.New("pq: timeout"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Error(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var body errorBody
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Error != tt.wantBody {
				t.Errorf("body.error = %q, want %q", body.Error, tt.wantBody)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
		})
	}
}

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusCreated, map[string]string{"message": "ok"})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "ok" {
		t.Errorf("body = %v", body)
	}
}
