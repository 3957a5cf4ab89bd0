package handler

import (
	"encoding/json"
	"net/http"

	"github.com/comanda-app/comanda-service/internal/api"
	"github.com/comanda-app/comanda-service/internal/middleware"
	"github.com/comanda-app/comanda-service/internal/models"
	"github.com/comanda-app/comanda-service/internal/service"
)

// UserHandler handles user and session requests
type UserHandler struct {
	authService *service.AuthService
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *service.AuthService, userService *service.UserService) *UserHandler {
	return &UserHandler{
		authService: authService,
		userService: userService,
	}
}

// Register creates a new user account
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.BadRequest(w, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		api.BadRequest(w, "name, email and password are required")
		return
	}

	user, err := h.authService.Register(r.Context(), req)
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusCreated, user)
}

// Login authenticates a user and returns a token
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.BadRequest(w, "invalid request body")
		return
	}

	token, user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		api.Error(w, err)
		return
	}

	response := struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}{
		Token: token,
		User:  *user,
	}

	api.RespondJSON(w, http.StatusOK, response)
}

// Me returns the authenticated caller's details
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		api.Unauthorized(w, "user does not have permission")
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, user)
}

// List returns all users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, users)
}

// PromoteRole promotes a STAFF user to ADMIN
func (h *UserHandler) PromoteRole(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.BadRequest(w, "invalid request body")
		return
	}

	user, err := h.userService.PromoteRole(r.Context(), req.UserID)
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, user)
}
