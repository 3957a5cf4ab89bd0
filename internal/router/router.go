package router

import (
	"net/http"

	"github.com/comanda-app/comanda-service/internal/api/handler"
	"github.com/comanda-app/comanda-service/internal/middleware"
	"github.com/comanda-app/comanda-service/internal/models"
	"github.com/comanda-app/comanda-service/internal/service"
)

// Handlers groups the HTTP handlers the router wires up
type Handlers struct {
	User      *handler.UserHandler
	Catalog   *handler.CatalogHandler
	Order     *handler.OrderHandler
	WebSocket *handler.WebSocketHandler
	Health    *handler.HealthHandler
}

// Router handles HTTP routing
type Router struct {
	mux     *http.ServeMux
	handler http.Handler
}

// New creates a new router. Routes below /category, /product, /order and
// /users require a bearer token; catalog and role mutations additionally
// pass through the access guard.
func New(h Handlers, auth *service.AuthService, guard *service.Guard, uploadsDir string) *Router {
	r := &Router{mux: http.NewServeMux()}

	authed := middleware.Auth(auth)
	adminOrMaster := middleware.RequireRole(guard, models.RoleAdmin)
	masterOnly := middleware.RequireRole(guard, models.RoleMaster)

	// Public routes
	r.mux.HandleFunc("GET /healthz", h.Health.Check)
	r.mux.HandleFunc("POST /users", h.User.Register)
	r.mux.HandleFunc("POST /session", h.User.Login)
	r.mux.HandleFunc("GET /ws", h.WebSocket.Serve)
	r.mux.Handle("GET /files/", http.StripPrefix("/files/", http.FileServer(http.Dir(uploadsDir))))

	// User routes
	r.mux.Handle("GET /me", authed(http.HandlerFunc(h.User.Me)))
	r.mux.Handle("GET /users", authed(adminOrMaster(http.HandlerFunc(h.User.List))))
	r.mux.Handle("PUT /users/role", authed(masterOnly(http.HandlerFunc(h.User.PromoteRole))))

	// Category routes
	r.mux.Handle("GET /category", authed(http.HandlerFunc(h.Catalog.ListCategories)))
	r.mux.Handle("POST /category", authed(adminOrMaster(http.HandlerFunc(h.Catalog.CreateCategory))))
	r.mux.Handle("PUT /category", authed(adminOrMaster(http.HandlerFunc(h.Catalog.UpdateCategory))))
	r.mux.Handle("DELETE /category/remove", authed(adminOrMaster(http.HandlerFunc(h.Catalog.RemoveCategory))))
	r.mux.Handle("GET /category/product", authed(http.HandlerFunc(h.Catalog.ListProductsByCategory)))

	// Product routes
	r.mux.Handle("POST /product", authed(adminOrMaster(http.HandlerFunc(h.Catalog.CreateProduct))))
	r.mux.Handle("GET /product", authed(http.HandlerFunc(h.Catalog.ListProducts)))
	r.mux.Handle("PUT /product", authed(adminOrMaster(http.HandlerFunc(h.Catalog.UpdateProduct))))
	r.mux.Handle("DELETE /product", authed(adminOrMaster(http.HandlerFunc(h.Catalog.RemoveProduct))))

	// Order routes
	r.mux.Handle("POST /order", authed(http.HandlerFunc(h.Order.Create)))
	r.mux.Handle("GET /orders", authed(http.HandlerFunc(h.Order.List)))
	r.mux.Handle("POST /order/add", authed(http.HandlerFunc(h.Order.AddItem)))
	r.mux.Handle("DELETE /order/remove", authed(http.HandlerFunc(h.Order.RemoveItem)))
	r.mux.Handle("GET /order/detail", authed(http.HandlerFunc(h.Order.Detail)))
	r.mux.Handle("PUT /order/send", authed(http.HandlerFunc(h.Order.Send)))
	r.mux.Handle("PUT /order/finish", authed(http.HandlerFunc(h.Order.Finish)))
	r.mux.Handle("DELETE /order", authed(http.HandlerFunc(h.Order.Delete)))

	r.handler = middleware.Logger(r.mux)

	return r
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}
