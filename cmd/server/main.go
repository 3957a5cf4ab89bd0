package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/comanda-app/comanda-service/internal/api/handler"
	"github.com/comanda-app/comanda-service/internal/config"
	"github.com/comanda-app/comanda-service/internal/db"
	"github.com/comanda-app/comanda-service/internal/db/repository"
	"github.com/comanda-app/comanda-service/internal/router"
	"github.com/comanda-app/comanda-service/internal/service"
	"github.com/comanda-app/comanda-service/internal/storage"
	"github.com/comanda-app/comanda-service/internal/websockets"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	database, err := db.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run database migrations
	if err := database.Migrate(cfg.Database); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Initialize WebSocket hub
	hub := websockets.NewHub()
	go hub.Run()

	// Wire repositories and services
	repos := repository.NewRepositories(database)
	uploader := storage.NewDiskUploader(cfg.Uploads.Dir, cfg.Uploads.BaseURL)

	validator := service.NewValidator(repos.Category, repos.Order)
	guard := service.NewGuard(repos.User)
	authService := service.NewAuthService(repos.User, service.JWTConfig{
		Secret:    cfg.JWT.Secret,
		ExpiresIn: cfg.JWT.ExpiresIn,
	})
	userService := service.NewUserService(repos.User)
	catalogService := service.NewCatalogService(repos.Category, repos.Product, validator, uploader)
	orderService := service.NewOrderService(repos.Order, validator)

	// Initialize router
	r := router.New(router.Handlers{
		User:      handler.NewUserHandler(authService, userService),
		Catalog:   handler.NewCatalogHandler(catalogService),
		Order:     handler.NewOrderHandler(orderService, hub),
		WebSocket: handler.NewWebSocketHandler(hub),
		Health:    handler.NewHealthHandler(database),
	}, authService, guard, uploader.Dir())

	// Create HTTP server
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited properly")
}
