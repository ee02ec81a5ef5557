package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "carrental-backend/internal/api/http"
	"carrental-backend/internal/config"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository/postgres"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Car Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.Email.SendGridAPIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
	)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	vehicleSvc := service.NewVehicleService(store.VehicleRepository, store.LocationRepository)
	catalogSvc := service.NewCatalogService(
		store.ReferenceRepository,
		store.LocationRepository,
		store.AdditionalProductRepository,
	)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.VehicleRepository,
		store.LocationRepository,
		store.UserRepository,
		store.AdditionalProductRepository,
		store.PaymentRepository,
		emailSvc,
	)

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.Services{
		Auth:    authSvc,
		Rental:  rentalSvc,
		Vehicle: vehicleSvc,
		Catalog: catalogSvc,
	}, tokenManager, store.ActionLogRepository)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
	logger.Info("HTTP server stopped. Goodbye!")
}
