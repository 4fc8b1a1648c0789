package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobdeck/internal/api/routes"
	"jobdeck/internal/auth"
	"jobdeck/internal/blob"
	"jobdeck/internal/config"
	"jobdeck/internal/interchange"
	"jobdeck/internal/logging"
	"jobdeck/internal/store"
	"jobdeck/internal/tracker"
	"jobdeck/pkg/utils"

	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting Jobdeck")

	// Open the database and run migrations
	db, err := store.Open(cfg)
	if err != nil {
		logger.Fatal("Failed to open database", map[string]interface{}{"error": err.Error()})
	}
	stores := store.NewStores(db)

	// Blob storage for document uploads
	blobStore, err := blob.NewSpacesStore(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize blob storage", map[string]interface{}{"error": err.Error()})
	}

	// Redis backs the per-owner rate counters
	redisClient := utils.NewRedisClient(cfg)
	defer redisClient.Close()

	// Token verification against the auth service
	verifier, err := auth.NewHTTPVerifier(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize auth verifier", map[string]interface{}{"error": err.Error()})
	}

	// Domain services
	jobService := tracker.NewJobService(stores.Jobs, stores.Events)
	taskService := tracker.NewTaskService(stores.Tasks, stores.Events)
	noteService := tracker.NewNoteService(stores.Notes, stores.Events)
	contactService := tracker.NewContactService(stores.Contacts)
	documentService := tracker.NewDocumentService(stores.Documents, stores.Events, blobStore)
	importer := interchange.NewImporter(stores.Jobs, stores.Events, stores.Notes)
	exporter := interchange.NewExporter(stores.Jobs, stores.Events, stores.Tasks, stores.Contacts, stores.Documents)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	routes.SetupRoutes(e, routes.Dependencies{
		Config:    cfg,
		DB:        db,
		Redis:     redisClient,
		Verifier:  verifier,
		Jobs:      jobService,
		Tasks:     taskService,
		Notes:     noteService,
		Contacts:  contactService,
		Documents: documentService,
		Importer:  importer,
		Exporter:  exporter,
	})

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Error("Error closing database", map[string]interface{}{"error": err.Error()})
			}
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Fatal("Server failed to start", map[string]interface{}{"error": err.Error()})
	}
}
