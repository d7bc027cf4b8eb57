package main

import (
	"context"
	"log"

	"github.com/dtcdev/invaccess/internal/config"
	"github.com/dtcdev/invaccess/internal/db"
	"github.com/dtcdev/invaccess/internal/logging"
	"github.com/dtcdev/invaccess/internal/service"
	"github.com/dtcdev/invaccess/internal/store"
	"github.com/dtcdev/invaccess/internal/web"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	if err := db.Seed(context.Background(), database); err != nil {
		logger.Error("failed to seed demo data", "error", err)
		return
	}

	authService := service.NewAuthService(store.NewUserStore(database), cfg.SessionTTL, logger)
	bookingService := service.NewBookingService(
		store.NewCatalogStore(database),
		store.NewAppointmentStore(database),
		store.NewRequestStore(database),
		logger,
	)
	inventoryService := service.NewInventoryService(
		store.NewItemStore(database),
		store.NewTransactionStore(database),
		logger,
	)

	server := web.NewServer(authService, bookingService, inventoryService, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}
