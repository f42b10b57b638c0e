package main

import (
	"context"
	"log"

	"storefront-bot/internal/config"
	"storefront-bot/internal/pkg/logger"
	"storefront-bot/internal/repository/unitofwork"
	"storefront-bot/internal/service"
	"storefront-bot/pkg/audit"
	"storefront-bot/pkg/database"
)

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, false)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding catalog...")
	seedCatalog(db)

	if cfg.App.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin account")
		return
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	authService := service.NewAuthService(
		uowFactory,
		audit.NewBusPublisher(nil, logger.NewNopLogger()),
		cfg.Auth.JwtSecret,
		cfg.Auth.JwtTTL,
	)
	created, err := authService.EnsureAdmin(context.Background(), cfg.App.AdminUsername, cfg.App.AdminPassword)
	if err != nil {
		log.Fatalf("Error: Failed to seed admin: %v", err)
	}
	if created {
		log.Printf("Admin %q created", cfg.App.AdminUsername)
	} else {
		log.Printf("Admin %q already exists", cfg.App.AdminUsername)
	}
}
