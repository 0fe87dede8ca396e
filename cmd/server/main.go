// Package main implements the entry point for the user-manager API
// server, which maintains a canonical, validated store of user identity
// data and exposes it over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/clearsolutions/user-manager/internal/config"
	"github.com/clearsolutions/user-manager/internal/platform/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate", false, "apply pending database migrations and exit")
	flag.Parse()

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.runMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if *migrateOnly {
		app.logger.Info("migrations applied, exiting")
		return
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components:
// logging, the database pool, the store, and the service layer.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"minimum_age", cfg.User.MinimumAge)

	return newApplication(cfg, appLogger)
}
