package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/clearsolutions/user-manager/internal/config"
	"github.com/clearsolutions/user-manager/internal/domain/policy"
	"github.com/clearsolutions/user-manager/internal/platform/postgres"
	"github.com/clearsolutions/user-manager/internal/service"
)

// application holds the wired dependencies of the running server.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	db          *sql.DB
	userService service.UserService
}

// newApplication connects to the database and wires the store and service
// layers together.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, logger)
	agePolicy := policy.New(cfg.User.MinimumAge)
	userService := service.NewUserService(userStore, db, agePolicy, logger)

	return &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		userService: userService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
