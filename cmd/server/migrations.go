package main

import (
	"fmt"

	"github.com/pressly/goose/v3"
)

// migrationsDir is the location of the goose SQL migrations relative to
// the working directory.
const migrationsDir = "migrations"

// runMigrations applies any pending goose migrations against the
// application's database. Called on every startup so the schema is always
// current before the server accepts requests.
func (app *application) runMigrations() error {
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(app.db, migrationsDir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(app.db)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	app.logger.Info("Database migrations applied", "version", version)
	return nil
}
