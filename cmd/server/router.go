package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/clearsolutions/user-manager/internal/api"
	apiMiddleware "github.com/clearsolutions/user-manager/internal/api/middleware"
	"github.com/clearsolutions/user-manager/internal/domain/policy"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	agePolicy := policy.New(app.config.User.MinimumAge)
	userHandler := api.NewUserHandler(app.userService, agePolicy, app.logger)

	// Register routes
	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", userHandler.ListByBirthDateRange)
		r.Post("/", userHandler.Create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", userHandler.GetByID)
			r.Put("/", userHandler.Update)
			r.Delete("/", userHandler.Delete)

			r.Patch("/first-name", userHandler.UpdateFirstName)
			r.Patch("/last-name", userHandler.UpdateLastName)
			r.Patch("/email", userHandler.UpdateEmail)
			r.Patch("/birth-date", userHandler.UpdateBirthDate)
			r.Patch("/address", userHandler.UpdateAddress)
			r.Patch("/phone", userHandler.UpdatePhone)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
