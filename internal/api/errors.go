package api

import (
	"errors"
	"net/http"

	"github.com/clearsolutions/user-manager/internal/api/shared"
	"github.com/clearsolutions/user-manager/internal/service"
	"github.com/clearsolutions/user-manager/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var notFound *service.NotFoundError
	var alreadyExists *service.AlreadyExistsError
	var invalidBirthDate *service.InvalidBirthDateError

	switch {
	// Not found errors
	case errors.As(err, &notFound),
		store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case errors.As(err, &alreadyExists),
		store.IsDuplicateError(err):
		return http.StatusConflict

	// Bad request errors
	case errors.As(err, &invalidBirthDate),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. The typed service failures carry caller-facing
// messages by contract; anything else collapses to a generic message.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var notFound *service.NotFoundError
	var alreadyExists *service.AlreadyExistsError
	var invalidBirthDate *service.InvalidBirthDateError

	switch {
	case errors.As(err, &notFound):
		return notFound.Error()

	case errors.As(err, &alreadyExists):
		return alreadyExists.Error()

	case errors.As(err, &invalidBirthDate):
		return invalidBirthDate.Error()

	case store.IsNotFoundError(err):
		return "User not found"

	case store.IsDuplicateError(err):
		return "Email already exists"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleServiceError writes the response for an error returned by the
// service layer, mapping it to a status code and a safe message.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
