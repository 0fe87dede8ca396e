package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clearsolutions/user-manager/internal/api"
	"github.com/clearsolutions/user-manager/internal/service"
	"github.com/clearsolutions/user-manager/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "service not found maps to 404",
			err:      service.NewUserNotFoundError(7),
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped service not found maps to 404",
			err:      fmt.Errorf("handling request: %w", service.NewUserNotFoundError(7)),
			expected: http.StatusNotFound,
		},
		{
			name:     "store not found maps to 404",
			err:      store.ErrUserNotFound,
			expected: http.StatusNotFound,
		},
		{
			name:     "already exists maps to 409",
			err:      service.NewEmailExistsError("a@x.com"),
			expected: http.StatusConflict,
		},
		{
			name:     "store duplicate maps to 409",
			err:      store.ErrEmailExists,
			expected: http.StatusConflict,
		},
		{
			name:     "invalid birth date maps to 400",
			err:      &service.InvalidBirthDateError{MinimumAge: 18},
			expected: http.StatusBadRequest,
		},
		{
			name:     "invalid entity maps to 400",
			err:      store.ErrInvalidEntity,
			expected: http.StatusBadRequest,
		},
		{
			name:     "unknown error maps to 500",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, api.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "User with ID: 7 was not found!",
		api.GetSafeErrorMessage(service.NewUserNotFoundError(7)))

	assert.Equal(t, "User with Email: a@x.com already exists!",
		api.GetSafeErrorMessage(service.NewEmailExistsError("a@x.com")))

	assert.Equal(t, "An unexpected error occurred",
		api.GetSafeErrorMessage(errors.New("pq: connection refused")),
		"internal error details must never reach clients")

	assert.Equal(t, "An unexpected error occurred", api.GetSafeErrorMessage(nil))
}
