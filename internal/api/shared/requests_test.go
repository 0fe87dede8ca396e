package shared

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taggedRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type selfValidatingRequest struct {
	Email string `json:"email" validate:"required,email"`
	err   error
}

func (r *selfValidatingRequest) Validate() error {
	return r.err
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes a well-formed body", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"jane@example.com"}`))

		var req taggedRequest
		require.NoError(t, DecodeJSON(r, &req))
		assert.Equal(t, "jane@example.com", req.Email)
	})

	t.Run("fails on malformed JSON", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":`))

		var req taggedRequest
		assert.Error(t, DecodeJSON(r, &req))
	})
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	t.Run("runs struct-tag validation", func(t *testing.T) {
		t.Parallel()

		assert.Error(t, ValidateRequest(&taggedRequest{Email: "not-an-email"}))
		assert.NoError(t, ValidateRequest(&taggedRequest{Email: "jane@example.com"}))
	})

	t.Run("a type's own Validate method takes precedence over tags", func(t *testing.T) {
		t.Parallel()

		customErr := errors.New("custom validation failed")

		// Tags would pass; the custom Validate decides.
		err := ValidateRequest(&selfValidatingRequest{Email: "jane@example.com", err: customErr})
		assert.ErrorIs(t, err, customErr)

		// Tags would fail; the custom Validate still decides.
		assert.NoError(t, ValidateRequest(&selfValidatingRequest{Email: "not-an-email"}))
	})
}
