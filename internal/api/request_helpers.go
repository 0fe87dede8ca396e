package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/clearsolutions/user-manager/internal/store"
	"github.com/go-chi/chi/v5"
)

// getPathID extracts the numeric user identifier from the URL path.
// Identifiers are positive integers; anything else is a malformed request.
func getPathID(r *http.Request) (int64, error) {
	pathParam := chi.URLParam(r, "id")
	if pathParam == "" {
		return 0, fmt.Errorf("id path parameter is required")
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("id must be a positive integer")
	}

	return id, nil
}

// getPageRequest reads page and size query parameters, applying the store
// defaults when they are absent or malformed.
func getPageRequest(r *http.Request) store.PageRequest {
	page := store.PageRequest{
		Number: store.DefaultPageNumber,
		Size:   store.DefaultPageSize,
	}

	if raw := r.URL.Query().Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			page.Number = n
		}
	}

	if raw := r.URL.Query().Get("size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page.Size = n
		}
	}

	return page.Normalize()
}
