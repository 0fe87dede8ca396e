package store

import "github.com/clearsolutions/user-manager/internal/domain"

// Default pagination parameters applied when a request leaves them unset.
const (
	DefaultPageNumber = 0
	DefaultPageSize   = 20
	MaxPageSize       = 100
)

// PageRequest describes the slice of a result set a caller wants.
// Page numbers are zero-based.
type PageRequest struct {
	Number int
	Size   int
}

// Normalize returns a copy of the request with out-of-range values
// replaced by defaults.
func (r PageRequest) Normalize() PageRequest {
	if r.Number < 0 {
		r.Number = DefaultPageNumber
	}
	if r.Size <= 0 {
		r.Size = DefaultPageSize
	}
	if r.Size > MaxPageSize {
		r.Size = MaxPageSize
	}
	return r
}

// Offset returns the row offset the request translates to.
func (r PageRequest) Offset() int {
	return r.Number * r.Size
}

// Page is one slice of a user result set together with the total number
// of rows matching the query across all pages.
type Page struct {
	Content    []*domain.User
	TotalCount int64
	Number     int
	Size       int
}
