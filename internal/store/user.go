package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/clearsolutions/user-manager/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// FindByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id int64) (*domain.User, error)

	// ExistsByID reports whether a user with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// ExistsByEmail reports whether any user has the given email address.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save persists the user. A zero ID inserts a new row and assigns the
	// identifier on the returned entity; a non-zero ID updates the existing row.
	// Returns ErrEmailExists if the write violates the email unique constraint.
	// Returns ErrUserNotFound when updating a row that does not exist.
	// Returns validation errors from the domain User if data is invalid.
	Save(ctx context.Context, user *domain.User) (*domain.User, error)

	// DeleteByID removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	// This operation is permanent and cannot be undone.
	DeleteByID(ctx context.Context, id int64) error

	// FindByBirthDateBetween retrieves the requested page of users whose
	// birth date falls within the inclusive [from, to] range. A nil bound
	// leaves the range open on that side. The returned page carries the
	// total match count across all pages.
	FindByBirthDateBetween(ctx context.Context, from, to *time.Time, page PageRequest) (*Page, error)

	// WithTx returns a new UserStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}
