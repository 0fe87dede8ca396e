package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clearsolutions/user-manager/internal/domain"
	"github.com/clearsolutions/user-manager/internal/platform/logger"
	"github.com/clearsolutions/user-manager/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx implements store.UserStore.WithTx
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:     tx,
		logger: s.logger,
	}
}

// FindByID implements store.UserStore.FindByID
// It retrieves a user by its unique ID.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving user by ID", slog.Int64("user_id", id))

	query := `
		SELECT id, first_name, last_name, email, birth_date, address, phone, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.Int64("user_id", id))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, err
	}

	return user, nil
}

// ExistsByID implements store.UserStore.ExistsByID
func (s *PostgresUserStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		log.Error("failed to check user existence by ID",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return false, err
	}

	return exists, nil
}

// ExistsByEmail implements store.UserStore.ExistsByEmail
func (s *PostgresUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		log.Error("failed to check user existence by email",
			slog.String("error", err.Error()))
		return false, err
	}

	return exists, nil
}

// Save implements store.UserStore.Save
// A user with a zero ID is inserted and receives its identifier from the
// bigserial column; a non-zero ID updates the existing row.
// Returns store.ErrEmailExists if the write hits the email unique constraint.
// Returns store.ErrUserNotFound when updating a row that does not exist.
func (s *PostgresUserStore) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during save",
			slog.String("error", err.Error()),
			slog.Int64("user_id", user.ID))
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	if user.ID == 0 {
		return s.insert(ctx, log, user)
	}
	return s.update(ctx, log, user)
}

func (s *PostgresUserStore) insert(ctx context.Context, log *slog.Logger, user *domain.User) (*domain.User, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (first_name, last_name, email, birth_date, address, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		user.FirstName,
		user.LastName,
		user.Email,
		user.BirthDate,
		user.Address,
		user.Phone,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("unique constraint violation during user creation",
				slog.String("error", err.Error()))
			return nil, store.ErrEmailExists
		}

		log.Error("failed to create user",
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Info("user created successfully",
		slog.Int64("user_id", user.ID))
	return user, nil
}

func (s *PostgresUserStore) update(ctx context.Context, log *slog.Logger, user *domain.User) (*domain.User, error) {
	user.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, email = $3, birth_date = $4,
		    address = $5, phone = $6, updated_at = $7
		WHERE id = $8
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		user.FirstName,
		user.LastName,
		user.Email,
		user.BirthDate,
		user.Address,
		user.Phone,
		user.UpdatedAt,
		user.ID,
	)

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("unique constraint violation during user update",
				slog.Int64("user_id", user.ID),
				slog.String("error", err.Error()))
			return nil, store.ErrEmailExists
		}

		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", user.ID))
		return nil, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("user_id", user.ID))
		return nil, err
	}

	if rowsAffected == 0 {
		log.Debug("user not found for update",
			slog.Int64("user_id", user.ID))
		return nil, store.ErrUserNotFound
	}

	log.Info("user updated successfully",
		slog.Int64("user_id", user.ID))
	return user, nil
}

// DeleteByID implements store.UserStore.DeleteByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM users WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("user not found for delete", slog.Int64("user_id", id))
		return store.ErrUserNotFound
	}

	log.Info("user deleted successfully", slog.Int64("user_id", id))
	return nil
}

// FindByBirthDateBetween implements store.UserStore.FindByBirthDateBetween
// Both bounds are inclusive; a nil bound leaves the range open on that side.
// The page carries the total match count across all pages.
func (s *PostgresUserStore) FindByBirthDateBetween(
	ctx context.Context,
	from, to *time.Time,
	page store.PageRequest,
) (*store.Page, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	page = page.Normalize()

	log.Debug("finding users by birth date range",
		slog.Any("from", from),
		slog.Any("to", to),
		slog.Int("page", page.Number),
		slog.Int("size", page.Size))

	countQuery := `
		SELECT COUNT(*)
		FROM users
		WHERE ($1::date IS NULL OR birth_date >= $1)
		  AND ($2::date IS NULL OR birth_date <= $2)
	`

	var total int64
	if err := s.db.QueryRowContext(ctx, countQuery, from, to).Scan(&total); err != nil {
		log.Error("failed to count users by birth date range",
			slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		SELECT id, first_name, last_name, email, birth_date, address, phone, created_at, updated_at
		FROM users
		WHERE ($1::date IS NULL OR birth_date >= $1)
		  AND ($2::date IS NULL OR birth_date <= $2)
		ORDER BY id
		LIMIT $3 OFFSET $4
	`

	rows, err := s.db.QueryContext(ctx, query, from, to, page.Size, page.Offset())
	if err != nil {
		log.Error("failed to query users by birth date range",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	users := []*domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Error("failed to scan user row",
				slog.String("error", err.Error()))
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("found users by birth date range",
		slog.Int("count", len(users)),
		slog.Int64("total", total))

	return &store.Page{
		Content:    users,
		TotalCount: total,
		Number:     page.Number,
		Size:       page.Size,
	}, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanUser.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one users row into a domain.User. Address and phone are
// nullable columns and map to empty strings.
func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	var address, phone sql.NullString

	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.BirthDate,
		&address,
		&phone,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Address = address.String
	user.Phone = phone.String
	user.BirthDate = domain.NormalizeDate(user.BirthDate)
	return &user, nil
}
