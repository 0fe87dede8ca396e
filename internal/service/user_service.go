package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clearsolutions/user-manager/internal/domain"
	"github.com/clearsolutions/user-manager/internal/domain/policy"
	"github.com/clearsolutions/user-manager/internal/platform/logger"
	"github.com/clearsolutions/user-manager/internal/store"
)

// UserService orchestrates the user entity lifecycle against the user
// store, enforcing existence before mutation, email uniqueness before
// email changes, and age eligibility before birth-date changes.
type UserService interface {
	// Create persists a new user. The candidate must not carry an ID; the
	// store assigns one. Returns AlreadyExistsError if the email is taken.
	Create(ctx context.Context, candidate *domain.User) (*domain.User, error)

	// GetByID returns the user with the given ID.
	// Returns NotFoundError if no such user exists.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// Update overwrites every mutable field of the stored user with the
	// replacement's values, preserving the stored identifier.
	// Returns NotFoundError if no such user exists.
	Update(ctx context.Context, id int64, replacement *domain.User) (*domain.User, error)

	// DeleteByID removes the user with the given ID.
	// Returns NotFoundError if no such user exists; a second delete on the
	// same ID therefore fails.
	DeleteByID(ctx context.Context, id int64) error

	// FindByBirthDateRange returns the requested page of users whose birth
	// date falls within the inclusive range. Absent bounds are open-ended.
	FindByBirthDateRange(ctx context.Context, dateRange domain.DateRange, page store.PageRequest) (*store.Page, error)

	// UpdateFirstName changes only the user's first name.
	UpdateFirstName(ctx context.Context, id int64, firstName string) (*domain.User, error)

	// UpdateLastName changes only the user's last name.
	UpdateLastName(ctx context.Context, id int64, lastName string) (*domain.User, error)

	// UpdateEmail changes only the user's email. Returns AlreadyExistsError
	// if the email belongs to a different existing user; setting a user's
	// email to its own current value succeeds.
	UpdateEmail(ctx context.Context, id int64, email string) (*domain.User, error)

	// UpdateBirthdate changes only the user's birth date. Returns
	// InvalidBirthDateError if the date fails the age-eligibility policy.
	UpdateBirthdate(ctx context.Context, id int64, birthDate time.Time) (*domain.User, error)

	// UpdateAddress changes only the user's address.
	UpdateAddress(ctx context.Context, id int64, address string) (*domain.User, error)

	// UpdatePhone changes only the user's phone.
	UpdatePhone(ctx context.Context, id int64, phone string) (*domain.User, error)
}

// Verify interface compliance at compile time
var _ UserService = (*userServiceImpl)(nil)

// userServiceImpl implements the UserService interface.
type userServiceImpl struct {
	userStore store.UserStore
	db        *sql.DB
	agePolicy policy.AgePolicy
	logger    *slog.Logger
}

// NewUserService creates a new UserService implementation. Mutating
// operations run inside a transaction on db; a nil db runs them against
// the store directly, for stores that are not backed by database/sql.
func NewUserService(
	userStore store.UserStore,
	db *sql.DB,
	agePolicy policy.AgePolicy,
	logger *slog.Logger,
) UserService {
	if userStore == nil {
		panic("userStore cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		userStore: userStore,
		db:        db,
		agePolicy: agePolicy,
		logger:    logger.With(slog.String("component", "user_service")),
	}
}

// inTx runs fn against a transaction-scoped store, committing on nil and
// rolling back on error, so a read-check-write sequence either lands
// fully or not at all.
func (s *userServiceImpl) inTx(ctx context.Context, fn func(ctx context.Context, txStore store.UserStore) error) error {
	if s.db == nil {
		return fn(ctx, s.userStore)
	}

	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, s.userStore.WithTx(tx))
	})
}

// Create implements UserService.Create.
// It rejects candidates whose email is already in use, then persists the
// candidate. The store assigns the identifier. The application-level
// uniqueness pre-check is backstopped by the unique index on users.email,
// which the store surfaces as ErrEmailExists on a losing race.
func (s *userServiceImpl) Create(ctx context.Context, candidate *domain.User) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var created *domain.User
	err := s.inTx(ctx, func(ctx context.Context, txStore store.UserStore) error {
		exists, err := txStore.ExistsByEmail(ctx, candidate.Email)
		if err != nil {
			log.Error("failed to check email existence",
				slog.String("error", err.Error()))
			return fmt.Errorf("failed to check email existence: %w", err)
		}
		if exists {
			log.Warn("email already in use during create")
			return NewEmailExistsError(candidate.Email)
		}

		// The candidate must not bring its own identifier; the store assigns it.
		candidate.ID = 0

		created, err = txStore.Save(ctx, candidate)
		if err != nil {
			if errors.Is(err, store.ErrEmailExists) {
				return NewEmailExistsError(candidate.Email)
			}
			log.Error("failed to create user",
				slog.String("error", err.Error()))
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug("user created", slog.Int64("user_id", created.ID))
	return created, nil
}

// GetByID implements UserService.GetByID.
func (s *userServiceImpl) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("user not found", slog.Int64("user_id", id))
			return nil, NewUserNotFoundError(id)
		}
		log.Error("failed to get user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// Update implements UserService.Update.
// Every mutable field of the stored user is overwritten with the
// replacement's values; the identifier is preserved from the existing
// record. This path does not re-check email uniqueness or age eligibility
// against the new values; the unique index on users.email remains the
// backstop for a colliding email.
func (s *userServiceImpl) Update(ctx context.Context, id int64, replacement *domain.User) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var updated *domain.User
	err := s.inTx(ctx, func(ctx context.Context, txStore store.UserStore) error {
		existing, err := txStore.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				log.Debug("user not found for update", slog.Int64("user_id", id))
				return NewUserNotFoundError(id)
			}
			log.Error("failed to get user for update",
				slog.String("error", err.Error()),
				slog.Int64("user_id", id))
			return fmt.Errorf("failed to get user: %w", err)
		}

		existing.FirstName = replacement.FirstName
		existing.LastName = replacement.LastName
		existing.Email = replacement.Email
		existing.BirthDate = replacement.BirthDate
		existing.Address = replacement.Address
		existing.Phone = replacement.Phone

		updated, err = txStore.Save(ctx, existing)
		if err != nil {
			if errors.Is(err, store.ErrEmailExists) {
				return NewEmailExistsError(replacement.Email)
			}
			log.Error("failed to update user",
				slog.String("error", err.Error()),
				slog.Int64("user_id", id))
			return fmt.Errorf("failed to update user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug("user updated", slog.Int64("user_id", id))
	return updated, nil
}

// DeleteByID implements UserService.DeleteByID.
func (s *userServiceImpl) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.inTx(ctx, func(ctx context.Context, txStore store.UserStore) error {
		exists, err := txStore.ExistsByID(ctx, id)
		if err != nil {
			log.Error("failed to check user existence",
				slog.String("error", err.Error()),
				slog.Int64("user_id", id))
			return fmt.Errorf("failed to check user existence: %w", err)
		}
		if !exists {
			log.Debug("user not found for delete", slog.Int64("user_id", id))
			return NewUserNotFoundError(id)
		}

		if err := txStore.DeleteByID(ctx, id); err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				return NewUserNotFoundError(id)
			}
			log.Error("failed to delete user",
				slog.String("error", err.Error()),
				slog.Int64("user_id", id))
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Debug("user deleted", slog.Int64("user_id", id))
	return nil
}

// FindByBirthDateRange implements UserService.FindByBirthDateRange.
// The range's bounds are passed through to the store as-is; the service
// does no further filtering of the page the store produces.
func (s *userServiceImpl) FindByBirthDateRange(
	ctx context.Context,
	dateRange domain.DateRange,
	page store.PageRequest,
) (*store.Page, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.userStore.FindByBirthDateBetween(ctx, dateRange.From, dateRange.To, page)
	if err != nil {
		log.Error("failed to find users by birth date range",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to find users by birth date range: %w", err)
	}

	return result, nil
}

// UpdateFirstName implements UserService.UpdateFirstName.
func (s *userServiceImpl) UpdateFirstName(ctx context.Context, id int64, firstName string) (*domain.User, error) {
	return s.applyPatch(ctx, id, func(ctx context.Context, _ store.UserStore, user *domain.User) error {
		user.FirstName = firstName
		return nil
	})
}

// UpdateLastName implements UserService.UpdateLastName.
func (s *userServiceImpl) UpdateLastName(ctx context.Context, id int64, lastName string) (*domain.User, error) {
	return s.applyPatch(ctx, id, func(ctx context.Context, _ store.UserStore, user *domain.User) error {
		user.LastName = lastName
		return nil
	})
}

// UpdateEmail implements UserService.UpdateEmail.
// The uniqueness check excludes the user being updated: setting an email
// to its own current value is not a conflict.
func (s *userServiceImpl) UpdateEmail(ctx context.Context, id int64, email string) (*domain.User, error) {
	return s.applyPatch(ctx, id, func(ctx context.Context, txStore store.UserStore, user *domain.User) error {
		if user.Email == email {
			return nil
		}

		exists, err := txStore.ExistsByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("failed to check email existence: %w", err)
		}
		if exists {
			return NewEmailExistsError(email)
		}

		user.Email = email
		return nil
	})
}

// UpdateBirthdate implements UserService.UpdateBirthdate.
// The new date must satisfy the age-eligibility policy as of today.
func (s *userServiceImpl) UpdateBirthdate(ctx context.Context, id int64, birthDate time.Time) (*domain.User, error) {
	return s.applyPatch(ctx, id, func(ctx context.Context, _ store.UserStore, user *domain.User) error {
		birthDate = domain.NormalizeDate(birthDate)
		if !s.agePolicy.IsAdult(birthDate, time.Now().UTC()) {
			return &InvalidBirthDateError{
				BirthDate:  birthDate,
				MinimumAge: s.agePolicy.MinimumAge,
			}
		}

		user.BirthDate = birthDate
		return nil
	})
}

// UpdateAddress implements UserService.UpdateAddress.
func (s *userServiceImpl) UpdateAddress(ctx context.Context, id int64, address string) (*domain.User, error) {
	return s.applyPatch(ctx, id, func(ctx context.Context, _ store.UserStore, user *domain.User) error {
		user.Address = address
		return nil
	})
}

// UpdatePhone implements UserService.UpdatePhone.
func (s *userServiceImpl) UpdatePhone(ctx context.Context, id int64, phone string) (*domain.User, error) {
	return s.applyPatch(ctx, id, func(ctx context.Context, _ store.UserStore, user *domain.User) error {
		user.Phone = phone
		return nil
	})
}

// applyPatch is the shared shape of all single-field updates: look up the
// user, apply the mutation in memory, persist, return the updated entity.
// The whole sequence runs in one transaction, and the mutation runs before
// any write, so a failing precondition leaves the stored entity untouched.
// Mutations that need extra reads (the email uniqueness check) use the
// transaction-scoped store they are handed.
func (s *userServiceImpl) applyPatch(
	ctx context.Context,
	id int64,
	mutate func(ctx context.Context, txStore store.UserStore, user *domain.User) error,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var updated *domain.User
	err := s.inTx(ctx, func(ctx context.Context, txStore store.UserStore) error {
		user, err := txStore.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				log.Debug("user not found for patch", slog.Int64("user_id", id))
				return NewUserNotFoundError(id)
			}
			log.Error("failed to get user for patch",
				slog.String("error", err.Error()),
				slog.Int64("user_id", id))
			return fmt.Errorf("failed to get user: %w", err)
		}

		if err := mutate(ctx, txStore, user); err != nil {
			return err
		}

		updated, err = txStore.Save(ctx, user)
		if err != nil {
			if errors.Is(err, store.ErrEmailExists) {
				return NewEmailExistsError(user.Email)
			}
			log.Error("failed to save patched user",
				slog.String("error", err.Error()),
				slog.Int64("user_id", id))
			return fmt.Errorf("failed to save user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug("user patched", slog.Int64("user_id", id))
	return updated, nil
}
