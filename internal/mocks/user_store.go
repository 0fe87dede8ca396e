// Package mocks provides hand-written test doubles for the store
// interfaces.
package mocks

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/clearsolutions/user-manager/internal/domain"
	"github.com/clearsolutions/user-manager/internal/store"
)

// MockUserStore implements store.UserStore for testing.
// Each method can be overridden through its function field; otherwise a
// default in-memory implementation backed by the Users map is used.
type MockUserStore struct {
	// Function fields for customizable behavior
	FindByIDFn               func(ctx context.Context, id int64) (*domain.User, error)
	ExistsByIDFn             func(ctx context.Context, id int64) (bool, error)
	ExistsByEmailFn          func(ctx context.Context, email string) (bool, error)
	SaveFn                   func(ctx context.Context, user *domain.User) (*domain.User, error)
	DeleteByIDFn             func(ctx context.Context, id int64) error
	FindByBirthDateBetweenFn func(ctx context.Context, from, to *time.Time, page store.PageRequest) (*store.Page, error)

	// Data for the default implementation
	Users  map[int64]*domain.User
	NextID int64

	// Call counters for asserting interaction
	SaveCalls   int
	DeleteCalls int
}

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users:  make(map[int64]*domain.User),
		NextID: 1,
	}
}

// Ensure MockUserStore implements store.UserStore
var _ store.UserStore = (*MockUserStore)(nil)

// Seed inserts a user directly into the mock's backing map, assigning an
// ID if the user has none. Returns the stored user.
func (m *MockUserStore) Seed(user *domain.User) *domain.User {
	if user.ID == 0 {
		user.ID = m.NextID
	}
	if user.ID >= m.NextID {
		m.NextID = user.ID + 1
	}
	copied := *user
	m.Users[copied.ID] = &copied
	return user
}

// FindByID implements the UserStore interface.
func (m *MockUserStore) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}

	user, ok := m.Users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}

	// Return a copy so callers can't mutate stored state without Save.
	copied := *user
	return &copied, nil
}

// ExistsByID implements the UserStore interface.
func (m *MockUserStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if m.ExistsByIDFn != nil {
		return m.ExistsByIDFn(ctx, id)
	}

	_, ok := m.Users[id]
	return ok, nil
}

// ExistsByEmail implements the UserStore interface.
func (m *MockUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFn != nil {
		return m.ExistsByEmailFn(ctx, email)
	}

	for _, user := range m.Users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// Save implements the UserStore interface.
func (m *MockUserStore) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	m.SaveCalls++

	if m.SaveFn != nil {
		return m.SaveFn(ctx, user)
	}

	if user.ID == 0 {
		// Insert: enforce the email unique constraint like the real store.
		for _, existing := range m.Users {
			if existing.Email == user.Email {
				return nil, store.ErrEmailExists
			}
		}
		user.ID = m.NextID
		m.NextID++
	} else {
		existing, ok := m.Users[user.ID]
		if !ok {
			return nil, store.ErrUserNotFound
		}
		if existing.Email != user.Email {
			for _, other := range m.Users {
				if other.ID != user.ID && other.Email == user.Email {
					return nil, store.ErrEmailExists
				}
			}
		}
	}

	copied := *user
	m.Users[copied.ID] = &copied
	return user, nil
}

// DeleteByID implements the UserStore interface.
func (m *MockUserStore) DeleteByID(ctx context.Context, id int64) error {
	m.DeleteCalls++

	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, id)
	}

	if _, ok := m.Users[id]; !ok {
		return store.ErrUserNotFound
	}

	delete(m.Users, id)
	return nil
}

// FindByBirthDateBetween implements the UserStore interface.
func (m *MockUserStore) FindByBirthDateBetween(
	ctx context.Context,
	from, to *time.Time,
	page store.PageRequest,
) (*store.Page, error) {
	if m.FindByBirthDateBetweenFn != nil {
		return m.FindByBirthDateBetweenFn(ctx, from, to, page)
	}

	page = page.Normalize()

	var matched []*domain.User
	for _, user := range m.Users {
		if from != nil && user.BirthDate.Before(*from) {
			continue
		}
		if to != nil && user.BirthDate.After(*to) {
			continue
		}
		copied := *user
		matched = append(matched, &copied)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	start := page.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + page.Size
	if end > len(matched) {
		end = len(matched)
	}

	return &store.Page{
		Content:    matched[start:end],
		TotalCount: total,
		Number:     page.Number,
		Size:       page.Size,
	}, nil
}

// WithTx implements the UserStore interface for transaction support.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	// For mock purposes, just return the same mock.
	return m
}
