package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBirthDate() time.Time {
	return time.Date(1990, time.May, 10, 0, 0, 0, 0, time.UTC)
}

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user", func(t *testing.T) {
		t.Parallel()

		user, err := NewUser("John", "Doe", "john@example.com", validBirthDate(), "Liberty Street", "111-222-333")
		require.NoError(t, err)

		assert.Equal(t, int64(0), user.ID, "identifier must stay unset until the store assigns one")
		assert.Equal(t, "John", user.FirstName)
		assert.Equal(t, "Doe", user.LastName)
		assert.Equal(t, "john@example.com", user.Email)
		assert.Equal(t, validBirthDate(), user.BirthDate)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("birth date with time component is normalized", func(t *testing.T) {
		t.Parallel()

		birth := time.Date(1990, time.May, 10, 13, 45, 12, 0, time.UTC)
		user, err := NewUser("John", "Doe", "john@example.com", birth, "", "")
		require.NoError(t, err)

		assert.Equal(t, validBirthDate(), user.BirthDate)
	})
}

func TestUser_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *User {
		return &User{
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john@example.com",
			BirthDate: validBirthDate(),
		}
	}

	testCases := []struct {
		name     string
		mutate   func(u *User)
		expected error
	}{
		{
			name:     "valid user passes",
			mutate:   func(u *User) {},
			expected: nil,
		},
		{
			name:     "blank first name",
			mutate:   func(u *User) { u.FirstName = "   " },
			expected: ErrEmptyFirstName,
		},
		{
			name:     "blank last name",
			mutate:   func(u *User) { u.LastName = "" },
			expected: ErrEmptyLastName,
		},
		{
			name:     "empty email",
			mutate:   func(u *User) { u.Email = "" },
			expected: ErrEmptyEmail,
		},
		{
			name:     "email without at sign",
			mutate:   func(u *User) { u.Email = "john.example.com" },
			expected: ErrInvalidEmail,
		},
		{
			name:     "email without domain dot",
			mutate:   func(u *User) { u.Email = "john@example" },
			expected: ErrInvalidEmail,
		},
		{
			name:     "zero birth date",
			mutate:   func(u *User) { u.BirthDate = time.Time{} },
			expected: ErrEmptyBirthDate,
		},
		{
			name:     "birth date today",
			mutate:   func(u *User) { u.BirthDate = NormalizeDate(time.Now().UTC()) },
			expected: ErrBirthDateNotPast,
		},
		{
			name:     "birth date in the future",
			mutate:   func(u *User) { u.BirthDate = NormalizeDate(time.Now().UTC().AddDate(1, 0, 0)) },
			expected: ErrBirthDateNotPast,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			user := valid()
			tc.mutate(user)

			err := user.Validate()
			if tc.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tc.expected), "expected %v, got %v", tc.expected, err)
			}
		})
	}
}
