package domain

import (
	"strings"
	"time"
)

// User represents a user profile record managed by the application.
// The ID is a surrogate identifier assigned by the persistence layer on
// first save; a zero ID marks an entity that has not been created yet.
type User struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	BirthDate time.Time `json:"birth_date"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given attributes and unset ID.
// The identifier is assigned by the store on creation.
// Returns an error if validation fails.
func NewUser(firstName, lastName, email string, birthDate time.Time, address, phone string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		BirthDate: normalizeDate(birthDate),
		Address:   address,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if strings.TrimSpace(u.FirstName) == "" {
		return ErrEmptyFirstName
	}

	if strings.TrimSpace(u.LastName) == "" {
		return ErrEmptyLastName
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.BirthDate.IsZero() {
		return ErrEmptyBirthDate
	}

	// Compare on calendar days, not instants, so a birth date of "today"
	// is rejected regardless of the hour the check runs at.
	today := normalizeDate(time.Now().UTC())
	if !u.BirthDate.Before(today) {
		return ErrBirthDateNotPast
	}

	return nil
}

// normalizeDate truncates a timestamp to UTC midnight. Birth dates are
// calendar dates; the time-of-day component must never influence
// comparisons or storage.
func normalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NormalizeDate exposes date truncation for callers that parse dates at
// the transport boundary.
func NormalizeDate(t time.Time) time.Time {
	return normalizeDate(t)
}

// validateEmailFormat performs basic validation of email format.
// Returns true if the email appears to be in a valid format.
// The transport layer runs the stricter validator-tag check; this is the
// domain's own backstop for entities constructed in code.
func validateEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domainPart := email[at+1:]
	if len(domainPart) < 3 {
		return false
	}

	dot := strings.Index(domainPart, ".")
	if dot <= 0 || dot == len(domainPart)-1 {
		return false
	}

	return true
}
