package service

import (
	"fmt"
	"time"
)

// NotFoundError is returned when the referenced identifier has no
// corresponding entity. It carries the entity type and identifier so the
// transport layer can format the message without re-deriving context.
type NotFoundError struct {
	Entity string
	ID     int64
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID: %d was not found!", e.Entity, e.ID)
}

// NewUserNotFoundError builds a NotFoundError for the user entity.
func NewUserNotFoundError(id int64) *NotFoundError {
	return &NotFoundError{Entity: "User", ID: id}
}

// AlreadyExistsError is returned when a uniqueness constraint is violated
// by the requested value. It carries the conflicting field and value.
type AlreadyExistsError struct {
	Entity string
	Field  string
	Value  string
}

// Error implements the error interface.
func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with %s: %s already exists!", e.Entity, e.Field, e.Value)
}

// NewEmailExistsError builds an AlreadyExistsError for a conflicting
// user email.
func NewEmailExistsError(email string) *AlreadyExistsError {
	return &AlreadyExistsError{Entity: "User", Field: "Email", Value: email}
}

// InvalidBirthDateError is returned when a birth-date mutation would
// violate the age-eligibility policy.
type InvalidBirthDateError struct {
	BirthDate  time.Time
	MinimumAge int
}

// Error implements the error interface.
func (e *InvalidBirthDateError) Error() string {
	return fmt.Sprintf(
		"birth date %s does not satisfy the minimum age of %d years",
		e.BirthDate.Format("2006-01-02"),
		e.MinimumAge,
	)
}
