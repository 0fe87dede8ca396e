package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyFirstName is returned when a user's first name is blank.
	ErrEmptyFirstName = errors.New("first name cannot be empty")

	// ErrEmptyLastName is returned when a user's last name is blank.
	ErrEmptyLastName = errors.New("last name cannot be empty")

	// ErrEmptyEmail is returned when a user's email is blank.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrEmptyBirthDate is returned when a user's birth date is unset.
	ErrEmptyBirthDate = errors.New("birth date cannot be empty")

	// ErrBirthDateNotPast is returned when a birth date is today or later.
	ErrBirthDateNotPast = errors.New("birth date must be in the past")
)
