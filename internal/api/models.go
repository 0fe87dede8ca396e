package api

import (
	"fmt"
	"time"

	"github.com/clearsolutions/user-manager/internal/domain"
	"github.com/clearsolutions/user-manager/internal/store"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// UserRequest is the request body for creating a user and for the full
// replace of an existing user.
type UserRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1"`
	LastName  string `json:"last_name"  validate:"required,min=1"`
	Email     string `json:"email"      validate:"required,email"`
	BirthDate string `json:"birth_date" validate:"required"`
	Address   string `json:"address"    validate:"omitempty"`
	Phone     string `json:"phone"      validate:"omitempty"`
}

// ToDomain converts the request into a domain.User with an unset ID.
// The birth date must already have passed ParseDate.
func (req UserRequest) ToDomain(birthDate time.Time) *domain.User {
	return &domain.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		BirthDate: domain.NormalizeDate(birthDate),
		Address:   req.Address,
		Phone:     req.Phone,
	}
}

// UpdateFirstNameRequest is the request body for the first-name patch.
type UpdateFirstNameRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1"`
}

// UpdateLastNameRequest is the request body for the last-name patch.
type UpdateLastNameRequest struct {
	LastName string `json:"last_name" validate:"required,min=1"`
}

// UpdateEmailRequest is the request body for the email patch.
type UpdateEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdateBirthDateRequest is the request body for the birth-date patch.
type UpdateBirthDateRequest struct {
	BirthDate string `json:"birth_date" validate:"required"`
}

// UpdateAddressRequest is the request body for the address patch.
type UpdateAddressRequest struct {
	Address string `json:"address"`
}

// UpdatePhoneRequest is the request body for the phone patch.
type UpdatePhoneRequest struct {
	Phone string `json:"phone"`
}

// UserResponse is the response body for a single user.
type UserResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	BirthDate string    `json:"birth_date"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PageResponse is the response body for a paginated user query.
type PageResponse struct {
	Content    []UserResponse `json:"content"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
}

// userToResponse converts a domain.User to a UserResponse.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		BirthDate: user.BirthDate.Format(dateLayout),
		Address:   user.Address,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// pageToResponse converts a store.Page to a PageResponse.
func pageToResponse(page *store.Page) PageResponse {
	content := make([]UserResponse, 0, len(page.Content))
	for _, user := range page.Content {
		content = append(content, userToResponse(user))
	}

	return PageResponse{
		Content:    content,
		TotalCount: page.TotalCount,
		Page:       page.Number,
		Size:       page.Size,
	}
}

// ParseDate parses a wire-format calendar date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected format %s", value, dateLayout)
	}
	return domain.NormalizeDate(t), nil
}
