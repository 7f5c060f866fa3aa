package entities

import (
	"errors"
	"strings"
)

// Validation errors returned by User.Validate, in check order.
var (
	ErrEmptyName          = errors.New("Name cannot be empty")
	ErrEmptyEmail         = errors.New("Email cannot be empty")
	ErrInvalidEmailFormat = errors.New("Invalid email format")
	ErrEmptyPassword      = errors.New("Password cannot be empty")
	ErrPasswordTooShort   = errors.New("Password must be at least 6 characters")
)

// User represents a user entity in the database
type User struct {
	ID       *int   `json:"id,omitempty"` // nil until the storage layer assigns one
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"` // Don't expose password in JSON
}

// NewUser creates a transient user with no id assigned yet
func NewUser(name, email, password string) *User {
	return &User{
		Name:     name,
		Email:    email,
		Password: password,
	}
}

// NewUserWithID creates a user with a known id, as read back from storage
func NewUserWithID(id int, name, email, password string) *User {
	return &User{
		ID:       &id,
		Name:     name,
		Email:    email,
		Password: password,
	}
}

// Validate checks the user fields and returns the first failure.
// Check order is fixed: name, email presence, email format, password
// presence, password length. The length check runs on the raw password.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(u.Email) == "" {
		return ErrEmptyEmail
	}
	if !strings.Contains(u.Email, "@") {
		return ErrInvalidEmailFormat
	}
	if strings.TrimSpace(u.Password) == "" {
		return ErrEmptyPassword
	}
	if len(u.Password) < 6 {
		return ErrPasswordTooShort
	}
	return nil
}

// IsValidationError reports whether err is one of the Validate failures
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrEmptyEmail) ||
		errors.Is(err, ErrInvalidEmailFormat) ||
		errors.Is(err, ErrEmptyPassword) ||
		errors.Is(err, ErrPasswordTooShort)
}
