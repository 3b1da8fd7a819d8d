package domain

import (
	"errors"
	"strings"
)

// Common validation errors
var (
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrEmptySurname = errors.New("surname cannot be empty")
	ErrInvalidID    = errors.New("user ID must be positive")
)

// User represents a person registered in the service. The ID is assigned
// by storage on insert; a zero ID marks a user that has not been persisted.
type User struct {
	ID      int32  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// NewUser creates an unsaved User with the given name and surname.
// The ID is left zero until storage assigns one.
// Returns an error if validation fails.
func NewUser(name, surname string) (*User, error) {
	user := &User{
		Name:    name,
		Surname: surname,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyName
	}

	if strings.TrimSpace(u.Surname) == "" {
		return ErrEmptySurname
	}

	return nil
}
