package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Accounts exist so a person can keep
// their own scan and tab history; tab participants themselves are plain name
// strings and never need accounts.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the user's email address (unique). Used for login.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"createdAt"`
}

// NewUser creates a User with a fresh ID and creation timestamp.
func NewUser(email, name, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}
