package model

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can own house listings.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// AuthResult pairs a user with a freshly issued access token.
type AuthResult struct {
	User        *User  `json:"user"`
	AccessToken string `json:"access_token"`
}
