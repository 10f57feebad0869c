package domain

import "time"

// Identity is a registered user. Email is the unique, case-sensitive key.
type Identity struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // bcrypt hash, never the plaintext
	CreatedAt    time.Time `json:"createdAt"`
}
