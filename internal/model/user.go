package model

import "time"

// User is an account credential record. The password never leaves the
// auth service; only its bcrypt hash is stored.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
