package domain

import "time"

// User is an authenticated account. Admin users may manage applications and
// reassign the admin set itself.
type User struct {
	ID           string
	Username     string // unique
	Name         string
	Email        string
	PasswordHash string // argon2id encoded, never plaintext
	Admin        bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
