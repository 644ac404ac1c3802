package domain

import "time"

// Application is a submitted candidacy record. It is distinct from a User
// account: applying does not create a login.
type Application struct {
	ID           string
	Username     string
	Name         string
	Email        string
	PasswordHash string // argon2id encoded
	// Admin is carried over from the legacy schema. The intake form has no
	// way to set it, so it is always false for new rows.
	Admin     bool
	Processed bool
	Updated   *time.Time // set when an admin processes the row
	CreatedAt time.Time
}
