package domain

import "time"

// User is the domain model for registered accounts. The password hash is
// write-once: created at registration, read at login, never mutated here.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
