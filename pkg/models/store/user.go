package store

import "time"

// User is a persisted API user. PasswordHash is a bcrypt digest and never
// leaves the store layer.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
