package entities

import "time"

// User models a registered account. Identifiers are assigned by the
// storage adapter at creation; everything except Active is immutable
// afterwards.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordDigest string    `json:"-"`
	Active         bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}
