package entities

import "time"

// Challenge is a personal goal tracked with daily logs. The pair
// (OwnerID, Name) is unique: one user cannot hold two challenges with the
// same name.
type Challenge struct {
	ID          int64      `json:"id"`
	OwnerID     int64      `json:"owner_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
}
