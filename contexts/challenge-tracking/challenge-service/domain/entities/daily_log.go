package entities

import "time"

// DailyLog records whether a challenge was completed on one calendar day.
// LogDate is normalized to midnight UTC; (ChallengeID, LogDate) is unique.
type DailyLog struct {
	ID          int64     `json:"id"`
	ChallengeID int64     `json:"challenge_id"`
	LogDate     time.Time `json:"log_date"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
