package httptransport

// DTOs for the challenge, daily-log, and shared-challenge endpoints.
// Dates on the wire are RFC 3339 timestamps except log_date, which is a
// calendar day in 2006-01-02 form.

type ChallengeCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ChallengeResponse struct {
	ID          int64   `json:"id"`
	OwnerID     int64   `json:"user_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	StartedAt   string  `json:"started_at"`
	CompletedAt *string `json:"completed_at"`
}

type DailyLogCreateRequest struct {
	ChallengeID int64  `json:"challenge_id"`
	LogDate     string `json:"log_date"`
	Completed   bool   `json:"completed"`
}

type DailyLogUpdateRequest struct {
	Completed bool `json:"completed"`
}

type DailyLogResponse struct {
	ID          int64  `json:"id"`
	ChallengeID int64  `json:"challenge_id"`
	LogDate     string `json:"log_date"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type ShareRequest struct {
	ChallengeID  int64 `json:"challenge_id"`
	SharedUserID int64 `json:"shared_user_id"`
}

type SharedGrantResponse struct {
	ID           int64  `json:"id"`
	ChallengeID  int64  `json:"challenge_id"`
	SharedUserID int64  `json:"shared_user_id"`
	SharedAt     string `json:"shared_at"`
}

type SharedChallengeResponse struct {
	ID          int64   `json:"id"`
	ChallengeID int64   `json:"challenge_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	StartedAt   string  `json:"started_at"`
	CompletedAt *string `json:"completed_at"`
	SharedAt    string  `json:"shared_at"`
	SharedBy    string  `json:"shared_by"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
