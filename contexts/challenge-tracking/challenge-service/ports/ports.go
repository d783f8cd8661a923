package ports

import (
	"context"
	"time"

	"dailytrack/contexts/challenge-tracking/challenge-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

// ChallengeRepository persists challenges. CreateChallenge must enforce
// (owner_id, name) uniqueness atomically and report a race with the
// domain name-taken error; DeleteChallengeCascade removes the challenge
// together with its daily logs and shared grants in one transaction.
type ChallengeRepository interface {
	CreateChallenge(ctx context.Context, challenge entities.Challenge) (entities.Challenge, error)
	GetChallenge(ctx context.Context, id int64) (entities.Challenge, error)
	ListChallengesByOwner(ctx context.Context, ownerID int64) ([]entities.Challenge, error)
	ChallengeNameTaken(ctx context.Context, ownerID int64, name string) (bool, error)
	CompleteChallenge(ctx context.Context, id int64, completedAt time.Time) (entities.Challenge, error)
	DeleteChallengeCascade(ctx context.Context, id int64) error
}

// DailyLogRepository persists daily logs. CreateDailyLog must enforce
// (challenge_id, log_date) uniqueness atomically.
type DailyLogRepository interface {
	CreateDailyLog(ctx context.Context, log entities.DailyLog) (entities.DailyLog, error)
	GetDailyLog(ctx context.Context, id int64) (entities.DailyLog, error)
	ListLogsByChallenge(ctx context.Context, challengeID int64) ([]entities.DailyLog, error)
	UpdateDailyLogCompleted(ctx context.Context, id int64, completed bool, updatedAt time.Time) (entities.DailyLog, error)
	DeleteDailyLog(ctx context.Context, id int64) error
}

// ShareRepository persists shared grants. Duplicate (challenge, grantee)
// pairs are allowed.
type ShareRepository interface {
	CreateGrant(ctx context.Context, grant entities.SharedGrant) (entities.SharedGrant, error)
	GetGrant(ctx context.Context, id int64) (entities.SharedGrant, error)
	ListGrantsForGrantee(ctx context.Context, granteeID int64) ([]entities.SharedGrant, error)
	DeleteGrant(ctx context.Context, id int64) error
}

// UserDirectory is the read-only view into identity-access this module is
// allowed. The concrete directory is wired at the composition root so the
// context stays self-contained.
type UserDirectory interface {
	UserExists(ctx context.Context, id int64) (bool, error)
	Username(ctx context.Context, id int64) (string, error)
}

// SharedChallengeView is a grant denormalized with its challenge fields
// and the owning user's username, ready for the grantee-facing listing.
type SharedChallengeView struct {
	GrantID     int64
	ChallengeID int64
	Name        string
	Description string
	StartedAt   time.Time
	CompletedAt *time.Time
	SharedAt    time.Time
	SharedBy    string
}
