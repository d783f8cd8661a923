package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"dailytrack/contexts/challenge-tracking/challenge-service/domain/entities"
	domainerrors "dailytrack/contexts/challenge-tracking/challenge-service/domain/errors"
	"dailytrack/contexts/challenge-tracking/challenge-service/domain/services"
	"dailytrack/contexts/challenge-tracking/challenge-service/ports"
)

const maxChallengeNameLength = 100

// Service is the use-case layer gating every challenge, daily-log, and
// shared-grant operation behind the ownership resolver. The actor id on
// each call is a verified token subject; no operation trusts ids from the
// request body for authorization.
type Service struct {
	Challenges ports.ChallengeRepository
	Logs       ports.DailyLogRepository
	Shares     ports.ShareRepository
	Users      ports.UserDirectory
	Resolver   services.Resolver
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (s Service) CreateChallenge(ctx context.Context, actorID int64, name, description string) (entities.Challenge, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxChallengeNameLength {
		return entities.Challenge{}, domainerrors.ErrInvalidChallengeName
	}

	taken, err := s.Challenges.ChallengeNameTaken(ctx, actorID, name)
	if err != nil {
		return entities.Challenge{}, err
	}
	if taken {
		return entities.Challenge{}, domainerrors.ErrChallengeNameTaken
	}

	created, err := s.Challenges.CreateChallenge(ctx, entities.Challenge{
		OwnerID:     actorID,
		Name:        name,
		Description: strings.TrimSpace(description),
		StartedAt:   s.Clock.Now().UTC(),
	})
	if err != nil {
		return entities.Challenge{}, err
	}

	s.log().Info("challenge created",
		"event", "challenge_created",
		"module", "contexts/challenge-tracking/challenge-service",
		"layer", "application",
		"challenge_id", created.ID,
		"owner_id", actorID,
	)
	return created, nil
}

func (s Service) GetChallenge(ctx context.Context, actorID int64, challengeID int64) (entities.Challenge, error) {
	return s.Resolver.ChallengeOwnedBy(ctx, challengeID, actorID)
}

func (s Service) ListMyChallenges(ctx context.Context, actorID int64) ([]entities.Challenge, error) {
	return s.Challenges.ListChallengesByOwner(ctx, actorID)
}

// CompleteChallenge stamps the challenge as finished. Completing twice
// just moves the timestamp; there is no terminal state to violate.
func (s Service) CompleteChallenge(ctx context.Context, actorID int64, challengeID int64) (entities.Challenge, error) {
	if _, err := s.Resolver.ChallengeOwnedBy(ctx, challengeID, actorID); err != nil {
		return entities.Challenge{}, err
	}
	return s.Challenges.CompleteChallenge(ctx, challengeID, s.Clock.Now().UTC())
}

// DeleteChallenge removes a challenge with its daily logs and shared
// grants in one storage transaction.
func (s Service) DeleteChallenge(ctx context.Context, actorID int64, challengeID int64) error {
	if _, err := s.Resolver.ChallengeOwnedBy(ctx, challengeID, actorID); err != nil {
		return err
	}
	if err := s.Challenges.DeleteChallengeCascade(ctx, challengeID); err != nil {
		return err
	}

	s.log().Info("challenge deleted",
		"event", "challenge_deleted",
		"module", "contexts/challenge-tracking/challenge-service",
		"layer", "application",
		"challenge_id", challengeID,
		"owner_id", actorID,
	)
	return nil
}

func (s Service) CreateDailyLog(ctx context.Context, actorID int64, challengeID int64, logDate time.Time, completed bool) (entities.DailyLog, error) {
	if logDate.IsZero() {
		return entities.DailyLog{}, domainerrors.ErrInvalidLogDate
	}
	if _, err := s.Resolver.ChallengeOwnedBy(ctx, challengeID, actorID); err != nil {
		return entities.DailyLog{}, err
	}

	now := s.Clock.Now().UTC()
	return s.Logs.CreateDailyLog(ctx, entities.DailyLog{
		ChallengeID: challengeID,
		LogDate:     midnightUTC(logDate),
		Completed:   completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s Service) ListLogsForChallenge(ctx context.Context, actorID int64, challengeID int64) ([]entities.DailyLog, error) {
	if _, err := s.Resolver.ChallengeOwnedBy(ctx, challengeID, actorID); err != nil {
		return nil, err
	}
	return s.Logs.ListLogsByChallenge(ctx, challengeID)
}

func (s Service) UpdateDailyLog(ctx context.Context, actorID int64, logID int64, completed bool) (entities.DailyLog, error) {
	if _, err := s.Resolver.LogOwnedBy(ctx, logID, actorID); err != nil {
		return entities.DailyLog{}, err
	}
	return s.Logs.UpdateDailyLogCompleted(ctx, logID, completed, s.Clock.Now().UTC())
}

func (s Service) DeleteDailyLog(ctx context.Context, actorID int64, logID int64) error {
	if _, err := s.Resolver.LogOwnedBy(ctx, logID, actorID); err != nil {
		return err
	}
	return s.Logs.DeleteDailyLog(ctx, logID)
}

// ShareChallenge grants a user read access to a challenge. Both ends of
// the grant must exist; the actor is deliberately not required to own the
// challenge, which matches the product's current (reviewed) behavior.
func (s Service) ShareChallenge(ctx context.Context, actorID int64, challengeID int64, granteeID int64) (entities.SharedGrant, error) {
	if _, err := s.Challenges.GetChallenge(ctx, challengeID); err != nil {
		if errors.Is(err, domainerrors.ErrChallengeNotFound) {
			return entities.SharedGrant{}, domainerrors.ErrShareTargetNotFound
		}
		return entities.SharedGrant{}, err
	}
	exists, err := s.Users.UserExists(ctx, granteeID)
	if err != nil {
		return entities.SharedGrant{}, err
	}
	if !exists {
		return entities.SharedGrant{}, domainerrors.ErrShareTargetNotFound
	}

	grant, err := s.Shares.CreateGrant(ctx, entities.SharedGrant{
		ChallengeID: challengeID,
		GranteeID:   granteeID,
		SharedAt:    s.Clock.Now().UTC(),
	})
	if err != nil {
		return entities.SharedGrant{}, err
	}

	s.log().Info("challenge shared",
		"event", "challenge_shared",
		"module", "contexts/challenge-tracking/challenge-service",
		"layer", "application",
		"challenge_id", challengeID,
		"grantee_id", granteeID,
		"actor_id", actorID,
	)
	return grant, nil
}

// ListSharedWithMe returns the challenges shared with the actor, each
// denormalized with the parent challenge's fields and the owner's
// username. The challenge and its owner are resolved with separate,
// observable lookups rather than implicit relation traversal.
func (s Service) ListSharedWithMe(ctx context.Context, actorID int64) ([]ports.SharedChallengeView, error) {
	grants, err := s.Shares.ListGrantsForGrantee(ctx, actorID)
	if err != nil {
		return nil, err
	}

	views := make([]ports.SharedChallengeView, 0, len(grants))
	for _, grant := range grants {
		found, err := s.Challenges.GetChallenge(ctx, grant.ChallengeID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrChallengeNotFound) {
				s.log().Warn("skipping grant for missing challenge",
					"event", "shared_view_orphan_grant",
					"module", "contexts/challenge-tracking/challenge-service",
					"layer", "application",
					"grant_id", grant.ID,
					"challenge_id", grant.ChallengeID,
				)
				continue
			}
			return nil, err
		}
		ownerName, err := s.Users.Username(ctx, found.OwnerID)
		if err != nil {
			return nil, err
		}
		views = append(views, ports.SharedChallengeView{
			GrantID:     grant.ID,
			ChallengeID: found.ID,
			Name:        found.Name,
			Description: found.Description,
			StartedAt:   found.StartedAt,
			CompletedAt: found.CompletedAt,
			SharedAt:    grant.SharedAt,
			SharedBy:    ownerName,
		})
	}
	return views, nil
}

func (s Service) DeleteSharedGrant(ctx context.Context, actorID int64, grantID int64) error {
	if _, err := s.Resolver.GrantDeletableBy(ctx, grantID, actorID); err != nil {
		return err
	}
	return s.Shares.DeleteGrant(ctx, grantID)
}

func (s Service) log() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func midnightUTC(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
