package services

import (
	"context"

	"dailytrack/contexts/challenge-tracking/challenge-service/domain/entities"
	domainerrors "dailytrack/contexts/challenge-tracking/challenge-service/domain/errors"
)

// Readers are the minimal lookups the resolver needs. Storage adapters
// satisfy them with their repository methods; each lookup reports absence
// with the matching domain not-found error.
type ChallengeReader interface {
	GetChallenge(ctx context.Context, id int64) (entities.Challenge, error)
}

type LogReader interface {
	GetDailyLog(ctx context.Context, id int64) (entities.DailyLog, error)
}

type GrantReader interface {
	GetGrant(ctx context.Context, id int64) (entities.SharedGrant, error)
}

// Resolver walks the ownership chain (User owns Challenge owns DailyLog)
// to decide whether an actor may touch a resource. Absence is always
// reported before ownership: Forbidden is reserved for resources that
// exist and belong to someone else.
type Resolver struct {
	Challenges ChallengeReader
	Logs       LogReader
	Grants     GrantReader
}

// ChallengeOwnedBy resolves a challenge and requires the actor to be its
// owner.
func (r Resolver) ChallengeOwnedBy(ctx context.Context, challengeID int64, actorID int64) (entities.Challenge, error) {
	found, err := r.Challenges.GetChallenge(ctx, challengeID)
	if err != nil {
		return entities.Challenge{}, err
	}
	if found.OwnerID != actorID {
		return entities.Challenge{}, domainerrors.ErrForbidden
	}
	return found, nil
}

// LogOwnedBy resolves a daily log, then its parent challenge, and requires
// the actor to own the parent.
func (r Resolver) LogOwnedBy(ctx context.Context, logID int64, actorID int64) (entities.DailyLog, error) {
	log, err := r.Logs.GetDailyLog(ctx, logID)
	if err != nil {
		return entities.DailyLog{}, err
	}
	if _, err := r.ChallengeOwnedBy(ctx, log.ChallengeID, actorID); err != nil {
		return entities.DailyLog{}, err
	}
	return log, nil
}

// GrantDeletableBy resolves a shared grant and requires the actor to own
// the challenge it points at. Deletion authority stays with the original
// owner, never the grantee.
func (r Resolver) GrantDeletableBy(ctx context.Context, grantID int64, actorID int64) (entities.SharedGrant, error) {
	grant, err := r.Grants.GetGrant(ctx, grantID)
	if err != nil {
		return entities.SharedGrant{}, err
	}
	if _, err := r.ChallengeOwnedBy(ctx, grant.ChallengeID, actorID); err != nil {
		return entities.SharedGrant{}, err
	}
	return grant, nil
}
