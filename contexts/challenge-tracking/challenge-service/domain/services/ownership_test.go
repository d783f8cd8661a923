package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"dailytrack/contexts/challenge-tracking/challenge-service/adapters/memory"
	"dailytrack/contexts/challenge-tracking/challenge-service/domain/entities"
	domainerrors "dailytrack/contexts/challenge-tracking/challenge-service/domain/errors"
)

func newTestResolver(t *testing.T) (Resolver, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return Resolver{
		Challenges: store,
		Logs:       store,
		Grants:     store,
	}, store
}

func seedChallenge(t *testing.T, store *memory.Store, ownerID int64, name string) entities.Challenge {
	t.Helper()
	created, err := store.CreateChallenge(context.Background(), entities.Challenge{
		OwnerID:   ownerID,
		Name:      name,
		StartedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed challenge failed: %v", err)
	}
	return created
}

func TestChallengeOwnedBy(t *testing.T) {
	resolver, store := newTestResolver(t)
	challenge := seedChallenge(t, store, 1, "Read Books")

	if _, err := resolver.ChallengeOwnedBy(context.Background(), challenge.ID, 1); err != nil {
		t.Fatalf("owner should resolve the challenge: %v", err)
	}
	if _, err := resolver.ChallengeOwnedBy(context.Background(), challenge.ID, 2); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for a stranger, got %v", err)
	}
	// A missing challenge reports absence, never ownership.
	if _, err := resolver.ChallengeOwnedBy(context.Background(), challenge.ID+100, 2); !errors.Is(err, domainerrors.ErrChallengeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLogOwnedByWalksToParent(t *testing.T) {
	resolver, store := newTestResolver(t)
	challenge := seedChallenge(t, store, 1, "Read Books")
	log, err := store.CreateDailyLog(context.Background(), entities.DailyLog{
		ChallengeID: challenge.ID,
		LogDate:     time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("seed daily log failed: %v", err)
	}

	if _, err := resolver.LogOwnedBy(context.Background(), log.ID, 1); err != nil {
		t.Fatalf("owner should resolve the log: %v", err)
	}
	if _, err := resolver.LogOwnedBy(context.Background(), log.ID, 2); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden via the parent challenge, got %v", err)
	}
	if _, err := resolver.LogOwnedBy(context.Background(), log.ID+100, 1); !errors.Is(err, domainerrors.ErrLogNotFound) {
		t.Fatalf("expected not found for a missing log, got %v", err)
	}
}

func TestGrantDeletableByChallengeOwner(t *testing.T) {
	resolver, store := newTestResolver(t)
	challenge := seedChallenge(t, store, 1, "Read Books")
	grant, err := store.CreateGrant(context.Background(), entities.SharedGrant{
		ChallengeID: challenge.ID,
		GranteeID:   2,
		SharedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed grant failed: %v", err)
	}

	if _, err := resolver.GrantDeletableBy(context.Background(), grant.ID, 1); err != nil {
		t.Fatalf("challenge owner should be able to revoke: %v", err)
	}
	// The grantee holds read access, not revocation authority.
	if _, err := resolver.GrantDeletableBy(context.Background(), grant.ID, 2); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for the grantee, got %v", err)
	}
	if _, err := resolver.GrantDeletableBy(context.Background(), grant.ID+100, 1); !errors.Is(err, domainerrors.ErrGrantNotFound) {
		t.Fatalf("expected not found for a missing grant, got %v", err)
	}
}
