package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"dailytrack/contexts/challenge-tracking/challenge-service/domain/entities"
	domainerrors "dailytrack/contexts/challenge-tracking/challenge-service/domain/errors"
)

func TestCreateChallengeAssignsSequentialIDs(t *testing.T) {
	store := NewStore()

	first, err := store.CreateChallenge(context.Background(), entities.Challenge{OwnerID: 1, Name: "Read Books"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := store.CreateChallenge(context.Background(), entities.Challenge{OwnerID: 1, Name: "Run Daily"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
}

func TestChallengeNameUniquenessIsCaseInsensitive(t *testing.T) {
	store := NewStore()

	if _, err := store.CreateChallenge(context.Background(), entities.Challenge{OwnerID: 1, Name: "Read Books"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := store.CreateChallenge(context.Background(), entities.Challenge{OwnerID: 1, Name: "READ BOOKS"}); !errors.Is(err, domainerrors.ErrChallengeNameTaken) {
		t.Fatalf("expected name-taken error, got %v", err)
	}

	taken, err := store.ChallengeNameTaken(context.Background(), 1, "read books")
	if err != nil {
		t.Fatalf("name check failed: %v", err)
	}
	if !taken {
		t.Fatal("expected name to read as taken")
	}

	// Scoped per owner.
	if _, err := store.CreateChallenge(context.Background(), entities.Challenge{OwnerID: 2, Name: "Read Books"}); err != nil {
		t.Fatalf("create for another owner failed: %v", err)
	}
}

func TestDailyLogDateUniquePerChallenge(t *testing.T) {
	store := NewStore()
	day := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)

	challenge, err := store.CreateChallenge(context.Background(), entities.Challenge{OwnerID: 1, Name: "Read Books"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := store.CreateDailyLog(context.Background(), entities.DailyLog{ChallengeID: challenge.ID, LogDate: day}); err != nil {
		t.Fatalf("create log failed: %v", err)
	}
	if _, err := store.CreateDailyLog(context.Background(), entities.DailyLog{ChallengeID: challenge.ID, LogDate: day}); !errors.Is(err, domainerrors.ErrLogDateTaken) {
		t.Fatalf("expected date-taken error, got %v", err)
	}

	other, err := store.CreateChallenge(context.Background(), entities.Challenge{OwnerID: 1, Name: "Run Daily"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := store.CreateDailyLog(context.Background(), entities.DailyLog{ChallengeID: other.ID, LogDate: day}); err != nil {
		t.Fatalf("same date under another challenge should pass: %v", err)
	}
}

func TestDeleteChallengeCascadeRemovesChildren(t *testing.T) {
	store := NewStore()

	challenge, err := store.CreateChallenge(context.Background(), entities.Challenge{OwnerID: 1, Name: "Read Books"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	log, err := store.CreateDailyLog(context.Background(), entities.DailyLog{
		ChallengeID: challenge.ID,
		LogDate:     time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create log failed: %v", err)
	}
	grant, err := store.CreateGrant(context.Background(), entities.SharedGrant{ChallengeID: challenge.ID, GranteeID: 2})
	if err != nil {
		t.Fatalf("create grant failed: %v", err)
	}

	if err := store.DeleteChallengeCascade(context.Background(), challenge.ID); err != nil {
		t.Fatalf("cascade delete failed: %v", err)
	}
	if _, err := store.GetChallenge(context.Background(), challenge.ID); !errors.Is(err, domainerrors.ErrChallengeNotFound) {
		t.Fatalf("expected challenge gone, got %v", err)
	}
	if _, err := store.GetDailyLog(context.Background(), log.ID); !errors.Is(err, domainerrors.ErrLogNotFound) {
		t.Fatalf("expected log gone, got %v", err)
	}
	if _, err := store.GetGrant(context.Background(), grant.ID); !errors.Is(err, domainerrors.ErrGrantNotFound) {
		t.Fatalf("expected grant gone, got %v", err)
	}

	if err := store.DeleteChallengeCascade(context.Background(), challenge.ID); !errors.Is(err, domainerrors.ErrChallengeNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestListLogsOrderedByDate(t *testing.T) {
	store := NewStore()

	challenge, err := store.CreateChallenge(context.Background(), entities.Challenge{OwnerID: 1, Name: "Read Books"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	later := time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
	if _, err := store.CreateDailyLog(context.Background(), entities.DailyLog{ChallengeID: challenge.ID, LogDate: later}); err != nil {
		t.Fatalf("create log failed: %v", err)
	}
	if _, err := store.CreateDailyLog(context.Background(), entities.DailyLog{ChallengeID: challenge.ID, LogDate: earlier}); err != nil {
		t.Fatalf("create log failed: %v", err)
	}

	logs, err := store.ListLogsByChallenge(context.Background(), challenge.ID)
	if err != nil {
		t.Fatalf("list logs failed: %v", err)
	}
	if len(logs) != 2 || !logs[0].LogDate.Equal(earlier) {
		t.Fatalf("expected logs ordered by date, got %+v", logs)
	}
}

func TestListGrantsScopedToGrantee(t *testing.T) {
	store := NewStore()

	challenge, err := store.CreateChallenge(context.Background(), entities.Challenge{OwnerID: 1, Name: "Read Books"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := store.CreateGrant(context.Background(), entities.SharedGrant{ChallengeID: challenge.ID, GranteeID: 2}); err != nil {
		t.Fatalf("create grant failed: %v", err)
	}
	if _, err := store.CreateGrant(context.Background(), entities.SharedGrant{ChallengeID: challenge.ID, GranteeID: 3}); err != nil {
		t.Fatalf("create grant failed: %v", err)
	}

	grants, err := store.ListGrantsForGrantee(context.Background(), 2)
	if err != nil {
		t.Fatalf("list grants failed: %v", err)
	}
	if len(grants) != 1 || grants[0].GranteeID != 2 {
		t.Fatalf("expected only grantee 2's grant, got %+v", grants)
	}
}

func TestUserDirectorySeeding(t *testing.T) {
	store := NewStore()
	store.SeedUser(7, "alice")

	exists, err := store.UserExists(context.Background(), 7)
	if err != nil {
		t.Fatalf("user lookup failed: %v", err)
	}
	if !exists {
		t.Fatal("expected seeded user to exist")
	}

	username, err := store.Username(context.Background(), 7)
	if err != nil {
		t.Fatalf("username lookup failed: %v", err)
	}
	if username != "alice" {
		t.Fatalf("expected alice, got %q", username)
	}

	if _, err := store.Username(context.Background(), 8); err == nil {
		t.Fatal("expected an error for an unknown user")
	}
}
