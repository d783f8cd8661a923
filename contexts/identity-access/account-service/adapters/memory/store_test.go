package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"dailytrack/contexts/identity-access/account-service/domain/entities"
	domainerrors "dailytrack/contexts/identity-access/account-service/domain/errors"
)

func TestCreateUserAssignsSequentialIDs(t *testing.T) {
	store := NewStore()

	first, err := store.CreateUser(context.Background(), entities.User{
		Username:  "alice",
		Email:     "alice@example.com",
		Active:    true,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	second, err := store.CreateUser(context.Background(), entities.User{
		Username:  "bob",
		Email:     "bob@example.com",
		Active:    true,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if first.ID == 0 || second.ID != first.ID+1 {
		t.Fatalf("unexpected ids %d, %d", first.ID, second.ID)
	}
}

func TestCreateUserRejectsDuplicateUsernameOrEmail(t *testing.T) {
	store := NewStore()

	_, err := store.CreateUser(context.Background(), entities.User{
		Username: "alice",
		Email:    "alice@example.com",
	})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	_, err = store.CreateUser(context.Background(), entities.User{
		Username: "ALICE",
		Email:    "other@example.com",
	})
	if !errors.Is(err, domainerrors.ErrUserConflict) {
		t.Fatalf("expected user conflict for duplicate username, got %v", err)
	}

	_, err = store.CreateUser(context.Background(), entities.User{
		Username: "carol",
		Email:    "Alice@Example.com",
	})
	if !errors.Is(err, domainerrors.ErrUserConflict) {
		t.Fatalf("expected user conflict for duplicate email, got %v", err)
	}
}

func TestLookupsReportNotFound(t *testing.T) {
	store := NewStore()

	if _, err := store.GetUserByUsername(context.Background(), "ghost"); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected not found by username, got %v", err)
	}
	if _, err := store.GetUserByID(context.Background(), 99); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected not found by id, got %v", err)
	}
}

func TestUsernameOrEmailTaken(t *testing.T) {
	store := NewStore()

	_, err := store.CreateUser(context.Background(), entities.User{
		Username: "alice",
		Email:    "alice@example.com",
	})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	taken, err := store.UsernameOrEmailTaken(context.Background(), "alice", "new@example.com")
	if err != nil {
		t.Fatalf("taken lookup failed: %v", err)
	}
	if !taken {
		t.Fatal("expected username to be taken")
	}

	taken, err = store.UsernameOrEmailTaken(context.Background(), "fresh", "fresh@example.com")
	if err != nil {
		t.Fatalf("taken lookup failed: %v", err)
	}
	if taken {
		t.Fatal("expected fresh identity to be free")
	}
}
