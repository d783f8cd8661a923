package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"dailytrack/contexts/identity-access/account-service/domain/entities"
	domainerrors "dailytrack/contexts/identity-access/account-service/domain/errors"
)

// Store is the in-memory credential store used by tests and local wiring.
// The write lock makes check-then-insert atomic, matching the uniqueness
// guarantee the postgres adapter gets from its indexes.
type Store struct {
	mu sync.RWMutex

	usersByID map[int64]entities.User
	nextID    int64
}

func NewStore() *Store {
	return &Store{
		usersByID: make(map[int64]entities.User),
		nextID:    1,
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) CreateUser(ctx context.Context, user entities.User) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.usersByID {
		if equalFold(existing.Username, user.Username) || equalFold(existing.Email, user.Email) {
			return entities.User{}, domainerrors.ErrUserConflict
		}
	}

	user.ID = s.nextID
	s.nextID++
	s.usersByID[user.ID] = user
	return user, nil
}

func (s *Store) UsernameOrEmailTaken(ctx context.Context, username string, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, existing := range s.usersByID {
		if equalFold(existing.Username, username) || equalFold(existing.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, existing := range s.usersByID {
		if existing.Username == username {
			return existing, nil
		}
	}
	return entities.User{}, domainerrors.ErrUserNotFound
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	existing, ok := s.usersByID[id]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return existing, nil
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
