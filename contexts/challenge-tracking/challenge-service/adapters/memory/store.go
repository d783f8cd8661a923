package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"dailytrack/contexts/challenge-tracking/challenge-service/domain/entities"
	domainerrors "dailytrack/contexts/challenge-tracking/challenge-service/domain/errors"
)

// Store is the in-memory adapter backing tests and local wiring. It
// implements every repository port plus the UserDirectory, with a seeded
// user table standing in for the identity context. All uniqueness checks
// run under the write lock, so check-then-insert is atomic here just as
// the unique indexes make it in postgres.
type Store struct {
	mu sync.RWMutex

	challengesByID map[int64]entities.Challenge
	logsByID       map[int64]entities.DailyLog
	grantsByID     map[int64]entities.SharedGrant
	usernamesByID  map[int64]string
	nextID         int64
}

func NewStore() *Store {
	return &Store{
		challengesByID: make(map[int64]entities.Challenge),
		logsByID:       make(map[int64]entities.DailyLog),
		grantsByID:     make(map[int64]entities.SharedGrant),
		usernamesByID:  make(map[int64]string),
		nextID:         1,
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

// SeedUser registers an identity in the directory stand-in.
func (s *Store) SeedUser(id int64, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usernamesByID[id] = username
}

func (s *Store) UserExists(ctx context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.usernamesByID[id]
	return ok, nil
}

func (s *Store) Username(ctx context.Context, id int64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	username, ok := s.usernamesByID[id]
	if !ok {
		return "", domainerrors.ErrShareTargetNotFound
	}
	return username, nil
}

func (s *Store) CreateChallenge(ctx context.Context, challenge entities.Challenge) (entities.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.challengesByID {
		if existing.OwnerID == challenge.OwnerID && strings.EqualFold(existing.Name, challenge.Name) {
			return entities.Challenge{}, domainerrors.ErrChallengeNameTaken
		}
	}

	challenge.ID = s.allocateID()
	s.challengesByID[challenge.ID] = challenge
	return challenge, nil
}

func (s *Store) GetChallenge(ctx context.Context, id int64) (entities.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	challenge, ok := s.challengesByID[id]
	if !ok {
		return entities.Challenge{}, domainerrors.ErrChallengeNotFound
	}
	return challenge, nil
}

func (s *Store) ListChallengesByOwner(ctx context.Context, ownerID int64) ([]entities.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []entities.Challenge
	for _, challenge := range s.challengesByID {
		if challenge.OwnerID == ownerID {
			items = append(items, challenge)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *Store) ChallengeNameTaken(ctx context.Context, ownerID int64, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, existing := range s.challengesByID {
		if existing.OwnerID == ownerID && strings.EqualFold(existing.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) CompleteChallenge(ctx context.Context, id int64, completedAt time.Time) (entities.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenge, ok := s.challengesByID[id]
	if !ok {
		return entities.Challenge{}, domainerrors.ErrChallengeNotFound
	}
	completedAt = completedAt.UTC()
	challenge.CompletedAt = &completedAt
	s.challengesByID[id] = challenge
	return challenge, nil
}

func (s *Store) DeleteChallengeCascade(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.challengesByID[id]; !ok {
		return domainerrors.ErrChallengeNotFound
	}
	delete(s.challengesByID, id)
	for logID, log := range s.logsByID {
		if log.ChallengeID == id {
			delete(s.logsByID, logID)
		}
	}
	for grantID, grant := range s.grantsByID {
		if grant.ChallengeID == id {
			delete(s.grantsByID, grantID)
		}
	}
	return nil
}

func (s *Store) CreateDailyLog(ctx context.Context, log entities.DailyLog) (entities.DailyLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.logsByID {
		if existing.ChallengeID == log.ChallengeID && existing.LogDate.Equal(log.LogDate) {
			return entities.DailyLog{}, domainerrors.ErrLogDateTaken
		}
	}

	log.ID = s.allocateID()
	s.logsByID[log.ID] = log
	return log, nil
}

func (s *Store) GetDailyLog(ctx context.Context, id int64) (entities.DailyLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	log, ok := s.logsByID[id]
	if !ok {
		return entities.DailyLog{}, domainerrors.ErrLogNotFound
	}
	return log, nil
}

func (s *Store) ListLogsByChallenge(ctx context.Context, challengeID int64) ([]entities.DailyLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []entities.DailyLog
	for _, log := range s.logsByID {
		if log.ChallengeID == challengeID {
			items = append(items, log)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].LogDate.Before(items[j].LogDate) })
	return items, nil
}

func (s *Store) UpdateDailyLogCompleted(ctx context.Context, id int64, completed bool, updatedAt time.Time) (entities.DailyLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log, ok := s.logsByID[id]
	if !ok {
		return entities.DailyLog{}, domainerrors.ErrLogNotFound
	}
	log.Completed = completed
	log.UpdatedAt = updatedAt.UTC()
	s.logsByID[id] = log
	return log, nil
}

func (s *Store) DeleteDailyLog(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.logsByID[id]; !ok {
		return domainerrors.ErrLogNotFound
	}
	delete(s.logsByID, id)
	return nil
}

func (s *Store) CreateGrant(ctx context.Context, grant entities.SharedGrant) (entities.SharedGrant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	grant.ID = s.allocateID()
	s.grantsByID[grant.ID] = grant
	return grant, nil
}

func (s *Store) GetGrant(ctx context.Context, id int64) (entities.SharedGrant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grant, ok := s.grantsByID[id]
	if !ok {
		return entities.SharedGrant{}, domainerrors.ErrGrantNotFound
	}
	return grant, nil
}

func (s *Store) ListGrantsForGrantee(ctx context.Context, granteeID int64) ([]entities.SharedGrant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []entities.SharedGrant
	for _, grant := range s.grantsByID {
		if grant.GranteeID == granteeID {
			items = append(items, grant)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *Store) DeleteGrant(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.grantsByID[id]; !ok {
		return domainerrors.ErrGrantNotFound
	}
	delete(s.grantsByID, id)
	return nil
}

func (s *Store) allocateID() int64 {
	id := s.nextID
	s.nextID++
	return id
}
