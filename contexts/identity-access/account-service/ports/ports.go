package ports

import (
	"context"
	"time"

	"dailytrack/contexts/identity-access/account-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

// UserRepository is the credential store boundary. CreateUser assigns the
// id and must enforce username/email uniqueness atomically, returning the
// domain conflict error when a concurrent insert wins the race.
type UserRepository interface {
	CreateUser(ctx context.Context, user entities.User) (entities.User, error)
	UsernameOrEmailTaken(ctx context.Context, username string, email string) (bool, error)
	GetUserByUsername(ctx context.Context, username string) (entities.User, error)
	GetUserByID(ctx context.Context, id int64) (entities.User, error)
}

// Hasher is the one-way password digest primitive. Compare reports a
// match without revealing which input was wrong.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(digest string, password string) bool
}

// TokenSource issues and refreshes signed access tokens for an identity.
type TokenSource interface {
	Issue(subjectID int64, username string) (string, error)
	Refresh(raw string) (string, error)
}
