package application

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"

	"dailytrack/contexts/identity-access/account-service/domain/entities"
	domainerrors "dailytrack/contexts/identity-access/account-service/domain/errors"
	"dailytrack/contexts/identity-access/account-service/ports"
)

const (
	maxUsernameLength = 50
	maxEmailLength    = 100
	minPasswordLength = 8
)

type Service struct {
	Users  ports.UserRepository
	Hasher ports.Hasher
	Tokens ports.TokenSource
	Clock  ports.Clock
	Logger *slog.Logger
}

// Register creates an account. Uniqueness is pre-checked for a friendly
// error, but the storage unique indexes remain the authority under
// concurrent registration.
func (s Service) Register(ctx context.Context, username, email, password string) (entities.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || len(username) > maxUsernameLength {
		return entities.User{}, domainerrors.ErrInvalidUsername
	}
	if _, err := mail.ParseAddress(email); err != nil || len(email) > maxEmailLength {
		return entities.User{}, domainerrors.ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return entities.User{}, domainerrors.ErrPasswordTooShort
	}

	taken, err := s.Users.UsernameOrEmailTaken(ctx, username, email)
	if err != nil {
		return entities.User{}, err
	}
	if taken {
		return entities.User{}, domainerrors.ErrUserConflict
	}

	digest, err := s.Hasher.Hash(password)
	if err != nil {
		return entities.User{}, err
	}

	created, err := s.Users.CreateUser(ctx, entities.User{
		Username:       username,
		Email:          email,
		PasswordDigest: digest,
		Active:         true,
		CreatedAt:      s.Clock.Now().UTC(),
	})
	if err != nil {
		return entities.User{}, err
	}

	s.log().Info("user registered",
		"event", "account_registered",
		"module", "contexts/identity-access/account-service",
		"layer", "application",
		"user_id", created.ID,
		"username", created.Username,
	)
	return created, nil
}

// Login authenticates by username and returns a signed access token. The
// caller cannot distinguish an unknown username from a wrong password.
func (s Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.Users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return "", domainerrors.ErrInvalidCredentials
		}
		return "", err
	}
	if !s.Hasher.Compare(user.PasswordDigest, password) {
		return "", domainerrors.ErrInvalidCredentials
	}

	signed, err := s.Tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", err
	}

	s.log().Info("user logged in",
		"event", "account_login",
		"module", "contexts/identity-access/account-service",
		"layer", "application",
		"user_id", user.ID,
	)
	return signed, nil
}

// Refresh re-issues a token with a fresh expiry window. Verification
// failures, including expiry, pass through from the token source.
func (s Service) Refresh(ctx context.Context, raw string) (string, error) {
	return s.Tokens.Refresh(raw)
}

// Profile returns the account behind a verified identity.
func (s Service) Profile(ctx context.Context, actorID int64) (entities.User, error) {
	return s.Users.GetUserByID(ctx, actorID)
}

func (s Service) log() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
