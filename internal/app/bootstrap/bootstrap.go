package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	challenge "dailytrack/contexts/challenge-tracking/challenge-service"
	challengepostgres "dailytrack/contexts/challenge-tracking/challenge-service/adapters/postgres"
	account "dailytrack/contexts/identity-access/account-service"
	accountpostgres "dailytrack/contexts/identity-access/account-service/adapters/postgres"
	"dailytrack/contexts/identity-access/account-service/adapters/password"
	tokenadapter "dailytrack/contexts/identity-access/account-service/adapters/token"
	accounterrors "dailytrack/contexts/identity-access/account-service/domain/errors"
	accountports "dailytrack/contexts/identity-access/account-service/ports"
	"dailytrack/internal/platform/config"
	"dailytrack/internal/platform/db"
	"dailytrack/internal/platform/httpserver"
	"dailytrack/internal/platform/token"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("DATABASE_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	tokens, err := token.New(cfg.TokenSecret, cfg.TokenAlgorithm, cfg.AccessTokenTTL)
	if err != nil {
		return nil, err
	}

	accountRepo := accountpostgres.NewRepository(pg.DB, logger)
	if err := accountRepo.AutoMigrate(); err != nil {
		return nil, err
	}
	challengeRepo := challengepostgres.NewRepository(pg.DB, logger)
	if err := challengeRepo.AutoMigrate(); err != nil {
		return nil, err
	}

	accountModule := account.NewModule(account.Dependencies{
		Users:  accountRepo,
		Hasher: password.BcryptHasher{},
		Tokens: tokenadapter.Source{Service: tokens},
		Clock:  accountpostgres.SystemClock{},
		Logger: logger,
	})
	challengeModule := challenge.NewModule(challenge.Dependencies{
		Challenges: challengeRepo,
		Logs:       challengeRepo,
		Shares:     challengeRepo,
		Users:      userDirectory{users: accountRepo},
		Clock:      challengepostgres.SystemClock{},
		Logger:     logger,
	})

	server := httpserver.New(accountModule, challengeModule, tokens, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

// userDirectory bridges the identity-access user repository into the
// challenge context's read-only directory port. Contexts never import
// each other; the handoff happens here.
type userDirectory struct {
	users accountports.UserRepository
}

func (d userDirectory) UserExists(ctx context.Context, id int64) (bool, error) {
	_, err := d.users.GetUserByID(ctx, id)
	if errors.Is(err, accounterrors.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (d userDirectory) Username(ctx context.Context, id int64) (string, error) {
	user, err := d.users.GetUserByID(ctx, id)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
