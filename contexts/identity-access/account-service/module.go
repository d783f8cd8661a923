package account

import (
	"log/slog"

	httpadapter "dailytrack/contexts/identity-access/account-service/adapters/http"
	"dailytrack/contexts/identity-access/account-service/adapters/memory"
	"dailytrack/contexts/identity-access/account-service/adapters/password"
	tokenadapter "dailytrack/contexts/identity-access/account-service/adapters/token"
	"dailytrack/contexts/identity-access/account-service/application"
	"dailytrack/contexts/identity-access/account-service/ports"
	platformtoken "dailytrack/internal/platform/token"
)

// Module is the account-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Users  ports.UserRepository
	Hasher ports.Hasher
	Tokens ports.TokenSource
	Clock  ports.Clock
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Users:  deps.Users,
		Hasher: deps.Hasher,
		Tokens: deps.Tokens,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// adapters around the given token service.
func NewInMemoryModule(tokens *platformtoken.Service, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Users:  store,
		Hasher: password.BcryptHasher{},
		Tokens: tokenadapter.Source{Service: tokens},
		Clock:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
