package challenge

import (
	"log/slog"

	httpadapter "dailytrack/contexts/challenge-tracking/challenge-service/adapters/http"
	"dailytrack/contexts/challenge-tracking/challenge-service/adapters/memory"
	"dailytrack/contexts/challenge-tracking/challenge-service/application"
	"dailytrack/contexts/challenge-tracking/challenge-service/domain/services"
	"dailytrack/contexts/challenge-tracking/challenge-service/ports"
)

// Module is the challenge-service composition root exposed to runtime
// wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports required by NewModule. The
// ownership resolver is derived from the repositories, not injected.
type Dependencies struct {
	Challenges ports.ChallengeRepository
	Logs       ports.DailyLogRepository
	Shares     ports.ShareRepository
	Users      ports.UserDirectory
	Clock      ports.Clock
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Challenges: deps.Challenges,
		Logs:       deps.Logs,
		Shares:     deps.Shares,
		Users:      deps.Users,
		Resolver: services.Resolver{
			Challenges: deps.Challenges,
			Logs:       deps.Logs,
			Grants:     deps.Shares,
		},
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

// NewInMemoryModule builds a development/testing module around the
// in-memory store, which doubles as the user directory via SeedUser.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Challenges: store,
		Logs:       store,
		Shares:     store,
		Users:      store,
		Clock:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
