package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	challenge "dailytrack/contexts/challenge-tracking/challenge-service"
	account "dailytrack/contexts/identity-access/account-service"
	"dailytrack/internal/platform/token"

	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "dailytrack/internal/platform/httpserver/docs"
)

type Server struct {
	mux       *http.ServeMux
	logger    *slog.Logger
	addr      string
	tokens    *token.Service
	account   account.Module
	challenge challenge.Module
}

func New(
	accountModule account.Module,
	challengeModule challenge.Module,
	tokens *token.Service,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:       http.NewServeMux(),
		logger:    logger,
		addr:      addr,
		tokens:    tokens,
		account:   accountModule,
		challenge: challengeModule,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.Handler())
}

// Handler wraps the mux with per-request correlation logging. Tests mount
// this directly under httptest.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)
		s.logger.Info("http request",
			"event", "http_request",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
		)
		s.mux.ServeHTTP(w, r)
	})
}

func (s *Server) registerRoutes() {
	s.mux.Handle("GET /swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /", s.handleWelcome)

	s.mux.HandleFunc("POST /api/v1/users", s.handleRegister)
	s.mux.HandleFunc("POST /api/v1/users/token", s.handleLogin)
	s.mux.HandleFunc("GET /api/v1/users/refresh_token", s.handleRefreshToken)
	s.mux.HandleFunc("GET /api/v1/users/profile", s.handleProfile)

	s.mux.HandleFunc("POST /api/v1/challenges", s.handleCreateChallenge)
	s.mux.HandleFunc("GET /api/v1/challenges", s.handleListChallenges)
	s.mux.HandleFunc("GET /api/v1/challenges/{challenge_id}", s.handleGetChallenge)
	s.mux.HandleFunc("POST /api/v1/challenges/{challenge_id}/complete", s.handleCompleteChallenge)
	s.mux.HandleFunc("DELETE /api/v1/challenges/{challenge_id}", s.handleDeleteChallenge)

	s.mux.HandleFunc("POST /api/v1/daily-logs", s.handleCreateDailyLog)
	s.mux.HandleFunc("GET /api/v1/daily-logs/{challenge_id}", s.handleListDailyLogs)
	s.mux.HandleFunc("PUT /api/v1/daily-logs/{log_id}", s.handleUpdateDailyLog)
	s.mux.HandleFunc("DELETE /api/v1/daily-logs/{log_id}", s.handleDeleteDailyLog)

	s.mux.HandleFunc("POST /api/v1/shared-challenges", s.handleShareChallenge)
	s.mux.HandleFunc("GET /api/v1/shared-challenges/user", s.handleListSharedChallenges)
	s.mux.HandleFunc("DELETE /api/v1/shared-challenges/{shared_id}", s.handleDeleteSharedGrant)
}

func (s *Server) handleWelcome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the Daily Challenge Tracker API",
	})
}

// authenticate extracts and verifies the bearer token. On failure it
// writes 401 with a WWW-Authenticate challenge and returns ok=false.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (token.Claims, bool) {
	raw, ok := bearerToken(r)
	if !ok {
		writeUnauthorized(w, "missing or malformed Authorization header")
		return token.Claims{}, false
	}
	claims, err := s.tokens.Verify(raw)
	if err != nil {
		writeUnauthorized(w, "could not validate credentials")
		return token.Claims{}, false
	}
	return claims, true
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, raw, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	return raw, true
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeAccountError(w, http.StatusUnauthorized, "unauthorized", message)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
