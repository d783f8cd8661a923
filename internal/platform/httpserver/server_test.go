package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	challenge "dailytrack/contexts/challenge-tracking/challenge-service"
	challengememory "dailytrack/contexts/challenge-tracking/challenge-service/adapters/memory"
	account "dailytrack/contexts/identity-access/account-service"
	accounterrors "dailytrack/contexts/identity-access/account-service/domain/errors"
	"dailytrack/internal/platform/token"
)

// accountDirectory mirrors the composition-root bridge that lets the
// challenge context resolve users without importing identity-access.
type accountDirectory struct {
	accounts account.Module
}

func (d accountDirectory) UserExists(ctx context.Context, id int64) (bool, error) {
	_, err := d.accounts.Store.GetUserByID(ctx, id)
	if errors.Is(err, accounterrors.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (d accountDirectory) Username(ctx context.Context, id int64) (string, error) {
	user, err := d.accounts.Store.GetUserByID(ctx, id)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens, err := token.New("test-secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("new token service failed: %v", err)
	}

	accountModule := account.NewInMemoryModule(tokens, logger)
	store := challengememory.NewStore()
	challengeModule := challenge.NewModule(challenge.Dependencies{
		Challenges: store,
		Logs:       store,
		Shares:     store,
		Users:      accountDirectory{accounts: accountModule},
		Clock:      store,
		Logger:     logger,
	})
	challengeModule.Store = store

	return New(accountModule, challengeModule, tokens, logger, ":0")
}

func doRequest(t *testing.T, server *Server, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
}

// registerAndLogin provisions a user through the public API and returns
// the bearer token.
func registerAndLogin(t *testing.T, server *Server, username string) string {
	t.Helper()
	rr := doRequest(t, server, http.MethodPost, "/api/v1/users", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "password1",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d body=%s", username, rr.Code, rr.Body.String())
	}

	rr = doRequest(t, server, http.MethodPost, "/api/v1/users/token", "", map[string]string{
		"username": username,
		"password": "password1",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d body=%s", username, rr.Code, rr.Body.String())
	}
	var tokenBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeBody(t, rr, &tokenBody)
	if tokenBody.AccessToken == "" {
		t.Fatal("expected an access token")
	}
	return tokenBody.AccessToken
}

func createChallenge(t *testing.T, server *Server, bearer, name string) int64 {
	t.Helper()
	rr := doRequest(t, server, http.MethodPost, "/api/v1/challenges", bearer, map[string]string{
		"name":        name,
		"description": "test challenge",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create challenge: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var body struct {
		ID int64 `json:"id"`
	}
	decodeBody(t, rr, &body)
	return body.ID
}

func TestWelcomePayload(t *testing.T) {
	server := newTestServer(t)

	rr := doRequest(t, server, http.MethodGet, "/", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, rr, &body)
	if body.Message == "" {
		t.Fatal("expected a welcome message")
	}
	if rr.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected a request correlation id header")
	}
}

func TestRegisterLoginProfileFlow(t *testing.T) {
	server := newTestServer(t)
	bearer := registerAndLogin(t, server, "alice")

	rr := doRequest(t, server, http.MethodGet, "/api/v1/users/profile", bearer, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("profile: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var profile struct {
		Username string `json:"username"`
		IsActive bool   `json:"is_active"`
	}
	decodeBody(t, rr, &profile)
	if profile.Username != "alice" || !profile.IsActive {
		t.Fatalf("unexpected profile %+v", profile)
	}
}

func TestProfileRequiresBearerToken(t *testing.T) {
	server := newTestServer(t)

	rr := doRequest(t, server, http.MethodGet, "/api/v1/users/profile", "", nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if rr.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Fatalf("expected WWW-Authenticate challenge, got %q", rr.Header().Get("WWW-Authenticate"))
	}

	rr = doRequest(t, server, http.MethodGet, "/api/v1/users/profile", "not-a-token", nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a garbage token, got %d", rr.Code)
	}
}

func TestLoginFailureIs401(t *testing.T) {
	server := newTestServer(t)
	registerAndLogin(t, server, "alice")

	rr := doRequest(t, server, http.MethodPost, "/api/v1/users/token", "", map[string]string{
		"username": "alice",
		"password": "wrong-password",
	})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestRefreshTokenEndpoint(t *testing.T) {
	server := newTestServer(t)
	bearer := registerAndLogin(t, server, "alice")

	rr := doRequest(t, server, http.MethodGet, "/api/v1/users/refresh_token", bearer, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("refresh: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decodeBody(t, rr, &body)
	if body.AccessToken == "" || body.TokenType != "bearer" {
		t.Fatalf("unexpected refresh payload %+v", body)
	}

	rr = doRequest(t, server, http.MethodGet, "/api/v1/users/refresh_token", "garbage", nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a garbage token, got %d", rr.Code)
	}
}

func TestChallengeLifecycleOverHTTP(t *testing.T) {
	server := newTestServer(t)
	bearer := registerAndLogin(t, server, "alice")

	challengeID := createChallenge(t, server, bearer, "Read Books")

	// The per-owner name is taken now.
	rr := doRequest(t, server, http.MethodPost, "/api/v1/challenges", bearer, map[string]string{
		"name": "Read Books",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("duplicate name: expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doRequest(t, server, http.MethodGet, "/api/v1/challenges", bearer, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rr.Code)
	}
	var challenges []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	decodeBody(t, rr, &challenges)
	if len(challenges) != 1 || challenges[0].Name != "Read Books" {
		t.Fatalf("unexpected challenge list %+v", challenges)
	}

	rr = doRequest(t, server, http.MethodPost, "/api/v1/daily-logs", bearer, map[string]any{
		"challenge_id": challengeID,
		"log_date":     "2024-11-01",
		"completed":    true,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create log: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var log struct {
		ID      int64  `json:"id"`
		LogDate string `json:"log_date"`
	}
	decodeBody(t, rr, &log)
	if log.LogDate != "2024-11-01" {
		t.Fatalf("expected log_date 2024-11-01, got %q", log.LogDate)
	}

	rr = doRequest(t, server, http.MethodPost, "/api/v1/daily-logs", bearer, map[string]any{
		"challenge_id": challengeID,
		"log_date":     "2024-11-01",
		"completed":    false,
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("duplicate date: expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doRequest(t, server, http.MethodPut, fmt.Sprintf("/api/v1/daily-logs/%d", log.ID), bearer, map[string]bool{
		"completed": false,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("update log: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doRequest(t, server, http.MethodGet, fmt.Sprintf("/api/v1/daily-logs/%d", challengeID), bearer, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("list logs: expected 200, got %d", rr.Code)
	}

	rr = doRequest(t, server, http.MethodPost, fmt.Sprintf("/api/v1/challenges/%d/complete", challengeID), bearer, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("complete: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var completed struct {
		CompletedAt *string `json:"completed_at"`
	}
	decodeBody(t, rr, &completed)
	if completed.CompletedAt == nil {
		t.Fatal("expected completed_at to be set")
	}

	rr = doRequest(t, server, http.MethodDelete, fmt.Sprintf("/api/v1/challenges/%d", challengeID), bearer, nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rr.Code)
	}
	rr = doRequest(t, server, http.MethodGet, fmt.Sprintf("/api/v1/challenges/%d", challengeID), bearer, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rr.Code)
	}
}

func TestChallengeOwnershipIsolation(t *testing.T) {
	server := newTestServer(t)
	aliceBearer := registerAndLogin(t, server, "alice")
	bobBearer := registerAndLogin(t, server, "bob")

	challengeID := createChallenge(t, server, aliceBearer, "Read Books")

	rr := doRequest(t, server, http.MethodGet, fmt.Sprintf("/api/v1/challenges/%d", challengeID), bobBearer, nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for someone else's challenge, got %d", rr.Code)
	}
	rr = doRequest(t, server, http.MethodGet, fmt.Sprintf("/api/v1/challenges/%d", challengeID+100), bobBearer, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a missing challenge, got %d", rr.Code)
	}
	rr = doRequest(t, server, http.MethodGet, "/api/v1/challenges", bobBearer, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rr.Code)
	}
	var challenges []json.RawMessage
	decodeBody(t, rr, &challenges)
	if len(challenges) != 0 {
		t.Fatalf("expected bob's list to be empty, got %d items", len(challenges))
	}
}

func TestSharedChallengesOverHTTP(t *testing.T) {
	server := newTestServer(t)
	aliceBearer := registerAndLogin(t, server, "alice")
	bobBearer := registerAndLogin(t, server, "bob")

	challengeID := createChallenge(t, server, aliceBearer, "Read Books")

	rr := doRequest(t, server, http.MethodPost, "/api/v1/shared-challenges", aliceBearer, map[string]any{
		"challenge_id":   challengeID,
		"shared_user_id": 2,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("share: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var grant struct {
		ID int64 `json:"id"`
	}
	decodeBody(t, rr, &grant)

	rr = doRequest(t, server, http.MethodGet, "/api/v1/shared-challenges/user", bobBearer, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("list shared: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var shared []struct {
		ID          int64  `json:"id"`
		ChallengeID int64  `json:"challenge_id"`
		Name        string `json:"name"`
		SharedBy    string `json:"shared_by"`
	}
	decodeBody(t, rr, &shared)
	if len(shared) != 1 {
		t.Fatalf("expected one shared challenge, got %d", len(shared))
	}
	if shared[0].Name != "Read Books" || shared[0].SharedBy != "alice" {
		t.Fatalf("unexpected shared view %+v", shared[0])
	}

	// Sharing with an unknown user is a 404 on the share target.
	rr = doRequest(t, server, http.MethodPost, "/api/v1/shared-challenges", aliceBearer, map[string]any{
		"challenge_id":   challengeID,
		"shared_user_id": 999,
	})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown grantee, got %d", rr.Code)
	}

	// The grantee cannot revoke; the owner can.
	rr = doRequest(t, server, http.MethodDelete, fmt.Sprintf("/api/v1/shared-challenges/%d", grant.ID), bobBearer, nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for the grantee, got %d", rr.Code)
	}
	rr = doRequest(t, server, http.MethodDelete, fmt.Sprintf("/api/v1/shared-challenges/%d", grant.ID), aliceBearer, nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for the owner, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestValidationErrorsAre422(t *testing.T) {
	server := newTestServer(t)
	bearer := registerAndLogin(t, server, "alice")

	rr := doRequest(t, server, http.MethodPost, "/api/v1/challenges", bearer, map[string]string{
		"name": "",
	})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("empty name: expected 422, got %d", rr.Code)
	}

	rr = doRequest(t, server, http.MethodGet, "/api/v1/challenges/not-a-number", bearer, nil)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("junk path id: expected 422, got %d", rr.Code)
	}

	challengeID := createChallenge(t, server, bearer, "Read Books")
	rr = doRequest(t, server, http.MethodPost, "/api/v1/daily-logs", bearer, map[string]any{
		"challenge_id": challengeID,
		"log_date":     "01-11-2024",
	})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("bad log_date: expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestChallengeRoutesRequireAuth(t *testing.T) {
	server := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/challenges"},
		{http.MethodGet, "/api/v1/challenges"},
		{http.MethodGet, "/api/v1/challenges/1"},
		{http.MethodPost, "/api/v1/daily-logs"},
		{http.MethodGet, "/api/v1/shared-challenges/user"},
		{http.MethodDelete, "/api/v1/shared-challenges/1"},
	}
	for _, tc := range paths {
		rr := doRequest(t, server, tc.method, tc.path, "", nil)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", tc.method, tc.path, rr.Code)
		}
	}
}
