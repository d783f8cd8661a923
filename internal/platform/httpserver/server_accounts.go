package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	accounterrors "dailytrack/contexts/identity-access/account-service/domain/errors"
	accounthttp "dailytrack/contexts/identity-access/account-service/transport/http"
	"dailytrack/internal/platform/token"
)

// handleRegister creates a user account.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req accounthttp.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAccountError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.account.Handler.RegisterHandler(r.Context(), req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// handleLogin exchanges credentials for a signed access token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req accounthttp.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAccountError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.account.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleRefreshToken reissues a token from a still-valid one.
func (s *Server) handleRefreshToken(w http.ResponseWriter, r *http.Request) {
	raw, ok := bearerToken(r)
	if !ok {
		writeUnauthorized(w, "missing or malformed Authorization header")
		return
	}

	resp, err := s.account.Handler.RefreshHandler(r.Context(), raw)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleProfile returns the authenticated user's account.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	resp, err := s.account.Handler.ProfileHandler(r.Context(), claims.SubjectID)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeAccountDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accounterrors.ErrInvalidUsername),
		errors.Is(err, accounterrors.ErrInvalidEmail),
		errors.Is(err, accounterrors.ErrPasswordTooShort):
		writeAccountError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
	case errors.Is(err, accounterrors.ErrUserConflict):
		writeAccountError(w, http.StatusBadRequest, "user_conflict", err.Error())
	case errors.Is(err, accounterrors.ErrUserNotFound):
		writeAccountError(w, http.StatusNotFound, "user_not_found", err.Error())
	case errors.Is(err, accounterrors.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeAccountError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, token.ErrTokenMalformed),
		errors.Is(err, token.ErrTokenExpired),
		errors.Is(err, token.ErrTokenSignature):
		writeUnauthorized(w, "could not validate credentials")
	default:
		writeAccountError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeAccountError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, accounthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
