package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	challengeerrors "dailytrack/contexts/challenge-tracking/challenge-service/domain/errors"
	challengehttp "dailytrack/contexts/challenge-tracking/challenge-service/transport/http"
)

func (s *Server) handleCreateChallenge(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req challengehttp.ChallengeCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeChallengeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.challenge.Handler.CreateChallengeHandler(r.Context(), claims.SubjectID, req)
	if err != nil {
		writeChallengeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListChallenges(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	resp, err := s.challenge.Handler.ListChallengesHandler(r.Context(), claims.SubjectID)
	if err != nil {
		writeChallengeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetChallenge(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	challengeID, ok := pathID(w, r, "challenge_id")
	if !ok {
		return
	}

	resp, err := s.challenge.Handler.GetChallengeHandler(r.Context(), claims.SubjectID, challengeID)
	if err != nil {
		writeChallengeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCompleteChallenge(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	challengeID, ok := pathID(w, r, "challenge_id")
	if !ok {
		return
	}

	resp, err := s.challenge.Handler.CompleteChallengeHandler(r.Context(), claims.SubjectID, challengeID)
	if err != nil {
		writeChallengeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteChallenge(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	challengeID, ok := pathID(w, r, "challenge_id")
	if !ok {
		return
	}

	if err := s.challenge.Handler.DeleteChallengeHandler(r.Context(), claims.SubjectID, challengeID); err != nil {
		writeChallengeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateDailyLog(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req challengehttp.DailyLogCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeChallengeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.challenge.Handler.CreateDailyLogHandler(r.Context(), claims.SubjectID, req)
	if err != nil {
		writeChallengeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListDailyLogs(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	challengeID, ok := pathID(w, r, "challenge_id")
	if !ok {
		return
	}

	resp, err := s.challenge.Handler.ListDailyLogsHandler(r.Context(), claims.SubjectID, challengeID)
	if err != nil {
		writeChallengeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateDailyLog(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	logID, ok := pathID(w, r, "log_id")
	if !ok {
		return
	}
	var req challengehttp.DailyLogUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeChallengeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.challenge.Handler.UpdateDailyLogHandler(r.Context(), claims.SubjectID, logID, req)
	if err != nil {
		writeChallengeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteDailyLog(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	logID, ok := pathID(w, r, "log_id")
	if !ok {
		return
	}

	if err := s.challenge.Handler.DeleteDailyLogHandler(r.Context(), claims.SubjectID, logID); err != nil {
		writeChallengeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleShareChallenge(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req challengehttp.ShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeChallengeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.challenge.Handler.ShareChallengeHandler(r.Context(), claims.SubjectID, req)
	if err != nil {
		writeChallengeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListSharedChallenges(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	resp, err := s.challenge.Handler.ListSharedWithMeHandler(r.Context(), claims.SubjectID)
	if err != nil {
		writeChallengeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteSharedGrant(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	grantID, ok := pathID(w, r, "shared_id")
	if !ok {
		return
	}

	if err := s.challenge.Handler.DeleteSharedGrantHandler(r.Context(), claims.SubjectID, grantID); err != nil {
		writeChallengeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathID parses an integer path parameter, answering 422 on junk the way
// the public API contract specifies for malformed input.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		writeChallengeError(w, http.StatusUnprocessableEntity, "invalid_path_parameter", name+" must be an integer")
		return 0, false
	}
	return id, true
}

func writeChallengeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, challengeerrors.ErrInvalidChallengeName),
		errors.Is(err, challengeerrors.ErrInvalidLogDate):
		writeChallengeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
	case errors.Is(err, challengeerrors.ErrChallengeNameTaken),
		errors.Is(err, challengeerrors.ErrLogDateTaken):
		writeChallengeError(w, http.StatusBadRequest, "duplicate_resource", err.Error())
	case errors.Is(err, challengeerrors.ErrChallengeNotFound),
		errors.Is(err, challengeerrors.ErrLogNotFound),
		errors.Is(err, challengeerrors.ErrGrantNotFound),
		errors.Is(err, challengeerrors.ErrShareTargetNotFound):
		writeChallengeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, challengeerrors.ErrForbidden):
		writeChallengeError(w, http.StatusForbidden, "forbidden", err.Error())
	default:
		writeChallengeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeChallengeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, challengehttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
