package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"dailytrack/contexts/challenge-tracking/challenge-service/application"
	"dailytrack/contexts/challenge-tracking/challenge-service/domain/entities"
	domainerrors "dailytrack/contexts/challenge-tracking/challenge-service/domain/errors"
	"dailytrack/contexts/challenge-tracking/challenge-service/ports"
	httptransport "dailytrack/contexts/challenge-tracking/challenge-service/transport/http"
)

const logDateLayout = "2006-01-02"

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// CreateChallengeHandler godoc
// @Summary Create a challenge
// @Tags challenges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.ChallengeCreateRequest true "Challenge details"
// @Success 201 {object} httptransport.ChallengeResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 422 {object} httptransport.ErrorResponse
// @Router /api/v1/challenges [post]
func (h Handler) CreateChallengeHandler(ctx context.Context, actorID int64, req httptransport.ChallengeCreateRequest) (httptransport.ChallengeResponse, error) {
	created, err := h.Service.CreateChallenge(ctx, actorID, req.Name, req.Description)
	if err != nil {
		return httptransport.ChallengeResponse{}, err
	}
	return challengeResponse(created), nil
}

// GetChallengeHandler godoc
// @Summary Get one of the caller's challenges
// @Tags challenges
// @Produce json
// @Security BearerAuth
// @Param challenge_id path int true "Challenge id"
// @Success 200 {object} httptransport.ChallengeResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/v1/challenges/{challenge_id} [get]
func (h Handler) GetChallengeHandler(ctx context.Context, actorID int64, challengeID int64) (httptransport.ChallengeResponse, error) {
	found, err := h.Service.GetChallenge(ctx, actorID, challengeID)
	if err != nil {
		return httptransport.ChallengeResponse{}, err
	}
	return challengeResponse(found), nil
}

// ListChallengesHandler godoc
// @Summary List the caller's challenges
// @Tags challenges
// @Produce json
// @Security BearerAuth
// @Success 200 {array} httptransport.ChallengeResponse
// @Router /api/v1/challenges [get]
func (h Handler) ListChallengesHandler(ctx context.Context, actorID int64) ([]httptransport.ChallengeResponse, error) {
	items, err := h.Service.ListMyChallenges(ctx, actorID)
	if err != nil {
		return nil, err
	}
	responses := make([]httptransport.ChallengeResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, challengeResponse(item))
	}
	return responses, nil
}

// CompleteChallengeHandler godoc
// @Summary Mark a challenge completed
// @Tags challenges
// @Produce json
// @Security BearerAuth
// @Param challenge_id path int true "Challenge id"
// @Success 200 {object} httptransport.ChallengeResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/v1/challenges/{challenge_id}/complete [post]
func (h Handler) CompleteChallengeHandler(ctx context.Context, actorID int64, challengeID int64) (httptransport.ChallengeResponse, error) {
	completed, err := h.Service.CompleteChallenge(ctx, actorID, challengeID)
	if err != nil {
		return httptransport.ChallengeResponse{}, err
	}
	return challengeResponse(completed), nil
}

// DeleteChallengeHandler godoc
// @Summary Delete a challenge and its logs and grants
// @Tags challenges
// @Security BearerAuth
// @Param challenge_id path int true "Challenge id"
// @Success 204
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/v1/challenges/{challenge_id} [delete]
func (h Handler) DeleteChallengeHandler(ctx context.Context, actorID int64, challengeID int64) error {
	return h.Service.DeleteChallenge(ctx, actorID, challengeID)
}

// CreateDailyLogHandler godoc
// @Summary Record a daily log entry
// @Tags daily-logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.DailyLogCreateRequest true "Log entry, log_date as YYYY-MM-DD"
// @Success 201 {object} httptransport.DailyLogResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /api/v1/daily-logs [post]
func (h Handler) CreateDailyLogHandler(ctx context.Context, actorID int64, req httptransport.DailyLogCreateRequest) (httptransport.DailyLogResponse, error) {
	logDate, err := time.ParseInLocation(logDateLayout, req.LogDate, time.UTC)
	if err != nil {
		return httptransport.DailyLogResponse{}, domainerrors.ErrInvalidLogDate
	}
	created, err := h.Service.CreateDailyLog(ctx, actorID, req.ChallengeID, logDate, req.Completed)
	if err != nil {
		return httptransport.DailyLogResponse{}, err
	}
	return dailyLogResponse(created), nil
}

// ListDailyLogsHandler godoc
// @Summary List log entries for a challenge
// @Tags daily-logs
// @Produce json
// @Security BearerAuth
// @Param challenge_id path int true "Challenge id"
// @Success 200 {array} httptransport.DailyLogResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/v1/daily-logs/{challenge_id} [get]
func (h Handler) ListDailyLogsHandler(ctx context.Context, actorID int64, challengeID int64) ([]httptransport.DailyLogResponse, error) {
	items, err := h.Service.ListLogsForChallenge(ctx, actorID, challengeID)
	if err != nil {
		return nil, err
	}
	responses := make([]httptransport.DailyLogResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, dailyLogResponse(item))
	}
	return responses, nil
}

// UpdateDailyLogHandler godoc
// @Summary Update a log entry's completed flag
// @Tags daily-logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param log_id path int true "Log id"
// @Param request body httptransport.DailyLogUpdateRequest true "New state"
// @Success 200 {object} httptransport.DailyLogResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/v1/daily-logs/{log_id} [put]
func (h Handler) UpdateDailyLogHandler(ctx context.Context, actorID int64, logID int64, req httptransport.DailyLogUpdateRequest) (httptransport.DailyLogResponse, error) {
	updated, err := h.Service.UpdateDailyLog(ctx, actorID, logID, req.Completed)
	if err != nil {
		return httptransport.DailyLogResponse{}, err
	}
	return dailyLogResponse(updated), nil
}

// DeleteDailyLogHandler godoc
// @Summary Delete a log entry
// @Tags daily-logs
// @Security BearerAuth
// @Param log_id path int true "Log id"
// @Success 204
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/v1/daily-logs/{log_id} [delete]
func (h Handler) DeleteDailyLogHandler(ctx context.Context, actorID int64, logID int64) error {
	return h.Service.DeleteDailyLog(ctx, actorID, logID)
}

// ShareChallengeHandler godoc
// @Summary Share a challenge with another user
// @Tags shared-challenges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.ShareRequest true "Share details"
// @Success 201 {object} httptransport.SharedGrantResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/v1/shared-challenges [post]
func (h Handler) ShareChallengeHandler(ctx context.Context, actorID int64, req httptransport.ShareRequest) (httptransport.SharedGrantResponse, error) {
	grant, err := h.Service.ShareChallenge(ctx, actorID, req.ChallengeID, req.SharedUserID)
	if err != nil {
		return httptransport.SharedGrantResponse{}, err
	}
	return httptransport.SharedGrantResponse{
		ID:           grant.ID,
		ChallengeID:  grant.ChallengeID,
		SharedUserID: grant.GranteeID,
		SharedAt:     grant.SharedAt.UTC().Format(time.RFC3339),
	}, nil
}

// ListSharedWithMeHandler godoc
// @Summary List challenges shared with the caller
// @Tags shared-challenges
// @Produce json
// @Security BearerAuth
// @Success 200 {array} httptransport.SharedChallengeResponse
// @Router /api/v1/shared-challenges/user [get]
func (h Handler) ListSharedWithMeHandler(ctx context.Context, actorID int64) ([]httptransport.SharedChallengeResponse, error) {
	views, err := h.Service.ListSharedWithMe(ctx, actorID)
	if err != nil {
		return nil, err
	}
	responses := make([]httptransport.SharedChallengeResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, sharedChallengeResponse(view))
	}
	return responses, nil
}

// DeleteSharedGrantHandler godoc
// @Summary Revoke a shared-challenge grant
// @Tags shared-challenges
// @Security BearerAuth
// @Param shared_id path int true "Grant id"
// @Success 204
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/v1/shared-challenges/{shared_id} [delete]
func (h Handler) DeleteSharedGrantHandler(ctx context.Context, actorID int64, grantID int64) error {
	return h.Service.DeleteSharedGrant(ctx, actorID, grantID)
}

func challengeResponse(challenge entities.Challenge) httptransport.ChallengeResponse {
	return httptransport.ChallengeResponse{
		ID:          challenge.ID,
		OwnerID:     challenge.OwnerID,
		Name:        challenge.Name,
		Description: challenge.Description,
		StartedAt:   challenge.StartedAt.UTC().Format(time.RFC3339),
		CompletedAt: optionalTimestamp(challenge.CompletedAt),
	}
}

func dailyLogResponse(log entities.DailyLog) httptransport.DailyLogResponse {
	return httptransport.DailyLogResponse{
		ID:          log.ID,
		ChallengeID: log.ChallengeID,
		LogDate:     log.LogDate.UTC().Format(logDateLayout),
		Completed:   log.Completed,
		CreatedAt:   log.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   log.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func sharedChallengeResponse(view ports.SharedChallengeView) httptransport.SharedChallengeResponse {
	return httptransport.SharedChallengeResponse{
		ID:          view.GrantID,
		ChallengeID: view.ChallengeID,
		Name:        view.Name,
		Description: view.Description,
		StartedAt:   view.StartedAt.UTC().Format(time.RFC3339),
		CompletedAt: optionalTimestamp(view.CompletedAt),
		SharedAt:    view.SharedAt.UTC().Format(time.RFC3339),
		SharedBy:    view.SharedBy,
	}
}

func optionalTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}
