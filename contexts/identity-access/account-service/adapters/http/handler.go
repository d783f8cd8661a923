package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"dailytrack/contexts/identity-access/account-service/application"
	"dailytrack/contexts/identity-access/account-service/domain/entities"
	httptransport "dailytrack/contexts/identity-access/account-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// RegisterHandler godoc
// @Summary Register a new user
// @Description Creates an account and returns the public user record.
// @Tags users
// @Accept json
// @Produce json
// @Param request body httptransport.RegisterRequest true "Account details"
// @Success 201 {object} httptransport.UserResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 422 {object} httptransport.ErrorResponse
// @Router /api/v1/users [post]
func (h Handler) RegisterHandler(ctx context.Context, req httptransport.RegisterRequest) (httptransport.UserResponse, error) {
	user, err := h.Service.Register(
		ctx,
		strings.TrimSpace(req.Username),
		strings.TrimSpace(req.Email),
		req.Password,
	)
	if err != nil {
		return httptransport.UserResponse{}, err
	}
	return userResponse(user), nil
}

// LoginHandler godoc
// @Summary Exchange credentials for an access token
// @Tags users
// @Accept json
// @Produce json
// @Param request body httptransport.LoginRequest true "Credentials"
// @Success 200 {object} httptransport.TokenResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Router /api/v1/users/token [post]
func (h Handler) LoginHandler(ctx context.Context, req httptransport.LoginRequest) (httptransport.TokenResponse, error) {
	signed, err := h.Service.Login(ctx, strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		return httptransport.TokenResponse{}, err
	}
	return httptransport.TokenResponse{
		AccessToken: signed,
		TokenType:   "bearer",
	}, nil
}

// RefreshHandler godoc
// @Summary Refresh the access token
// @Description Reissues a token from a still-valid bearer token.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.TokenResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Router /api/v1/users/refresh_token [get]
func (h Handler) RefreshHandler(ctx context.Context, raw string) (httptransport.TokenResponse, error) {
	signed, err := h.Service.Refresh(ctx, raw)
	if err != nil {
		return httptransport.TokenResponse{}, err
	}
	return httptransport.TokenResponse{
		AccessToken: signed,
		TokenType:   "bearer",
	}, nil
}

// ProfileHandler godoc
// @Summary Current user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.UserResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Router /api/v1/users/profile [get]
func (h Handler) ProfileHandler(ctx context.Context, actorID int64) (httptransport.UserResponse, error) {
	user, err := h.Service.Profile(ctx, actorID)
	if err != nil {
		return httptransport.UserResponse{}, err
	}
	return userResponse(user), nil
}

func userResponse(user entities.User) httptransport.UserResponse {
	return httptransport.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
		IsActive:  user.Active,
	}
}
