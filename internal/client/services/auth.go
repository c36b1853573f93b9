package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/trainerhub/internal/client/models"
)

// AuthService calls the remote authentication endpoints.
//
// Contract:
//   - Login: exchange email/password for a user and access token.
//   - Register: create an account and return the same pair.
//
// Errors from the gateway are wrapped; match them with errors.Is against the
// client package sentinels (e.g. ErrUnauthorized for bad credentials,
// ErrConflict for a duplicate email).
type AuthService interface {
	Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error)
	Register(ctx context.Context, data models.RegisterData) (*models.AuthResponse, error)
}

type authService struct {
	api API
}

func NewAuthService(api API) AuthService {
	return &authService{api: api}
}

func (a *authService) Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.api.Post(ctx, "/auth/login", creds, &resp); err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	return &resp, nil
}

func (a *authService) Register(ctx context.Context, data models.RegisterData) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.api.Post(ctx, "/auth/register", data, &resp); err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	return &resp, nil
}
