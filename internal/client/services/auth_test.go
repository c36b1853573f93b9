package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/trainerhub/internal/client/client"
	"github.com/dmitrijs2005/trainerhub/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	f, g := newFakeAPI(t)
	f.on(http.MethodPost, "/api/auth/login", http.StatusOK,
		`{"user":{"id":"u1","email":"a@b.com","name":"Ana","role":"STUDENT","createdAt":"2025-01-01T00:00:00.000Z"},"accessToken":"tok-123"}`)

	resp, err := NewAuthService(g).Login(context.Background(), models.LoginCredentials{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)
	require.True(t, resp.Valid())
	assert.Equal(t, "tok-123", resp.AccessToken)
	assert.Equal(t, models.RoleStudent, resp.User.Role)

	assert.JSONEq(t, `{"email":"a@b.com","password":"secret1"}`, f.last().Body)
}

func TestAuthService_LoginRejected(t *testing.T) {
	f, g := newFakeAPI(t)
	f.on(http.MethodPost, "/api/auth/login", http.StatusUnauthorized, `{"message":"Invalid credentials"}`)

	_, err := NewAuthService(g).Login(context.Background(), models.LoginCredentials{Email: "a@b.com", Password: "bad"})
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	f, g := newFakeAPI(t)
	f.on(http.MethodPost, "/api/auth/register", http.StatusConflict, `{"message":"Email already registered"}`)

	_, err := NewAuthService(g).Register(context.Background(), models.RegisterData{
		Name: "Ana", Email: "a@b.com", Password: "secret1", Role: models.RoleStudent,
	})
	require.ErrorIs(t, err, client.ErrConflict)
	assert.JSONEq(t, `{"name":"Ana","email":"a@b.com","password":"secret1","role":"STUDENT"}`, f.last().Body)
}
