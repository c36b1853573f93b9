package client

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_MessageExtraction(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "string message", body: `{"message":"Invalid credentials"}`, want: "Invalid credentials"},
		{name: "list message", body: `{"message":["email must be an email","password too short"]}`, want: "email must be an email; password too short"},
		{name: "error field", body: `{"error":"Conflict"}`, want: "Conflict"},
		{name: "not json", body: `<html>`, want: ""},
		{name: "empty", body: ``, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serverMessage([]byte(tt.body)))
		})
	}
}

func TestAPIError_ErrorString(t *testing.T) {
	e := newAPIError(http.MethodPost, "/auth/login", http.StatusUnauthorized, []byte(`{"message":"Invalid credentials"}`))
	assert.Equal(t, "POST /auth/login: 401 Invalid credentials", e.Error())

	e = newAPIError(http.MethodGet, "/students", http.StatusNotFound, nil)
	assert.Equal(t, "GET /students: 404 Not Found", e.Error())
}

func TestAPIError_Is(t *testing.T) {
	var err error = newAPIError(http.MethodGet, "/x", http.StatusServiceUnavailable, nil)
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.False(t, errors.Is(err, ErrNotFound))

	err = newAPIError(http.MethodPost, "/x", http.StatusUnprocessableEntity, nil)
	assert.True(t, errors.Is(err, ErrBadRequest))
}
