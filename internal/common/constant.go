// Package common contains shared constants and sentinel errors used across
// trainerhub components.
package common

// Keys of the durable credential record. Both entries are written together
// on successful authentication and deleted together on logout or when the
// remote API rejects the stored token.
const (
	TokenStorageKey = "accessToken"
	UserStorageKey  = "user"
)

// HTTP header names used by the API gateway.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)
