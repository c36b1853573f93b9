// Package common defines shared constants and sentinel errors used across
// client layers of trainerhub. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Session-level errors.
	ErrInvalidAuthResponse = errors.New("invalid auth response")

	// Data shaping / validation errors.
	ErrorValidation = errors.New("validation error")
)
