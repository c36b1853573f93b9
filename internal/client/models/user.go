package models

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/trainerhub/internal/common"
)

// Role distinguishes trainers from their students.
type Role string

const (
	RolePersonal Role = "PERSONAL"
	RoleStudent  Role = "STUDENT"
)

func (r Role) Valid() bool {
	return r == RolePersonal || r == RoleStudent
}

// User is the authenticated identity.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	Avatar     string    `json:"avatar,omitempty"`
	Role       Role      `json:"role"`
	PersonalID string    `json:"personalId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AuthResponse is returned by the login and register endpoints.
type AuthResponse struct {
	User        *User  `json:"user"`
	AccessToken string `json:"accessToken"`
}

// Valid reports whether the response carries both an identity and a token.
func (r *AuthResponse) Valid() bool {
	return r != nil && r.User != nil && r.AccessToken != ""
}

type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c LoginCredentials) Validate() error {
	if err := validateEmail(c.Email); err != nil {
		return err
	}
	if c.Password == "" {
		return fmt.Errorf("%w: password is required", common.ErrorValidation)
	}
	return nil
}

type RegisterData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Role     Role   `json:"role"`
}

// MinPasswordLength matches the registration form rule.
const MinPasswordLength = 6

func (d RegisterData) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if err := validateEmail(d.Email); err != nil {
		return err
	}
	if len(d.Password) < MinPasswordLength {
		return fmt.Errorf("%w: password must have at least %d characters", common.ErrorValidation, MinPasswordLength)
	}
	if !d.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", common.ErrorValidation, d.Role)
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", common.ErrorValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email %q", common.ErrorValidation, email)
	}
	return nil
}
