package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/trainerhub/internal/client/client"
	"github.com/dmitrijs2005/trainerhub/internal/client/models"
)

// login prompts for credentials and signs in. Failures are reported here
// so a bad password is not mistaken for an expired session.
func (a *App) login(ctx context.Context, _ []string) error {
	email, err := a.ask("Enter email")
	if err != nil {
		return err
	}
	password, err := a.readSecret("Enter password")
	if err != nil {
		return err
	}

	creds := models.LoginCredentials{Email: email, Password: password}
	if err := creds.Validate(); err != nil {
		return err
	}

	if err := a.session.Login(ctx, creds); err != nil {
		a.reportAuthFailure("Login", err)
		return nil
	}

	u := a.session.User()
	fmt.Fprintf(a.out, "Welcome, %s!\n", u.Name)
	return nil
}

func (a *App) register(ctx context.Context, _ []string) error {
	name, err := a.ask("Enter your name")
	if err != nil {
		return err
	}
	email, err := a.ask("Enter email")
	if err != nil {
		return err
	}
	phone, err := a.ask("Phone (optional)")
	if err != nil {
		return err
	}
	password, err := a.readSecret("Enter password")
	if err != nil {
		return err
	}
	role, err := a.ask("Are you a trainer (personal) or a student? [personal/student]")
	if err != nil {
		return err
	}

	data := models.RegisterData{
		Name:     name,
		Email:    email,
		Password: password,
		Phone:    strings.TrimSpace(phone),
		Role:     parseRole(role),
	}
	if err := data.Validate(); err != nil {
		return err
	}

	if err := a.session.Register(ctx, data); err != nil {
		a.reportAuthFailure("Registration", err)
		return nil
	}

	fmt.Fprintln(a.out, "Account created. You are signed in.")
	return nil
}

func parseRole(s string) models.Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "personal", "trainer", "p":
		return models.RolePersonal
	case "student", "s":
		return models.RoleStudent
	default:
		return models.Role(strings.ToUpper(strings.TrimSpace(s)))
	}
}

func (a *App) reportAuthFailure(op string, err error) {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		fmt.Fprintf(a.out, "%s failed: invalid email or password.\n", op)
	case errors.Is(err, client.ErrConflict):
		fmt.Fprintf(a.out, "%s failed: this email is already registered.\n", op)
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintf(a.out, "%s failed: server unavailable.\n", op)
	case errors.As(err, &apiErr):
		fmt.Fprintf(a.out, "%s failed: %s\n", op, apiErr.Message)
	default:
		fmt.Fprintf(a.out, "%s failed: %s\n", op, err)
	}
}

func (a *App) whoami(_ context.Context, _ []string) error {
	u := a.session.User()
	if u == nil {
		return fmt.Errorf("not signed in")
	}

	fmt.Fprintf(a.out, "%s <%s>\nRole: %s\nID:   %s\n", u.Name, u.Email, u.Role, u.ID)
	if u.Phone != "" {
		fmt.Fprintf(a.out, "Phone: %s\n", u.Phone)
	}
	if exp, ok := a.session.TokenExpiry(); ok {
		fmt.Fprintf(a.out, "Session expires %s\n", exp.Local().Format(dateTimeLayout))
	}
	return nil
}

func (a *App) logout(ctx context.Context, _ []string) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
