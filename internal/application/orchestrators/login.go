package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"ecoparques/internal/adapters/remote"
	"ecoparques/internal/domain/usuario"
)

// AuthAPIForLogin defines the remote surface needed by Login.
type AuthAPIForLogin interface {
	Login(ctx context.Context, email, password string) (remote.LoginResult, error)
}

// SessionWriter is the session mutation surface the profile orchestrators
// share. Satisfied by *session.Manager.
type SessionWriter interface {
	Current() (usuario.Profile, bool)
	SignIn(ctx context.Context, profile usuario.Profile, token string) error
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Email    string
	Password string
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	Auth    AuthAPIForLogin
	Session SessionWriter
}

var ErrMissingCredentials = errors.New("informe e-mail e senha")

// ExecuteLogin exchanges credentials for a session. The backend does not
// return a profile on login, so one is assembled locally: a fresh id, the
// e-mail's local part as display name, and the role and active flag from
// the response. Remote failures pass through untouched so the screen can
// show the backend's own detail.
// PRE: none signed in, or re-login over an existing session
// POST: On success the session is signed and the bearer token installed
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (usuario.Profile, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return usuario.Profile{}, ErrMissingCredentials
	}

	result, err := deps.Auth.Login(ctx, email, input.Password)
	if err != nil {
		slog.Info("auth_event", "event", "login_failed", "email", email, "error", err)
		return usuario.Profile{}, err
	}

	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	profile := usuario.Profile{
		ID:     uuid.New().String(),
		Name:   name,
		Email:  email,
		Role:   result.Role,
		Active: result.Active,
	}

	if err := deps.Session.SignIn(ctx, profile, result.Token); err != nil {
		return usuario.Profile{}, err
	}
	return profile, nil
}
