package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"ecoparques/internal/adapters/remote"
	"ecoparques/internal/domain/usuario"
)

// ProfileAPIForEmailChange defines the remote surface needed by UpdateEmail.
type ProfileAPIForEmailChange interface {
	UpdateEmail(ctx context.Context, email, currentPassword string) (remote.EmailChangeResult, error)
}

// UpdateEmailInput carries input for the e-mail change orchestrator.
type UpdateEmailInput struct {
	Email           string
	CurrentPassword string
}

// UpdateEmailDeps holds dependencies for UpdateEmail.
type UpdateEmailDeps struct {
	Auth    ProfileAPIForEmailChange
	Session SessionWriter
}

var (
	ErrBadEmail             = errors.New("informe um e-mail válido")
	ErrSenhaAtualIncorreta  = errors.New("senha atual incorreta")
	ErrEmailEmUso           = errors.New("este e-mail já está em uso")
	ErrPasswordConfirmation = errors.New("informe a senha atual para confirmar")
)

// ExecuteUpdateEmail changes the account's e-mail address. The backend may
// rotate the bearer token on this operation; when it does, the new token is
// persisted and installed before anything else runs, otherwise the very next
// request would go out with a credential bound to the old address.
func ExecuteUpdateEmail(ctx context.Context, input UpdateEmailInput, deps UpdateEmailDeps) error {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if !usuario.ValidEmail(email) {
		return ErrBadEmail
	}
	if input.CurrentPassword == "" {
		return ErrPasswordConfirmation
	}

	profile, signed := deps.Session.Current()
	if !signed {
		return ErrSessionRequired
	}

	result, err := deps.Auth.UpdateEmail(ctx, email, input.CurrentPassword)
	if err != nil {
		switch {
		case remote.IsStatus(err, http.StatusUnauthorized):
			return ErrSenhaAtualIncorreta
		case remote.IsStatus(err, http.StatusConflict):
			return ErrEmailEmUso
		}
		return err
	}

	profile.Email = email
	if result.Email != "" {
		profile.Email = result.Email
	}
	if result.Role != "" {
		profile.Role = result.Role
	}

	if err := deps.Session.SignIn(ctx, profile, result.Token); err != nil {
		return err
	}
	slog.Info("auth_event", "event", "email_updated", "email", profile.Email, "token_rotated", result.Token != "")
	return nil
}
