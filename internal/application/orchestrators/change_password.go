package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"ecoparques/internal/adapters/remote"
)

// ProfileAPIForPasswordChange defines the remote surface needed by
// ChangePassword.
type ProfileAPIForPasswordChange interface {
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
}

// ChangePasswordInput carries input for the change-password orchestrator.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
	Confirmation    string
}

// ChangePasswordDeps holds dependencies for ChangePassword.
type ChangePasswordDeps struct {
	Auth ProfileAPIForPasswordChange
}

// MinPasswordLen is the shortest password the backend accepts.
const MinPasswordLen = 6

var (
	ErrPasswordTooShort = errors.New("a nova senha deve ter pelo menos 6 caracteres")
	ErrPasswordMismatch = errors.New("a confirmação não confere com a nova senha")
)

// ExecuteChangePassword validates locally, then asks the backend to rotate
// the password. The session token stays valid; only the credential changes.
func ExecuteChangePassword(ctx context.Context, input ChangePasswordInput, deps ChangePasswordDeps) error {
	if input.CurrentPassword == "" {
		return ErrPasswordConfirmation
	}
	if len(input.NewPassword) < MinPasswordLen {
		return ErrPasswordTooShort
	}
	if input.NewPassword != input.Confirmation {
		return ErrPasswordMismatch
	}

	if err := deps.Auth.ChangePassword(ctx, input.CurrentPassword, input.NewPassword); err != nil {
		if remote.IsStatus(err, http.StatusUnauthorized) {
			return ErrSenhaAtualIncorreta
		}
		return err
	}

	slog.Info("auth_event", "event", "password_changed")
	return nil
}
