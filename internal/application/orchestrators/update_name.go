package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// ProfileAPIForNameChange defines the remote surface needed by UpdateName.
type ProfileAPIForNameChange interface {
	UpdateName(ctx context.Context, name string) (string, error)
}

// UpdateNameDeps holds dependencies for UpdateName.
type UpdateNameDeps struct {
	Auth    ProfileAPIForNameChange
	Session SessionWriter
}

var (
	ErrEmptyName       = errors.New("informe um nome")
	ErrSessionRequired = errors.New("sessão expirada — entre novamente")
)

// ExecuteUpdateName changes the display name and refreshes the stored
// profile with whatever the backend actually stored.
func ExecuteUpdateName(ctx context.Context, name string, deps UpdateNameDeps) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	profile, signed := deps.Session.Current()
	if !signed {
		return ErrSessionRequired
	}

	stored, err := deps.Auth.UpdateName(ctx, name)
	if err != nil {
		return err
	}
	if stored != "" {
		profile.Name = stored
	} else {
		profile.Name = name
	}

	if err := deps.Session.SignIn(ctx, profile, ""); err != nil {
		return err
	}
	slog.Info("auth_event", "event", "name_updated", "email", profile.Email)
	return nil
}
