package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"regexp"

	"ecoparques/internal/adapters/remote"
)

// Kind names the two deletable catalog entry types.
type Kind string

const (
	KindEvento    Kind = "evento"
	KindAtividade Kind = "atividade"
)

// DeleteAPIForEntries defines the remote surface needed by DeleteEntry.
type DeleteAPIForEntries interface {
	DeleteEvento(ctx context.Context, id string) (string, error)
	DeleteAtividade(ctx context.Context, id string) (string, error)
}

// DeleteEntryInput carries input for the delete orchestrator.
type DeleteEntryInput struct {
	Kind Kind
	ID   string
}

// DeleteEntryDeps holds dependencies for DeleteEntry.
type DeleteEntryDeps struct {
	API DeleteAPIForEntries
}

var (
	ErrInvalidID     = errors.New("identificador inválido")
	ErrEntryNotFound = errors.New("item não encontrado — talvez já tenha sido removido")
)

// The backend keys entries by 24-hex object ids. Anything else is rejected
// before a request goes out, so a stale or mangled id cannot turn into a
// misleading 404 round trip.
var hexID = regexp.MustCompile(`^[a-fA-F0-9]{24}$`)

// ExecuteDeleteEntry removes one evento or atividade, returning the
// backend's confirmation message. A 404 maps to ErrEntryNotFound so the
// screen can word the already-gone case differently from real failures.
// PRE: caller has already confirmed the user is an administrator
func ExecuteDeleteEntry(ctx context.Context, input DeleteEntryInput, deps DeleteEntryDeps) (string, error) {
	if !hexID.MatchString(input.ID) {
		return "", ErrInvalidID
	}

	var (
		msg string
		err error
	)
	switch input.Kind {
	case KindEvento:
		msg, err = deps.API.DeleteEvento(ctx, input.ID)
	case KindAtividade:
		msg, err = deps.API.DeleteAtividade(ctx, input.ID)
	default:
		return "", errors.New("tipo de item desconhecido")
	}
	if err != nil {
		if remote.IsNotFound(err) {
			return "", ErrEntryNotFound
		}
		return "", err
	}

	slog.Info("catalog_event", "event", "entry_deleted", "kind", string(input.Kind), "id", input.ID)
	return msg, nil
}
