package orchestrators

import (
	"context"
	"log/slog"

	"ecoparques/internal/domain/evento"
)

// EventosAPIForWrite defines the remote surface needed by the evento writes.
type EventosAPIForWrite interface {
	CreateEvento(ctx context.Context, in evento.Input) error
	UpdateEvento(ctx context.Context, id string, in evento.Input) error
}

// SaveEventoDeps holds dependencies for the evento writes.
type SaveEventoDeps struct {
	Eventos EventosAPIForWrite
}

// ExecuteCreateEvento validates and submits a new evento.
func ExecuteCreateEvento(ctx context.Context, input evento.Input, deps SaveEventoDeps) error {
	input = input.Normalized()
	if err := input.Validate(); err != nil {
		return err
	}
	if err := deps.Eventos.CreateEvento(ctx, input); err != nil {
		return err
	}
	slog.Info("catalog_event", "event", "evento_created", "nome", input.Nome, "parque_id", input.ParqueID)
	return nil
}

// ExecuteUpdateEvento validates and submits an edit to an existing evento.
// Update payloads additionally collapse nome and localização to one line,
// matching what the backend stores for edits.
func ExecuteUpdateEvento(ctx context.Context, id string, input evento.Input, deps SaveEventoDeps) error {
	if id == "" {
		return ErrInvalidID
	}
	input = input.NormalizedOneLine()
	if err := input.Validate(); err != nil {
		return err
	}
	if err := deps.Eventos.UpdateEvento(ctx, id, input); err != nil {
		return err
	}
	slog.Info("catalog_event", "event", "evento_updated", "id", id)
	return nil
}
