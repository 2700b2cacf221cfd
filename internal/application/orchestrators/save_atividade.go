package orchestrators

import (
	"context"
	"log/slog"

	"ecoparques/internal/domain/atividade"
)

// AtividadesAPIForWrite defines the remote surface needed by the atividade
// writes.
type AtividadesAPIForWrite interface {
	CreateAtividade(ctx context.Context, in atividade.Input) error
	UpdateAtividade(ctx context.Context, id string, in atividade.Input) error
}

// SaveAtividadeDeps holds dependencies for the atividade writes.
type SaveAtividadeDeps struct {
	Atividades AtividadesAPIForWrite
}

// ExecuteCreateAtividade validates and submits a new atividade.
func ExecuteCreateAtividade(ctx context.Context, input atividade.Input, deps SaveAtividadeDeps) error {
	input = input.Normalized()
	if err := input.Validate(); err != nil {
		return err
	}
	if err := deps.Atividades.CreateAtividade(ctx, input); err != nil {
		return err
	}
	slog.Info("catalog_event", "event", "atividade_created", "nome", input.Nome, "tipo", input.Tipo, "parque_id", input.ParqueID)
	return nil
}

// ExecuteUpdateAtividade validates and submits an edit to an existing
// atividade.
func ExecuteUpdateAtividade(ctx context.Context, id string, input atividade.Input, deps SaveAtividadeDeps) error {
	if id == "" {
		return ErrInvalidID
	}
	input = input.Normalized()
	if err := input.Validate(); err != nil {
		return err
	}
	if err := deps.Atividades.UpdateAtividade(ctx, id, input); err != nil {
		return err
	}
	slog.Info("catalog_event", "event", "atividade_updated", "id", id)
	return nil
}
