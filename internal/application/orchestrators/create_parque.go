package orchestrators

import (
	"context"
	"log/slog"

	"ecoparques/internal/domain/parque"
)

// ParquesAPIForCreate defines the remote surface needed by CreateParque.
type ParquesAPIForCreate interface {
	CreateParque(ctx context.Context, in parque.CreateInput) (string, error)
}

// CreateParqueDeps holds dependencies for CreateParque.
type CreateParqueDeps struct {
	Parques ParquesAPIForCreate
}

// ExecuteCreateParque validates and submits a new park, returning the
// backend's confirmation message.
// PRE: caller has already confirmed the user is an administrator
func ExecuteCreateParque(ctx context.Context, input parque.CreateInput, deps CreateParqueDeps) (string, error) {
	input = input.Normalized()
	if err := input.Validate(); err != nil {
		return "", err
	}
	msg, err := deps.Parques.CreateParque(ctx, input)
	if err != nil {
		return "", err
	}
	slog.Info("catalog_event", "event", "parque_created", "nome", input.Nome)
	return msg, nil
}
