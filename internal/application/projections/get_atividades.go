package projections

import (
	"context"

	"ecoparques/internal/adapters/remote"
	"ecoparques/internal/domain/atividade"
)

// AtividadesAPIForListing defines the remote surface needed by atividade
// listings.
type AtividadesAPIForListing interface {
	ListAtividadesDoParque(ctx context.Context, parqueID, tipo string) ([]atividade.Atividade, error)
}

// GetAtividadesDeps holds dependencies for the atividade listings.
type GetAtividadesDeps struct {
	Atividades AtividadesAPIForListing
}

// GetAtividadesDoParque returns the atividades of one park, optionally
// narrowed by tipo. 404 yields an empty list; other errors propagate.
func GetAtividadesDoParque(ctx context.Context, deps GetAtividadesDeps, parqueID, tipo string) ([]atividade.Atividade, error) {
	atividades, err := deps.Atividades.ListAtividadesDoParque(ctx, parqueID, tipo)
	if err != nil {
		if remote.IsNotFound(err) {
			return []atividade.Atividade{}, nil
		}
		return nil, err
	}
	return atividades, nil
}

// GetAtividadesTodosParques aggregates atividades across every known park.
// Unlike the evento aggregate there is no date to sort by, so the list
// keeps settle order.
func GetAtividadesTodosParques(ctx context.Context, deps GetAtividadesDeps, parqueIDs []string, tipo string) PartialResult[atividade.Atividade] {
	return fanOut(ctx, parqueIDs, func(ctx context.Context, pid string) ([]atividade.Atividade, error) {
		atividades, err := deps.Atividades.ListAtividadesDoParque(ctx, pid, tipo)
		if remote.IsNotFound(err) {
			return nil, nil
		}
		return atividades, err
	})
}
