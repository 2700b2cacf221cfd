package projections

import (
	"context"

	"ecoparques/internal/adapters/remote"
	"ecoparques/internal/domain/evento"
)

// EventosAPIForListing defines the remote surface needed by evento listings.
type EventosAPIForListing interface {
	ListEventosDoParque(ctx context.Context, parqueID string, params remote.EventoListParams) ([]evento.Evento, error)
}

// GetEventosDeps holds dependencies for the evento listings.
type GetEventosDeps struct {
	Eventos EventosAPIForListing
}

// GetEventosDoParque returns the eventos of one park. A 404 means the park
// has no eventos yet and yields an empty list; any other error propagates
// for the screen to surface with a retry action.
func GetEventosDoParque(ctx context.Context, deps GetEventosDeps, parqueID string) ([]evento.Evento, error) {
	eventos, err := deps.Eventos.ListEventosDoParque(ctx, parqueID, remote.EventoListParams{})
	if err != nil {
		if remote.IsNotFound(err) {
			return []evento.Evento{}, nil
		}
		return nil, err
	}
	return eventos, nil
}

// GetEventosTodosParques aggregates eventos across every known park:
// one request per park, concurrent, joined when all settle. Failed parks
// are reported on the result instead of failing the screen. The aggregate
// is re-sorted by data, so completion order does not leak into the list.
func GetEventosTodosParques(ctx context.Context, deps GetEventosDeps, parqueIDs []string) PartialResult[evento.Evento] {
	result := fanOut(ctx, parqueIDs, func(ctx context.Context, pid string) ([]evento.Evento, error) {
		eventos, err := deps.Eventos.ListEventosDoParque(ctx, pid, remote.EventoListParams{})
		if remote.IsNotFound(err) {
			return nil, nil
		}
		return eventos, err
	})
	evento.SortByData(result.Items)
	return result
}
