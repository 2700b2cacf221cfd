package projections

import (
	"context"
	"log/slog"

	"ecoparques/internal/domain/parque"
)

// ParquesAPIForListing defines the remote surface needed by the park listing.
type ParquesAPIForListing interface {
	ListParques(ctx context.Context) ([]parque.Parque, error)
}

// GetParquesDeps holds dependencies for GetParques.
type GetParquesDeps struct {
	Parques ParquesAPIForListing
}

// GetParques returns all parks, degrading to an empty list on any failure.
// Callers see "no parks" and "parks fetch failed" identically; the park bar
// renders empty and a manual refresh is the retry path.
func GetParques(ctx context.Context, deps GetParquesDeps) []parque.Parque {
	parques, err := deps.Parques.ListParques(ctx)
	if err != nil {
		slog.Warn("parques_fetch_failed", "error", err)
		return []parque.Parque{}
	}
	return parques
}
