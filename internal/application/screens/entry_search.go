package screens

import (
	"context"
	"sync"

	"ecoparques/internal/application/orchestrators"
	"ecoparques/internal/application/projections"
	"ecoparques/internal/application/search"
	"ecoparques/internal/domain/parque"
)

// entrySearch is the all-parks candidate lookup behind the delete dialog
// and the admin edit picker. It aggregates across every park for the
// current kind and filters by nome; a park that fails to answer just
// contributes nothing, matching the tabs' degraded behavior.
type entrySearch struct {
	parques    projections.ParquesAPIForListing
	eventos    projections.EventosAPIForListing
	atividades projections.AtividadesAPIForListing

	mu   sync.Mutex
	kind orchestrators.Kind
}

func (s *entrySearch) SetKind(kind orchestrators.Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kind = kind
}

func (s *entrySearch) Kind() orchestrators.Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kind
}

func (s *entrySearch) fetch(ctx context.Context, query string) ([]search.Candidate, error) {
	parques := projections.GetParques(ctx, projections.GetParquesDeps{Parques: s.parques})
	ids := parque.IDs(parques)

	var out []search.Candidate
	switch s.Kind() {
	case orchestrators.KindAtividade:
		result := projections.GetAtividadesTodosParques(ctx, projections.GetAtividadesDeps{Atividades: s.atividades}, ids, "")
		for _, a := range result.Items {
			if !search.MatchNome(a.Nome, query) {
				continue
			}
			out = append(out, search.Candidate{ID: a.ID, Nome: a.Nome, Extra: a.Tipo})
		}
	default:
		result := projections.GetEventosTodosParques(ctx, projections.GetEventosDeps{Eventos: s.eventos}, ids)
		for _, e := range result.Items {
			if !search.MatchNome(e.Nome, query) {
				continue
			}
			extra := ""
			if !e.Data.IsZero() {
				extra = e.Data.Format("02/01/2006")
			}
			out = append(out, search.Candidate{ID: e.ID, Nome: e.Nome, Extra: extra})
		}
	}
	return out, nil
}
