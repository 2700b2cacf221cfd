package screens

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"ecoparques/internal/adapters/storage/prefs"
	"ecoparques/internal/application/projections"
	"ecoparques/internal/application/search"
	"ecoparques/internal/domain/atividade"
	"ecoparques/internal/domain/evento"
	"ecoparques/internal/domain/parque"
)

// Periodo narrows the evento listing by date, relative to "now".
type Periodo string

// Periodos
const (
	PeriodoHoje   Periodo = "hoje"
	PeriodoSemana Periodo = "semana"
	PeriodoTodos  Periodo = "todos"
)

// CatalogoDeps holds dependencies for the catalog view.
type CatalogoDeps struct {
	Parques    projections.ParquesAPIForListing
	Eventos    projections.EventosAPIForListing
	Atividades projections.AtividadesAPIForListing
	Prefs      prefs.Store
}

// Catalogo backs both catalog tabs: the eventos tab and the atividades tab
// share the park bar, the persisted park filter, and the refresh gesture,
// so one view serves the pair.
type Catalogo struct {
	deps CatalogoDeps

	mu       sync.Mutex
	parques  []parque.Parque
	selected string // park id, "" = all parks
}

// NewCatalogo creates the catalog view. Call Load before first render.
func NewCatalogo(deps CatalogoDeps) *Catalogo {
	return &Catalogo{deps: deps}
}

// Load restores the persisted park filter and fetches the park bar. The
// park fetch is fail-open: an unreachable backend renders an empty bar, and
// Refresh is the retry path.
func (c *Catalogo) Load(ctx context.Context) {
	selected, err := c.deps.Prefs.Get(ctx, prefs.KeyParqueFiltro)
	if err != nil && !errors.Is(err, prefs.ErrNotFound) {
		slog.Warn("prefs_read_failed", "key", prefs.KeyParqueFiltro, "error", err)
		selected = ""
	}
	parques := projections.GetParques(ctx, projections.GetParquesDeps{Parques: c.deps.Parques})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = selected
	c.parques = parques
}

// Refresh re-fetches the park bar; the pull-to-refresh gesture on either tab
// lands here.
func (c *Catalogo) Refresh(ctx context.Context) {
	parques := projections.GetParques(ctx, projections.GetParquesDeps{Parques: c.deps.Parques})
	c.mu.Lock()
	defer c.mu.Unlock()
	c.parques = parques
}

// Parques returns the loaded park bar.
func (c *Catalogo) Parques() []parque.Parque {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.parques
}

// SelectParque sets and persists the park filter. An empty id means "all
// parks". A persistence failure keeps the in-memory selection so the session
// still behaves; only the restart default is lost.
func (c *Catalogo) SelectParque(ctx context.Context, id string) {
	c.mu.Lock()
	c.selected = id
	c.mu.Unlock()

	if err := c.deps.Prefs.Set(ctx, prefs.KeyParqueFiltro, id); err != nil {
		slog.Warn("prefs_write_failed", "key", prefs.KeyParqueFiltro, "error", err)
	}
}

// SelectedID returns the raw park filter ("" = all parks).
func (c *Catalogo) SelectedID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// CurrentParque resolves the selected park against the loaded bar, falling
// back to the first park when the filter points at nothing.
func (c *Catalogo) CurrentParque() (parque.Parque, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return parque.Current(c.parques, c.selected)
}

// Eventos lists the eventos tab's content for the current filter: one
// park's eventos when a park is selected, the all-parks aggregate
// otherwise. Scoped errors propagate; aggregate failures ride on the
// result.
func (c *Catalogo) Eventos(ctx context.Context) (projections.PartialResult[evento.Evento], error) {
	deps := projections.GetEventosDeps{Eventos: c.deps.Eventos}
	if id := c.SelectedID(); id != "" {
		eventos, err := projections.GetEventosDoParque(ctx, deps, id)
		if err != nil {
			return projections.PartialResult[evento.Evento]{}, err
		}
		return projections.PartialResult[evento.Evento]{Items: eventos}, nil
	}
	return projections.GetEventosTodosParques(ctx, deps, parque.IDs(c.Parques())), nil
}

// Atividades lists the atividades tab's content for the current filter,
// optionally narrowed by tipo ("" = all tipos).
func (c *Catalogo) Atividades(ctx context.Context, tipo string) (projections.PartialResult[atividade.Atividade], error) {
	deps := projections.GetAtividadesDeps{Atividades: c.deps.Atividades}
	if id := c.SelectedID(); id != "" {
		atividades, err := projections.GetAtividadesDoParque(ctx, deps, id, tipo)
		if err != nil {
			return projections.PartialResult[atividade.Atividade]{}, err
		}
		return projections.PartialResult[atividade.Atividade]{Items: atividades}, nil
	}
	return projections.GetAtividadesTodosParques(ctx, deps, parque.IDs(c.Parques()), tipo), nil
}

// FilterEventos applies the tab's local narrowing: the periodo chips and
// the substring query. Events with no parseable date only survive the
// "todos" chip.
func FilterEventos(eventos []evento.Evento, periodo Periodo, query string, now time.Time) []evento.Evento {
	out := make([]evento.Evento, 0, len(eventos))
	for _, e := range eventos {
		if !inPeriodo(e.Data, periodo, now) {
			continue
		}
		if !search.MatchNome(e.Nome, query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterAtividades applies the substring query to an atividade list. Tipo
// narrowing happens at fetch time, not here.
func FilterAtividades(atividades []atividade.Atividade, query string) []atividade.Atividade {
	out := make([]atividade.Atividade, 0, len(atividades))
	for _, a := range atividades {
		if !search.MatchNome(a.Nome, query) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func inPeriodo(data time.Time, periodo Periodo, now time.Time) bool {
	switch periodo {
	case PeriodoHoje:
		y1, m1, d1 := data.In(now.Location()).Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case PeriodoSemana:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return !data.Before(start) && data.Before(start.AddDate(0, 0, 7))
	default:
		return true
	}
}
