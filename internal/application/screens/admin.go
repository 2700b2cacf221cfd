package screens

import (
	"context"
	"errors"
	"fmt"

	"ecoparques/internal/application/orchestrators"
	"ecoparques/internal/application/projections"
	"ecoparques/internal/application/search"
	"ecoparques/internal/domain/atividade"
	"ecoparques/internal/domain/evento"
	"ecoparques/internal/domain/parque"
)

// ErrLoadItem is shown when the entry picked for editing cannot be
// fetched — including the case where someone else deleted it meanwhile.
var ErrLoadItem = errors.New("falha ao carregar item")

// CatalogReadAPI is the single-entry read surface the edit screen needs.
// Satisfied by *remote.Client.
type CatalogReadAPI interface {
	GetEvento(ctx context.Context, id string) (evento.Evento, error)
	GetAtividade(ctx context.Context, id string) (atividade.Atividade, error)
}

// AdminDeps holds dependencies for the admin screens.
type AdminDeps struct {
	Guard      AdminGuard
	Parques    projections.ParquesAPIForListing
	Eventos    orchestrators.EventosAPIForWrite
	Atividades orchestrators.AtividadesAPIForWrite
	Reader     CatalogReadAPI

	// Listing surfaces for the edit screen's search picker.
	EventosList    projections.EventosAPIForListing
	AtividadesList projections.AtividadesAPIForListing
}

// AdminCreate is the creation screen for eventos and atividades.
type AdminCreate struct {
	deps AdminDeps
}

// NewAdminCreate mounts the creation screen. The navigator already keeps
// non-admins away; this second check covers transitions where the two
// disagree for a frame.
func NewAdminCreate(deps AdminDeps) (*AdminCreate, error) {
	if err := deps.Guard.GuardAdmin(); err != nil {
		return nil, err
	}
	return &AdminCreate{deps: deps}, nil
}

// Parques loads the park selector, fail-open.
func (s *AdminCreate) Parques(ctx context.Context) []parque.Parque {
	return projections.GetParques(ctx, projections.GetParquesDeps{Parques: s.deps.Parques})
}

// DefaultParque picks the pre-selected park for the form: the first one.
func (s *AdminCreate) DefaultParque(parques []parque.Parque) (parque.Parque, bool) {
	return parque.Current(parques, "")
}

// CanSubmitEvento reports the first problem with the evento form, nil when
// submittable.
func (s *AdminCreate) CanSubmitEvento(in evento.Input) error {
	return in.Normalized().Validate()
}

// CanSubmitAtividade reports the first problem with the atividade form.
// TempoMin must already be parsed via atividade.ParseTempo.
func (s *AdminCreate) CanSubmitAtividade(in atividade.Input) error {
	return in.Normalized().Validate()
}

// SubmitEvento creates the evento with a trimmed payload.
func (s *AdminCreate) SubmitEvento(ctx context.Context, in evento.Input) error {
	return orchestrators.ExecuteCreateEvento(ctx, in, orchestrators.SaveEventoDeps{Eventos: s.deps.Eventos})
}

// SubmitAtividade creates the atividade with a trimmed payload.
func (s *AdminCreate) SubmitAtividade(ctx context.Context, in atividade.Input) error {
	return orchestrators.ExecuteCreateAtividade(ctx, in, orchestrators.SaveAtividadeDeps{Atividades: s.deps.Atividades})
}

// AdminEdit is the edit screen: search across all parks for an entry of
// the chosen kind, load it into the form, submit the edit.
type AdminEdit struct {
	deps   AdminDeps
	lookup *entrySearch
	ctl    *search.Controller
}

// NewAdminEdit mounts the edit screen; same double guard as AdminCreate.
func NewAdminEdit(deps AdminDeps, publish func(search.Result)) (*AdminEdit, error) {
	if err := deps.Guard.GuardAdmin(); err != nil {
		return nil, err
	}
	lookup := &entrySearch{
		parques:    deps.Parques,
		eventos:    deps.EventosList,
		atividades: deps.AtividadesList,
		kind:       orchestrators.KindEvento,
	}
	return &AdminEdit{
		deps:   deps,
		lookup: lookup,
		ctl:    search.NewController(search.Deps{Fetch: lookup.fetch, Publish: publish}),
	}, nil
}

// SetKind switches the picker between eventos and atividades.
func (s *AdminEdit) SetKind(kind orchestrators.Kind) {
	s.lookup.SetKind(kind)
}

// SetQuery records a keystroke in the picker's search field.
func (s *AdminEdit) SetQuery(ctx context.Context, query string) {
	s.ctl.SetQuery(ctx, query)
}

// Candidates returns the current picker rows.
func (s *AdminEdit) Candidates() []search.Candidate {
	return s.ctl.Candidates()
}

// LoadEvento fetches the chosen evento into the form.
func (s *AdminEdit) LoadEvento(ctx context.Context, id string) (evento.Evento, error) {
	e, err := s.deps.Reader.GetEvento(ctx, id)
	if err != nil {
		return evento.Evento{}, fmt.Errorf("%w: %v", ErrLoadItem, err)
	}
	return e, nil
}

// LoadAtividade fetches the chosen atividade into the form.
func (s *AdminEdit) LoadAtividade(ctx context.Context, id string) (atividade.Atividade, error) {
	a, err := s.deps.Reader.GetAtividade(ctx, id)
	if err != nil {
		return atividade.Atividade{}, fmt.Errorf("%w: %v", ErrLoadItem, err)
	}
	return a, nil
}

// SubmitEvento submits an edit; nome and localização are collapsed to one
// line on the way out.
func (s *AdminEdit) SubmitEvento(ctx context.Context, id string, in evento.Input) error {
	return orchestrators.ExecuteUpdateEvento(ctx, id, in, orchestrators.SaveEventoDeps{Eventos: s.deps.Eventos})
}

// SubmitAtividade submits an edit.
func (s *AdminEdit) SubmitAtividade(ctx context.Context, id string, in atividade.Input) error {
	return orchestrators.ExecuteUpdateAtividade(ctx, id, in, orchestrators.SaveAtividadeDeps{Atividades: s.deps.Atividades})
}

// Close cancels any pending search.
func (s *AdminEdit) Close() {
	s.ctl.Close()
}
