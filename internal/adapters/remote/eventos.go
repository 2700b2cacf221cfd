package remote

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"ecoparques/internal/domain/evento"
)

// EventoListParams narrows an evento listing.
type EventoListParams struct {
	ParqueID string // filter by park (the /eventos form)
	Limit    int    // 0 means no limit
	Sort     string // "asc" or "desc" by data; empty leaves backend default
}

func (p EventoListParams) query() url.Values {
	q := url.Values{}
	if p.ParqueID != "" {
		q.Set("parque_id", p.ParqueID)
	}
	q.Set("limit", strconv.Itoa(p.Limit))
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	return q
}

type eventoPayload struct {
	Nome        string `json:"nome"`
	Descricao   string `json:"descricao"`
	Data        string `json:"data"`
	Localizacao string `json:"localizacao"`
	ParqueID    string `json:"parque_id"`
}

func toEventoPayload(in evento.Input) eventoPayload {
	return eventoPayload{
		Nome:        in.Nome,
		Descricao:   in.Descricao,
		Data:        in.Data.UTC().Format(time.RFC3339),
		Localizacao: in.Localizacao,
		ParqueID:    in.ParqueID,
	}
}

// ListEventos retrieves eventos via the flat collection endpoint.
func (c *Client) ListEventos(ctx context.Context, params EventoListParams) ([]evento.Evento, error) {
	var body struct {
		Eventos []evento.DTO `json:"eventos"`
	}
	if err := c.do(ctx, http.MethodGet, "/eventos", params.query(), nil, &body); err != nil {
		return nil, err
	}
	return evento.FromDTOs(body.Eventos), nil
}

// ListEventosDoParque retrieves the eventos scoped to one park.
func (c *Client) ListEventosDoParque(ctx context.Context, parqueID string, params EventoListParams) ([]evento.Evento, error) {
	params.ParqueID = ""
	var body struct {
		Eventos []evento.DTO `json:"eventos"`
	}
	if err := c.do(ctx, http.MethodGet, "/eventos/parque/"+parqueID, params.query(), nil, &body); err != nil {
		return nil, err
	}
	return evento.FromDTOs(body.Eventos), nil
}

// GetEvento retrieves one evento by id. A 404 propagates as *APIError so
// edit flows can surface "falha ao carregar item".
func (c *Client) GetEvento(ctx context.Context, id string) (evento.Evento, error) {
	var dto evento.DTO
	if err := c.do(ctx, http.MethodGet, "/eventos/"+id, nil, nil, &dto); err != nil {
		return evento.Evento{}, err
	}
	return evento.FromDTO(dto), nil
}

// CreateEvento submits a new evento.
// PRE: in has been validated and normalized
func (c *Client) CreateEvento(ctx context.Context, in evento.Input) error {
	return c.do(ctx, http.MethodPost, "/eventos", nil, toEventoPayload(in), nil)
}

// UpdateEvento replaces an existing evento.
// PRE: in has been validated and one-lined
func (c *Client) UpdateEvento(ctx context.Context, id string, in evento.Input) error {
	return c.do(ctx, http.MethodPut, "/eventos/"+id, nil, toEventoPayload(in), nil)
}

// DeleteEvento removes an evento, returning the confirmation message.
func (c *Client) DeleteEvento(ctx context.Context, id string) (string, error) {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodDelete, "/eventos/"+id, nil, nil, &body); err != nil {
		return "", err
	}
	return body.Message, nil
}
