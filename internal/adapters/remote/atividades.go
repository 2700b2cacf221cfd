package remote

import (
	"context"
	"net/http"
	"net/url"

	"ecoparques/internal/domain/atividade"
)

type atividadePayload struct {
	Tipo        string `json:"tipo"`
	Nome        string `json:"nome"`
	Tempo       int    `json:"tempo"`
	Localizacao string `json:"localizacao"`
	Imagem      string `json:"imagem"`
	ParqueID    string `json:"parque_id"`
}

func toAtividadePayload(in atividade.Input) atividadePayload {
	return atividadePayload{
		Tipo:        in.Tipo,
		Nome:        in.Nome,
		Tempo:       in.TempoMin,
		Localizacao: in.Localizacao,
		Imagem:      in.Imagem,
		ParqueID:    in.ParqueID,
	}
}

// ListAtividadesDoParque retrieves the atividades scoped to one park,
// optionally narrowed by tipo.
func (c *Client) ListAtividadesDoParque(ctx context.Context, parqueID, tipo string) ([]atividade.Atividade, error) {
	var q url.Values
	if tipo != "" {
		q = url.Values{"tipo": {tipo}}
	}
	var body struct {
		Atividades []atividade.DTO `json:"atividades"`
	}
	if err := c.do(ctx, http.MethodGet, "/atividades/parque/"+parqueID, q, nil, &body); err != nil {
		return nil, err
	}
	return atividade.FromDTOs(body.Atividades), nil
}

// GetAtividade retrieves one atividade by id.
func (c *Client) GetAtividade(ctx context.Context, id string) (atividade.Atividade, error) {
	var dto atividade.DTO
	if err := c.do(ctx, http.MethodGet, "/atividades/"+id, nil, nil, &dto); err != nil {
		return atividade.Atividade{}, err
	}
	return atividade.FromDTO(dto), nil
}

// CreateAtividade submits a new atividade.
// PRE: in has been validated and normalized
func (c *Client) CreateAtividade(ctx context.Context, in atividade.Input) error {
	return c.do(ctx, http.MethodPost, "/atividades", nil, toAtividadePayload(in), nil)
}

// UpdateAtividade replaces an existing atividade.
// PRE: in has been validated and one-lined
func (c *Client) UpdateAtividade(ctx context.Context, id string, in atividade.Input) error {
	return c.do(ctx, http.MethodPut, "/atividades/"+id, nil, toAtividadePayload(in), nil)
}

// DeleteAtividade removes an atividade, returning the confirmation message.
func (c *Client) DeleteAtividade(ctx context.Context, id string) (string, error) {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodDelete, "/atividades/"+id, nil, nil, &body); err != nil {
		return "", err
	}
	return body.Message, nil
}
