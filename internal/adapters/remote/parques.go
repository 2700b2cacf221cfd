package remote

import (
	"context"
	"net/http"

	"ecoparques/internal/domain/parque"
)

// ListParques retrieves all parks.
// PRE: none
// POST: Returns canonical parques (id/_id reconciled); errors propagate
func (c *Client) ListParques(ctx context.Context) ([]parque.Parque, error) {
	var body struct {
		Parques []parque.DTO `json:"parques"`
	}
	if err := c.do(ctx, http.MethodGet, "/parques", nil, nil, &body); err != nil {
		return nil, err
	}
	return parque.FromDTOs(body.Parques), nil
}

// CreateParque submits a new park.
// PRE: in has been validated and normalized
// POST: Returns the backend's confirmation message
func (c *Client) CreateParque(ctx context.Context, in parque.CreateInput) (string, error) {
	payload := map[string]string{
		"nome":        in.Nome,
		"localizacao": in.Localizacao,
		"endereco":    in.Endereco,
		"imagem":      in.Imagem,
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/parques", nil, payload, &body); err != nil {
		return "", err
	}
	return body.Message, nil
}
