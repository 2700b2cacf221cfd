package parque

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyNome        = errors.New("nome cannot be empty")
	ErrEmptyLocalizacao = errors.New("localização cannot be empty")
	ErrEmptyEndereco    = errors.New("endereço cannot be empty")
	ErrEmptyImagem      = errors.New("imagem URL cannot be empty")
)

// Parque is a top-level grouping entity that eventos and atividades belong to.
type Parque struct {
	ID          string
	Nome        string
	Localizacao string
	Endereco    string
	Imagem      string
}

// DTO is the wire form of a Parque. The backend is inconsistent about the
// identifier field: it may arrive as "id", "_id", or both.
type DTO struct {
	ID          string `json:"id"`
	MongoID     string `json:"_id"`
	Nome        string `json:"nome"`
	Localizacao string `json:"localizacao"`
	Endereco    string `json:"endereco"`
	Imagem      string `json:"imagem"`
}

// FromDTO reconciles the id/_id split exactly once, preferring "id" when
// both are present. All later code sees only the canonical ID.
func FromDTO(d DTO) Parque {
	id := d.ID
	if id == "" {
		id = d.MongoID
	}
	return Parque{
		ID:          id,
		Nome:        d.Nome,
		Localizacao: d.Localizacao,
		Endereco:    d.Endereco,
		Imagem:      d.Imagem,
	}
}

// FromDTOs converts a wire list, dropping entries with no identifier at all.
func FromDTOs(ds []DTO) []Parque {
	out := make([]Parque, 0, len(ds))
	for _, d := range ds {
		p := FromDTO(d)
		if p.ID == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// CreateInput carries the fields of a new Parque submission.
type CreateInput struct {
	Nome        string
	Localizacao string
	Endereco    string
	Imagem      string
}

// Validate checks a Parque submission. All four fields are required.
// PRE: input fields may carry surrounding whitespace
// POST: Returns nil if valid, the first failing field's error otherwise
func (in CreateInput) Validate() error {
	if strings.TrimSpace(in.Nome) == "" {
		return ErrEmptyNome
	}
	if strings.TrimSpace(in.Localizacao) == "" {
		return ErrEmptyLocalizacao
	}
	if strings.TrimSpace(in.Endereco) == "" {
		return ErrEmptyEndereco
	}
	if strings.TrimSpace(in.Imagem) == "" {
		return ErrEmptyImagem
	}
	return nil
}

// Normalized returns the input with all fields trimmed, ready for the wire.
func (in CreateInput) Normalized() CreateInput {
	return CreateInput{
		Nome:        strings.TrimSpace(in.Nome),
		Localizacao: strings.TrimSpace(in.Localizacao),
		Endereco:    strings.TrimSpace(in.Endereco),
		Imagem:      strings.TrimSpace(in.Imagem),
	}
}

// Current resolves the park the given filter id points at: the match when
// it exists, the first park otherwise, none when the list is empty.
// INVARIANT: the parks slice is not mutated
func Current(parques []Parque, selectedID string) (Parque, bool) {
	if len(parques) == 0 {
		return Parque{}, false
	}
	if selectedID == "" {
		return parques[0], true
	}
	for _, p := range parques {
		if p.ID == selectedID {
			return p, true
		}
	}
	return parques[0], true
}

// IDs extracts the identifiers of all parks, in order.
func IDs(parques []Parque) []string {
	out := make([]string, 0, len(parques))
	for _, p := range parques {
		out = append(out, p.ID)
	}
	return out
}
