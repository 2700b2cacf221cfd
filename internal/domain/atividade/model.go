package atividade

import (
	"errors"
	"strconv"
	"strings"
)

// Tipo constants — the three activity kinds the backend accepts.
const (
	TipoTrilha    = "trilha"
	TipoCachoeira = "cachoeira"
	TipoEscalada  = "escalada"
)

// ValidTipos contains all valid tipo values.
var ValidTipos = []string{TipoTrilha, TipoCachoeira, TipoEscalada}

// Domain errors
var (
	ErrEmptyNome        = errors.New("nome cannot be empty")
	ErrEmptyLocalizacao = errors.New("localização cannot be empty")
	ErrNoParque         = errors.New("atividade must belong to a parque")
	ErrInvalidTipo      = errors.New("tipo must be one of: trilha, cachoeira, escalada")
	ErrInvalidTempo     = errors.New("tempo must be a whole number of minutes greater than zero")
)

// Atividade is a typed, undated, repeatable offering tied to one parque.
type Atividade struct {
	ID          string
	Tipo        string
	Nome        string
	TempoMin    int
	Localizacao string
	Imagem      string
	ParqueID    string
}

// DTO is the wire form of an Atividade. Identifier may arrive as id or _id.
type DTO struct {
	ID          string `json:"id"`
	MongoID     string `json:"_id"`
	Tipo        string `json:"tipo"`
	Nome        string `json:"nome"`
	Tempo       int    `json:"tempo"`
	Localizacao string `json:"localizacao"`
	Imagem      string `json:"imagem"`
	ParqueID    string `json:"parque_id"`
}

// FromDTO reconciles id/_id, preferring id.
func FromDTO(d DTO) Atividade {
	id := d.ID
	if id == "" {
		id = d.MongoID
	}
	return Atividade{
		ID:          id,
		Tipo:        d.Tipo,
		Nome:        d.Nome,
		TempoMin:    d.Tempo,
		Localizacao: d.Localizacao,
		Imagem:      d.Imagem,
		ParqueID:    d.ParqueID,
	}
}

// FromDTOs converts a wire list, dropping entries with no identifier.
func FromDTOs(ds []DTO) []Atividade {
	out := make([]Atividade, 0, len(ds))
	for _, d := range ds {
		a := FromDTO(d)
		if a.ID == "" {
			continue
		}
		out = append(out, a)
	}
	return out
}

// ValidTipo reports whether tipo is one of the accepted kinds.
func ValidTipo(tipo string) bool {
	for _, t := range ValidTipos {
		if t == tipo {
			return true
		}
	}
	return false
}

// ParseTempo converts the form field into minutes.
// PRE: raw is the verbatim text field value
// POST: Returns a positive integer, or ErrInvalidTempo
func ParseTempo(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, ErrInvalidTempo
	}
	return n, nil
}

// Input carries the fields of an atividade submission (create or update).
type Input struct {
	Tipo        string
	Nome        string
	TempoMin    int
	Localizacao string
	Imagem      string
	ParqueID    string
}

// Validate checks an atividade submission.
// PRE: TempoMin has already been parsed via ParseTempo
// POST: Returns nil if valid, error otherwise
func (in Input) Validate() error {
	if !ValidTipo(in.Tipo) {
		return ErrInvalidTipo
	}
	if strings.TrimSpace(in.Nome) == "" {
		return ErrEmptyNome
	}
	if strings.TrimSpace(in.Localizacao) == "" {
		return ErrEmptyLocalizacao
	}
	if in.TempoMin <= 0 {
		return ErrInvalidTempo
	}
	if in.ParqueID == "" {
		return ErrNoParque
	}
	return nil
}

// Normalized trims all string fields for a create payload.
func (in Input) Normalized() Input {
	in.Nome = strings.TrimSpace(in.Nome)
	in.Localizacao = strings.TrimSpace(in.Localizacao)
	in.Imagem = strings.TrimSpace(in.Imagem)
	return in
}
