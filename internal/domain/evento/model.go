package evento

import (
	"errors"
	"regexp"
	"sort"
	"strings"
	"time"
)

// Domain errors
var (
	ErrEmptyNome        = errors.New("nome cannot be empty")
	ErrEmptyLocalizacao = errors.New("localização cannot be empty")
	ErrNoParque         = errors.New("evento must belong to a parque")
	ErrBadData          = errors.New("data is not a valid RFC 3339 instant")
)

// Evento is a scheduled, dated occurrence tied to one parque.
type Evento struct {
	ID          string
	Nome        string
	Descricao   string
	Data        time.Time
	Localizacao string
	ParqueID    string
}

// DTO is the wire form of an Evento. Identifier may arrive as id or _id.
type DTO struct {
	ID          string `json:"id"`
	MongoID     string `json:"_id"`
	Nome        string `json:"nome"`
	Descricao   string `json:"descricao"`
	Data        string `json:"data"`
	Localizacao string `json:"localizacao"`
	ParqueID    string `json:"parque_id"`
}

// FromDTO reconciles id/_id and parses the instant. Unparseable dates leave
// Data zero; callers sorting by date push those first rather than failing
// the whole list.
func FromDTO(d DTO) Evento {
	id := d.ID
	if id == "" {
		id = d.MongoID
	}
	data, _ := time.Parse(time.RFC3339, d.Data)
	return Evento{
		ID:          id,
		Nome:        d.Nome,
		Descricao:   d.Descricao,
		Data:        data,
		Localizacao: d.Localizacao,
		ParqueID:    d.ParqueID,
	}
}

// FromDTOs converts a wire list, dropping entries with no identifier.
func FromDTOs(ds []DTO) []Evento {
	out := make([]Evento, 0, len(ds))
	for _, d := range ds {
		e := FromDTO(d)
		if e.ID == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SortByData orders eventos by their instant, ascending, in place.
func SortByData(eventos []Evento) {
	sort.SliceStable(eventos, func(i, j int) bool {
		return eventos[i].Data.Before(eventos[j].Data)
	})
}

// Input carries the fields of an evento submission (create or update).
type Input struct {
	Nome        string
	Descricao   string
	Data        time.Time
	Localizacao string
	ParqueID    string
}

// Validate checks an evento submission.
// PRE: input fields may carry surrounding whitespace
// POST: Returns nil if valid, error otherwise
func (in Input) Validate() error {
	if strings.TrimSpace(in.Nome) == "" {
		return ErrEmptyNome
	}
	if strings.TrimSpace(in.Localizacao) == "" {
		return ErrEmptyLocalizacao
	}
	if in.ParqueID == "" {
		return ErrNoParque
	}
	if in.Data.IsZero() {
		return ErrBadData
	}
	return nil
}

var multiSpace = regexp.MustCompile(`\s{2,}`)

// OneLine collapses line breaks and runs of whitespace to single spaces.
// Update payloads apply it to nome and localização so edits made in a
// multi-line field stay single-line on the wire.
func OneLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(multiSpace.ReplaceAllString(s, " "))
}

// Normalized trims all fields for a create payload.
func (in Input) Normalized() Input {
	in.Nome = strings.TrimSpace(in.Nome)
	in.Descricao = strings.TrimSpace(in.Descricao)
	in.Localizacao = strings.TrimSpace(in.Localizacao)
	return in
}

// NormalizedOneLine additionally collapses nome and localização to one line,
// the update-payload form.
func (in Input) NormalizedOneLine() Input {
	in = in.Normalized()
	in.Nome = OneLine(in.Nome)
	in.Localizacao = OneLine(in.Localizacao)
	return in
}
