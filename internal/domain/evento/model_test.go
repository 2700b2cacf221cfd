package evento_test

import (
	"testing"
	"time"

	"ecoparques/internal/domain/evento"
)

// TestFromDTO tests id reconciliation and date parsing.
func TestFromDTO(t *testing.T) {
	e := evento.FromDTO(evento.DTO{
		MongoID:     "65a1b2c3d4e5f6a7b8c9d0e1",
		Nome:        "Luau no mirante",
		Data:        "2026-09-12T19:30:00Z",
		Localizacao: "Mirante do Sol",
		ParqueID:    "p1",
	})
	if e.ID != "65a1b2c3d4e5f6a7b8c9d0e1" {
		t.Errorf("ID = %q, want _id fallback", e.ID)
	}
	want := time.Date(2026, 9, 12, 19, 30, 0, 0, time.UTC)
	if !e.Data.Equal(want) {
		t.Errorf("Data = %v, want %v", e.Data, want)
	}
}

// TestFromDTO_BadDate tests that an unparseable date yields a zero instant.
func TestFromDTO_BadDate(t *testing.T) {
	e := evento.FromDTO(evento.DTO{ID: "e1", Data: "12/09/2026"})
	if !e.Data.IsZero() {
		t.Errorf("expected zero Data for unparseable input, got %v", e.Data)
	}
}

// TestSortByData tests ascending ordering.
func TestSortByData(t *testing.T) {
	eventos := []evento.Evento{
		{ID: "c", Data: time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)},
		{ID: "a", Data: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "b", Data: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)},
	}
	evento.SortByData(eventos)
	got := eventos[0].ID + eventos[1].ID + eventos[2].ID
	if got != "abc" {
		t.Errorf("order = %q, want abc", got)
	}
}

// TestInput_Validate tests evento submission validation.
func TestInput_Validate(t *testing.T) {
	valid := evento.Input{
		Nome:        "Trilha noturna",
		Localizacao: "Portaria 2",
		ParqueID:    "p1",
		Data:        time.Now(),
	}

	tests := []struct {
		name    string
		mutate  func(*evento.Input)
		wantErr bool
	}{
		{"valid", func(*evento.Input) {}, false},
		{"empty nome", func(in *evento.Input) { in.Nome = " " }, true},
		{"empty localizacao", func(in *evento.Input) { in.Localizacao = "" }, true},
		{"no parque", func(in *evento.Input) { in.ParqueID = "" }, true},
		{"zero data", func(in *evento.Input) { in.Data = time.Time{} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			if err := in.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestOneLine tests whitespace collapsing for update payloads.
func TestOneLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Luau\nno mirante", "Luau no mirante"},
		{"Luau\r\nno  mirante ", "Luau no mirante"},
		{"  já limpo  ", "já limpo"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := evento.OneLine(tt.in); got != tt.want {
			t.Errorf("OneLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestInput_NormalizedOneLine tests that only nome and localização collapse.
func TestInput_NormalizedOneLine(t *testing.T) {
	in := evento.Input{
		Nome:        "Luau\nno mirante",
		Descricao:   "linha um\nlinha dois",
		Localizacao: " Mirante\ndo Sol ",
		ParqueID:    "p1",
	}
	got := in.NormalizedOneLine()
	if got.Nome != "Luau no mirante" {
		t.Errorf("Nome = %q", got.Nome)
	}
	if got.Localizacao != "Mirante do Sol" {
		t.Errorf("Localizacao = %q", got.Localizacao)
	}
	if got.Descricao != "linha um\nlinha dois" {
		t.Errorf("Descricao should keep its line breaks, got %q", got.Descricao)
	}
}
