package parque_test

import (
	"testing"

	"ecoparques/internal/domain/parque"
)

// TestFromDTO tests identifier reconciliation at the deserialization boundary.
func TestFromDTO(t *testing.T) {
	tests := []struct {
		name   string
		dto    parque.DTO
		wantID string
	}{
		{"id only", parque.DTO{ID: "p1", Nome: "Itatiaia"}, "p1"},
		{"_id only", parque.DTO{MongoID: "p2", Nome: "Tijuca"}, "p2"},
		{"both prefer id", parque.DTO{ID: "p1", MongoID: "p2", Nome: "Iguaçu"}, "p1"},
		{"neither", parque.DTO{Nome: "Anon"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parque.FromDTO(tt.dto)
			if got.ID != tt.wantID {
				t.Errorf("FromDTO().ID = %q, want %q", got.ID, tt.wantID)
			}
		})
	}
}

// TestFromDTOs tests that entries without any identifier are dropped.
func TestFromDTOs(t *testing.T) {
	got := parque.FromDTOs([]parque.DTO{
		{ID: "p1", Nome: "Itatiaia"},
		{Nome: "sem id"},
		{MongoID: "p3", Nome: "Tijuca"},
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 parques, got %d", len(got))
	}
	if got[0].ID != "p1" || got[1].ID != "p3" {
		t.Errorf("unexpected ids: %q, %q", got[0].ID, got[1].ID)
	}
}

// TestCreateInput_Validate tests park submission validation.
func TestCreateInput_Validate(t *testing.T) {
	valid := parque.CreateInput{
		Nome:        "Parque Nacional de Itatiaia",
		Localizacao: "Itatiaia - RJ",
		Endereco:    "Estrada do Parque, km 8",
		Imagem:      "https://example.com/itatiaia.jpg",
	}

	tests := []struct {
		name    string
		mutate  func(*parque.CreateInput)
		wantErr error
	}{
		{"valid", func(*parque.CreateInput) {}, nil},
		{"missing nome", func(in *parque.CreateInput) { in.Nome = "  " }, parque.ErrEmptyNome},
		{"missing localizacao", func(in *parque.CreateInput) { in.Localizacao = "" }, parque.ErrEmptyLocalizacao},
		{"missing endereco", func(in *parque.CreateInput) { in.Endereco = "" }, parque.ErrEmptyEndereco},
		{"missing imagem", func(in *parque.CreateInput) { in.Imagem = "" }, parque.ErrEmptyImagem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			if err := in.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestCurrent tests selected-park resolution with fallback to the first.
func TestCurrent(t *testing.T) {
	parques := []parque.Parque{
		{ID: "p1", Nome: "Itatiaia"},
		{ID: "p2", Nome: "Tijuca"},
	}

	tests := []struct {
		name       string
		parques    []parque.Parque
		selectedID string
		wantID     string
		wantOK     bool
	}{
		{"empty list", nil, "p1", "", false},
		{"no selection takes first", parques, "", "p1", true},
		{"match", parques, "p2", "p2", true},
		{"stale selection falls back", parques, "gone", "p1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parque.Current(tt.parques, tt.selectedID)
			if ok != tt.wantOK {
				t.Fatalf("Current() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.ID != tt.wantID {
				t.Errorf("Current().ID = %q, want %q", got.ID, tt.wantID)
			}
		})
	}
}
