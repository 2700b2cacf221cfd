package atividade_test

import (
	"testing"

	"ecoparques/internal/domain/atividade"
)

// TestParseTempo tests minute-field parsing.
func TestParseTempo(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"45", 45, false},
		{" 45 ", 45, false},
		{"1", 1, false},
		{"0", 0, true},
		{"-10", 0, true},
		{"abc", 0, true},
		{"4.5", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run("raw="+tt.raw, func(t *testing.T) {
			got, err := atividade.ParseTempo(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTempo(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseTempo(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

// TestValidTipo tests the tipo enum check.
func TestValidTipo(t *testing.T) {
	for _, tipo := range atividade.ValidTipos {
		if !atividade.ValidTipo(tipo) {
			t.Errorf("ValidTipo(%q) = false, want true", tipo)
		}
	}
	for _, tipo := range []string{"", "caverna", "Trilha"} {
		if atividade.ValidTipo(tipo) {
			t.Errorf("ValidTipo(%q) = true, want false", tipo)
		}
	}
}

// TestInput_Validate tests atividade submission validation.
func TestInput_Validate(t *testing.T) {
	valid := atividade.Input{
		Tipo:        atividade.TipoTrilha,
		Nome:        "Trilha do Ouro",
		TempoMin:    90,
		Localizacao: "Portaria 1",
		ParqueID:    "p1",
	}

	tests := []struct {
		name    string
		mutate  func(*atividade.Input)
		wantErr error
	}{
		{"valid", func(*atividade.Input) {}, nil},
		{"bad tipo", func(in *atividade.Input) { in.Tipo = "caverna" }, atividade.ErrInvalidTipo},
		{"empty nome", func(in *atividade.Input) { in.Nome = "  " }, atividade.ErrEmptyNome},
		{"empty localizacao", func(in *atividade.Input) { in.Localizacao = "" }, atividade.ErrEmptyLocalizacao},
		{"zero tempo", func(in *atividade.Input) { in.TempoMin = 0 }, atividade.ErrInvalidTempo},
		{"no parque", func(in *atividade.Input) { in.ParqueID = "" }, atividade.ErrNoParque},
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

// TestFromDTO tests id reconciliation.
func TestFromDTO(t *testing.T) {
	a := atividade.FromDTO(atividade.DTO{ID: "a1", MongoID: "ignored", Tipo: atividade.TipoCachoeira, Tempo: 30})
	if a.ID != "a1" {
		t.Errorf("ID = %q, want a1", a.ID)
	}
	if a.TempoMin != 30 {
		t.Errorf("TempoMin = %d, want 30", a.TempoMin)
	}
}
