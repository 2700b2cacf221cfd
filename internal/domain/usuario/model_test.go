package usuario_test

import (
	"testing"

	"ecoparques/internal/domain/usuario"
)

// TestIsAdminRole tests the administrator role predicate.
func TestIsAdminRole(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{"administrador", true},
		{" Administrador ", true},
		{"ADMINISTRADOR", true},
		{"admin", false},
		{"user", false},
		{"", false},
		{"administradora", false},
	}

	for _, tt := range tests {
		t.Run("role="+tt.role, func(t *testing.T) {
			if got := usuario.IsAdminRole(tt.role); got != tt.want {
				t.Errorf("IsAdminRole(%q) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

// TestProfile_IsAdmin tests the method form against a populated profile.
func TestProfile_IsAdmin(t *testing.T) {
	p := &usuario.Profile{Email: "gestor@parques.gov.br", Role: " ADMINISTRADOR "}
	if !p.IsAdmin() {
		t.Error("padded upper-case administrador should be admin")
	}
	p.Role = "visitante"
	if p.IsAdmin() {
		t.Error("visitante should not be admin")
	}
}

// TestProfile_Validate tests validation of Profile.
func TestProfile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		profile usuario.Profile
		wantErr bool
	}{
		{
			name:    "valid profile",
			profile: usuario.Profile{ID: "1", Name: "Ana", Email: "ana@parques.gov.br", Role: "user"},
			wantErr: false,
		},
		{
			name:    "empty email",
			profile: usuario.Profile{ID: "2", Name: "Ana"},
			wantErr: true,
		},
		{
			name:    "email without at sign",
			profile: usuario.Profile{ID: "3", Name: "Ana", Email: "not-an-email"},
			wantErr: true,
		},
		{
			name:    "empty name",
			profile: usuario.Profile{ID: "4", Email: "ana@parques.gov.br"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Profile.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestValidEmail tests the login form e-mail check.
func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"ana@parques.gov.br", true},
		{"a@b.c", true},
		{"ana@parques", false},
		{"ana parques@x.br", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := usuario.ValidEmail(tt.email); got != tt.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

// TestProfile_Initials tests avatar label derivation.
func TestProfile_Initials(t *testing.T) {
	tests := []struct {
		name    string
		profile usuario.Profile
		want    string
	}{
		{"two names", usuario.Profile{Name: "Ana Souza"}, "AS"},
		{"three names take two", usuario.Profile{Name: "Ana Maria Souza"}, "AM"},
		{"single name", usuario.Profile{Name: "ana"}, "A"},
		{"falls back to email", usuario.Profile{Email: "ze@parques.gov.br"}, "Z"},
		{"empty profile", usuario.Profile{}, "U"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.Initials(); got != tt.want {
				t.Errorf("Initials() = %q, want %q", got, tt.want)
			}
		})
	}
}
