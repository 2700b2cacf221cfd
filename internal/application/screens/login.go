package screens

import (
	"context"
	"errors"

	"ecoparques/internal/application/navigator"
	"ecoparques/internal/application/orchestrators"
	"ecoparques/internal/domain/usuario"
)

// Login field errors, shown inline next to the field.
var (
	ErrLoginBadEmail      = errors.New("informe um e-mail válido")
	ErrLoginShortPassword = errors.New("a senha deve ter pelo menos 4 caracteres")
)

// LoginScreen is the credential entry screen. It validates fields locally,
// delegates the exchange to the login orchestrator, and offers the guest
// escape into the read-only tabs.
type LoginScreen struct {
	deps orchestrators.LoginDeps
}

// NewLogin creates the login screen.
func NewLogin(deps orchestrators.LoginDeps) *LoginScreen {
	return &LoginScreen{deps: deps}
}

// CanSubmit reports the first field problem, or nil when the form may be
// submitted.
func (s *LoginScreen) CanSubmit(email, password string) error {
	if !usuario.ValidEmail(email) {
		return ErrLoginBadEmail
	}
	if len(password) < 4 {
		return ErrLoginShortPassword
	}
	return nil
}

// Submit performs the login. On success the session is signed and the
// caller should navigate home.
func (s *LoginScreen) Submit(ctx context.Context, email, password string) (usuario.Profile, error) {
	if err := s.CanSubmit(email, password); err != nil {
		return usuario.Profile{}, err
	}
	return orchestrators.ExecuteLogin(ctx, orchestrators.LoginInput{Email: email, Password: password}, s.deps)
}

// ContinueAsGuest hands back the screen a guest lands on. No session is
// created; the navigator's unauthenticated state keeps the read-only tabs
// reachable.
func (s *LoginScreen) ContinueAsGuest() navigator.Screen {
	return navigator.ScreenHome
}
