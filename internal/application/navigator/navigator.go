package navigator

import (
	"errors"

	"ecoparques/internal/domain/usuario"
)

// Screen identifies one node of the screen graph.
type Screen string

// Screens
const (
	ScreenLogin       Screen = "login"
	ScreenHome        Screen = "home"       // eventos tab
	ScreenAtividades  Screen = "atividades" // atividades tab
	ScreenUsuario     Screen = "usuario"    // profile / admin panel
	ScreenAdminCreate Screen = "admin_create"
	ScreenAdminEdit   Screen = "admin_edit"
)

// State is the reachable-graph classification derived from the live session.
type State string

// States
const (
	StateUnauthenticated State = "unauthenticated"
	StateStandard        State = "authenticated_standard"
	StateAdmin           State = "authenticated_admin"
)

// ErrAccessDenied is returned by the mount-time guard on admin screens.
var ErrAccessDenied = errors.New("somente administradores podem acessar esta tela")

// SessionReader is the slice of the session manager the navigator needs.
type SessionReader interface {
	Current() (usuario.Profile, bool)
}

// Navigator chooses which screens are reachable. It holds no state of its
// own: every decision re-reads the live session, so admin status is never
// cached past a sign-in or sign-out.
type Navigator struct {
	session SessionReader
}

// New creates a Navigator over the given session.
func New(session SessionReader) *Navigator {
	return &Navigator{session: session}
}

// Resolve derives the current state from the live session.
// INVARIANT: recomputed on every call, never cached
func (n *Navigator) Resolve() State {
	profile, signed := n.session.Current()
	if !signed {
		return StateUnauthenticated
	}
	if profile.IsAdmin() {
		return StateAdmin
	}
	return StateStandard
}

// CanReach reports whether screen is reachable in the current state.
// Unauthenticated visitors keep the guest escape into the read-only tabs;
// the Usuario screen and the admin screens need a session, and the admin
// screens additionally need the administrator role.
func (n *Navigator) CanReach(screen Screen) bool {
	switch n.Resolve() {
	case StateUnauthenticated:
		return screen == ScreenLogin || screen == ScreenHome || screen == ScreenAtividades
	case StateStandard:
		return screen == ScreenHome || screen == ScreenAtividades || screen == ScreenUsuario
	case StateAdmin:
		return screen != ScreenLogin
	}
	return false
}

// GuardAdmin is the second, redundant admin check the admin screens run on
// mount. Navigation state and session state can transiently disagree during
// a transition, so both layers stay in place.
// POST: Returns nil for an admin session, ErrAccessDenied otherwise
func (n *Navigator) GuardAdmin() error {
	if n.Resolve() != StateAdmin {
		return ErrAccessDenied
	}
	return nil
}
