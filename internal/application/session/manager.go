package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"ecoparques/internal/domain/usuario"
)

// Artifacts defines the persistence interface the Manager needs.
type Artifacts interface {
	Load(ctx context.Context) (profileJSON []byte, token string, err error)
	SaveProfile(ctx context.Context, profileJSON []byte) error
	SaveToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// TokenInstaller receives the bearer credential for outbound requests.
// Satisfied by *remote.Client.
type TokenInstaller interface {
	SetToken(token string)
}

// Deps holds dependencies for the Manager.
type Deps struct {
	Artifacts Artifacts
	Tokens    TokenInstaller
}

// Manager owns the in-memory session. It is the sole writer of the signed
// flag, the profile, and the remote client's bearer credential.
type Manager struct {
	deps Deps

	mu      sync.RWMutex
	signed  bool
	profile usuario.Profile
	token   string
}

// NewManager creates a Manager. Call Initialize before the navigator first
// resolves.
func NewManager(deps Deps) *Manager {
	return &Manager{deps: deps}
}

// Initialize rehydrates the session from storage and primes the bearer
// credential. Any storage failure degrades to signed-out; a token whose JWT
// expiry has elapsed is discarded along with the stored profile.
// PRE: Runs once, at application start
// POST: Session is signed iff a usable artifact was found
func (m *Manager) Initialize(ctx context.Context) {
	profileJSON, token, err := m.deps.Artifacts.Load(ctx)
	if err != nil {
		slog.Warn("auth_event", "event", "rehydrate_failed", "error", err)
		return
	}

	if token != "" && tokenExpired(token) {
		slog.Info("auth_event", "event", "session_expired")
		_ = m.deps.Artifacts.Clear(ctx)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if token != "" {
		m.token = token
		m.deps.Tokens.SetToken(token)
	}
	if len(profileJSON) > 0 {
		var p usuario.Profile
		if err := json.Unmarshal(profileJSON, &p); err != nil {
			slog.Warn("auth_event", "event", "rehydrate_failed", "error", err)
			return
		}
		m.profile = p
		m.signed = true
		slog.Info("auth_event", "event", "rehydrated", "email", p.Email, "role", p.Role)
	}
}

// SignIn persists the profile and marks the session signed. A non-empty
// token is persisted and installed as the bearer credential; an empty token
// keeps the current one, so profile refreshes (name or e-mail edits)
// re-enter through the same sole mutation point.
// PRE: The caller has already performed the network login
// POST: signed=true; the artifact round-trips through storage
func (m *Manager) SignIn(ctx context.Context, profile usuario.Profile, token string) error {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	if err := m.deps.Artifacts.SaveProfile(ctx, profileJSON); err != nil {
		return err
	}
	if token != "" {
		if err := m.deps.Artifacts.SaveToken(ctx, token); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = profile
	m.signed = true
	if token != "" {
		m.token = token
		m.deps.Tokens.SetToken(token)
	}
	slog.Info("auth_event", "event", "sign_in", "email", profile.Email, "role", profile.Role)
	return nil
}

// SignOut clears the persisted artifact, the in-memory profile, and the
// bearer credential. Idempotent; never returns an error. Requests already
// in flight keep the header they started with.
func (m *Manager) SignOut(ctx context.Context) {
	if err := m.deps.Artifacts.Clear(ctx); err != nil {
		slog.Warn("auth_event", "event", "sign_out_clear_failed", "error", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = usuario.Profile{}
	m.token = ""
	m.signed = false
	m.deps.Tokens.SetToken("")
	slog.Info("auth_event", "event", "sign_out")
}

// Current returns the live profile and whether the session is signed.
// Callers must re-derive role checks from it on every use; admin status is
// never cached past a sign-in event.
func (m *Manager) Current() (usuario.Profile, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.profile, m.signed
}

// Signed reports whether a session exists.
func (m *Manager) Signed() bool {
	_, signed := m.Current()
	return signed
}

// tokenExpired reports whether token is a JWT whose exp claim has elapsed.
// Opaque (non-JWT) tokens never count as expired; the backend remains the
// authority and will answer 401.
func tokenExpired(token string) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
