package screens

import (
	"context"

	"ecoparques/internal/application/orchestrators"
	"ecoparques/internal/application/projections"
	"ecoparques/internal/application/search"
	"ecoparques/internal/domain/parque"
	"ecoparques/internal/domain/usuario"
)

// AdminGuard is the mount-time admin check. Satisfied by
// *navigator.Navigator.
type AdminGuard interface {
	GuardAdmin() error
}

// SessionForUsuario is the slice of the session manager the profile screen
// needs.
type SessionForUsuario interface {
	orchestrators.SessionWriter
	SignOut(ctx context.Context)
}

// ProfileAPI bundles the account-editing remote surface. Satisfied by
// *remote.Client.
type ProfileAPI interface {
	orchestrators.ProfileAPIForNameChange
	orchestrators.ProfileAPIForEmailChange
	orchestrators.ProfileAPIForPasswordChange
}

// UsuarioDeps holds dependencies for the profile screen.
type UsuarioDeps struct {
	Session SessionForUsuario
	Guard   AdminGuard
	Auth    ProfileAPI
	Parques orchestrators.ParquesAPIForCreate
}

// UsuarioScreen is the profile tab: avatar initials, account edits,
// sign-out, and — for administrators — the create-park form and the delete
// dialog.
type UsuarioScreen struct {
	deps UsuarioDeps
}

// NewUsuario creates the profile screen.
func NewUsuario(deps UsuarioDeps) *UsuarioScreen {
	return &UsuarioScreen{deps: deps}
}

// Profile returns the live profile and whether a session exists.
func (s *UsuarioScreen) Profile() (usuario.Profile, bool) {
	return s.deps.Session.Current()
}

// Initials derives the avatar initials from the live profile.
func (s *UsuarioScreen) Initials() string {
	profile, _ := s.deps.Session.Current()
	return profile.Initials()
}

// UpdateName changes the display name.
func (s *UsuarioScreen) UpdateName(ctx context.Context, name string) error {
	return orchestrators.ExecuteUpdateName(ctx, name, orchestrators.UpdateNameDeps{
		Auth:    s.deps.Auth,
		Session: s.deps.Session,
	})
}

// UpdateEmail changes the e-mail address, confirmed by the current password.
func (s *UsuarioScreen) UpdateEmail(ctx context.Context, email, currentPassword string) error {
	return orchestrators.ExecuteUpdateEmail(ctx, orchestrators.UpdateEmailInput{
		Email:           email,
		CurrentPassword: currentPassword,
	}, orchestrators.UpdateEmailDeps{
		Auth:    s.deps.Auth,
		Session: s.deps.Session,
	})
}

// ChangePassword rotates the password.
func (s *UsuarioScreen) ChangePassword(ctx context.Context, current, next, confirmation string) error {
	return orchestrators.ExecuteChangePassword(ctx, orchestrators.ChangePasswordInput{
		CurrentPassword: current,
		NewPassword:     next,
		Confirmation:    confirmation,
	}, orchestrators.ChangePasswordDeps{Auth: s.deps.Auth})
}

// CreateParque submits a new park. The admin check runs here as well as at
// navigation time; the form simply is not shown to non-admins, but a stale
// session must not slip a write through.
func (s *UsuarioScreen) CreateParque(ctx context.Context, input parque.CreateInput) (string, error) {
	if err := s.deps.Guard.GuardAdmin(); err != nil {
		return "", err
	}
	return orchestrators.ExecuteCreateParque(ctx, input, orchestrators.CreateParqueDeps{Parques: s.deps.Parques})
}

// SignOut ends the session.
func (s *UsuarioScreen) SignOut(ctx context.Context) {
	s.deps.Session.SignOut(ctx)
}

// DeleteDialogDeps holds dependencies for the delete dialog.
type DeleteDialogDeps struct {
	Guard      AdminGuard
	Parques    projections.ParquesAPIForListing
	Eventos    projections.EventosAPIForListing
	Atividades projections.AtividadesAPIForListing
	Delete     orchestrators.DeleteAPIForEntries
}

// DeleteDialog is the admin-only removal flow: pick a kind, search across
// all parks as you type, confirm one hit. Opening and confirming both
// re-check the admin role.
type DeleteDialog struct {
	deps   DeleteDialogDeps
	lookup *entrySearch
	ctl    *search.Controller
}

// NewDeleteDialog opens the dialog. Non-admin sessions get
// navigator.ErrAccessDenied and no dialog.
func NewDeleteDialog(deps DeleteDialogDeps, publish func(search.Result)) (*DeleteDialog, error) {
	if err := deps.Guard.GuardAdmin(); err != nil {
		return nil, err
	}
	lookup := &entrySearch{
		parques:    deps.Parques,
		eventos:    deps.Eventos,
		atividades: deps.Atividades,
		kind:       orchestrators.KindEvento,
	}
	return &DeleteDialog{
		deps:   deps,
		lookup: lookup,
		ctl:    search.NewController(search.Deps{Fetch: lookup.fetch, Publish: publish}),
	}, nil
}

// SetKind switches the dialog between eventos and atividades.
func (d *DeleteDialog) SetKind(kind orchestrators.Kind) {
	d.lookup.SetKind(kind)
}

// SetQuery records a keystroke in the dialog's search field.
func (d *DeleteDialog) SetQuery(ctx context.Context, query string) {
	d.ctl.SetQuery(ctx, query)
}

// Candidates returns the current suggestion rows.
func (d *DeleteDialog) Candidates() []search.Candidate {
	return d.ctl.Candidates()
}

// Confirm deletes the chosen entry and returns the backend's confirmation
// message.
func (d *DeleteDialog) Confirm(ctx context.Context, id string) (string, error) {
	if err := d.deps.Guard.GuardAdmin(); err != nil {
		return "", err
	}
	return orchestrators.ExecuteDeleteEntry(ctx, orchestrators.DeleteEntryInput{
		Kind: d.lookup.Kind(),
		ID:   id,
	}, orchestrators.DeleteEntryDeps{API: d.deps.Delete})
}

// Close cancels any pending search.
func (d *DeleteDialog) Close() {
	d.ctl.Close()
}
