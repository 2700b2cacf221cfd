package orchestrators

import (
	"context"
	"errors"
	"testing"

	"ecoparques/internal/adapters/remote"
	"ecoparques/internal/domain/usuario"
)

type fakeProfileAPI struct {
	storedName string
	nameErr    error

	emailResult remote.EmailChangeResult
	emailErr    error

	passwordErr error
}

func (f *fakeProfileAPI) UpdateName(ctx context.Context, name string) (string, error) {
	if f.nameErr != nil {
		return "", f.nameErr
	}
	if f.storedName != "" {
		return f.storedName, nil
	}
	return name, nil
}

func (f *fakeProfileAPI) UpdateEmail(ctx context.Context, email, currentPassword string) (remote.EmailChangeResult, error) {
	return f.emailResult, f.emailErr
}

func (f *fakeProfileAPI) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	return f.passwordErr
}

func signedSession() *fakeSession {
	return &fakeSession{
		profile: usuario.Profile{ID: "u1", Name: "Ana", Email: "ana@parques.gov.br", Role: "user", Active: true},
		signed:  true,
	}
}

func TestExecuteUpdateName(t *testing.T) {
	sess := signedSession()
	deps := UpdateNameDeps{Auth: &fakeProfileAPI{storedName: "Ana Souza"}, Session: sess}

	if err := ExecuteUpdateName(context.Background(), "  Ana Souza  ", deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.profile.Name != "Ana Souza" {
		t.Errorf("profile name not refreshed: %q", sess.profile.Name)
	}
	if sess.lastToken != "" {
		t.Errorf("name change must not touch the token, got %q", sess.lastToken)
	}
}

func TestExecuteUpdateNameRequiresSession(t *testing.T) {
	deps := UpdateNameDeps{Auth: &fakeProfileAPI{}, Session: &fakeSession{}}
	if err := ExecuteUpdateName(context.Background(), "Ana", deps); !errors.Is(err, ErrSessionRequired) {
		t.Fatalf("expected ErrSessionRequired, got %v", err)
	}
}

func TestExecuteUpdateEmailRotatesToken(t *testing.T) {
	sess := signedSession()
	api := &fakeProfileAPI{emailResult: remote.EmailChangeResult{
		Message: "E-mail atualizado",
		Email:   "nova@parques.gov.br",
		Token:   "tok-rotated",
		Role:    "user",
		Active:  true,
	}}
	deps := UpdateEmailDeps{Auth: api, Session: sess}

	err := ExecuteUpdateEmail(context.Background(), UpdateEmailInput{Email: "Nova@parques.gov.br", CurrentPassword: "s3nha"}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.profile.Email != "nova@parques.gov.br" {
		t.Errorf("profile email not updated: %q", sess.profile.Email)
	}
	if sess.lastToken != "tok-rotated" {
		t.Errorf("rotated token not handed to session: %q", sess.lastToken)
	}
}

func TestExecuteUpdateEmailWithoutRotationKeepsToken(t *testing.T) {
	sess := signedSession()
	api := &fakeProfileAPI{emailResult: remote.EmailChangeResult{Message: "E-mail atualizado"}}
	deps := UpdateEmailDeps{Auth: api, Session: sess}

	err := ExecuteUpdateEmail(context.Background(), UpdateEmailInput{Email: "nova@parques.gov.br", CurrentPassword: "s3nha"}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.lastToken != "" {
		t.Errorf("no rotation means an empty token handed to session, got %q", sess.lastToken)
	}
}

func TestExecuteUpdateEmailErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		apiErr  error
		wantErr error
	}{
		{"wrong password", &remote.APIError{Status: 401, Detail: "unauthorized"}, ErrSenhaAtualIncorreta},
		{"email taken", &remote.APIError{Status: 409, Detail: "conflict"}, ErrEmailEmUso},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := UpdateEmailDeps{Auth: &fakeProfileAPI{emailErr: tt.apiErr}, Session: signedSession()}
			err := ExecuteUpdateEmail(context.Background(), UpdateEmailInput{Email: "nova@parques.gov.br", CurrentPassword: "s3nha"}, deps)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestExecuteUpdateEmailRejectsBadAddress(t *testing.T) {
	deps := UpdateEmailDeps{Auth: &fakeProfileAPI{}, Session: signedSession()}
	for _, email := range []string{"", "semarroba", "a@b"} {
		err := ExecuteUpdateEmail(context.Background(), UpdateEmailInput{Email: email, CurrentPassword: "s3nha"}, deps)
		if !errors.Is(err, ErrBadEmail) {
			t.Errorf("email %q: expected ErrBadEmail, got %v", email, err)
		}
	}
}

func TestExecuteChangePassword(t *testing.T) {
	tests := []struct {
		name    string
		input   ChangePasswordInput
		apiErr  error
		wantErr error
	}{
		{"ok", ChangePasswordInput{CurrentPassword: "antiga", NewPassword: "nova12", Confirmation: "nova12"}, nil, nil},
		{"missing current", ChangePasswordInput{NewPassword: "nova12", Confirmation: "nova12"}, nil, ErrPasswordConfirmation},
		{"too short", ChangePasswordInput{CurrentPassword: "antiga", NewPassword: "curta", Confirmation: "curta"}, nil, ErrPasswordTooShort},
		{"mismatch", ChangePasswordInput{CurrentPassword: "antiga", NewPassword: "nova12", Confirmation: "nova13"}, nil, ErrPasswordMismatch},
		{"wrong current", ChangePasswordInput{CurrentPassword: "errada", NewPassword: "nova12", Confirmation: "nova12"}, &remote.APIError{Status: 401}, ErrSenhaAtualIncorreta},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := ChangePasswordDeps{Auth: &fakeProfileAPI{passwordErr: tt.apiErr}}
			err := ExecuteChangePassword(context.Background(), tt.input, deps)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
