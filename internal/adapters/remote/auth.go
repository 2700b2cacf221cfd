package remote

import (
	"context"
	"net/http"
)

// LoginResult carries the backend's answer to a credential check.
type LoginResult struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// MeResult is the authenticated user's profile as the backend reports it.
type MeResult struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// EmailChangeResult carries the outcome of an e-mail change. Token, when
// present, is a rotated session credential the caller must persist and
// install before continuing.
type EmailChangeResult struct {
	Message string `json:"message"`
	Email   string `json:"email"`
	Token   string `json:"token"`
	Role    string `json:"role"`
	Active  bool   `json:"active"`
}

// Login exchanges credentials for a bearer token. It does not install the
// token; that is the session manager's job.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	payload := map[string]string{"email": email, "password": password}
	var out LoginResult
	if err := c.do(ctx, http.MethodPost, "/login", nil, payload, &out); err != nil {
		return LoginResult{}, err
	}
	return out, nil
}

// GetMe retrieves the signed-in user's profile.
func (c *Client) GetMe(ctx context.Context) (MeResult, error) {
	var out MeResult
	if err := c.do(ctx, http.MethodGet, "/me", nil, nil, &out); err != nil {
		return MeResult{}, err
	}
	return out, nil
}

// UpdateName changes the signed-in user's display name, returning the
// name the backend stored.
func (c *Client) UpdateName(ctx context.Context, name string) (string, error) {
	var out struct {
		Message string `json:"message"`
		Name    string `json:"name"`
	}
	if err := c.do(ctx, http.MethodPut, "/me/profile", nil, map[string]string{"name": name}, &out); err != nil {
		return "", err
	}
	return out.Name, nil
}

// UpdateEmail changes the signed-in user's e-mail address. The current
// password confirms the change; 401 means it was wrong, 409 means the
// address is taken.
func (c *Client) UpdateEmail(ctx context.Context, email, currentPassword string) (EmailChangeResult, error) {
	payload := map[string]string{"email": email, "current_password": currentPassword}
	var out EmailChangeResult
	if err := c.do(ctx, http.MethodPut, "/me/email", nil, payload, &out); err != nil {
		return EmailChangeResult{}, err
	}
	return out, nil
}

// ChangePassword rotates the signed-in user's password. A 401 means the
// current password was wrong.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	payload := map[string]string{
		"current_password": currentPassword,
		"new_password":     newPassword,
	}
	return c.do(ctx, http.MethodPut, "/me/password", nil, payload, nil)
}
