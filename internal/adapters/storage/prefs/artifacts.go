package prefs

import (
	"context"
	"errors"
)

// SessionArtifacts persists the signed-in identity: the sealed profile blob
// and the sealed bearer token, under their fixed keys.
type SessionArtifacts struct {
	store Store
	vault *Vault
}

// NewSessionArtifacts wires a Store and a Vault into the artifact codec.
func NewSessionArtifacts(store Store, vault *Vault) *SessionArtifacts {
	return &SessionArtifacts{store: store, vault: vault}
}

// Load reads the persisted session artifact.
// POST: Missing entries yield zero values with a nil error; a broken seal
// is an error, which the session manager treats as "no session"
func (a *SessionArtifacts) Load(ctx context.Context) (profileJSON []byte, token string, err error) {
	if blob, err := a.store.Get(ctx, KeySessionUser); err == nil {
		profileJSON, err = a.vault.Open(blob)
		if err != nil {
			return nil, "", err
		}
	} else if !errors.Is(err, ErrNotFound) {
		return nil, "", err
	}

	if blob, err := a.store.Get(ctx, KeySessionToken); err == nil {
		raw, err := a.vault.Open(blob)
		if err != nil {
			return nil, "", err
		}
		token = string(raw)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, "", err
	}

	return profileJSON, token, nil
}

// SaveProfile seals and persists the profile blob.
func (a *SessionArtifacts) SaveProfile(ctx context.Context, profileJSON []byte) error {
	blob, err := a.vault.Seal(profileJSON)
	if err != nil {
		return err
	}
	return a.store.Set(ctx, KeySessionUser, blob)
}

// SaveToken seals and persists the bearer token.
func (a *SessionArtifacts) SaveToken(ctx context.Context, token string) error {
	blob, err := a.vault.Seal([]byte(token))
	if err != nil {
		return err
	}
	return a.store.Set(ctx, KeySessionToken, blob)
}

// Clear removes both entries. Clearing an empty store is not an error.
func (a *SessionArtifacts) Clear(ctx context.Context) error {
	if err := a.store.Delete(ctx, KeySessionUser); err != nil {
		return err
	}
	return a.store.Delete(ctx, KeySessionToken)
}
