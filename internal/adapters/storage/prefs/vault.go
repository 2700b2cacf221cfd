package prefs

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/nacl/secretbox"
)

// Mobile builds keep the session artifact in the platform keystore; here
// the artifact is sealed with a local secretbox key so the blob at rest in
// sqlite stays opaque.

// ErrSealBroken is returned when a sealed blob fails to open, typically
// after the key file was replaced.
var ErrSealBroken = errors.New("sealed value cannot be opened")

const keySize = 32

// Vault seals and opens preference values with a symmetric key.
type Vault struct {
	key [keySize]byte
}

// NewVault creates a Vault from a raw 32-byte key.
func NewVault(key [keySize]byte) *Vault {
	return &Vault{key: key}
}

// LoadOrCreateKey reads the vault key from path, generating and writing a
// fresh one (0600) on first run.
// POST: Returns a usable key; the file exists afterwards
func LoadOrCreateKey(path string) ([keySize]byte, error) {
	var key [keySize]byte

	raw, err := os.ReadFile(path)
	if err == nil {
		if len(raw) != keySize {
			return key, fmt.Errorf("vault key at %s has %d bytes, want %d", path, len(raw), keySize)
		}
		copy(key[:], raw)
		return key, nil
	}
	if !os.IsNotExist(err) {
		return key, fmt.Errorf("read vault key: %w", err)
	}

	if _, err := rand.Read(key[:]); err != nil {
		return key, fmt.Errorf("generate vault key: %w", err)
	}
	if err := os.WriteFile(path, key[:], 0o600); err != nil {
		return key, fmt.Errorf("write vault key: %w", err)
	}
	return key, nil
}

// Seal encrypts plain and returns a base64 blob safe to store as TEXT.
func (v *Vault) Seal(plain []byte) (string, error) {
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("seal: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], plain, &nonce, &v.key)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a blob produced by Seal.
// POST: Returns the original bytes, or ErrSealBroken
func (v *Vault) Open(blob string) ([]byte, error) {
	sealed, err := base64.StdEncoding.DecodeString(blob)
	if err != nil || len(sealed) < 24 {
		return nil, ErrSealBroken
	}
	var nonce [24]byte
	copy(nonce[:], sealed[:24])
	plain, ok := secretbox.Open(nil, sealed[24:], &nonce, &v.key)
	if !ok {
		return nil, ErrSealBroken
	}
	return plain, nil
}
