package prefs

import (
	"context"
	"errors"
)

// Storage keys. Three independent entries, no schema versioning.
const (
	KeySessionUser  = "sessao_usuario" // sealed JSON profile
	KeySessionToken = "sessao_token"   // sealed opaque bearer token
	KeyParqueFiltro = "parque_filtro"  // last-selected park id, "" = all
)

// ErrNotFound is returned by Get for a key that has never been set.
var ErrNotFound = errors.New("preference not found")

// Store is durable key-value storage surviving process restarts.
// Writes are overwrite-by-key; there are no transactions across keys.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
