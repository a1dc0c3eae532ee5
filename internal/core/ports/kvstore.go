package ports

import "context"

// KVStore is a generic scoped key-value store, the abstraction over whatever
// local persistence the host provides. Scope is typically a user ID so that
// per-user data (favorites, saved filters) never collides. Get returns
// apperrors.ErrNotFound for missing keys.
type KVStore interface {
	Get(ctx context.Context, scope, key string) (string, error)
	Set(ctx context.Context, scope, key, value string) error
	Remove(ctx context.Context, scope, key string) error
}
