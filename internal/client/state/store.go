// Package state persists the client's local state: a single bearer token
// under a fixed key in a sqlite key/value table. Everything else the app
// shows is a disposable mirror of server responses and is never persisted.
package state

import "context"

// Store is the persistence surface the session layer depends on.
type Store interface {
	// Token returns the stored bearer token, or "" when none is stored.
	Token(ctx context.Context) (string, error)
	// SetToken stores the bearer token, replacing any previous one.
	SetToken(ctx context.Context, token string) error
	// Clear removes all stored state. Used on logout and on failed restore.
	Clear(ctx context.Context) error
}
