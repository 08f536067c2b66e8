package state

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db)
}

func TestToken_EmptyWhenUnset(t *testing.T) {
	s := newTestStore(t)

	token, err := s.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestSetToken_RoundTripAndOverwrite(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetToken(ctx, "tok-1"))
	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	require.NoError(t, s.SetToken(ctx, "tok-2"))
	token, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
}

func TestSetToken_WipesStaleState(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.set(ctx, s.db, "leftover", []byte("x")))
	require.NoError(t, s.SetToken(ctx, "tok"))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	value, err := s.get(ctx, s.db, "leftover")
	require.NoError(t, err)
	assert.Nil(t, value, "rows from the previous session must not survive a new login")
}

func TestClear_RemovesToken(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetToken(ctx, "tok"))
	require.NoError(t, s.Clear(ctx))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	// clearing an empty store is fine
	require.NoError(t, s.Clear(ctx))
}
