package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/booshananamudara/zoura-mobile/internal/common"
	"github.com/booshananamudara/zoura-mobile/internal/dbx"
)

// SQLiteStore keeps client state in a single key/value table.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM client_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get state[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO client_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set state[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	value, err := s.get(ctx, s.db, common.TokenStorageKey)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// SetToken stores the token for a fresh session. Whatever state the
// previous session left behind is wiped in the same transaction, so a
// crash mid-way cannot leave old rows next to the new token.
func (s *SQLiteStore) SetToken(ctx context.Context, token string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM client_state`); err != nil {
			return fmt.Errorf("failed to clear stale state: %w", err)
		}
		return s.set(ctx, tx, common.TokenStorageKey, []byte(token))
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM client_state`)
	if err != nil {
		return fmt.Errorf("failed to clear state: %w", err)
	}
	return nil
}
