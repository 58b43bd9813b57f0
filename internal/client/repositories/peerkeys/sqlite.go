package peerkeys

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/privachat/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, username string) (*PeerKey, error) {
	k := &PeerKey{}
	err := r.db.QueryRowContext(ctx,
		`SELECT username, public_key, fetched_at FROM peer_keys WHERE username = ?`, username).
		Scan(&k.Username, &k.PublicKey, &k.FetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get peer key[%s]: %w", username, err)
	}
	return k, nil
}

// Put stores or replaces the key for username and stamps it with the
// current time.
func (r *SQLiteRepository) Put(ctx context.Context, username string, publicKey []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO peer_keys (username, public_key, fetched_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(username) DO UPDATE SET public_key = excluded.public_key, fetched_at = excluded.fetched_at
	`, username, publicKey)
	if err != nil {
		return fmt.Errorf("failed to put peer key[%s]: %w", username, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, username string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM peer_keys WHERE username = ?`, username); err != nil {
		return fmt.Errorf("failed to delete peer key[%s]: %w", username, err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*PeerKey, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT username, public_key, fetched_at FROM peer_keys ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("failed to list peer keys: %w", err)
	}
	defer rows.Close()

	var out []*PeerKey
	for rows.Next() {
		k := &PeerKey{}
		if err := rows.Scan(&k.Username, &k.PublicKey, &k.FetchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan peer key row: %w", err)
		}
		out = append(out, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate peer key rows: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM peer_keys`); err != nil {
		return fmt.Errorf("failed to clear peer keys: %w", err)
	}
	return nil
}
