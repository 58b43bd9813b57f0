package metadata

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

func (r *SQLiteRepository) Account(ctx context.Context) (*Account, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT key, value FROM metadata WHERE key IN (?, ?, ?)`,
		KeyUsername, KeyPublicKey, KeyWrappedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	defer rows.Close()

	a := &Account{}
	for rows.Next() {
		var (
			key   string
			value []byte
		)
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		switch key {
		case KeyUsername:
			a.Username = string(value)
		case KeyPublicKey:
			a.PublicKey = value
		case KeyWrappedKey:
			a.WrappedKey = value
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if a.Username == "" || len(a.PublicKey) == 0 || len(a.WrappedKey) == 0 {
		return nil, nil
	}
	return a, nil
}

// SaveAccount replaces the cached account in one statement.
func (r *SQLiteRepository) SaveAccount(ctx context.Context, a *Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?), (?, ?), (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, KeyUsername, []byte(a.Username), KeyPublicKey, a.PublicKey, KeyWrappedKey, a.WrappedKey)
	if err != nil {
		return fmt.Errorf("failed to save account %s: %w", a.Username, err)
	}
	return nil
}

func (r *SQLiteRepository) Value(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read metadata %s: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM metadata`); err != nil {
		return fmt.Errorf("failed to clear metadata: %w", err)
	}
	return nil
}
