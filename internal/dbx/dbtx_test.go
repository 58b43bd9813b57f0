package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS contacts (owner TEXT, contact TEXT, PRIMARY KEY (owner, contact));`)
	require.NoError(t, err)
	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM contacts`).Scan(&n))
	return n
}

func addEdge(ctx context.Context, tx DBTX, a, b string) error {
	if _, err := tx.ExecContext(ctx, `INSERT INTO contacts(owner, contact) VALUES (?, ?)`, a, b); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, `INSERT INTO contacts(owner, contact) VALUES (?, ?)`, b, a)
	return err
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := setupDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return addEdge(ctx, tx, "alice", "bob")
	})
	require.NoError(t, err)
	require.Equal(t, 2, countRows(t, db), "both directed edges must be committed")
}

func TestWithTx_RollbackOnFnError(t *testing.T) {
	db := setupDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		require.NoError(t, addEdge(ctx, tx, "alice", "bob"))
		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 0, countRows(t, db), "half-written edge must not survive")
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db := setupDB(t)

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic to propagate")
		}
		require.Equal(t, 0, countRows(t, db), "must rollback on panic")
	}()

	_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		require.NoError(t, addEdge(ctx, tx, "alice", "bob"))
		panic("kaput")
	})
}

func TestWithTx_BeginError(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Close())

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return nil
	})
	require.Error(t, err, "begin should fail when DB is closed")
}

func TestInTx_ReturnsValueOnlyOnCommit(t *testing.T) {
	db := setupDB(t)

	n, err := InTx(context.Background(), db, func(ctx context.Context, tx DBTX) (int, error) {
		return 2, addEdge(ctx, tx, "alice", "bob")
	})
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = InTx(context.Background(), db, func(ctx context.Context, tx DBTX) (int, error) {
		return 7, addEdge(ctx, tx, "alice", "bob") // duplicate primary key
	})
	require.Error(t, err)
	require.Zero(t, n)
	require.Equal(t, 2, countRows(t, db))
}
