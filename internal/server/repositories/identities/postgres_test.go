package identities

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/privachat/internal/common"
	"github.com/dmitrijs2005/privachat/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

var identityColumns = []string{
	"id", "username", "password_hash", "public_key",
	"wrapped_key_salt", "wrapped_key_iv", "wrapped_key_ciphertext",
	"display_name", "about", "created_at",
}

func newIdentity() *models.Identity {
	return &models.Identity{
		Username:     "alice",
		PasswordHash: []byte("hash"),
		PublicKey:    []byte("pub"),
		WrappedKey:   models.WrappedKey{Salt: []byte("salt"), IV: []byte("iv"), Ciphertext: []byte("ct")},
		DisplayName:  "alice",
		About:        common.DefaultAbout,
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`(?s)^\s*INSERT\s+INTO\s+identities\b.*RETURNING\s+id,\s*created_at\s*$`).
		WithArgs("alice", []byte("hash"), []byte("pub"), []byte("salt"), []byte("iv"), []byte("ct"), "alice", common.DefaultAbout).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("id-1", now))

	got, err := repo.Create(context.Background(), newIdentity())
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, now, got.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateUsername(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT\s+INTO\s+identities`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "identities_username_key"})

	_, err := repo.Create(context.Background(), newIdentity())
	assert.ErrorIs(t, err, common.ErrorConflict)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT\s+INTO\s+identities`).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), newIdentity())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: db down")
	assert.NotErrorIs(t, err, common.ErrorConflict)
}

func TestGetByUsername(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`(?s)FROM\s+identities\s+WHERE\s+username\s*=\s*\$1`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(identityColumns).
			AddRow("id-1", "alice", []byte("hash"), []byte("pub"), []byte("salt"), []byte("iv"), []byte("ct"), "Alice", "hi", now))

	got, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, []byte("pub"), got.PublicKey)
	assert.Equal(t, models.WrappedKey{Salt: []byte("salt"), IV: []byte("iv"), Ciphertext: []byte("ct")}, got.WrappedKey)
	assert.Equal(t, "Alice", got.DisplayName)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)FROM\s+identities\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdateProfile(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`(?s)UPDATE\s+identities\s+SET\s+display_name\s*=\s*\$2,\s*about\s*=\s*\$3\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("id-1", "Alice A.", "busy").
		WillReturnRows(sqlmock.NewRows(identityColumns).
			AddRow("id-1", "alice", []byte("hash"), []byte("pub"), []byte("salt"), []byte("iv"), []byte("ct"), "Alice A.", "busy", now))

	got, err := repo.UpdateProfile(context.Background(), "id-1", "Alice A.", "busy")
	require.NoError(t, err)
	assert.Equal(t, "Alice A.", got.DisplayName)
	assert.Equal(t, "busy", got.About)
}

func TestSearch(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)SELECT\s+i\.id.*FROM\s+identities\s+i.*ILIKE\s+\$1.*NOT\s+EXISTS.*LIMIT\s+\$3`).
		WithArgs(`%bo\_b\%%`, "me", 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "display_name", "about", "public_key"}).
			AddRow("id-2", "bo_b%", "Bob", "", []byte("pk")))

	got, err := repo.Search(context.Background(), "bo_b%", "me", 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "bo_b%", got[0].Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearch_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`ILIKE`).WillReturnError(errors.New("db err"))

	_, err := repo.Search(context.Background(), "x", "me", 20)
	assert.Error(t, err)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
