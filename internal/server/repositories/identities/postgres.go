package identities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/privachat/internal/common"
	"github.com/dmitrijs2005/privachat/internal/dbx"
	"github.com/dmitrijs2005/privachat/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectIdentity = `
	SELECT id, username, password_hash, public_key,
	       wrapped_key_salt, wrapped_key_iv, wrapped_key_ciphertext,
	       display_name, about, created_at
	FROM identities
`

func (r *PostgresRepository) Create(ctx context.Context, identity *models.Identity) (*models.Identity, error) {
	query := `
		INSERT INTO identities (username, password_hash, public_key,
		                        wrapped_key_salt, wrapped_key_iv, wrapped_key_ciphertext,
		                        display_name, about)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		identity.Username, identity.PasswordHash, identity.PublicKey,
		identity.WrappedKey.Salt, identity.WrappedKey.IV, identity.WrappedKey.Ciphertext,
		identity.DisplayName, identity.About,
	).Scan(&identity.ID, &identity.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, fmt.Errorf("username %q: %w", identity.Username, common.ErrorConflict)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return identity, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.Identity, error) {
	return r.getOne(ctx, selectIdentity+` WHERE username = $1`, username)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Identity, error) {
	return r.getOne(ctx, selectIdentity+` WHERE id = $1`, id)
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id, displayName, about string) (*models.Identity, error) {
	query := `
		UPDATE identities SET display_name = $2, about = $3
		WHERE id = $1
		RETURNING id, username, password_hash, public_key,
		          wrapped_key_salt, wrapped_key_iv, wrapped_key_ciphertext,
		          display_name, about, created_at
	`
	return r.getOne(ctx, query, id, displayName, about)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, args ...any) (*models.Identity, error) {
	i := &models.Identity{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&i.ID, &i.Username, &i.PasswordHash, &i.PublicKey,
		&i.WrappedKey.Salt, &i.WrappedKey.IV, &i.WrappedKey.Ciphertext,
		&i.DisplayName, &i.About, &i.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return i, nil
}

func (r *PostgresRepository) Search(ctx context.Context, query, excludingID string, limit int) ([]*models.Profile, error) {
	q := `
		SELECT i.id, i.username, i.display_name, i.about, i.public_key
		FROM identities i
		WHERE i.username ILIKE $1
		  AND i.id <> $2
		  AND NOT EXISTS (
		      SELECT 1 FROM contacts c WHERE c.owner_id = $2 AND c.contact_id = i.id
		  )
		ORDER BY i.username
		LIMIT $3
	`
	rows, err := r.db.QueryContext(ctx, q, "%"+escapeLike(query)+"%", excludingID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Profile
	for rows.Next() {
		p := &models.Profile{}
		if err := rows.Scan(&p.ID, &p.Username, &p.DisplayName, &p.About, &p.PublicKey); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
