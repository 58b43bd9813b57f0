package contacts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/privachat/internal/dbx"
	"github.com/dmitrijs2005/privachat/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, ownerID, contactID string) error {
	query := `
		INSERT INTO contacts (owner_id, contact_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, ownerID, contactID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Exists(ctx context.Context, ownerID, contactID string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM contacts WHERE owner_id = $1 AND contact_id = $2)
	`
	var ok bool
	if err := r.db.QueryRowContext(ctx, query, ownerID, contactID).Scan(&ok); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return ok, nil
}

func (r *PostgresRepository) ExistsByUsername(ctx context.Context, owner, contact string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM contacts c
			JOIN identities o ON o.id = c.owner_id
			JOIN identities p ON p.id = c.contact_id
			WHERE o.username = $1 AND p.username = $2
		)
	`
	var ok bool
	if err := r.db.QueryRowContext(ctx, query, owner, contact).Scan(&ok); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return ok, nil
}

func (r *PostgresRepository) List(ctx context.Context, ownerID string) ([]*models.Contact, error) {
	query := `
		SELECT i.id, i.username, i.display_name, i.about, c.created_at
		FROM contacts c
		JOIN identities i ON i.id = c.contact_id
		WHERE c.owner_id = $1
		ORDER BY i.username
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Contact
	for rows.Next() {
		c := &models.Contact{}
		if err := rows.Scan(&c.UserID, &c.Username, &c.DisplayName, &c.About, &c.Since); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
