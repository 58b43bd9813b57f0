package envelopes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

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

const selectEnvelope = `
	SELECT id, sender, recipient, ciphertext, iv, encrypted_key, sender_encrypted_key,
	       reply_to, reactions, created_at
	FROM envelopes
`

func (r *PostgresRepository) Create(ctx context.Context, e *models.Envelope) error {
	query := `
		INSERT INTO envelopes (id, sender, recipient, ciphertext, iv, encrypted_key,
		                       sender_encrypted_key, reply_to, reactions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	reactions, err := marshalReactions(e.Reactions)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query,
		e.ID, e.Sender, e.Recipient, e.Ciphertext, e.IV, e.EncryptedKey, e.SenderEncryptedKey,
		nullable(e.ReplyTo), reactions, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Envelope, error) {
	return r.getOne(ctx, selectEnvelope+` WHERE id = $1`, id)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, id string) (*models.Envelope, error) {
	return r.getOne(ctx, selectEnvelope+` WHERE id = $1 FOR UPDATE`, id)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, args ...any) (*models.Envelope, error) {
	e, err := scanEnvelope(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

const inConversation = `
	WHERE ((sender = $1 AND recipient = $2) OR (sender = $2 AND recipient = $1))
`

func (r *PostgresRepository) ListConversation(ctx context.Context, a, b string, after time.Time, limit int) ([]*models.Envelope, error) {
	query := selectEnvelope + inConversation + `
		  AND created_at > $3
		ORDER BY created_at, id
		LIMIT $4
	`
	return r.list(ctx, query, a, b, after, limit)
}

func (r *PostgresRepository) ListRecent(ctx context.Context, a, b string, before time.Time, limit int) ([]*models.Envelope, error) {
	var (
		list []*models.Envelope
		err  error
	)
	if before.IsZero() {
		query := selectEnvelope + inConversation + `
			ORDER BY created_at DESC, id DESC
			LIMIT $3
		`
		list, err = r.list(ctx, query, a, b, limit)
	} else {
		query := selectEnvelope + inConversation + `
			  AND created_at < $3
			ORDER BY created_at DESC, id DESC
			LIMIT $4
		`
		list, err = r.list(ctx, query, a, b, before, limit)
	}
	if err != nil {
		return nil, err
	}
	slices.Reverse(list)
	return list, nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Envelope, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Envelope
	for rows.Next() {
		e, err := scanEnvelope(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) SetReactions(ctx context.Context, id string, reactions []models.Reaction) error {
	query := `
		UPDATE envelopes SET reactions = $2
		WHERE id = $1
	`
	raw, err := marshalReactions(reactions)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, id, raw)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEnvelope(s scanner) (*models.Envelope, error) {
	e := &models.Envelope{}
	var replyTo sql.NullString
	var reactions []byte
	if err := s.Scan(&e.ID, &e.Sender, &e.Recipient, &e.Ciphertext, &e.IV, &e.EncryptedKey,
		&e.SenderEncryptedKey, &replyTo, &reactions, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.ReplyTo = replyTo.String
	if len(reactions) > 0 {
		if err := json.Unmarshal(reactions, &e.Reactions); err != nil {
			return nil, fmt.Errorf("decode reactions: %w", err)
		}
	}
	return e, nil
}

// marshalReactions renders the jsonb column. nil becomes [].
func marshalReactions(reactions []models.Reaction) (string, error) {
	if reactions == nil {
		reactions = []models.Reaction{}
	}
	raw, err := json.Marshal(reactions)
	if err != nil {
		return "", fmt.Errorf("encode reactions: %w", err)
	}
	return string(raw), nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
