package friendrequests

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

const selectRequest = `
	SELECT fr.id, fr.sender_id, s.username, fr.recipient_id, r.username,
	       fr.status, fr.created_at, fr.responded_at
	FROM friend_requests fr
	JOIN identities s ON s.id = fr.sender_id
	JOIN identities r ON r.id = fr.recipient_id
`

func (r *PostgresRepository) Create(ctx context.Context, senderID, recipientID string) (*models.FriendRequest, error) {
	query := `
		INSERT INTO friend_requests (sender_id, recipient_id, status)
		VALUES ($1, $2, 'pending')
		RETURNING id, created_at
	`
	fr := &models.FriendRequest{SenderID: senderID, RecipientID: recipientID, Status: models.FriendRequestPending}
	if err := r.db.QueryRowContext(ctx, query, senderID, recipientID).Scan(&fr.ID, &fr.CreatedAt); err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, fmt.Errorf("pending request exists: %w", common.ErrorConflict)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return fr, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.FriendRequest, error) {
	return r.getOne(ctx, selectRequest+` WHERE fr.id = $1`, id)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, id string) (*models.FriendRequest, error) {
	return r.getOne(ctx, selectRequest+` WHERE fr.id = $1 FOR UPDATE OF fr`, id)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, args ...any) (*models.FriendRequest, error) {
	fr, err := scanRequest(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return fr, nil
}

func (r *PostgresRepository) HasPending(ctx context.Context, senderID, recipientID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM friend_requests
			WHERE sender_id = $1 AND recipient_id = $2 AND status = 'pending'
		)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, senderID, recipientID).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) ListPending(ctx context.Context, recipientID string) ([]*models.FriendRequest, error) {
	query := selectRequest + `
		WHERE fr.recipient_id = $1 AND fr.status = 'pending'
		ORDER BY fr.created_at DESC, fr.id DESC
	`
	rows, err := r.db.QueryContext(ctx, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.FriendRequest
	for rows.Next() {
		fr, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, fr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Resolve(ctx context.Context, id string, status models.FriendRequestStatus) error {
	query := `
		UPDATE friend_requests SET status = $2, responded_at = now()
		WHERE id = $1 AND status = 'pending'
	`
	res, err := r.db.ExecContext(ctx, query, id, string(status))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("request %s is not pending: %w", id, common.ErrorConflict)
	}
	return nil
}

func (r *PostgresRepository) ResolvePending(ctx context.Context, senderID, recipientID string, status models.FriendRequestStatus) (int64, error) {
	query := `
		UPDATE friend_requests SET status = $3, responded_at = now()
		WHERE sender_id = $1 AND recipient_id = $2 AND status = 'pending'
	`
	res, err := r.db.ExecContext(ctx, query, senderID, recipientID, string(status))
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRequest(s scanner) (*models.FriendRequest, error) {
	fr := &models.FriendRequest{}
	var status string
	var respondedAt sql.NullTime
	if err := s.Scan(&fr.ID, &fr.SenderID, &fr.SenderUsername, &fr.RecipientID, &fr.RecipientUsername,
		&status, &fr.CreatedAt, &respondedAt); err != nil {
		return nil, err
	}
	fr.Status = models.FriendRequestStatus(status)
	if respondedAt.Valid {
		t := respondedAt.Time
		fr.RespondedAt = &t
	}
	return fr, nil
}
