// Package envelopes is the append-only store of encrypted messages.
package envelopes

import (
	"context"
	"time"

	"github.com/dmitrijs2005/privachat/internal/server/models"
)

type Repository interface {
	// Create stores e as is. ID and CreatedAt must already be set.
	Create(ctx context.Context, e *models.Envelope) error
	Get(ctx context.Context, id string) (*models.Envelope, error)
	// GetForUpdate is Get with a row lock; use it inside a transaction.
	GetForUpdate(ctx context.Context, id string) (*models.Envelope, error)
	// ListConversation returns envelopes exchanged between a and b in either
	// direction created after the given time, oldest first.
	ListConversation(ctx context.Context, a, b string, after time.Time, limit int) ([]*models.Envelope, error)
	// ListRecent returns the newest limit envelopes between a and b created
	// before the given time (no bound when zero), oldest first.
	ListRecent(ctx context.Context, a, b string, before time.Time, limit int) ([]*models.Envelope, error)
	SetReactions(ctx context.Context, id string, reactions []models.Reaction) error
}
