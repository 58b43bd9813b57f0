// Package refreshtokens stores the server's single-use refresh tokens.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/privachat/internal/server/models"
)

type Repository interface {
	// Create stores token for userID, expiring validity from now.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error
	// Consume deletes token and returns what it was, expired or not, so
	// that a token can be redeemed at most once. Unknown tokens yield
	// common.ErrorNotFound.
	Consume(ctx context.Context, token string) (*models.RefreshToken, error)
	// PurgeExpired drops the expired tokens of userID and reports how many
	// were removed.
	PurgeExpired(ctx context.Context, userID string) (int64, error)
}
