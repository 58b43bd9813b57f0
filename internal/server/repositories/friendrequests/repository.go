// Package friendrequests stores friend requests and their lifecycle state.
package friendrequests

import (
	"context"

	"github.com/dmitrijs2005/privachat/internal/server/models"
)

type Repository interface {
	// Create stores a new pending request. A pending request for the same
	// ordered pair yields common.ErrorConflict.
	Create(ctx context.Context, senderID, recipientID string) (*models.FriendRequest, error)
	// Get returns a request with both usernames resolved.
	Get(ctx context.Context, id string) (*models.FriendRequest, error)
	// GetForUpdate is Get with a row lock; use it inside a transaction.
	GetForUpdate(ctx context.Context, id string) (*models.FriendRequest, error)
	HasPending(ctx context.Context, senderID, recipientID string) (bool, error)
	// ListPending returns requests addressed to recipientID, newest first.
	ListPending(ctx context.Context, recipientID string) ([]*models.FriendRequest, error)
	// Resolve moves a pending request to status. A request that is no
	// longer pending yields common.ErrorConflict.
	Resolve(ctx context.Context, id string, status models.FriendRequestStatus) error
	// ResolvePending moves the pending request from senderID to recipientID,
	// if there is one, to status and reports how many rows changed.
	ResolvePending(ctx context.Context, senderID, recipientID string, status models.FriendRequestStatus) (int64, error)
}
