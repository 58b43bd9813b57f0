// Package contacts stores the symmetric contact list as directed edges.
package contacts

import (
	"context"

	"github.com/dmitrijs2005/privachat/internal/server/models"
)

type Repository interface {
	// Add inserts the directed edge owner → contact. Existing edges are kept.
	Add(ctx context.Context, ownerID, contactID string) error
	Exists(ctx context.Context, ownerID, contactID string) (bool, error)
	// List returns ownerID's contacts ordered by username.
	List(ctx context.Context, ownerID string) ([]*models.Contact, error)
	// ExistsByUsername is Exists keyed by handles.
	ExistsByUsername(ctx context.Context, owner, contact string) (bool, error)
}
