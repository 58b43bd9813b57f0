// Package identities stores registered users together with their public
// key and password-wrapped private key.
package identities

import (
	"context"

	"github.com/dmitrijs2005/privachat/internal/server/models"
)

type Repository interface {
	// Create inserts identity and fills in its ID and CreatedAt. A taken
	// username yields common.ErrorConflict.
	Create(ctx context.Context, identity *models.Identity) (*models.Identity, error)
	GetByUsername(ctx context.Context, username string) (*models.Identity, error)
	GetByID(ctx context.Context, id string) (*models.Identity, error)
	// UpdateProfile changes the mutable profile fields of id.
	UpdateProfile(ctx context.Context, id, displayName, about string) (*models.Identity, error)
	// Search returns identities whose username contains query, ignoring
	// case, other than excludingID and its contacts.
	Search(ctx context.Context, query, excludingID string, limit int) ([]*models.Profile, error)
}
