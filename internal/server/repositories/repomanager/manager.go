package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/privachat/internal/dbx"
	"github.com/dmitrijs2005/privachat/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/privachat/internal/server/repositories/envelopes"
	"github.com/dmitrijs2005/privachat/internal/server/repositories/friendrequests"
	"github.com/dmitrijs2005/privachat/internal/server/repositories/identities"
	"github.com/dmitrijs2005/privachat/internal/server/repositories/refreshtokens"
)

// RepositoryManager vends repositories bound to either a *sql.DB or a
// transaction, so services can compose them inside dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Identities(db dbx.DBTX) identities.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	FriendRequests(db dbx.DBTX) friendrequests.Repository
	Contacts(db dbx.DBTX) contacts.Repository
	Envelopes(db dbx.DBTX) envelopes.Repository
}
