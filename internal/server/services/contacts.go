package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/privachat/internal/common"
	"github.com/dmitrijs2005/privachat/internal/dbx"
	"github.com/dmitrijs2005/privachat/internal/server/models"
	"github.com/dmitrijs2005/privachat/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const searchLimit = 20

// ContactService runs the friend-request state machine and owns the
// derived contact list.
type ContactService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewContactService(db *sql.DB, m repomanager.RepositoryManager) *ContactService {
	return &ContactService{db: db, repomanager: m}
}

// Search finds identities by case-insensitive substring of their username,
// leaving out the caller and the caller's contacts. A blank query matches
// nothing.
func (s *ContactService) Search(ctx context.Context, query, excludingID string) ([]*models.Profile, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*models.Profile{}, nil
	}
	return s.repomanager.Identities(s.db).Search(ctx, query, excludingID, searchLimit)
}

// SendRequest asks recipientUsername to become senderID's contact.
func (s *ContactService) SendRequest(ctx context.Context, senderID, recipientUsername string) (*models.FriendRequest, error) {
	recipient, err := s.repomanager.Identities(s.db).GetByUsername(ctx, recipientUsername)
	if err != nil {
		return nil, err
	}
	if recipient.ID == senderID {
		return nil, fmt.Errorf("cannot befriend yourself: %w", common.ErrorValidation)
	}

	already, err := s.repomanager.Contacts(s.db).Exists(ctx, senderID, recipient.ID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, fmt.Errorf("already contacts: %w", common.ErrorConflict)
	}

	pending, err := s.repomanager.FriendRequests(s.db).HasPending(ctx, senderID, recipient.ID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, fmt.Errorf("request already pending: %w", common.ErrorConflict)
	}

	// the partial unique index settles a race between two concurrent sends
	fr, err := s.repomanager.FriendRequests(s.db).Create(ctx, senderID, recipient.ID)
	if err != nil {
		return nil, err
	}
	fr.RecipientUsername = recipient.Username
	return fr, nil
}

// ListPending returns requests waiting for recipientID, newest first.
func (s *ContactService) ListPending(ctx context.Context, recipientID string) ([]*models.FriendRequest, error) {
	return s.repomanager.FriendRequests(s.db).ListPending(ctx, recipientID)
}

// Respond resolves a pending request. Only its recipient may answer, and
// only once. Accepting adds both directed contact edges in the same
// transaction as the status change and also accepts a pending request
// going the other way. An id that is not a UUID cannot name a request.
func (s *ContactService) Respond(ctx context.Context, requestID, responderID, decision string) (*models.FriendRequest, error) {
	status, ok := models.ParseDecision(decision)
	if !ok {
		return nil, fmt.Errorf("unknown decision %q: %w", decision, common.ErrorValidation)
	}
	if _, err := uuid.Parse(requestID); err != nil {
		return nil, fmt.Errorf("request %q: %w", requestID, common.ErrorNotFound)
	}

	return dbx.InTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) (*models.FriendRequest, error) {
		requests := s.repomanager.FriendRequests(tx)

		fr, err := requests.GetForUpdate(ctx, requestID)
		if err != nil {
			return nil, err
		}
		if fr.RecipientID != responderID {
			return nil, fmt.Errorf("request %s is addressed to someone else: %w", requestID, common.ErrorForbidden)
		}
		if fr.Status.Terminal() {
			return nil, fmt.Errorf("request %s already %s: %w", requestID, fr.Status, common.ErrorConflict)
		}

		if err := requests.Resolve(ctx, requestID, status); err != nil {
			return nil, err
		}

		if status == models.FriendRequestAccepted {
			contacts := s.repomanager.Contacts(tx)
			if err := contacts.Add(ctx, fr.SenderID, fr.RecipientID); err != nil {
				return nil, err
			}
			if err := contacts.Add(ctx, fr.RecipientID, fr.SenderID); err != nil {
				return nil, err
			}
			// a crossing request in the other direction is settled too
			if _, err := requests.ResolvePending(ctx, fr.RecipientID, fr.SenderID, models.FriendRequestAccepted); err != nil {
				return nil, err
			}
		}

		fr.Status = status
		return fr, nil
	})
}

func (s *ContactService) ListContacts(ctx context.Context, userID string) ([]*models.Contact, error) {
	return s.repomanager.Contacts(s.db).List(ctx, userID)
}

// CanMessage reports whether sender has recipient as an accepted contact.
// The relay consults it when contact gating is enabled.
func (s *ContactService) CanMessage(ctx context.Context, sender, recipient string) (bool, error) {
	return s.repomanager.Contacts(s.db).ExistsByUsername(ctx, sender, recipient)
}
