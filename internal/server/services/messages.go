package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/privachat/internal/common"
	"github.com/dmitrijs2005/privachat/internal/dbx"
	"github.com/dmitrijs2005/privachat/internal/server/models"
	"github.com/dmitrijs2005/privachat/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const (
	defaultHistoryLimit = 100
	maxHistoryLimit     = 500
	maxEmojiRunes       = 8
)

// MessageService is the ciphertext log. It never looks inside an envelope.
type MessageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewMessageService(db *sql.DB, m repomanager.RepositoryManager) *MessageService {
	return &MessageService{db: db, repomanager: m}
}

// Save validates and stores e. A missing ID or CreatedAt is filled in.
// A reply must point at a stored envelope of the same conversation.
func (s *MessageService) Save(ctx context.Context, e *models.Envelope) error {
	if e == nil {
		return fmt.Errorf("empty envelope: %w", common.ErrorValidation)
	}
	if err := e.Validate(); err != nil {
		return err
	}
	if e.ReplyTo != "" {
		target, err := s.repomanager.Envelopes(s.db).Get(ctx, e.ReplyTo)
		switch {
		case errors.Is(err, common.ErrorNotFound):
			return fmt.Errorf("reply target %s does not exist: %w", e.ReplyTo, common.ErrorValidation)
		case err != nil:
			return err
		case !target.SameConversation(e):
			return fmt.Errorf("reply target %s is in another conversation: %w", e.ReplyTo, common.ErrorValidation)
		}
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return s.repomanager.Envelopes(s.db).Create(ctx, e)
}

// History returns the conversation between caller and peer in creation
// order, starting after the given time. limit <= 0 picks the default.
func (s *MessageService) History(ctx context.Context, caller, peer string, after time.Time, limit int) ([]*models.Envelope, error) {
	limit, err := s.historyLimit(ctx, peer, limit)
	if err != nil {
		return nil, err
	}
	list, err := s.repomanager.Envelopes(s.db).ListConversation(ctx, caller, peer, after, limit)
	if err != nil {
		return nil, err
	}
	return nonNil(list), nil
}

// Recent returns the latest page of the conversation that ends before the
// given time, or the newest page when before is zero. The page is in
// creation order.
func (s *MessageService) Recent(ctx context.Context, caller, peer string, before time.Time, limit int) ([]*models.Envelope, error) {
	limit, err := s.historyLimit(ctx, peer, limit)
	if err != nil {
		return nil, err
	}
	list, err := s.repomanager.Envelopes(s.db).ListRecent(ctx, caller, peer, before, limit)
	if err != nil {
		return nil, err
	}
	return nonNil(list), nil
}

// historyLimit checks that peer exists and clamps limit.
func (s *MessageService) historyLimit(ctx context.Context, peer string, limit int) (int, error) {
	if _, err := s.repomanager.Identities(s.db).GetByUsername(ctx, peer); err != nil {
		return 0, err
	}
	switch {
	case limit <= 0:
		return defaultHistoryLimit, nil
	case limit > maxHistoryLimit:
		return maxHistoryLimit, nil
	}
	return limit, nil
}

func nonNil(list []*models.Envelope) []*models.Envelope {
	if list == nil {
		return []*models.Envelope{}
	}
	return list
}

// ToggleReaction applies reactor's emoji to an envelope under a row lock,
// so concurrent reactions on the same envelope cannot lose updates.
// Only the two participants may react.
func (s *MessageService) ToggleReaction(ctx context.Context, envelopeID, reactor, emoji string) (*models.Envelope, error) {
	if _, err := uuid.Parse(envelopeID); err != nil {
		return nil, fmt.Errorf("envelope id: %w", common.ErrorValidation)
	}
	if n := utf8.RuneCountInString(emoji); n == 0 || n > maxEmojiRunes {
		return nil, fmt.Errorf("emoji must be 1-%d characters: %w", maxEmojiRunes, common.ErrorValidation)
	}

	return dbx.InTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) (*models.Envelope, error) {
		repo := s.repomanager.Envelopes(tx)

		e, err := repo.GetForUpdate(ctx, envelopeID)
		if err != nil {
			return nil, err
		}
		if !e.Involves(reactor) {
			return nil, fmt.Errorf("%s is not part of this conversation: %w", reactor, common.ErrorForbidden)
		}

		e.Reactions = models.ToggleReaction(e.Reactions, reactor, emoji)
		if err := repo.SetReactions(ctx, envelopeID, e.Reactions); err != nil {
			return nil, err
		}
		return e, nil
	})
}
