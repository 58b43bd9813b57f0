package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/privachat/internal/common"
	"github.com/google/uuid"
)

// Reaction is a single emoji left on an envelope.
type Reaction struct {
	User  string `json:"user"`
	Emoji string `json:"emoji"`
}

// Envelope is a persisted encrypted message. Sender and Recipient are
// handles. The payload fields are opaque to the server.
type Envelope struct {
	ID                 string
	Sender             string
	Recipient          string
	Ciphertext         []byte
	IV                 []byte
	EncryptedKey       []byte
	SenderEncryptedKey []byte
	ReplyTo            string
	Reactions          []Reaction
	CreatedAt          time.Time
}

// Validate checks the fields a client must supply. Both wrapped keys are
// mandatory so either participant can read the message later.
func (e *Envelope) Validate() error {
	switch {
	case e.Sender == "" || e.Recipient == "":
		return fmt.Errorf("sender and recipient are required: %w", common.ErrorValidation)
	case e.Sender == e.Recipient:
		return fmt.Errorf("cannot message yourself: %w", common.ErrorValidation)
	case len(e.Ciphertext) == 0 || len(e.IV) == 0:
		return fmt.Errorf("ciphertext and iv are required: %w", common.ErrorValidation)
	case len(e.EncryptedKey) == 0 || len(e.SenderEncryptedKey) == 0:
		return fmt.Errorf("both wrapped keys are required: %w", common.ErrorValidation)
	}
	if e.ReplyTo != "" {
		if _, err := uuid.Parse(e.ReplyTo); err != nil {
			return fmt.Errorf("reply reference: %w", common.ErrorValidation)
		}
	}
	return nil
}

// Involves reports whether username is the sender or the recipient.
func (e *Envelope) Involves(username string) bool {
	return e.Sender == username || e.Recipient == username
}

// SameConversation reports whether o was exchanged between the same two
// participants as e, in either direction.
func (e *Envelope) SameConversation(o *Envelope) bool {
	return o.Involves(e.Sender) && o.Involves(e.Recipient)
}

// Peer returns the other participant from username's point of view.
func (e *Envelope) Peer(username string) string {
	if e.Sender == username {
		return e.Recipient
	}
	return e.Sender
}

// ToggleReaction applies one reaction by user to reactions and returns the
// new list. A user keeps at most one reaction: the same emoji again removes
// it, a different emoji replaces it in place, otherwise it is appended.
// The input slice is not modified.
func ToggleReaction(reactions []Reaction, user, emoji string) []Reaction {
	out := make([]Reaction, 0, len(reactions)+1)
	found := false

	for _, r := range reactions {
		if r.User != user {
			out = append(out, r)
			continue
		}
		if found {
			continue
		}
		found = true
		if r.Emoji != emoji {
			out = append(out, Reaction{User: user, Emoji: emoji})
		}
	}

	if !found {
		out = append(out, Reaction{User: user, Emoji: emoji})
	}
	return out
}
