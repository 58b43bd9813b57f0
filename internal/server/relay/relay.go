// Package relay routes envelopes and typing signals between live sessions
// and hands envelopes to the message store on the way through.
package relay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/privachat/internal/common"
	"github.com/dmitrijs2005/privachat/internal/logging"
	"github.com/dmitrijs2005/privachat/internal/server/models"
	"github.com/dmitrijs2005/privachat/internal/server/presence"
	"github.com/google/uuid"
)

var (
	ErrNotJoined     = fmt.Errorf("session has not joined: %w", common.ErrorForbidden)
	ErrSessionClosed = errors.New("session closed")
)

const (
	DefaultPersistTimeout = 5 * time.Second
	DefaultBufferSize     = 64
)

// Store persists envelopes and applies reactions.
type Store interface {
	Save(ctx context.Context, e *models.Envelope) error
	ToggleReaction(ctx context.Context, envelopeID, reactor, emoji string) (*models.Envelope, error)
}

// Gate decides whether sender may message recipient.
type Gate interface {
	CanMessage(ctx context.Context, sender, recipient string) (bool, error)
}

type Options struct {
	// PersistTimeout bounds Store.Save; delivery goes ahead after it.
	PersistTimeout time.Duration
	// BufferSize is the per-session event queue length.
	BufferSize int
	// Gate, when set, restricts envelopes to accepted contacts.
	Gate Gate
}

// Receipt reports what happened to a relayed envelope.
type Receipt struct {
	Envelope  *models.Envelope
	Persisted bool
	Delivered bool
}

// Relay owns the session table and the presence registry.
//
// Lock order: presence registry, then r.mu. The registry notifier runs
// under the registry lock and takes r.mu for reading, so r.mu must never
// be held while calling into the registry.
type Relay struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	registry       *presence.Registry
	store          Store
	gate           Gate
	persistTimeout time.Duration
	bufferSize     int
	logger         logging.Logger
}

func New(store Store, logger logging.Logger, opts Options) *Relay {
	if opts.PersistTimeout <= 0 {
		opts.PersistTimeout = DefaultPersistTimeout
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = DefaultBufferSize
	}

	r := &Relay{
		sessions:       make(map[string]*Session),
		store:          store,
		gate:           opts.Gate,
		persistTimeout: opts.PersistTimeout,
		bufferSize:     opts.BufferSize,
		logger:         logger.With("module", "relay"),
	}
	r.registry = presence.NewRegistry(r.broadcastOnline)
	return r
}

// Connect opens a new session in the Connected state.
func (r *Relay) Connect() *Session {
	s := newSession(uuid.NewString(), r.bufferSize)

	r.mu.Lock()
	r.sessions[s.id] = s
	r.mu.Unlock()

	return s
}

// Join binds the session to identity and publishes the new online set. A
// newer session for the same identity takes over routing from older ones.
func (r *Relay) Join(ctx context.Context, s *Session, identity string) error {
	if identity == "" {
		return fmt.Errorf("identity is required: %w", common.ErrorValidation)
	}

	s.mu.Lock()
	switch {
	case s.state == StateDisconnected:
		s.mu.Unlock()
		return ErrSessionClosed
	case s.state == StateJoined && s.identity != identity:
		s.mu.Unlock()
		return fmt.Errorf("session already joined as %s: %w", s.identity, common.ErrorForbidden)
	}
	s.state = StateJoined
	s.identity = identity
	s.mu.Unlock()

	r.registry.Join(identity, s.id)
	r.logger.Info(ctx, "session joined", "session", s.id, "identity", identity)
	return nil
}

// Typing tells to that the session's identity is typing. Nothing is stored.
func (r *Relay) Typing(ctx context.Context, s *Session, to string) error {
	return r.signal(ctx, s, to, EventTyping)
}

// StopTyping is the counterpart of Typing.
func (r *Relay) StopTyping(ctx context.Context, s *Session, to string) error {
	return r.signal(ctx, s, to, EventStopTyping)
}

func (r *Relay) signal(ctx context.Context, s *Session, to string, t EventType) error {
	from, err := joinedIdentity(s)
	if err != nil {
		return err
	}
	if target := r.sessionFor(to); target != nil {
		if !target.deliver(Event{Type: t, From: from}) {
			r.logger.Debug(ctx, "signal dropped", "type", t, "to", to)
		}
	}
	return nil
}

// SendEnvelope relays an envelope from sender. The server assigns its ID
// and creation time, stores it, and then pushes it to the recipient's
// current session if there is one. A storage failure is logged and does
// not stop delivery; an offline recipient reads it from history later.
func (r *Relay) SendEnvelope(ctx context.Context, sender string, e *models.Envelope) (*Receipt, error) {
	if e == nil {
		return nil, fmt.Errorf("empty envelope: %w", common.ErrorValidation)
	}
	if e.Sender == "" {
		e.Sender = sender
	}
	if e.Sender != sender {
		return nil, fmt.Errorf("cannot send as %s: %w", e.Sender, common.ErrorForbidden)
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}

	if r.gate != nil {
		ok, err := r.gate.CanMessage(ctx, e.Sender, e.Recipient)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%s is not a contact of %s: %w", e.Recipient, e.Sender, common.ErrorForbidden)
		}
	}

	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()
	e.Reactions = nil

	receipt := &Receipt{Envelope: e}

	// the caller going away must not abort the write
	persistCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.persistTimeout)
	err := r.store.Save(persistCtx, e)
	cancel()
	if err != nil {
		r.logger.Error(ctx, "envelope not persisted, delivering anyway",
			"envelope", e.ID, "from", e.Sender, "to", e.Recipient, "error", err)
	} else {
		receipt.Persisted = true
	}

	if target := r.sessionFor(e.Recipient); target != nil {
		receipt.Delivered = target.deliver(Event{Type: EventEnvelope, Envelope: e})
	}

	r.logger.Debug(ctx, "envelope relayed", "envelope", e.ID,
		"persisted", receipt.Persisted, "delivered", receipt.Delivered)
	return receipt, nil
}

// ReactionUpdate toggles reactor's emoji on an envelope and pushes the new
// reaction list to both participants.
func (r *Relay) ReactionUpdate(ctx context.Context, envelopeID, reactor, emoji string) (*models.Envelope, error) {
	e, err := r.store.ToggleReaction(ctx, envelopeID, reactor, emoji)
	if err != nil {
		return nil, err
	}

	ev := Event{Type: EventReaction, Reaction: &ReactionUpdate{
		EnvelopeID: e.ID,
		Reactor:    reactor,
		Reactions:  e.Reactions,
	}}
	for _, who := range []string{e.Sender, e.Recipient} {
		if target := r.sessionFor(who); target != nil {
			target.deliver(ev)
		}
	}
	return e, nil
}

// Disconnect closes the session. Queued events are abandoned and the
// identity goes offline unless a newer session already replaced it.
func (r *Relay) Disconnect(ctx context.Context, s *Session) {
	s.close()

	r.mu.Lock()
	delete(r.sessions, s.id)
	r.mu.Unlock()

	if r.registry.Leave(s.id) {
		r.logger.Info(ctx, "session left", "session", s.id, "identity", s.Identity())
	}
}

// Online returns the identities currently online.
func (r *Relay) Online() []string {
	return r.registry.Snapshot()
}

// Sessions returns the number of open sessions.
func (r *Relay) Sessions() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *Relay) sessionFor(identity string) *Session {
	id, ok := r.registry.Lookup(identity)
	if !ok {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id]
}

// broadcastOnline is the registry notifier.
func (r *Relay) broadcastOnline(online []string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sessions {
		snap := make([]string, len(online))
		copy(snap, online)
		s.deliver(Event{Type: EventOnlineUsers, Online: snap})
	}
}

func joinedIdentity(s *Session) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch s.state {
	case StateJoined:
		return s.identity, nil
	case StateDisconnected:
		return "", ErrSessionClosed
	}
	return "", ErrNotJoined
}
