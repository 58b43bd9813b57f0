package grpc

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/privachat/internal/common"
	"github.com/dmitrijs2005/privachat/internal/logging"
	"github.com/dmitrijs2005/privachat/internal/server/models"
	"github.com/dmitrijs2005/privachat/internal/server/relay"
	"github.com/dmitrijs2005/privachat/internal/server/services"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- fakes ----

type fakeUsers struct {
	registered services.RegisterInput
	regResp    *models.Identity
	regErr     error

	loginResp     *services.TokenPair
	loginIdentity *models.Identity
	loginErr      error

	refreshResp *services.TokenPair
	refreshErr  error

	keys       map[string][]byte
	profile    *models.Profile
	profileErr error

	updatedFor string
}

func (f *fakeUsers) Register(_ context.Context, in services.RegisterInput) (*models.Identity, error) {
	f.registered = in
	return f.regResp, f.regErr
}

func (f *fakeUsers) Login(context.Context, string, string) (*services.TokenPair, *models.Identity, error) {
	return f.loginResp, f.loginIdentity, f.loginErr
}

func (f *fakeUsers) RefreshToken(context.Context, string) (*services.TokenPair, error) {
	return f.refreshResp, f.refreshErr
}

func (f *fakeUsers) GetPublicKey(_ context.Context, username string) ([]byte, error) {
	k, ok := f.keys[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return k, nil
}

func (f *fakeUsers) GetProfile(_ context.Context, username string) (*models.Profile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	p := *f.profile
	p.Username = username
	return &p, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, userID, displayName, about string) (*models.Profile, error) {
	f.updatedFor = userID
	return &models.Profile{ID: userID, DisplayName: displayName, About: about}, f.profileErr
}

type fakeContacts struct {
	searchedBy string
	found      []*models.Profile

	sent    *models.FriendRequest
	sendErr error

	pending []*models.FriendRequest

	responder  string
	respondErr error

	contacts []*models.Contact
}

func (f *fakeContacts) Search(_ context.Context, _ string, excludingID string) ([]*models.Profile, error) {
	f.searchedBy = excludingID
	return f.found, nil
}

func (f *fakeContacts) SendRequest(context.Context, string, string) (*models.FriendRequest, error) {
	return f.sent, f.sendErr
}

func (f *fakeContacts) ListPending(context.Context, string) ([]*models.FriendRequest, error) {
	return f.pending, nil
}

func (f *fakeContacts) Respond(_ context.Context, requestID, responderID, decision string) (*models.FriendRequest, error) {
	f.responder = responderID
	if f.respondErr != nil {
		return nil, f.respondErr
	}
	status, _ := models.ParseDecision(decision)
	return &models.FriendRequest{ID: requestID, Status: status}, nil
}

func (f *fakeContacts) ListContacts(context.Context, string) ([]*models.Contact, error) {
	return f.contacts, nil
}

// memMessages is both the relay store and the history service.
type memMessages struct {
	mu           sync.Mutex
	envelopes    []*models.Envelope
	recentBefore time.Time
}

func (m *memMessages) Save(_ context.Context, e *models.Envelope) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *e
	m.envelopes = append(m.envelopes, &cp)
	return nil
}

func (m *memMessages) ToggleReaction(_ context.Context, id, reactor, emoji string) (*models.Envelope, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.envelopes {
		if e.ID != id {
			continue
		}
		if !e.Involves(reactor) {
			return nil, common.ErrorForbidden
		}
		e.Reactions = models.ToggleReaction(e.Reactions, reactor, emoji)
		cp := *e
		return &cp, nil
	}
	return nil, common.ErrorNotFound
}

func (m *memMessages) History(_ context.Context, caller, peer string, after time.Time, limit int) ([]*models.Envelope, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if peer == "ghost" {
		return nil, common.ErrorNotFound
	}
	out := []*models.Envelope{}
	for _, e := range m.envelopes {
		if e.Involves(caller) && e.Involves(peer) && e.CreatedAt.After(after) {
			out = append(out, e)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memMessages) Recent(_ context.Context, caller, peer string, before time.Time, limit int) ([]*models.Envelope, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if peer == "ghost" {
		return nil, common.ErrorNotFound
	}
	m.recentBefore = before
	out := []*models.Envelope{}
	for _, e := range m.envelopes {
		if e.Involves(caller) && e.Involves(peer) && (before.IsZero() || e.CreatedAt.Before(before)) {
			out = append(out, e)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

type fakeExports struct {
	res *services.ExportResult
	err error
}

func (f *fakeExports) ExportHistory(context.Context, string, string) (*services.ExportResult, error) {
	return f.res, f.err
}

// ---- helpers ----

const testSecret = "test-secret"

type fixture struct {
	server   *GRPCServer
	users    *fakeUsers
	contacts *fakeContacts
	messages *memMessages
	exports  *fakeExports
	relay    *relay.Relay
}

func newFixture() *fixture {
	f := &fixture{
		users:    &fakeUsers{keys: map[string][]byte{}, profile: &models.Profile{}},
		contacts: &fakeContacts{},
		messages: &memMessages{},
		exports:  &fakeExports{},
	}
	f.relay = relay.New(f.messages, nopLogger{}, relay.Options{})
	f.server = NewGRPCServer("127.0.0.1:0", nopLogger{}, f.users, f.contacts, f.messages, f.exports, f.relay, testSecret)
	return f
}
