package services

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/privachat/internal/client/client"
	"github.com/dmitrijs2005/privachat/internal/cryptox"
	pb "github.com/dmitrijs2005/privachat/internal/proto"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// fakeServer is an in-memory stand-in for the chat server sufficient for
// client service tests.
type fakeServer struct {
	client.Client

	mu sync.Mutex

	accounts map[string]*pb.RegisterRequest
	loggedIn string
	logouts  int
	closed   bool

	keyFetches map[string]int
	envelopes  []*pb.Envelope
	exportURL  string

	pingErr     error
	loginErr    error
	sendErr     error
	requests    []*pb.FriendRequest
	lastDecided string
	lastSearch  string
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		accounts:   map[string]*pb.RegisterRequest{},
		keyFetches: map[string]int{},
	}
}

func (f *fakeServer) Close() error                   { f.closed = true; return nil }
func (f *fakeServer) Ping(ctx context.Context) error { return f.pingErr }
func (f *fakeServer) Logout()                        { f.logouts++; f.loggedIn = "" }

func (f *fakeServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.accounts[req.Username]; ok {
		return nil, client.ErrConflict
	}
	f.accounts[req.Username] = req
	return &pb.Profile{Username: req.Username, PublicKey: req.PublicKey}, nil
}

func (f *fakeServer) Login(ctx context.Context, username, password string) (*pb.LoginResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	acc, ok := f.accounts[username]
	if !ok || acc.Password != password {
		return nil, client.ErrUnauthorized
	}
	f.loggedIn = username
	return &pb.LoginResponse{
		AccessToken:  "A",
		RefreshToken: "R",
		Profile:      &pb.Profile{Username: username, PublicKey: acc.PublicKey},
		WrappedKey:   acc.WrappedKey,
	}, nil
}

func (f *fakeServer) GetPublicKey(ctx context.Context, username string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	acc, ok := f.accounts[username]
	if !ok {
		return nil, client.ErrNotFound
	}
	f.keyFetches[username]++
	return acc.PublicKey, nil
}

func (f *fakeServer) SendEnvelope(ctx context.Context, e *pb.Envelope) (*pb.SendEnvelopeResponse, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	n := len(f.envelopes)
	stored := proto.Clone(e).(*pb.Envelope)
	stored.Id = fmt.Sprintf("env-%03d", n)
	stored.CreatedAt = timestamppb.New(time.Date(2024, 1, 1, 12, n/60, n%60, 0, time.UTC))
	f.envelopes = append(f.envelopes, stored)
	return &pb.SendEnvelopeResponse{Envelope: proto.Clone(stored).(*pb.Envelope), Persisted: true, Delivered: false}, nil
}

// GetMessages pages like the server: After selects the oldest envelopes past
// the cursor, otherwise the newest ones before Before.
func (f *fakeServer) GetMessages(ctx context.Context, peer string, page client.Page) ([]*pb.Envelope, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var match []*pb.Envelope
	for _, e := range f.envelopes {
		if e.Sender != peer && e.Recipient != peer {
			continue
		}
		at := e.CreatedAt.AsTime()
		if !page.After.IsZero() && !at.After(page.After) {
			continue
		}
		if !page.Before.IsZero() && !at.Before(page.Before) {
			continue
		}
		match = append(match, e)
	}
	if page.Limit > 0 && len(match) > page.Limit {
		if page.After.IsZero() {
			match = match[len(match)-page.Limit:]
		} else {
			match = match[:page.Limit]
		}
	}
	// newest first to exercise client-side ordering
	out := make([]*pb.Envelope, 0, len(match))
	for i := len(match) - 1; i >= 0; i-- {
		out = append(out, proto.Clone(match[i]).(*pb.Envelope))
	}
	return out, nil
}

func (f *fakeServer) ToggleReaction(ctx context.Context, envelopeID, emoji string) (*pb.Envelope, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.envelopes {
		if e.Id == envelopeID {
			e.Reactions = append(e.Reactions, &pb.Reaction{User: f.loggedIn, Emoji: emoji})
			return proto.Clone(e).(*pb.Envelope), nil
		}
	}
	return nil, client.ErrNotFound
}

func (f *fakeServer) ExportHistory(ctx context.Context, peer string) (*pb.ExportHistoryResponse, error) {
	return &pb.ExportHistoryResponse{Key: "exports/x.json", Url: f.exportURL, Count: int32(len(f.envelopes))}, nil
}

func (f *fakeServer) SearchUsers(ctx context.Context, query string) ([]*pb.Profile, error) {
	f.lastSearch = query
	return []*pb.Profile{{Username: query + "1"}}, nil
}

func (f *fakeServer) SendFriendRequest(ctx context.Context, username string) (*pb.FriendRequest, error) {
	r := &pb.FriendRequest{Id: "req-1", SenderUsername: f.loggedIn, RecipientUsername: username, Status: "pending"}
	f.requests = append(f.requests, r)
	return r, nil
}

func (f *fakeServer) ListFriendRequests(ctx context.Context) ([]*pb.FriendRequest, error) {
	return f.requests, nil
}

func (f *fakeServer) RespondFriendRequest(ctx context.Context, requestID, decision string) (*pb.FriendRequest, error) {
	f.lastDecided = decision
	return &pb.FriendRequest{Id: requestID, Status: decision}, nil
}

func (f *fakeServer) ListContacts(ctx context.Context) ([]*pb.Contact, error) {
	return []*pb.Contact{{Username: "bob"}}, nil
}

// newIdentity registers username on f and returns an unlocked session.
func newIdentity(t *testing.T, f *fakeServer, username string) *Session {
	t.Helper()
	pub, priv, err := cryptox.GenerateIdentityKeypair()
	require.NoError(t, err)
	f.accounts[username] = &pb.RegisterRequest{Username: username, PublicKey: pub}
	return &Session{Username: username, PublicKey: pub, PrivateKey: priv}
}
