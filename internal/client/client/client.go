package client

import (
	"context"
	"time"

	pb "github.com/dmitrijs2005/privachat/internal/proto"
)

// Page selects a slice of a conversation. A non-zero After pages forward
// from After; otherwise the newest Limit envelopes older than Before (or
// the newest overall when Before is zero) are returned. A zero Limit
// leaves the size to the server.
type Page struct {
	After  time.Time
	Before time.Time
	Limit  int
}

// Client is the server API as seen by client services.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, req *pb.RegisterRequest) (*pb.Profile, error)
	Login(ctx context.Context, username, password string) (*pb.LoginResponse, error)
	Logout()

	GetPublicKey(ctx context.Context, username string) ([]byte, error)
	GetProfile(ctx context.Context, username string) (*pb.Profile, error)
	UpdateProfile(ctx context.Context, displayName, about string) (*pb.Profile, error)

	SearchUsers(ctx context.Context, query string) ([]*pb.Profile, error)
	SendFriendRequest(ctx context.Context, username string) (*pb.FriendRequest, error)
	ListFriendRequests(ctx context.Context) ([]*pb.FriendRequest, error)
	RespondFriendRequest(ctx context.Context, requestID, decision string) (*pb.FriendRequest, error)
	ListContacts(ctx context.Context) ([]*pb.Contact, error)

	GetMessages(ctx context.Context, peer string, page Page) ([]*pb.Envelope, error)
	SendEnvelope(ctx context.Context, e *pb.Envelope) (*pb.SendEnvelopeResponse, error)
	ToggleReaction(ctx context.Context, envelopeID, emoji string) (*pb.Envelope, error)
	ExportHistory(ctx context.Context, peer string) (*pb.ExportHistoryResponse, error)

	Connect(ctx context.Context) (EventStream, error)
}
