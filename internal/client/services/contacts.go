package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/privachat/internal/client/client"
	pb "github.com/dmitrijs2005/privachat/internal/proto"
)

// Friend request decisions.
const (
	DecisionAccept = "accepted"
	DecisionReject = "rejected"
)

// ContactService wraps the contact graph operations.
type ContactService interface {
	Search(ctx context.Context, query string) ([]*pb.Profile, error)
	Request(ctx context.Context, username string) (*pb.FriendRequest, error)
	Pending(ctx context.Context) ([]*pb.FriendRequest, error)
	Respond(ctx context.Context, requestID string, accept bool) (*pb.FriendRequest, error)
	Contacts(ctx context.Context) ([]*pb.Contact, error)
}

type contactService struct {
	client client.Client
}

func NewContactService(c client.Client) ContactService {
	return &contactService{client: c}
}

func (c *contactService) Search(ctx context.Context, query string) ([]*pb.Profile, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is empty", client.ErrInvalidArgument)
	}
	return c.client.SearchUsers(ctx, query)
}

func (c *contactService) Request(ctx context.Context, username string) (*pb.FriendRequest, error) {
	return c.client.SendFriendRequest(ctx, strings.TrimSpace(username))
}

func (c *contactService) Pending(ctx context.Context) ([]*pb.FriendRequest, error) {
	return c.client.ListFriendRequests(ctx)
}

func (c *contactService) Respond(ctx context.Context, requestID string, accept bool) (*pb.FriendRequest, error) {
	decision := DecisionReject
	if accept {
		decision = DecisionAccept
	}
	return c.client.RespondFriendRequest(ctx, requestID, decision)
}

func (c *contactService) Contacts(ctx context.Context) ([]*pb.Contact, error) {
	return c.client.ListContacts(ctx)
}
