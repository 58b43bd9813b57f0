package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/privachat/internal/common"
	pb "github.com/dmitrijs2005/privachat/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const pingTimeout = 5 * time.Second

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.ChatServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	return st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	s.accessToken = access
	s.refreshToken = refresh
	s.mu.Unlock()
}

// refresh exchanges the refresh token for a new pair. The call itself goes
// through the interceptor without an access token.
func (s *GRPCClient) refresh(ctx context.Context) (string, error) {
	_, refreshToken := s.tokens()
	if refreshToken == "" {
		return "", ErrUnauthorized
	}

	resp, err := s.client.RefreshToken(withAccessToken(ctx, ""), &pb.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return "", err
	}

	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return resp.AccessToken, nil
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if method == pb.ChatService_RefreshToken_FullMethodName {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	accessToken, _ := s.tokens()
	err := invoker(withAccessToken(ctx, accessToken), method, req, reply, cc, opts...)
	if err == nil || !isTokenExpired(err) {
		return err
	}

	accessToken, rerr := s.refresh(ctx)
	if rerr != nil {
		return err
	}

	return invoker(withAccessToken(ctx, accessToken), method, req, reply, cc, opts...)
}

func NewChatClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewChatServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.Profile, error) {
	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Profile, nil
}

// Login stores the issued token pair for subsequent calls.
func (s *GRPCClient) Login(ctx context.Context, username, password string) (*pb.LoginResponse, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return resp, nil
}

// Logout forgets the token pair. Tokens are stateless on the server.
func (s *GRPCClient) Logout() {
	s.setTokens("", "")
}

func (s *GRPCClient) GetPublicKey(ctx context.Context, username string) ([]byte, error) {
	resp, err := s.client.GetPublicKey(ctx, &pb.GetPublicKeyRequest{Username: username})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.PublicKey, nil
}

func (s *GRPCClient) GetProfile(ctx context.Context, username string) (*pb.Profile, error) {
	resp, err := s.client.GetProfile(ctx, &pb.GetProfileRequest{Username: username})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Profile, nil
}

func (s *GRPCClient) UpdateProfile(ctx context.Context, displayName, about string) (*pb.Profile, error) {
	resp, err := s.client.UpdateProfile(ctx, &pb.UpdateProfileRequest{DisplayName: displayName, About: about})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Profile, nil
}

func (s *GRPCClient) SearchUsers(ctx context.Context, query string) ([]*pb.Profile, error) {
	resp, err := s.client.SearchUsers(ctx, &pb.SearchUsersRequest{Query: query})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Users, nil
}

func (s *GRPCClient) SendFriendRequest(ctx context.Context, username string) (*pb.FriendRequest, error) {
	resp, err := s.client.SendFriendRequest(ctx, &pb.SendFriendRequestRequest{Username: username})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Request, nil
}

func (s *GRPCClient) ListFriendRequests(ctx context.Context) ([]*pb.FriendRequest, error) {
	resp, err := s.client.ListFriendRequests(ctx, &pb.ListFriendRequestsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Requests, nil
}

func (s *GRPCClient) RespondFriendRequest(ctx context.Context, requestID, decision string) (*pb.FriendRequest, error) {
	resp, err := s.client.RespondFriendRequest(ctx, &pb.RespondFriendRequestRequest{RequestId: requestID, Decision: decision})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Request, nil
}

func (s *GRPCClient) ListContacts(ctx context.Context) ([]*pb.Contact, error) {
	resp, err := s.client.ListContacts(ctx, &pb.ListContactsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Contacts, nil
}

func (s *GRPCClient) GetMessages(ctx context.Context, peer string, page Page) ([]*pb.Envelope, error) {
	req := &pb.GetMessagesRequest{Peer: peer, Limit: int32(page.Limit)}
	if !page.After.IsZero() {
		req.After = timestamppb.New(page.After)
	}
	if !page.Before.IsZero() {
		req.Before = timestamppb.New(page.Before)
	}

	resp, err := s.client.GetMessages(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Envelopes, nil
}

func (s *GRPCClient) SendEnvelope(ctx context.Context, e *pb.Envelope) (*pb.SendEnvelopeResponse, error) {
	resp, err := s.client.SendEnvelope(ctx, &pb.SendEnvelopeRequest{Envelope: e})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ToggleReaction(ctx context.Context, envelopeID, emoji string) (*pb.Envelope, error) {
	resp, err := s.client.ToggleReaction(ctx, &pb.ToggleReactionRequest{EnvelopeId: envelopeID, Emoji: emoji})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Envelope, nil
}

func (s *GRPCClient) ExportHistory(ctx context.Context, peer string) (*pb.ExportHistoryResponse, error) {
	resp, err := s.client.ExportHistory(ctx, &pb.ExportHistoryRequest{Peer: peer})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

// Connect opens the event stream. Streams bypass the unary interceptor, so
// the caller's own profile is fetched first to refresh an expired access
// token before the stream picks it up.
func (s *GRPCClient) Connect(ctx context.Context) (EventStream, error) {
	if _, err := s.client.GetProfile(ctx, &pb.GetProfileRequest{}); err != nil {
		return nil, s.mapError(err)
	}

	accessToken, _ := s.tokens()
	stream, err := s.client.Connect(withAccessToken(ctx, accessToken))
	if err != nil {
		return nil, s.mapError(err)
	}

	return newEventStream(stream, s.mapError), nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrForbidden, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrConflict, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
