package client

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/dmitrijs2005/privachat/internal/common"
	pb "github.com/dmitrijs2005/privachat/internal/proto"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

/*************
 * Fake ChatService client
 *************/

type fakeRPC struct {
	pb.ChatServiceClient

	lastRefreshTokenReq *pb.RefreshTokenRequest
	lastLoginReq        *pb.LoginRequest
	lastRegisterReq     *pb.RegisterRequest
	lastMessagesReq     *pb.GetMessagesRequest
	lastSendReq         *pb.SendEnvelopeRequest
	lastRespondReq      *pb.RespondFriendRequestRequest
	lastConnectCtx      context.Context

	refreshTokenResp *pb.RefreshTokenResponse
	refreshTokenErr  error

	pingResp *pb.PingResponse
	pingErr  error

	loginResp *pb.LoginResponse
	loginErr  error

	registerErr error

	profileErr   error
	profileCalls int

	messagesResp *pb.GetMessagesResponse
	sendResp     *pb.SendEnvelopeResponse
	respondErr   error

	connectStream pb.ChatService_ConnectClient
	connectErr    error
}

func (f *fakeRPC) RefreshToken(ctx context.Context, in *pb.RefreshTokenRequest, opts ...grpc.CallOption) (*pb.RefreshTokenResponse, error) {
	f.lastRefreshTokenReq = in
	return f.refreshTokenResp, f.refreshTokenErr
}

func (f *fakeRPC) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	return f.pingResp, f.pingErr
}

func (f *fakeRPC) Login(ctx context.Context, in *pb.LoginRequest, opts ...grpc.CallOption) (*pb.LoginResponse, error) {
	f.lastLoginReq = in
	return f.loginResp, f.loginErr
}

func (f *fakeRPC) Register(ctx context.Context, in *pb.RegisterRequest, opts ...grpc.CallOption) (*pb.RegisterResponse, error) {
	f.lastRegisterReq = in
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &pb.RegisterResponse{Profile: &pb.Profile{Username: in.Username, PublicKey: in.PublicKey}}, nil
}

func (f *fakeRPC) GetProfile(ctx context.Context, in *pb.GetProfileRequest, opts ...grpc.CallOption) (*pb.ProfileResponse, error) {
	f.profileCalls++
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return &pb.ProfileResponse{Profile: &pb.Profile{Username: "alice"}}, nil
}

func (f *fakeRPC) GetMessages(ctx context.Context, in *pb.GetMessagesRequest, opts ...grpc.CallOption) (*pb.GetMessagesResponse, error) {
	f.lastMessagesReq = in
	return f.messagesResp, nil
}

func (f *fakeRPC) SendEnvelope(ctx context.Context, in *pb.SendEnvelopeRequest, opts ...grpc.CallOption) (*pb.SendEnvelopeResponse, error) {
	f.lastSendReq = in
	return f.sendResp, nil
}

func (f *fakeRPC) RespondFriendRequest(ctx context.Context, in *pb.RespondFriendRequestRequest, opts ...grpc.CallOption) (*pb.FriendRequestResponse, error) {
	f.lastRespondReq = in
	if f.respondErr != nil {
		return nil, f.respondErr
	}
	return &pb.FriendRequestResponse{Request: &pb.FriendRequest{Id: in.RequestId, Status: in.Decision}}, nil
}

func (f *fakeRPC) Connect(ctx context.Context, opts ...grpc.CallOption) (pb.ChatService_ConnectClient, error) {
	f.lastConnectCtx = ctx
	return f.connectStream, f.connectErr
}

type fakeStream struct {
	grpc.ClientStream

	sent      []*pb.ClientEvent
	sendErr   error
	incoming  []*pb.ServerEvent
	recvErr   error
	closeSent int
}

func (s *fakeStream) Send(ev *pb.ClientEvent) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, ev)
	return nil
}

func (s *fakeStream) Recv() (*pb.ServerEvent, error) {
	if len(s.incoming) == 0 {
		if s.recvErr != nil {
			return nil, s.recvErr
		}
		return nil, io.EOF
	}
	ev := s.incoming[0]
	s.incoming = s.incoming[1:]
	return ev, nil
}

func (s *fakeStream) CloseSend() error {
	s.closeSent++
	return nil
}

func expired() error {
	return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
}

/*************
 * accessTokenInterceptor tests
 *************/

func TestInterceptor_RefreshesTokenOnExpiredAndRetries(t *testing.T) {
	f := &fakeRPC{
		refreshTokenResp: &pb.RefreshTokenResponse{AccessToken: "A2", RefreshToken: "R2"},
	}
	c := &GRPCClient{
		client:       f,
		accessToken:  "A1",
		refreshToken: "R1",
	}

	callCount := 0
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		callCount++
		md, _ := metadata.FromOutgoingContext(ctx)
		toks := md.Get(common.AccessTokenHeaderName)
		require.Len(t, toks, 1)

		if callCount == 1 {
			require.Equal(t, "A1", toks[0])
			return expired()
		}
		require.Equal(t, "A2", toks[0])
		return nil
	}

	err := c.accessTokenInterceptor(context.Background(), pb.ChatService_ListContacts_FullMethodName, nil, nil, nil, invoker)
	require.NoError(t, err)
	require.Equal(t, 2, callCount)
	require.Equal(t, "A2", c.accessToken)
	require.Equal(t, "R2", c.refreshToken)
	require.Equal(t, "R1", f.lastRefreshTokenReq.RefreshToken)
}

func TestInterceptor_RetriesOnlyOnce(t *testing.T) {
	f := &fakeRPC{
		refreshTokenResp: &pb.RefreshTokenResponse{AccessToken: "A2", RefreshToken: "R2"},
	}
	c := &GRPCClient{client: f, accessToken: "A1", refreshToken: "R1"}

	callCount := 0
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		callCount++
		return expired()
	}

	err := c.accessTokenInterceptor(context.Background(), pb.ChatService_ListContacts_FullMethodName, nil, nil, nil, invoker)
	require.Error(t, err)
	require.Equal(t, 2, callCount)
}

func TestInterceptor_NoRefreshIfNoRefreshToken(t *testing.T) {
	f := &fakeRPC{}
	c := &GRPCClient{
		client:      f,
		accessToken: "A1",
	}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return expired()
	}

	err := c.accessTokenInterceptor(context.Background(), pb.ChatService_ListContacts_FullMethodName, nil, nil, nil, invoker)
	require.Error(t, err)
	require.Equal(t, codes.Unauthenticated, status.Code(err))
	require.Nil(t, f.lastRefreshTokenReq)
}

func TestInterceptor_RefreshFailureReturnsOriginalError(t *testing.T) {
	f := &fakeRPC{refreshTokenErr: status.Error(codes.Unauthenticated, "refresh token expired")}
	c := &GRPCClient{client: f, accessToken: "A1", refreshToken: "R1"}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return expired()
	}

	err := c.accessTokenInterceptor(context.Background(), pb.ChatService_ListContacts_FullMethodName, nil, nil, nil, invoker)
	require.Equal(t, common.ErrTokenExpired.Error(), status.Convert(err).Message())
	require.Equal(t, "A1", c.accessToken)
}

func TestInterceptor_RefreshCallPassesThrough(t *testing.T) {
	c := &GRPCClient{accessToken: "A1", refreshToken: "R1"}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		require.Empty(t, md.Get(common.AccessTokenHeaderName))
		return expired()
	}

	err := c.accessTokenInterceptor(context.Background(), pb.ChatService_RefreshToken_FullMethodName, nil, nil, nil, invoker)
	require.Error(t, err)
}

func TestInterceptor_IgnoresOtherErrors(t *testing.T) {
	c := &GRPCClient{accessToken: "X"}
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Internal, "boom")
	}
	err := c.accessTokenInterceptor(context.Background(), pb.ChatService_ListContacts_FullMethodName, nil, nil, nil, invoker)
	require.Error(t, err)
}

func TestInterceptor_UnauthenticatedButDifferentMessage_NoRefresh(t *testing.T) {
	f := &fakeRPC{}
	c := &GRPCClient{client: f, accessToken: "X", refreshToken: "R"}
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, "some other reason")
	}
	err := c.accessTokenInterceptor(context.Background(), pb.ChatService_ListContacts_FullMethodName, nil, nil, nil, invoker)
	require.Error(t, err)
	require.Nil(t, f.lastRefreshTokenReq)
}

func TestWithAccessToken_ReplacesExisting(t *testing.T) {
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, "old", "other", "v")
	ctx = withAccessToken(ctx, "new")

	md, _ := metadata.FromOutgoingContext(ctx)
	require.Equal(t, []string{"new"}, md.Get(common.AccessTokenHeaderName))
	require.Equal(t, []string{"v"}, md.Get("other"))
}

/*************
 * mapError tests
 *************/

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	require.ErrorIs(t, c.mapError(status.Error(codes.Unauthenticated, "x")), ErrUnauthorized)
	require.ErrorIs(t, c.mapError(status.Error(codes.PermissionDenied, "x")), ErrForbidden)
	require.ErrorIs(t, c.mapError(status.Error(codes.NotFound, "x")), ErrNotFound)
	require.ErrorIs(t, c.mapError(status.Error(codes.AlreadyExists, "x")), ErrConflict)
	require.ErrorIs(t, c.mapError(status.Error(codes.InvalidArgument, "x")), ErrInvalidArgument)
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.Unavailable, "x")))
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.DeadlineExceeded, "x")))
	require.NoError(t, c.mapError(nil))

	require.ErrorContains(t, c.mapError(status.Error(codes.NotFound, "user not found")), "user not found")
	require.ErrorContains(t, c.mapError(errors.New("plain")), "rpc error:")
}

/*************
 * unary call tests
 *************/

func TestPing_OK(t *testing.T) {
	f := &fakeRPC{pingResp: &pb.PingResponse{Status: "OK"}}
	c := &GRPCClient{client: f}
	require.NoError(t, c.Ping(context.Background()))
}

func TestPing_NotOK_ReturnsUnavailable(t *testing.T) {
	f := &fakeRPC{pingResp: &pb.PingResponse{Status: "NOT_OK"}}
	c := &GRPCClient{client: f}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestPing_MapsRPCError(t *testing.T) {
	f := &fakeRPC{pingErr: status.Error(codes.Unavailable, "down")}
	c := &GRPCClient{client: f}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestLogin_SetsTokens(t *testing.T) {
	f := &fakeRPC{loginResp: &pb.LoginResponse{AccessToken: "A", RefreshToken: "R", Profile: &pb.Profile{Username: "u"}}}
	c := &GRPCClient{client: f}

	resp, err := c.Login(context.Background(), "u", "pw")
	require.NoError(t, err)
	require.Equal(t, "u", resp.Profile.Username)
	require.Equal(t, "A", c.accessToken)
	require.Equal(t, "R", c.refreshToken)
	require.Equal(t, "u", f.lastLoginReq.Username)
	require.Equal(t, "pw", f.lastLoginReq.Password)

	c.Logout()
	require.Empty(t, c.accessToken)
	require.Empty(t, c.refreshToken)
}

func TestLogin_MapsError(t *testing.T) {
	f := &fakeRPC{loginErr: status.Error(codes.Unauthenticated, "invalid credentials")}
	c := &GRPCClient{client: f}

	_, err := c.Login(context.Background(), "u", "bad")
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Empty(t, c.accessToken)
}

func TestRegister(t *testing.T) {
	f := &fakeRPC{}
	c := &GRPCClient{client: f}

	p, err := c.Register(context.Background(), &pb.RegisterRequest{Username: "u", PublicKey: []byte{1}})
	require.NoError(t, err)
	require.Equal(t, "u", p.Username)
	require.Equal(t, []byte{1}, f.lastRegisterReq.PublicKey)

	f.registerErr = status.Error(codes.AlreadyExists, "username taken")
	_, err = c.Register(context.Background(), &pb.RegisterRequest{Username: "u"})
	require.ErrorIs(t, err, ErrConflict)
}

func TestGetMessages_PassesCursor(t *testing.T) {
	after := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	f := &fakeRPC{messagesResp: &pb.GetMessagesResponse{Envelopes: []*pb.Envelope{{Id: "m1"}}}}
	c := &GRPCClient{client: f}

	got, err := c.GetMessages(context.Background(), "bob", Page{After: after, Limit: 10})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "bob", f.lastMessagesReq.Peer)
	require.True(t, after.Equal(f.lastMessagesReq.After.AsTime()))
	require.Nil(t, f.lastMessagesReq.Before)
	require.Equal(t, int32(10), f.lastMessagesReq.Limit)
}

func TestGetMessages_NewestPage(t *testing.T) {
	before := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	f := &fakeRPC{messagesResp: &pb.GetMessagesResponse{}}
	c := &GRPCClient{client: f}

	_, err := c.GetMessages(context.Background(), "bob", Page{})
	require.NoError(t, err)
	require.Nil(t, f.lastMessagesReq.After)
	require.Nil(t, f.lastMessagesReq.Before)
	require.Zero(t, f.lastMessagesReq.Limit)

	_, err = c.GetMessages(context.Background(), "bob", Page{Before: before, Limit: 50})
	require.NoError(t, err)
	require.Nil(t, f.lastMessagesReq.After)
	require.True(t, before.Equal(f.lastMessagesReq.Before.AsTime()))
}

func TestSendEnvelope(t *testing.T) {
	f := &fakeRPC{sendResp: &pb.SendEnvelopeResponse{Envelope: &pb.Envelope{Id: "m1"}, Persisted: true}}
	c := &GRPCClient{client: f}

	resp, err := c.SendEnvelope(context.Background(), &pb.Envelope{Recipient: "bob"})
	require.NoError(t, err)
	require.Equal(t, "m1", resp.Envelope.Id)
	require.True(t, resp.Persisted)
	require.Equal(t, "bob", f.lastSendReq.Envelope.Recipient)
}

func TestRespondFriendRequest(t *testing.T) {
	f := &fakeRPC{}
	c := &GRPCClient{client: f}

	r, err := c.RespondFriendRequest(context.Background(), "req-1", "accept")
	require.NoError(t, err)
	require.Equal(t, "req-1", r.Id)
	require.Equal(t, "accept", f.lastRespondReq.Decision)

	f.respondErr = status.Error(codes.PermissionDenied, "not the recipient")
	_, err = c.RespondFriendRequest(context.Background(), "req-1", "accept")
	require.ErrorIs(t, err, ErrForbidden)
}

/*************
 * Connect / EventStream tests
 *************/

func TestConnect_AttachesTokenAfterProfileCheck(t *testing.T) {
	stream := &fakeStream{}
	f := &fakeRPC{connectStream: stream}
	c := &GRPCClient{client: f, accessToken: "A1"}

	es, err := c.Connect(context.Background())
	require.NoError(t, err)
	require.NotNil(t, es)
	require.Equal(t, 1, f.profileCalls)

	md, _ := metadata.FromOutgoingContext(f.lastConnectCtx)
	require.Equal(t, []string{"A1"}, md.Get(common.AccessTokenHeaderName))
}

func TestConnect_ProfileFailureStopsConnect(t *testing.T) {
	f := &fakeRPC{profileErr: status.Error(codes.Unauthenticated, "invalid token")}
	c := &GRPCClient{client: f}

	_, err := c.Connect(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Nil(t, f.lastConnectCtx)
}

func TestEventStream_SendsTypedEvents(t *testing.T) {
	fs := &fakeStream{}
	es := newEventStream(fs, (&GRPCClient{}).mapError)

	require.NoError(t, es.Join())
	require.NoError(t, es.Typing("bob"))
	require.NoError(t, es.StopTyping("bob"))
	require.NoError(t, es.Send(&pb.Envelope{Recipient: "bob"}))

	require.Len(t, fs.sent, 4)
	require.Equal(t, common.EventJoin, fs.sent[0].Type)
	require.Equal(t, common.EventTyping, fs.sent[1].Type)
	require.Equal(t, "bob", fs.sent[1].To)
	require.Equal(t, common.EventStopTyping, fs.sent[2].Type)
	require.Equal(t, common.EventSendEnvelope, fs.sent[3].Type)
	require.Equal(t, "bob", fs.sent[3].Envelope.Recipient)
}

func TestEventStream_RecvAndClose(t *testing.T) {
	fs := &fakeStream{incoming: []*pb.ServerEvent{{Type: common.EventOnlineUsers, Online: []string{"alice"}}}}
	es := newEventStream(fs, (&GRPCClient{}).mapError)

	ev, err := es.Recv()
	require.NoError(t, err)
	require.Equal(t, []string{"alice"}, ev.Online)

	_, err = es.Recv()
	require.ErrorIs(t, err, ErrStreamClosed)

	require.NoError(t, es.Close())
	require.NoError(t, es.Close())
	require.Equal(t, 1, fs.closeSent)
	require.ErrorIs(t, es.Join(), ErrStreamClosed)
}

func TestEventStream_MapsErrors(t *testing.T) {
	fs := &fakeStream{
		sendErr: status.Error(codes.Unavailable, "gone"),
		recvErr: status.Error(codes.Unauthenticated, "invalid token"),
	}
	es := newEventStream(fs, (&GRPCClient{}).mapError)

	require.ErrorIs(t, es.Join(), ErrUnavailable)
	_, err := es.Recv()
	require.ErrorIs(t, err, ErrUnauthorized)
}
