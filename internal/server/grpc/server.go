// Package grpc exposes the chat services and the relay over gRPC.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/privachat/internal/logging"
	pb "github.com/dmitrijs2005/privachat/internal/proto"
	"github.com/dmitrijs2005/privachat/internal/server/models"
	"github.com/dmitrijs2005/privachat/internal/server/relay"
	"github.com/dmitrijs2005/privachat/internal/server/services"
	"google.golang.org/grpc"
)

type userService interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.Identity, error)
	Login(ctx context.Context, username, password string) (*services.TokenPair, *models.Identity, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	GetPublicKey(ctx context.Context, username string) ([]byte, error)
	GetProfile(ctx context.Context, username string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID, displayName, about string) (*models.Profile, error)
}

type contactService interface {
	Search(ctx context.Context, query, excludingID string) ([]*models.Profile, error)
	SendRequest(ctx context.Context, senderID, recipientUsername string) (*models.FriendRequest, error)
	ListPending(ctx context.Context, recipientID string) ([]*models.FriendRequest, error)
	Respond(ctx context.Context, requestID, responderID, decision string) (*models.FriendRequest, error)
	ListContacts(ctx context.Context, userID string) ([]*models.Contact, error)
}

type messageService interface {
	History(ctx context.Context, caller, peer string, after time.Time, limit int) ([]*models.Envelope, error)
	Recent(ctx context.Context, caller, peer string, before time.Time, limit int) ([]*models.Envelope, error)
}

type exportService interface {
	ExportHistory(ctx context.Context, caller, peer string) (*services.ExportResult, error)
}

type GRPCServer struct {
	pb.UnimplementedChatServiceServer
	address   string
	users     userService
	contacts  contactService
	messages  messageService
	exports   exportService
	relay     *relay.Relay
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us userService, cs contactService, ms messageService,
	es exportService, r *relay.Relay, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		contacts:  cs,
		messages:  ms,
		exports:   es,
		relay:     r,
		jwtSecret: []byte(secretKey),
	}
}

// newServer builds the grpc.Server with interceptors and the service
// registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.streamAccessTokenInterceptor),
	)
	pb.RegisterChatServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		// open Connect streams would keep GracefulStop waiting forever
		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(5 * time.Second):
			srv.Stop()
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
