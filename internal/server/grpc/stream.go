package grpc

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/privachat/internal/common"
	pb "github.com/dmitrijs2005/privachat/internal/proto"
	"github.com/dmitrijs2005/privachat/internal/server/auth"
	"github.com/dmitrijs2005/privachat/internal/server/relay"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/status"
)

var errClientClosed = errors.New("client closed stream")

const replyBuffer = 16

// Connect runs one relay session for the lifetime of the stream. The
// reader applies client events; the writer is the only goroutine that
// sends on the stream.
func (s *GRPCServer) Connect(stream pb.ChatService_ConnectServer) error {
	ctx := stream.Context()
	p, err := principalFromContext(ctx)
	if err != nil {
		return err
	}

	session := s.relay.Connect()
	defer s.relay.Disconnect(context.WithoutCancel(ctx), session)

	logger := s.logger.With("session", session.ID(), "identity", p.Username)
	logger.Debug(ctx, "stream opened")

	replies := make(chan *pb.ServerEvent, replyBuffer)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.readEvents(gctx, stream, session, p, replies)
	})
	g.Go(func() error {
		return writeEvents(gctx, stream, session, replies)
	})

	err = g.Wait()
	logger.Debug(ctx, "stream closed", "error", err)
	if errors.Is(err, errClientClosed) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *GRPCServer) readEvents(ctx context.Context, stream pb.ChatService_ConnectServer, session *relay.Session,
	p auth.Principal, replies chan<- *pb.ServerEvent) error {
	for {
		ev, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return errClientClosed
		}
		if err != nil {
			return err
		}

		reply := s.handleEvent(ctx, session, p, ev)
		if reply == nil {
			continue
		}
		select {
		case replies <- reply:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// handleEvent applies one client event and returns the reply for the
// sender, if any. Failures are reported on the stream and do not end it.
func (s *GRPCServer) handleEvent(ctx context.Context, session *relay.Session, p auth.Principal, ev *pb.ClientEvent) *pb.ServerEvent {
	var err error
	switch ev.Type {
	case common.EventJoin:
		err = s.relay.Join(ctx, session, p.Username)
	case common.EventTyping:
		err = s.relay.Typing(ctx, session, ev.To)
	case common.EventStopTyping:
		err = s.relay.StopTyping(ctx, session, ev.To)
	case common.EventSendEnvelope:
		if ev.Envelope == nil {
			err = fmt.Errorf("envelope is required: %w", common.ErrorValidation)
			break
		}
		if session.State() != relay.StateJoined {
			err = relay.ErrNotJoined
			break
		}
		var receipt *relay.Receipt
		receipt, err = s.relay.SendEnvelope(ctx, p.Username, envelopeFromProto(ev.Envelope))
		if err == nil {
			return &pb.ServerEvent{Type: common.EventSent, Envelope: envelopeToProto(receipt.Envelope)}
		}
	default:
		err = fmt.Errorf("unknown event type %q: %w", ev.Type, common.ErrorValidation)
	}

	if err == nil {
		return nil
	}
	return &pb.ServerEvent{
		Type:  common.EventError,
		Error: status.Convert(s.toStatus(ctx, "Connect/"+ev.Type, err)).Message(),
	}
}

func writeEvents(ctx context.Context, stream pb.ChatService_ConnectServer, session *relay.Session, replies <-chan *pb.ServerEvent) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-session.Done():
			return nil
		case ev := <-session.Events():
			if err := stream.Send(eventToProto(ev)); err != nil {
				return err
			}
		case reply := <-replies:
			if err := stream.Send(reply); err != nil {
				return err
			}
		}
	}
}
