package client

import (
	"errors"
	"io"
	"sync"

	"github.com/dmitrijs2005/privachat/internal/common"
	pb "github.com/dmitrijs2005/privachat/internal/proto"
)

// ErrStreamClosed is returned by Recv once the server has ended the stream.
var ErrStreamClosed = errors.New("event stream closed")

// EventStream is a live connection to the relay.
type EventStream interface {
	Join() error
	Typing(to string) error
	StopTyping(to string) error
	Send(e *pb.Envelope) error
	Recv() (*pb.ServerEvent, error)
	Close() error
}

type eventStream struct {
	stream   pb.ChatService_ConnectClient
	mapError func(error) error

	sendMu sync.Mutex
	closed bool
}

func newEventStream(stream pb.ChatService_ConnectClient, mapError func(error) error) *eventStream {
	return &eventStream{stream: stream, mapError: mapError}
}

func (s *eventStream) send(ev *pb.ClientEvent) error {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	if s.closed {
		return ErrStreamClosed
	}
	if err := s.stream.Send(ev); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrStreamClosed
		}
		return s.mapError(err)
	}
	return nil
}

func (s *eventStream) Join() error {
	return s.send(&pb.ClientEvent{Type: common.EventJoin})
}

func (s *eventStream) Typing(to string) error {
	return s.send(&pb.ClientEvent{Type: common.EventTyping, To: to})
}

func (s *eventStream) StopTyping(to string) error {
	return s.send(&pb.ClientEvent{Type: common.EventStopTyping, To: to})
}

func (s *eventStream) Send(e *pb.Envelope) error {
	return s.send(&pb.ClientEvent{Type: common.EventSendEnvelope, Envelope: e})
}

func (s *eventStream) Recv() (*pb.ServerEvent, error) {
	ev, err := s.stream.Recv()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrStreamClosed
		}
		return nil, s.mapError(err)
	}
	return ev, nil
}

// Close half-closes the stream. Recv keeps draining until the server ends it.
func (s *eventStream) Close() error {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.stream.CloseSend()
}
