package cli

import (
	"context"
	"errors"
	"log"

	"github.com/dmitrijs2005/privachat/internal/client/client"
	"github.com/dmitrijs2005/privachat/internal/client/models"
	"github.com/dmitrijs2005/privachat/internal/common"
	pb "github.com/dmitrijs2005/privachat/internal/proto"
)

// startStream connects to the relay, joins and renders pushed events in the
// background until the stream ends or closeStream is called.
func (a *App) startStream(ctx context.Context) error {
	a.closeStream()

	sctx, cancel := context.WithCancel(ctx)
	stream, err := a.events.Connect(sctx)
	if err != nil {
		cancel()
		return err
	}
	if err := stream.Join(); err != nil {
		cancel()
		return err
	}

	done := make(chan struct{})
	a.mu.Lock()
	a.stream = stream
	a.stopStream = cancel
	a.streamDone = done
	a.mu.Unlock()

	go func() {
		defer close(done)
		a.receiveEvents(sctx, stream)
	}()
	return nil
}

func (a *App) closeStream() {
	a.mu.Lock()
	stream, cancel, done := a.stream, a.stopStream, a.streamDone
	a.stream, a.stopStream, a.streamDone = nil, nil, nil
	a.online = nil
	a.mu.Unlock()

	if stream == nil {
		return
	}
	_ = stream.Close()
	cancel()
	<-done
}

func (a *App) currentStream() client.EventStream {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stream
}

func (a *App) receiveEvents(ctx context.Context, stream client.EventStream) {
	for {
		ev, err := stream.Recv()
		if err != nil {
			if ctx.Err() == nil && !errors.Is(err, client.ErrStreamClosed) {
				log.Printf("event stream ended: %s", err.Error())
			}
			return
		}
		a.handleEvent(ev)
	}
}

func (a *App) handleEvent(ev *pb.ServerEvent) {
	switch ev.Type {
	case common.EventOnlineUsers:
		a.mu.Lock()
		a.online = append([]string(nil), ev.Online...)
		a.mu.Unlock()

	case common.EventTyping, common.EventStopTyping:
		typing := ev.Type == common.EventTyping
		a.mu.Lock()
		if a.typing == nil {
			a.typing = map[string]bool{}
		}
		changed := a.typing[ev.From] != typing
		if typing {
			a.typing[ev.From] = true
		} else {
			delete(a.typing, ev.From)
		}
		a.mu.Unlock()
		if changed && typing {
			a.printf("%s is typing...", ev.From)
		}

	case common.EventEnvelopeReceived:
		if ev.Envelope == nil {
			return
		}
		s := a.currentSession()
		if s == nil {
			return
		}
		m := a.chatService.DecodeIncoming(s, ev.Envelope)

		a.mu.Lock()
		delete(a.typing, m.From)
		n := 0
		if a.peer == m.From {
			a.view = append(a.view, m)
			n = len(a.view)
		}
		a.mu.Unlock()

		if n > 0 {
			a.printf("%s", formatMessage(n, m, s.Username, a.replyIndex(m.ReplyTo)))
		} else {
			a.printf("New message from %s (open %s to read)", m.From, m.From)
		}

	case common.EventReactionUpdated:
		if ev.Reaction == nil {
			return
		}
		a.applyReactions(ev.Reaction)

	case common.EventError:
		a.printf("Server: %s", ev.Error)
	}
}

func (a *App) applyReactions(u *pb.ReactionUpdate) {
	reactions := make([]models.Reaction, 0, len(u.Reactions))
	for _, r := range u.Reactions {
		reactions = append(reactions, models.Reaction{User: r.User, Emoji: r.Emoji})
	}

	a.mu.Lock()
	idx, summary := 0, ""
	for i, m := range a.view {
		if m.ID == u.EnvelopeId {
			m.Reactions = reactions
			idx, summary = i+1, m.ReactionSummary()
			break
		}
	}
	a.mu.Unlock()

	if idx == 0 {
		return
	}
	if summary == "" {
		summary = "none"
	}
	a.printf("#%d reactions: %s", idx, summary)
}

// replyIndex returns the 1-based position of id in the current view, or 0.
func (a *App) replyIndex(id string) int {
	if id == "" {
		return 0
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, m := range a.view {
		if m.ID == id {
			return i + 1
		}
	}
	return 0
}
