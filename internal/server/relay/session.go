package relay

import "sync"

// State is the lifecycle position of a Session.
type State int

const (
	StateConnected State = iota
	StateJoined
	StateDisconnected
)

func (s State) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateJoined:
		return "joined"
	case StateDisconnected:
		return "disconnected"
	}
	return "unknown"
}

// Session is one live client connection. Events are buffered; when the
// buffer is full or the session is gone, new events are dropped.
type Session struct {
	id   string
	out  chan Event
	done chan struct{}
	once sync.Once

	mu       sync.RWMutex
	state    State
	identity string
}

func newSession(id string, buffer int) *Session {
	return &Session{
		id:   id,
		out:  make(chan Event, buffer),
		done: make(chan struct{}),
	}
}

func (s *Session) ID() string { return s.id }

// Events is drained by the transport writer. It is never closed; watch
// Done to know when to stop.
func (s *Session) Events() <-chan Event { return s.out }

// Done is closed on disconnect.
func (s *Session) Done() <-chan struct{} { return s.done }

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Identity is empty until the session has joined.
func (s *Session) Identity() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// deliver enqueues ev without blocking and reports whether it was queued.
func (s *Session) deliver(ev Event) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.out <- ev:
		return true
	default:
		return false
	}
}

func (s *Session) close() {
	s.once.Do(func() {
		s.mu.Lock()
		s.state = StateDisconnected
		s.mu.Unlock()
		close(s.done)
	})
}
