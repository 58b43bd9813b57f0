package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/privachat/internal/client/client"
	"github.com/dmitrijs2005/privachat/internal/client/models"
	"github.com/dmitrijs2005/privachat/internal/client/services"
	"github.com/dmitrijs2005/privachat/internal/common"
	pb "github.com/dmitrijs2005/privachat/internal/proto"
)

func stubInputs(t *testing.T, password []byte, answers ...string) {
	t.Helper()
	origST, origGP, origNP := getSimpleText, getPassword, getNewPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(_ string, _ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	getNewPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
		getNewPassword = origNP
	})
}

type fakeAuth struct {
	regUser    string
	regPass    []byte
	regDisplay string
	regErr     error

	onlineUser string
	onlineErr  error

	offlineUser string
	offlineErr  error

	logoutCalled bool
	clearCalled  bool
	clearErr     error

	mu      sync.Mutex
	pingErr error
}

func (f *fakeAuth) setPingErr(err error) {
	f.mu.Lock()
	f.pingErr = err
	f.mu.Unlock()
}

func (f *fakeAuth) Register(_ context.Context, user string, pass []byte, displayName string) error {
	f.regUser, f.regPass, f.regDisplay = user, append([]byte(nil), pass...), displayName
	return f.regErr
}
func (f *fakeAuth) OnlineLogin(_ context.Context, user string, pass []byte) (*services.Session, error) {
	f.onlineUser = user
	if f.onlineErr != nil {
		return nil, f.onlineErr
	}
	return &services.Session{Username: user, PrivateKey: []byte{1}}, nil
}
func (f *fakeAuth) OfflineLogin(_ context.Context, user string, pass []byte) (*services.Session, error) {
	f.offlineUser = user
	if f.offlineErr != nil {
		return nil, f.offlineErr
	}
	return &services.Session{Username: user, PrivateKey: []byte{1}, Offline: true}, nil
}
func (f *fakeAuth) Logout(_ context.Context, s *services.Session) error {
	f.logoutCalled = true
	s.Wipe()
	return nil
}
func (f *fakeAuth) ClearOfflineData(context.Context) error {
	f.clearCalled = true
	return f.clearErr
}
func (f *fakeAuth) Close(ctx context.Context) error { return nil }
func (f *fakeAuth) Ping(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pingErr
}

type fakeChat struct {
	history   []*models.Message
	older     []*models.Message
	before    []time.Time
	limit     int
	sent      []string
	replyTo   []string
	sendErr   error
	reactedID string
	exported  string
	delivered bool
}

func (f *fakeChat) Send(ctx context.Context, s *services.Session, peer, text, replyTo string) (*services.SendResult, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, text)
	f.replyTo = append(f.replyTo, replyTo)
	m := &models.Message{ID: "sent-" + text, From: s.Username, To: peer, Text: text, ReplyTo: replyTo, CreatedAt: time.Now()}
	return &services.SendResult{Message: m, Persisted: true, Delivered: f.delivered}, nil
}

func (f *fakeChat) History(ctx context.Context, s *services.Session, peer string, before time.Time, limit int) ([]*models.Message, error) {
	f.limit = limit
	f.before = append(f.before, before)
	if !before.IsZero() {
		return f.older, nil
	}
	return f.history, nil
}

func (f *fakeChat) React(ctx context.Context, s *services.Session, envelopeID, emoji string) (*models.Message, error) {
	f.reactedID = envelopeID
	return &models.Message{ID: envelopeID, Reactions: []models.Reaction{{User: s.Username, Emoji: emoji}}}, nil
}

func (f *fakeChat) Export(ctx context.Context, s *services.Session, peer string) (*services.ExportResult, error) {
	f.exported = peer
	return &services.ExportResult{Path: "/tmp/" + peer + ".json", Count: 3, Decrypted: 2}, nil
}

func (f *fakeChat) DecodeIncoming(s *services.Session, e *pb.Envelope) *models.Message {
	return &models.Message{ID: e.GetId(), From: e.GetSender(), To: e.GetRecipient(), Text: string(e.GetCiphertext()), ReplyTo: e.GetReplyTo(), CreatedAt: e.GetCreatedAt().AsTime()}
}

type fakeContacts struct {
	query     string
	requested string
	decided   map[string]bool
}

func (f *fakeContacts) Search(ctx context.Context, query string) ([]*pb.Profile, error) {
	f.query = query
	return []*pb.Profile{{Username: "bob", DisplayName: "Bob"}, {Username: "bobby"}}, nil
}
func (f *fakeContacts) Request(ctx context.Context, username string) (*pb.FriendRequest, error) {
	f.requested = username
	return &pb.FriendRequest{Id: "r1", RecipientUsername: username, Status: "pending"}, nil
}
func (f *fakeContacts) Pending(ctx context.Context) ([]*pb.FriendRequest, error) {
	return []*pb.FriendRequest{{Id: "r9", SenderUsername: "carol", Status: "pending"}}, nil
}
func (f *fakeContacts) Respond(ctx context.Context, requestID string, accept bool) (*pb.FriendRequest, error) {
	if f.decided == nil {
		f.decided = map[string]bool{}
	}
	f.decided[requestID] = accept
	status := "rejected"
	if accept {
		status = "accepted"
	}
	return &pb.FriendRequest{Id: requestID, SenderUsername: "carol", Status: status}, nil
}
func (f *fakeContacts) Contacts(ctx context.Context) ([]*pb.Contact, error) {
	return []*pb.Contact{{Username: "bob"}, {Username: "carol", DisplayName: "Carol"}}, nil
}

// fakeEventStream feeds queued server events and records client events.
type fakeEventStream struct {
	mu      sync.Mutex
	sent    []*pb.ClientEvent
	in      chan *pb.ServerEvent
	closed  chan struct{}
	closeMu sync.Once
}

func newFakeEventStream() *fakeEventStream {
	return &fakeEventStream{in: make(chan *pb.ServerEvent, 16), closed: make(chan struct{})}
}

func (s *fakeEventStream) record(ev *pb.ClientEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, ev)
	return nil
}

func (s *fakeEventStream) sentTypes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, ev := range s.sent {
		out = append(out, ev.Type+":"+ev.To)
	}
	return out
}

func (s *fakeEventStream) Join() error { return s.record(&pb.ClientEvent{Type: common.EventJoin}) }
func (s *fakeEventStream) Typing(to string) error {
	return s.record(&pb.ClientEvent{Type: common.EventTyping, To: to})
}
func (s *fakeEventStream) StopTyping(to string) error {
	return s.record(&pb.ClientEvent{Type: common.EventStopTyping, To: to})
}
func (s *fakeEventStream) Send(e *pb.Envelope) error {
	return s.record(&pb.ClientEvent{Type: common.EventSendEnvelope, Envelope: e})
}
func (s *fakeEventStream) Recv() (*pb.ServerEvent, error) {
	select {
	case ev := <-s.in:
		return ev, nil
	case <-s.closed:
		return nil, client.ErrStreamClosed
	}
}
func (s *fakeEventStream) Close() error {
	s.closeMu.Do(func() { close(s.closed) })
	return nil
}

type fakeStreamer struct {
	stream *fakeEventStream
	err    error
	calls  int
}

func (f *fakeStreamer) Connect(ctx context.Context) (client.EventStream, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.stream, nil
}

// syncBuffer is a bytes.Buffer safe for the event goroutine and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type testApp struct {
	*App
	auth     *fakeAuth
	chat     *fakeChat
	contacts *fakeContacts
	streamer *fakeStreamer
	output   *syncBuffer
}

func newTestApp(input string) *testApp {
	ta := &testApp{
		auth:     &fakeAuth{},
		chat:     &fakeChat{},
		contacts: &fakeContacts{},
		streamer: &fakeStreamer{stream: newFakeEventStream()},
		output:   &syncBuffer{},
	}
	ta.App = &App{
		authService:     ta.auth,
		chatService:     ta.chat,
		contactsService: ta.contacts,
		events:          ta.streamer,
		reader:          bufio.NewReader(strings.NewReader(input)),
		out:             ta.output,
		typing:          map[string]bool{},
	}
	return ta
}

// loggedIn returns an app with an online session for alice and a running
// event stream.
func loggedIn(t *testing.T) *testApp {
	t.Helper()
	ta := newTestApp("")
	stubInputs(t, []byte("pw"), "alice")
	if err := ta.Login(context.Background()); err != nil {
		t.Fatalf("Login: %v", err)
	}
	t.Cleanup(ta.closeStream)
	return ta
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}
