package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/privachat/internal/client/models"
)

func (a *App) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format+"\n", args...)
}

func formatMessage(n int, m *models.Message, me string, replyIdx int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d [%s] ", n, m.CreatedAt.Local().Format("15:04"))
	if m.Outgoing(me) {
		b.WriteString("you")
	} else {
		b.WriteString(m.From)
	}
	b.WriteString(": ")
	b.WriteString(m.Body())
	switch {
	case replyIdx > 0:
		fmt.Fprintf(&b, "  (reply to #%d)", replyIdx)
	case m.ReplyTo != "":
		b.WriteString("  (reply)")
	}
	if r := m.ReactionSummary(); r != "" {
		b.WriteString("  [" + r + "]")
	}
	return b.String()
}

func usage(u string) error {
	return fmt.Errorf("usage: %s", u)
}

func (a *App) Search(ctx context.Context, args []string) error {
	if _, err := a.onlineSession(); err != nil {
		return err
	}
	if len(args) == 0 {
		return usage("search <query>")
	}

	users, err := a.contactsService.Search(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	if len(users) == 0 {
		a.printf("No users found")
		return nil
	}
	for _, u := range users {
		if u.DisplayName != "" {
			a.printf("%s (%s)", u.Username, u.DisplayName)
		} else {
			a.printf("%s", u.Username)
		}
	}
	return nil
}

func (a *App) Request(ctx context.Context, args []string) error {
	if _, err := a.onlineSession(); err != nil {
		return err
	}
	if len(args) != 1 {
		return usage("request <username>")
	}

	r, err := a.contactsService.Request(ctx, args[0])
	if err != nil {
		return err
	}
	a.printf("Friend request sent to %s (%s)", r.RecipientUsername, r.Status)
	return nil
}

func (a *App) Requests(ctx context.Context) error {
	if _, err := a.onlineSession(); err != nil {
		return err
	}

	reqs, err := a.contactsService.Pending(ctx)
	if err != nil {
		return err
	}
	if len(reqs) == 0 {
		a.printf("No pending requests")
		return nil
	}
	for _, r := range reqs {
		a.printf("%s  from %s  %s", r.Id, r.SenderUsername, r.GetCreatedAt().AsTime().Local().Format(time.DateTime))
	}
	return nil
}

func (a *App) respond(ctx context.Context, args []string, accept bool) error {
	if _, err := a.onlineSession(); err != nil {
		return err
	}
	if len(args) != 1 {
		if accept {
			return usage("accept <request-id>")
		}
		return usage("reject <request-id>")
	}

	r, err := a.contactsService.Respond(ctx, args[0], accept)
	if err != nil {
		return err
	}
	a.printf("Request from %s %s", r.SenderUsername, r.Status)
	return nil
}

func (a *App) Accept(ctx context.Context, args []string) error { return a.respond(ctx, args, true) }
func (a *App) Reject(ctx context.Context, args []string) error { return a.respond(ctx, args, false) }

func (a *App) Contacts(ctx context.Context) error {
	if _, err := a.onlineSession(); err != nil {
		return err
	}

	contacts, err := a.contactsService.Contacts(ctx)
	if err != nil {
		return err
	}
	if len(contacts) == 0 {
		a.printf("No contacts yet")
		return nil
	}

	online := a.onlineSet()
	for _, c := range contacts {
		status := "offline"
		if online[c.Username] {
			status = "online"
		}
		name := c.Username
		if c.DisplayName != "" {
			name += " (" + c.DisplayName + ")"
		}
		a.printf("%s  %s", name, status)
	}
	return nil
}

func (a *App) onlineSet() map[string]bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	set := make(map[string]bool, len(a.online))
	for _, u := range a.online {
		set[u] = true
	}
	return set
}

func (a *App) Online(ctx context.Context) error {
	if _, err := a.onlineSession(); err != nil {
		return err
	}

	a.mu.Lock()
	users := append([]string(nil), a.online...)
	a.mu.Unlock()

	if len(users) == 0 {
		a.printf("Nobody is online")
		return nil
	}
	sort.Strings(users)
	a.printf("Online: %s", strings.Join(users, ", "))
	return nil
}

// Open makes peer the current conversation and prints recent history.
func (a *App) Open(ctx context.Context, args []string) error {
	s, err := a.onlineSession()
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return usage("open <username>")
	}
	peer := args[0]

	msgs, err := a.chatService.History(ctx, s, peer, time.Time{}, a.historyPageSize())
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.peer = peer
	a.view = msgs
	a.mu.Unlock()

	a.printf("Conversation with %s", peer)
	if len(msgs) == 0 {
		a.printf("No messages yet")
	}
	for i, m := range msgs {
		a.printf("%s", formatMessage(i+1, m, s.Username, a.replyIndex(m.ReplyTo)))
	}
	return nil
}

// Older loads the page preceding the oldest message in view and reprints
// the conversation.
func (a *App) Older(ctx context.Context) error {
	s, err := a.onlineSession()
	if err != nil {
		return err
	}
	peer, err := a.openPeer()
	if err != nil {
		return err
	}

	a.mu.Lock()
	var before time.Time
	if len(a.view) > 0 {
		before = a.view[0].CreatedAt
	}
	a.mu.Unlock()

	var msgs []*models.Message
	if !before.IsZero() {
		msgs, err = a.chatService.History(ctx, s, peer, before, a.historyPageSize())
		if err != nil {
			return err
		}
	}
	if len(msgs) == 0 {
		a.printf("No older messages")
		return nil
	}

	a.mu.Lock()
	if a.peer != peer {
		a.mu.Unlock()
		return nil
	}
	a.view = append(msgs, a.view...)
	view := a.view
	a.mu.Unlock()

	a.printf("Conversation with %s", peer)
	for i, m := range view {
		a.printf("%s", formatMessage(i+1, m, s.Username, a.replyIndex(m.ReplyTo)))
	}
	return nil
}

func (a *App) openPeer() (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.peer == "" {
		return "", errors.New("no open conversation, use open <username>")
	}
	return a.peer, nil
}

// messageRef resolves "#3", "3" or a raw envelope id against the view.
func (a *App) messageRef(ref string) (string, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(ref, "#"))
	if err != nil {
		return ref, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if n < 1 || n > len(a.view) {
		return "", fmt.Errorf("no message #%d", n)
	}
	return a.view[n-1].ID, nil
}

func (a *App) send(ctx context.Context, text, replyTo string) error {
	s, err := a.onlineSession()
	if err != nil {
		return err
	}
	peer, err := a.openPeer()
	if err != nil {
		return err
	}

	if text == "" {
		text, err = GetMultiline(a.reader, "Message", a.out)
		if err != nil {
			return err
		}
	}

	res, err := a.chatService.Send(ctx, s, peer, text, replyTo)
	if err != nil {
		return err
	}
	if stream := a.currentStream(); stream != nil {
		_ = stream.StopTyping(peer)
	}

	a.mu.Lock()
	a.view = append(a.view, res.Message)
	n := len(a.view)
	a.mu.Unlock()

	status := "stored"
	switch {
	case res.Delivered:
		status = "delivered"
	case !res.Persisted:
		status = "sent, not stored"
	}
	a.printf("%s  (%s)", formatMessage(n, res.Message, s.Username, a.replyIndex(replyTo)), status)
	return nil
}

func (a *App) Send(ctx context.Context, args []string) error {
	return a.send(ctx, strings.Join(args, " "), "")
}

func (a *App) Reply(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return usage("reply <#n> [text]")
	}
	id, err := a.messageRef(args[0])
	if err != nil {
		return err
	}
	return a.send(ctx, strings.Join(args[1:], " "), id)
}

func (a *App) React(ctx context.Context, args []string) error {
	s, err := a.onlineSession()
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return usage("react <#n> <emoji>")
	}
	id, err := a.messageRef(args[0])
	if err != nil {
		return err
	}

	m, err := a.chatService.React(ctx, s, id, args[1])
	if err != nil {
		return err
	}

	reactions := make([]models.Reaction, len(m.Reactions))
	copy(reactions, m.Reactions)
	a.mu.Lock()
	for _, v := range a.view {
		if v.ID == m.ID {
			v.Reactions = reactions
		}
	}
	a.mu.Unlock()

	summary := m.ReactionSummary()
	if summary == "" {
		summary = "none"
	}
	a.printf("Reactions: %s", summary)
	return nil
}

func (a *App) Typing(ctx context.Context) error {
	if _, err := a.onlineSession(); err != nil {
		return err
	}
	peer, err := a.openPeer()
	if err != nil {
		return err
	}
	stream := a.currentStream()
	if stream == nil {
		return errors.New("live updates are not connected")
	}
	return stream.Typing(peer)
}

func (a *App) Export(ctx context.Context, args []string) error {
	s, err := a.onlineSession()
	if err != nil {
		return err
	}

	var peer string
	switch len(args) {
	case 0:
		if peer, err = a.openPeer(); err != nil {
			return err
		}
	case 1:
		peer = args[0]
	default:
		return usage("export [username]")
	}

	res, err := a.chatService.Export(ctx, s, peer)
	if err != nil {
		return err
	}
	a.printf("Exported %d messages (%d readable) to %s", res.Count, res.Decrypted, res.Path)
	return nil
}
