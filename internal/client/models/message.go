// Package models defines client-side data models used by the chat CLI.
package models

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// UndecryptablePlaceholder is shown in place of a message body that failed
// to decrypt.
const UndecryptablePlaceholder = "[unable to decrypt]"

// Reaction is one user's emoji on a message.
type Reaction struct {
	User  string `json:"user"`
	Emoji string `json:"emoji"`
}

// Message is a decrypted envelope as shown to the user.
type Message struct {
	ID        string
	From      string
	To        string
	Text      string
	ReplyTo   string
	Reactions []Reaction
	CreatedAt time.Time

	// Err is set when the body could not be decrypted. Text is empty then.
	Err error
}

// Body returns the text to display.
func (m *Message) Body() string {
	if m.Err != nil {
		return UndecryptablePlaceholder
	}
	return m.Text
}

// Outgoing reports whether me sent the message.
func (m *Message) Outgoing(me string) bool {
	return m.From == me
}

// ReactionSummary renders reactions grouped by emoji, e.g. "👍×2 ❤×1".
// Emojis appear in order of first use.
func (m *Message) ReactionSummary() string {
	if len(m.Reactions) == 0 {
		return ""
	}

	counts := map[string]int{}
	var order []string
	for _, r := range m.Reactions {
		if counts[r.Emoji] == 0 {
			order = append(order, r.Emoji)
		}
		counts[r.Emoji]++
	}

	parts := make([]string, 0, len(order))
	for _, e := range order {
		parts = append(parts, e+"×"+strconv.Itoa(counts[e]))
	}
	return strings.Join(parts, " ")
}

// SortMessages orders messages oldest first, ties broken by ID.
func SortMessages(ms []*Message) {
	sort.SliceStable(ms, func(i, j int) bool {
		if ms[i].CreatedAt.Equal(ms[j].CreatedAt) {
			return ms[i].ID < ms[j].ID
		}
		return ms[i].CreatedAt.Before(ms[j].CreatedAt)
	})
}
