package relay

import "github.com/dmitrijs2005/privachat/internal/server/models"

// EventType names a server → client push.
type EventType string

const (
	EventOnlineUsers EventType = "onlineUsers"
	EventTyping      EventType = "typing"
	EventStopTyping  EventType = "stopTyping"
	EventEnvelope    EventType = "envelopeReceived"
	EventReaction    EventType = "reactionUpdated"
	EventError       EventType = "error"
)

// ReactionUpdate carries the full reaction list of an envelope after a toggle.
type ReactionUpdate struct {
	EnvelopeID string
	Reactor    string
	Reactions  []models.Reaction
}

// Event is one push to a session. Only the field matching Type is set.
type Event struct {
	Type     EventType
	Online   []string
	From     string
	Envelope *models.Envelope
	Reaction *ReactionUpdate
	Error    string
}
