// Package common contains shared constants, sentinel errors and small helpers
// used by both the PrivaChat server and client.
package common

import "time"

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// DefaultAbout is the status text a freshly registered identity starts with.
const DefaultAbout = "Hey there! I am using PrivaChat."

// ExportLinkValidity is how long a presigned history export link stays usable.
const ExportLinkValidity = 15 * time.Minute

// Client → server event types on the Connect stream.
const (
	EventJoin         = "join"
	EventTyping       = "typing"
	EventStopTyping   = "stopTyping"
	EventSendEnvelope = "sendEnvelope"
)

// Server → client event types on the Connect stream. Typing events reuse
// the client names.
const (
	EventOnlineUsers      = "onlineUsers"
	EventEnvelopeReceived = "envelopeReceived"
	EventReactionUpdated  = "reactionUpdated"
	EventSent             = "sent"
	EventError            = "error"
)
