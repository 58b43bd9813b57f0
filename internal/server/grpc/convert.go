package grpc

import (
	"time"

	pb "github.com/dmitrijs2005/privachat/internal/proto"
	"github.com/dmitrijs2005/privachat/internal/server/models"
	"github.com/dmitrijs2005/privachat/internal/server/relay"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// timestampOrNil keeps "not set" distinguishable from the Unix epoch.
func timestampOrNil(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// timeOrZero is the inverse of timestampOrNil.
func timeOrZero(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func profileToProto(p *models.Profile) *pb.Profile {
	return &pb.Profile{
		Id:          p.ID,
		Username:    p.Username,
		DisplayName: p.DisplayName,
		About:       p.About,
		PublicKey:   p.PublicKey,
	}
}

func friendRequestToProto(r *models.FriendRequest) *pb.FriendRequest {
	out := &pb.FriendRequest{
		Id:                r.ID,
		SenderUsername:    r.SenderUsername,
		RecipientUsername: r.RecipientUsername,
		Status:            string(r.Status),
		CreatedAt:         timestampOrNil(r.CreatedAt),
	}
	if r.RespondedAt != nil {
		out.RespondedAt = timestamppb.New(*r.RespondedAt)
	}
	return out
}

func contactToProto(c *models.Contact) *pb.Contact {
	return &pb.Contact{
		UserId:      c.UserID,
		Username:    c.Username,
		DisplayName: c.DisplayName,
		About:       c.About,
		Since:       timestampOrNil(c.Since),
	}
}

func reactionsToProto(rs []models.Reaction) []*pb.Reaction {
	if len(rs) == 0 {
		return nil
	}
	out := make([]*pb.Reaction, len(rs))
	for i, r := range rs {
		out[i] = &pb.Reaction{User: r.User, Emoji: r.Emoji}
	}
	return out
}

func envelopeToProto(e *models.Envelope) *pb.Envelope {
	return &pb.Envelope{
		Id:                 e.ID,
		Sender:             e.Sender,
		Recipient:          e.Recipient,
		Ciphertext:         e.Ciphertext,
		Iv:                 e.IV,
		EncryptedKey:       e.EncryptedKey,
		SenderEncryptedKey: e.SenderEncryptedKey,
		ReplyTo:            e.ReplyTo,
		Reactions:          reactionsToProto(e.Reactions),
		CreatedAt:          timestampOrNil(e.CreatedAt),
	}
}

func envelopesToProto(es []*models.Envelope) []*pb.Envelope {
	out := make([]*pb.Envelope, 0, len(es))
	for _, e := range es {
		out = append(out, envelopeToProto(e))
	}
	return out
}

// envelopeFromProto takes only client-controlled fields; ID, time and
// reactions are the server's. A missing envelope yields an empty one that
// fails validation.
func envelopeFromProto(e *pb.Envelope) *models.Envelope {
	return &models.Envelope{
		Sender:             e.GetSender(),
		Recipient:          e.GetRecipient(),
		Ciphertext:         e.GetCiphertext(),
		IV:                 e.GetIv(),
		EncryptedKey:       e.GetEncryptedKey(),
		SenderEncryptedKey: e.GetSenderEncryptedKey(),
		ReplyTo:            e.GetReplyTo(),
	}
}

func eventToProto(ev relay.Event) *pb.ServerEvent {
	out := &pb.ServerEvent{
		Type:   string(ev.Type),
		Online: ev.Online,
		From:   ev.From,
		Error:  ev.Error,
	}
	if ev.Envelope != nil {
		out.Envelope = envelopeToProto(ev.Envelope)
	}
	if ev.Reaction != nil {
		out.Reaction = &pb.ReactionUpdate{
			EnvelopeId: ev.Reaction.EnvelopeID,
			Reactor:    ev.Reaction.Reactor,
			Reactions:  reactionsToProto(ev.Reaction.Reactions),
		}
	}
	return out
}
