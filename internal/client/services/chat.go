package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/privachat/internal/client/client"
	"github.com/dmitrijs2005/privachat/internal/client/models"
	"github.com/dmitrijs2005/privachat/internal/client/repositories/peerkeys"
	"github.com/dmitrijs2005/privachat/internal/cryptox"
	"github.com/dmitrijs2005/privachat/internal/filex"
	"github.com/dmitrijs2005/privachat/internal/netx"
	pb "github.com/dmitrijs2005/privachat/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// DefaultHistoryLimit is the page size used when History is called with a
// non-positive limit.
const DefaultHistoryLimit = 50

// ExportDir is the directory, relative to the working directory, that
// receives downloaded history exports.
const ExportDir = "exports"

// download is a seam for tests.
var download = netx.DownloadFromPresignedURL

// SendResult describes what happened to an outgoing message.
type SendResult struct {
	Message   *models.Message
	Persisted bool
	Delivered bool
}

// ExportResult describes a downloaded history export.
type ExportResult struct {
	Path      string
	Count     int
	Decrypted int
}

// ChatService encrypts outgoing and decrypts incoming messages. All methods
// need an unlocked Session.
type ChatService interface {
	Send(ctx context.Context, s *Session, peer, text, replyTo string) (*SendResult, error)
	History(ctx context.Context, s *Session, peer string, before time.Time, limit int) ([]*models.Message, error)
	React(ctx context.Context, s *Session, envelopeID, emoji string) (*models.Message, error)
	Export(ctx context.Context, s *Session, peer string) (*ExportResult, error)
	DecodeIncoming(s *Session, e *pb.Envelope) *models.Message
}

type chatService struct {
	client    client.Client
	db        *sql.DB
	exportDir string
}

// NewChatService constructs a ChatService. Exports land in exportBase/exports
// (the working directory when exportBase is empty).
func NewChatService(c client.Client, db *sql.DB, exportBase string) ChatService {
	return &chatService{client: c, db: db, exportDir: exportBase}
}

func (c *chatService) peerKeys() peerkeys.Repository {
	return peerkeys.NewSQLiteRepository(c.db)
}

// peerKey returns the cached public key of peer, fetching and caching it
// on a miss.
func (c *chatService) peerKey(ctx context.Context, peer string) ([]byte, error) {
	repo := c.peerKeys()

	cached, err := repo.Get(ctx, peer)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return cached.PublicKey, nil
	}

	key, err := c.client.GetPublicKey(ctx, peer)
	if err != nil {
		return nil, fmt.Errorf("fetch public key of %s: %w", peer, err)
	}
	if err := repo.Put(ctx, peer, key); err != nil {
		return nil, err
	}
	return key, nil
}

func (c *chatService) Send(ctx context.Context, s *Session, peer, text, replyTo string) (*SendResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: message is empty", client.ErrInvalidArgument)
	}
	if peer == s.Username {
		return nil, fmt.Errorf("%w: cannot message yourself", client.ErrInvalidArgument)
	}

	recipientKey, err := c.peerKey(ctx, peer)
	if err != nil {
		return nil, err
	}

	payload, err := cryptox.Encode([]byte(text), recipientKey, s.PublicKey)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.SendEnvelope(ctx, &pb.Envelope{
		Sender:             s.Username,
		Recipient:          peer,
		Ciphertext:         payload.Ciphertext,
		Iv:                 payload.IV,
		EncryptedKey:       payload.EncryptedKey,
		SenderEncryptedKey: payload.SenderEncryptedKey,
		ReplyTo:            replyTo,
	})
	if err != nil {
		return nil, err
	}

	m := envelopeMeta(resp.Envelope)
	m.Text = text
	return &SendResult{Message: m, Persisted: resp.Persisted, Delivered: resp.Delivered}, nil
}

// History returns the newest limit messages with peer that are older than
// before, oldest first. A zero before loads the latest page.
func (c *chatService) History(ctx context.Context, s *Session, peer string, before time.Time, limit int) ([]*models.Message, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	envelopes, err := c.client.GetMessages(ctx, peer, client.Page{Before: before, Limit: limit})
	if err != nil {
		return nil, err
	}

	out := make([]*models.Message, 0, len(envelopes))
	for _, e := range envelopes {
		out = append(out, c.DecodeIncoming(s, e))
	}
	models.SortMessages(out)
	return out, nil
}

func (c *chatService) React(ctx context.Context, s *Session, envelopeID, emoji string) (*models.Message, error) {
	if strings.TrimSpace(emoji) == "" {
		return nil, fmt.Errorf("%w: emoji is empty", client.ErrInvalidArgument)
	}

	e, err := c.client.ToggleReaction(ctx, envelopeID, emoji)
	if err != nil {
		return nil, err
	}
	return c.DecodeIncoming(s, e), nil
}

// DecodeIncoming decrypts e for s. A failure is recorded on the message
// instead of being returned so that one bad envelope does not hide the
// rest of a conversation.
func (c *chatService) DecodeIncoming(s *Session, e *pb.Envelope) *models.Message {
	m := envelopeMeta(e)

	plaintext, err := cryptox.Decode(&cryptox.Payload{
		Ciphertext:         e.Ciphertext,
		IV:                 e.Iv,
		EncryptedKey:       e.EncryptedKey,
		SenderEncryptedKey: e.SenderEncryptedKey,
	}, s.PrivateKey, e.Sender == s.Username)
	if err != nil {
		m.Err = err
		return m
	}

	m.Text = string(plaintext)
	return m
}

func envelopeMeta(e *pb.Envelope) *models.Message {
	m := &models.Message{
		ID:      e.GetId(),
		From:    e.GetSender(),
		To:      e.GetRecipient(),
		ReplyTo: e.GetReplyTo(),
	}
	if e.GetCreatedAt() != nil {
		m.CreatedAt = e.GetCreatedAt().AsTime()
	}
	for _, r := range e.GetReactions() {
		m.Reactions = append(m.Reactions, models.Reaction{User: r.User, Emoji: r.Emoji})
	}
	return m
}

// exportDocument mirrors the server's export format.
type exportDocument struct {
	Owner      string             `json:"owner"`
	Peer       string             `json:"peer"`
	ExportedAt time.Time          `json:"exportedAt"`
	Envelopes  []exportedEnvelope `json:"envelopes"`
}

type exportedEnvelope struct {
	ID                 string            `json:"id"`
	Sender             string            `json:"sender"`
	Recipient          string            `json:"recipient"`
	Ciphertext         []byte            `json:"ciphertext"`
	IV                 []byte            `json:"iv"`
	EncryptedKey       []byte            `json:"encryptedKey"`
	SenderEncryptedKey []byte            `json:"senderEncryptedKey"`
	ReplyTo            string            `json:"replyTo,omitempty"`
	Reactions          []models.Reaction `json:"reactions"`
	CreatedAt          time.Time         `json:"createdAt"`
}

func (e *exportedEnvelope) toProto() *pb.Envelope {
	out := &pb.Envelope{
		Id:                 e.ID,
		Sender:             e.Sender,
		Recipient:          e.Recipient,
		Ciphertext:         e.Ciphertext,
		Iv:                 e.IV,
		EncryptedKey:       e.EncryptedKey,
		SenderEncryptedKey: e.SenderEncryptedKey,
		ReplyTo:            e.ReplyTo,
		CreatedAt:          timestamppb.New(e.CreatedAt),
	}
	for _, r := range e.Reactions {
		out.Reactions = append(out.Reactions, &pb.Reaction{User: r.User, Emoji: r.Emoji})
	}
	return out
}

type exportedMessage struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Text      string    `json:"text,omitempty"`
	Error     string    `json:"error,omitempty"`
	ReplyTo   string    `json:"replyTo,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Export asks the server for a history export, downloads it and stores
// both the encrypted archive and a decrypted transcript locally.
func (c *chatService) Export(ctx context.Context, s *Session, peer string) (*ExportResult, error) {
	resp, err := c.client.ExportHistory(ctx, peer)
	if err != nil {
		return nil, err
	}

	raw, err := download(ctx, resp.GetUrl())
	if err != nil {
		return nil, fmt.Errorf("download export: %w", err)
	}

	var doc exportDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}

	dir, err := filex.EnsureSubdDir(c.exportDir, ExportDir)
	if err != nil {
		return nil, err
	}

	stamp := doc.ExportedAt.UTC().Format("20060102T150405Z")
	base := filex.SafeName(peer) + "-" + stamp

	if _, err := filex.WriteFile(dir, base+".json", raw); err != nil {
		return nil, err
	}

	res := &ExportResult{Count: len(doc.Envelopes)}
	transcript := make([]exportedMessage, 0, len(doc.Envelopes))
	for i := range doc.Envelopes {
		m := c.DecodeIncoming(s, doc.Envelopes[i].toProto())
		em := exportedMessage{ID: m.ID, From: m.From, To: m.To, Text: m.Text, ReplyTo: m.ReplyTo, CreatedAt: m.CreatedAt}
		if m.Err != nil {
			em.Error = m.Body()
		} else {
			res.Decrypted++
		}
		transcript = append(transcript, em)
	}

	body, err := json.MarshalIndent(transcript, "", "  ")
	if err != nil {
		return nil, err
	}
	res.Path, err = filex.WriteFile(dir, base+".transcript.json", body)
	if err != nil {
		return nil, err
	}
	return res, nil
}
