package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/privachat/internal/common"
	"github.com/dmitrijs2005/privachat/internal/server/config"
	"github.com/dmitrijs2005/privachat/internal/server/models"
	"github.com/dmitrijs2005/privachat/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// S3 seams, replaced in tests.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) error {
		_, err := c.PutObject(ctx, in)
		return err
	}

	presignGetObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return s3.NewPresignClient(c).PresignGetObject(ctx, in, optFns...)
	}
)

// ExportedEnvelope is the export file form of an envelope. Byte fields are
// base64 in JSON; nothing is decrypted.
type ExportedEnvelope struct {
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

// HistoryExport is the document uploaded to object storage.
type HistoryExport struct {
	Owner      string             `json:"owner"`
	Peer       string             `json:"peer"`
	ExportedAt time.Time          `json:"exportedAt"`
	Envelopes  []ExportedEnvelope `json:"envelopes"`
}

// ExportResult points at an uploaded export.
type ExportResult struct {
	Key       string
	URL       string
	Count     int
	ExpiresAt time.Time
}

// ExportService writes a conversation's ciphertext to S3-compatible storage
// and hands out a short-lived download link.
type ExportService struct {
	messages *MessageService
	config   *config.Config
}

func NewExportService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *ExportService {
	return &ExportService{messages: NewMessageService(db, m), config: cfg}
}

// ExportStorageKey returns the object key for a new export by owner.
func ExportStorageKey(owner string, now time.Time) string {
	return fmt.Sprintf("exports/%s/%04d/%02d/%02d/%s.json", owner, now.Year(), now.Month(), now.Day(), uuid.New())
}

// ExportHistory uploads caller's conversation with peer and returns a
// presigned GET link valid for common.ExportLinkValidity.
func (s *ExportService) ExportHistory(ctx context.Context, caller, peer string) (*ExportResult, error) {
	doc, err := s.collect(ctx, caller, peer)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}

	client, err := s.getS3Client(ctx)
	if err != nil {
		return nil, err
	}

	bucket := s.config.S3Bucket
	key := ExportStorageKey(caller, doc.ExportedAt)

	if err := putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}); err != nil {
		return nil, fmt.Errorf("upload export: %w", err)
	}

	req, err := presignGetObject(client, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(common.ExportLinkValidity))
	if err != nil {
		return nil, fmt.Errorf("presign export: %w", err)
	}

	return &ExportResult{
		Key:       key,
		URL:       req.URL,
		Count:     len(doc.Envelopes),
		ExpiresAt: doc.ExportedAt.Add(common.ExportLinkValidity),
	}, nil
}

// collect pages through the whole conversation.
func (s *ExportService) collect(ctx context.Context, caller, peer string) (*HistoryExport, error) {
	doc := &HistoryExport{
		Owner:      caller,
		Peer:       peer,
		ExportedAt: time.Now().UTC(),
		Envelopes:  []ExportedEnvelope{},
	}

	var after time.Time
	for {
		page, err := s.messages.History(ctx, caller, peer, after, maxHistoryLimit)
		if err != nil {
			return nil, err
		}
		for _, e := range page {
			doc.Envelopes = append(doc.Envelopes, ExportedEnvelope{
				ID:                 e.ID,
				Sender:             e.Sender,
				Recipient:          e.Recipient,
				Ciphertext:         e.Ciphertext,
				IV:                 e.IV,
				EncryptedKey:       e.EncryptedKey,
				SenderEncryptedKey: e.SenderEncryptedKey,
				ReplyTo:            e.ReplyTo,
				Reactions:          e.Reactions,
				CreatedAt:          e.CreatedAt,
			})
		}
		if len(page) < maxHistoryLimit {
			return doc, nil
		}
		after = page[len(page)-1].CreatedAt
	}
}

func (s *ExportService) getS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}
