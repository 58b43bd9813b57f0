package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/privachat/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubS3 swaps the S3 seams for the duration of a test and records what
// was uploaded.
type stubS3 struct {
	region       string
	baseEndpoint string
	uploaded     []byte
	uploadKey    string
	presignTTL   time.Duration
	putErr       error
	presignErr   error
}

func installStubS3(t *testing.T) *stubS3 {
	t.Helper()
	stub := &stubS3{}

	origLoad, origNew, origPut, origPresign := loadDefaultAWSConfig, newS3ClientFromConfig, putObject, presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig, newS3ClientFromConfig, putObject, presignGetObject = origLoad, origNew, origPut, origPresign
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		stub.region = lo.Region
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var o s3.Options
		for _, fn := range optFns {
			fn(&o)
		}
		stub.baseEndpoint = aws.ToString(o.BaseEndpoint)
		return &s3.Client{}
	}
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) error {
		if stub.putErr != nil {
			return stub.putErr
		}
		stub.uploadKey = aws.ToString(in.Key)
		body, err := io.ReadAll(in.Body)
		require.NoError(t, err)
		stub.uploaded = body
		return nil
	}
	presignGetObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		if stub.presignErr != nil {
			return nil, stub.presignErr
		}
		var o s3.PresignOptions
		for _, fn := range optFns {
			fn(&o)
		}
		stub.presignTTL = o.Expires
		return &v4.PresignedHTTPRequest{URL: "https://s3.local/" + aws.ToString(in.Key) + "?sig=1"}, nil
	}
	return stub
}

func TestExportHistory(t *testing.T) {
	e := newEnv(t)
	stub := installStubS3(t)
	e.store.addIdentity("alice")
	e.store.addIdentity("bob")
	first := e.addEnvelope("alice", "bob")
	second := e.addEnvelope("bob", "alice")

	s := NewExportService(e.db, e.rm, e.cfg)
	res, err := s.ExportHistory(context.Background(), "alice", "bob")
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", stub.region)
	assert.Equal(t, "http://127.0.0.1:9000", stub.baseEndpoint)
	assert.Equal(t, common.ExportLinkValidity, stub.presignTTL)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, stub.uploadKey, res.Key)
	assert.Regexp(t, regexp.MustCompile(`^exports/alice/\d{4}/\d{2}/\d{2}/[0-9a-f-]{36}\.json$`), res.Key)
	assert.Contains(t, res.URL, res.Key)

	var doc HistoryExport
	require.NoError(t, json.Unmarshal(stub.uploaded, &doc))
	assert.Equal(t, "alice", doc.Owner)
	assert.Equal(t, "bob", doc.Peer)
	require.Len(t, doc.Envelopes, 2)
	assert.Equal(t, first.ID, doc.Envelopes[0].ID)
	assert.Equal(t, second.Ciphertext, doc.Envelopes[1].Ciphertext)
	assert.Equal(t, second.SenderEncryptedKey, doc.Envelopes[1].SenderEncryptedKey)
}

func TestExportHistory_Errors(t *testing.T) {
	t.Run("unknown peer", func(t *testing.T) {
		e := newEnv(t)
		installStubS3(t)

		_, err := NewExportService(e.db, e.rm, e.cfg).ExportHistory(context.Background(), "alice", "ghost")
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("upload fails", func(t *testing.T) {
		e := newEnv(t)
		stub := installStubS3(t)
		stub.putErr = errors.New("bucket missing")
		e.store.addIdentity("bob")

		_, err := NewExportService(e.db, e.rm, e.cfg).ExportHistory(context.Background(), "alice", "bob")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "upload export: bucket missing")
	})

	t.Run("presign fails", func(t *testing.T) {
		e := newEnv(t)
		stub := installStubS3(t)
		stub.presignErr = errors.New("no creds")
		e.store.addIdentity("bob")

		_, err := NewExportService(e.db, e.rm, e.cfg).ExportHistory(context.Background(), "alice", "bob")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "presign export")
	})

	t.Run("aws config fails", func(t *testing.T) {
		e := newEnv(t)
		installStubS3(t)
		loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
			return aws.Config{}, errors.New("load-fail")
		}
		e.store.addIdentity("bob")

		_, err := NewExportService(e.db, e.rm, e.cfg).ExportHistory(context.Background(), "alice", "bob")
		assert.EqualError(t, err, "load-fail")
	})
}

func TestExportStorageKey(t *testing.T) {
	key := ExportStorageKey("bob", time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC))
	assert.Regexp(t, `^exports/bob/2025/03/07/.+\.json$`, key)
}
