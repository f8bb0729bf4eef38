package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"crm_imobiliario/internal/infrastructure/config"
	"crm_imobiliario/internal/infrastructure/database"
	"crm_imobiliario/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"
)

const defaultURLExpiry = 15 * time.Minute

// S3API is the subset of *s3.Client used for contract documents.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Presigner is the subset of *s3.PresignClient used for download links.
type Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

var (
	_ S3API     = (*s3.Client)(nil)
	_ Presigner = (*s3.PresignClient)(nil)
)

// S3DocumentStorage keeps uploaded contract documents in an S3 bucket
// (or an S3-compatible endpoint such as MinIO or LocalStack).

type S3DocumentStorage struct {
	client  S3API
	presign Presigner
	bucket  string
	logger  *zap.Logger
}

var _ interfaces.IDocumentStorage = (*S3DocumentStorage)(nil)

// NewS3DocumentStorage builds the S3 client from the shared AWS settings.
// S3_ENDPOINT switches to path-style addressing against that endpoint.
func NewS3DocumentStorage(ctx context.Context, awsCfg config.AWSConfig, cfg config.StorageConfig, logger *zap.Logger) (*S3DocumentStorage, error) {
	sdkCfg, err := database.NewAWSConfig(ctx, awsCfg, s3.ServiceID, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 config: %w", err)
	}

	client := s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.Endpoint != ""
	})

	logger.Info("[contract][storage] initialized s3 storage",
		zap.String("bucket", cfg.Bucket),
		zap.String("endpoint", cfg.Endpoint),
	)
	return NewS3DocumentStorageWithClient(client, s3.NewPresignClient(client), cfg.Bucket, logger), nil
}

func NewS3DocumentStorageWithClient(client S3API, presign Presigner, bucket string, logger *zap.Logger) *S3DocumentStorage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &S3DocumentStorage{client: client, presign: presign, bucket: bucket, logger: logger}
}

func (s *S3DocumentStorage) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	if err := validateKey(key); err != nil {
		return &StorageError{Op: "Put", Key: key, Err: err}
	}

	out, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return &StorageError{Op: "Put", Key: key, Err: wrapS3Error(err)}
	}

	s.logger.Debug("[contract][storage] stored object",
		zap.String("key", key),
		zap.String("etag", aws.ToString(out.ETag)),
		zap.String("content_type", contentType),
	)
	return nil
}

// Delete is idempotent: S3 does not report missing keys.
func (s *S3DocumentStorage) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return &StorageError{Op: "Delete", Key: key, Err: err}
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return &StorageError{Op: "Delete", Key: key, Err: wrapS3Error(err)}
	}

	s.logger.Debug("[contract][storage] deleted object", zap.String("key", key))
	return nil
}

// URL returns a presigned GET link valid for expires (15 minutes when zero).
func (s *S3DocumentStorage) URL(ctx context.Context, key string, expires time.Duration) (string, error) {
	if err := validateKey(key); err != nil {
		return "", &StorageError{Op: "URL", Key: key, Err: err}
	}
	if expires <= 0 {
		expires = defaultURLExpiry
	}

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", &StorageError{Op: "URL", Key: key, Err: fmt.Errorf("failed to generate presigned URL: %w", err)}
	}
	return req.URL, nil
}

func validateKey(key string) error {
	if key == "" || strings.Contains(key, "..") || strings.HasPrefix(key, "/") {
		return ErrInvalidKey
	}
	return nil
}

func wrapS3Error(err error) error {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return ErrNotFound
	}
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return ErrNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return ErrNotFound
		case "AccessDenied", "Forbidden":
			return ErrAccessDenied
		}
	}

	var httpErr interface{ HTTPStatusCode() int }
	if errors.As(err, &httpErr) {
		switch httpErr.HTTPStatusCode() {
		case http.StatusNotFound:
			return ErrNotFound
		case http.StatusForbidden:
			return ErrAccessDenied
		}
	}

	return fmt.Errorf("s3 operation failed: %w", err)
}
