package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"efectivio/internal/infrastructure/config"
	"efectivio/internal/infrastructure/database"
	"efectivio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	log "github.com/sirupsen/logrus"
)

// S3Storage keeps objects in one bucket and hands out presigned GET URLs.
type S3Storage struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

var _ interfaces.IObjectStorage = (*S3Storage)(nil)

func NewS3Storage(ctx context.Context, cfg config.StorageConfig) (*S3Storage, error) {
	awsCfg, err := database.NewAWSConfig(ctx, cfg.Region, cfg.Endpoint)
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	log.Printf("[storage][s3] client initialized bucket=%s region=%s", cfg.Bucket, cfg.Region)
	return &S3Storage{client: client, presign: s3.NewPresignClient(client), bucket: cfg.Bucket}, nil
}

func (s *S3Storage) Put(ctx context.Context, key string, contentType string, body io.Reader, size int64) error {
	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	if size > 0 {
		in.ContentLength = aws.Int64(size)
	}
	if _, err := s.client.PutObject(ctx, in); err != nil {
		return fmt.Errorf("s3 put %s: %w", key, err)
	}
	return nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	var noKey *types.NoSuchKey
	if errors.As(err, &noKey) {
		return interfaces.ErrObjectNotFound
	}
	if err != nil {
		return fmt.Errorf("s3 delete %s: %w", key, err)
	}
	return nil
}

func (s *S3Storage) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("s3 presign %s: %w", key, err)
	}
	return req.URL, nil
}
