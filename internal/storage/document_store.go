package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"tutorhub/internal/config"
)

// DocumentStore is durable object storage for tutor credential documents.
type DocumentStore interface {
	// Store writes the file under a key namespaced by ownerKey and returns
	// the retrievable URL of the stored object.
	Store(ctx context.Context, ownerKey, filename string, data []byte) (string, error)
	// DeleteByURL removes the object a previously returned URL points at.
	// It returns true when the object was deleted or was already absent, and
	// false when the URL does not belong to the configured bucket.
	DeleteByURL(ctx context.Context, fileURL string) (bool, error)
}

var whitespacePattern = regexp.MustCompile(`\s+`)

// S3Store is a DocumentStore backed by an S3-compatible bucket (MinIO in
// development, S3 proper in production).
type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewS3Store builds an S3-backed document store from configuration.
func NewS3Store(ctx context.Context, cfg *config.Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		o.UsePathStyle = true
	})

	baseURL := cfg.S3PublicURL
	if baseURL == "" {
		baseURL = cfg.S3Endpoint
	}

	return &S3Store{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Store uploads the file and returns its object URL.
func (s *S3Store) Store(ctx context.Context, ownerKey, filename string, data []byte) (string, error) {
	key := buildObjectKey(ownerKey, filename)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, key), nil
}

// DeleteByURL parses the bucket-relative key out of the URL and deletes the
// object. Deleting an absent key succeeds, which keeps removal idempotent.
func (s *S3Store) DeleteByURL(ctx context.Context, fileURL string) (bool, error) {
	if strings.TrimSpace(fileURL) == "" {
		return false, nil
	}
	parsed, err := url.Parse(fileURL)
	if err != nil {
		return false, nil
	}
	needle := "/" + s.bucket + "/"
	idx := strings.Index(parsed.Path, needle)
	if idx < 0 {
		return false, nil
	}
	key := parsed.Path[idx+len(needle):]
	if key == "" {
		return false, nil
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return false, fmt.Errorf("delete object %s: %w", key, err)
	}
	return true, nil
}

// buildObjectKey namespaces the object under the owner and randomizes the
// name so repeated uploads of the same filename never collide.
func buildObjectKey(ownerKey, filename string) string {
	clean := whitespacePattern.ReplaceAllString(filename, "_")
	if clean == "" {
		clean = "file"
	}
	return fmt.Sprintf("%s/credentials/%s_%s", ownerKey, uuid.New(), clean)
}
