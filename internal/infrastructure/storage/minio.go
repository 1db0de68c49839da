// Package storage implements the blob store on MinIO-compatible object
// storage. All credentials come from configuration; nothing is embedded.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config captures the settings for the object storage connection.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL is the externally reachable base for retrieval URLs,
	// e.g. https://cdn.example.com. Defaults to the endpoint itself.
	PublicURL string
}

// MinioStore implements ports.BlobStore against a single bucket.
type MinioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// New initialises the MinIO client and creates the bucket if it does not
// exist yet.
func New(ctx context.Context, cfg Config) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
	}

	publicURL := strings.TrimSuffix(cfg.PublicURL, "/")
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}

	return &MinioStore{client: client, bucket: cfg.Bucket, publicURL: publicURL}, nil
}

// Put streams content into the bucket under key and returns the public URL.
func (s *MinioStore) Put(ctx context.Context, key string, content io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return s.URL(key), nil
}

// Remove deletes the object. A missing object is not an error.
func (s *MinioStore) Remove(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		var respErr minio.ErrorResponse
		if errors.As(err, &respErr) && respErr.Code == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("remove object %s: %w", key, err)
	}
	return nil
}

// URL returns the public retrieval URL for a stored key.
func (s *MinioStore) URL(key string) string {
	return s.publicURL + "/" + s.bucket + "/" + key
}

// HealthCheck verifies connectivity by probing the bucket.
func (s *MinioStore) HealthCheck(ctx context.Context) error {
	_, err := s.client.BucketExists(ctx, s.bucket)
	return err
}
