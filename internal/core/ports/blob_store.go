package ports

import (
	"context"
	"io"
	"time"
)

// BlobStore abstracts binary storage. Put streams content under key and
// returns the public retrieval URL. Remove is tolerant of absent blobs.
type BlobStore interface {
	Put(ctx context.Context, key string, content io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
	// URL returns the public retrieval URL for a stored key.
	URL(key string) string
}

// InviteStore holds one-time invite tokens for admin-provisioned clients.
// Redeem consumes the token: a second redemption fails.
type InviteStore interface {
	Issue(ctx context.Context, token, userID string, ttl time.Duration) error
	Redeem(ctx context.Context, token string) (string, error)
}
