package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
)

// InviteStore holds one-time invite tokens backed by Redis.
// Key format: invite:<token> → user id, expiring after the issue TTL.
type InviteStore struct {
	client *redis.Client
}

// NewInviteStore creates an InviteStore wrapping the given Redis client.
func NewInviteStore(client *redis.Client) *InviteStore {
	return &InviteStore{client: client}
}

// Issue records a token for the given user. Reissuing overwrites any
// previous token value under the same key.
func (s *InviteStore) Issue(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("issue invite: %w", err)
	}
	return nil
}

// Redeem consumes the token atomically (GETDEL), so a second redemption of
// the same token fails.
func (s *InviteStore) Redeem(ctx context.Context, token string) (string, error) {
	userID, err := s.client.GetDel(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrInviteInvalid
		}
		return "", fmt.Errorf("redeem invite: %w", err)
	}
	return userID, nil
}

func (s *InviteStore) key(token string) string {
	return "invite:" + token
}
