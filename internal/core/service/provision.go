package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
	"github.com/alozievictor/feedbackapp/internal/core/ports"
)

const inviteTTL = 7 * 24 * time.Hour

// provisionClient creates a client account with a random placeholder password
// and issues a one-time invite token the client redeems to set their own.
// Used by both the user service and inline project creation.
func provisionClient(ctx context.Context, users ports.UserRepository, invites ports.InviteStore, name, email, company string) (*domain.User, string, error) {
	if name == "" || email == "" {
		return nil, "", fmt.Errorf("%w: client name and email are required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(randomSecret(16)), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	client, err := users.Create(ctx, &domain.User{
		Name:         name,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
		Company:      company,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, "", err
	}

	token := randomSecret(24)
	if err := invites.Issue(ctx, token, client.ID, inviteTTL); err != nil {
		return nil, "", fmt.Errorf("issue invite token: %w", err)
	}
	return client, token, nil
}

// randomSecret returns n random bytes hex-encoded.
func randomSecret(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// fallback: derive from the clock
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
