package ports

import (
	"context"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
)

// UpdateUserInput is a partial profile update. Nil fields are left unchanged.
type UpdateUserInput struct {
	Name     *string
	Company  *string
	Position *string
	Avatar   *string
}

// CreateClientInput provisions a client account without a chosen password.
type CreateClientInput struct {
	Name    string
	Email   string
	Company string
}

// CreateClientResult carries the new account and its one-time invite token.
// Delivering the token to the client is out of scope.
type CreateClientResult struct {
	User        *domain.User
	InviteToken string
}

// UserService defines account management use-cases.
type UserService interface {
	// List returns all users (admin only), optionally filtered to clients.
	List(ctx context.Context, actor domain.Actor, clientsOnly bool) ([]*domain.User, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.User, error)
	// Update edits a profile: callers may edit themselves, admins anyone.
	Update(ctx context.Context, actor domain.Actor, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	// ToggleActive flips the active flag (admin only).
	ToggleActive(ctx context.Context, actor domain.Actor, id string) (*domain.User, error)
	// CreateClient provisions a client account with an invite token (admin only).
	CreateClient(ctx context.Context, actor domain.Actor, in CreateClientInput) (*CreateClientResult, error)
}
