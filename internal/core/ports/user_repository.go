package ports

import (
	"context"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
)

// UserRepository defines persistence for user accounts. Email lookups are
// case-insensitive (emails are stored lowercased).
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns all users, or only client-role users when clientsOnly is set.
	List(ctx context.Context, clientsOnly bool) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
