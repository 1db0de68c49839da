package ports

import (
	"context"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
)

// RegisterInput carries the data for self-registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string // defaults to client when empty
	Company  string
	Position string
}

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService defines credential and token use-cases.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Me returns the fresh user record for the authenticated actor.
	Me(ctx context.Context, actor domain.Actor) (*domain.User, error)
	// AcceptInvite redeems a one-time invite token and sets the client's
	// own password, returning a session like a normal login.
	AcceptInvite(ctx context.Context, token, password string) (*AuthResult, error)
}
