package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
	"github.com/alozievictor/feedbackapp/internal/core/ports"
)

const minPasswordLen = 8

// AuthService implements registration, login, and invite redemption.
type AuthService struct {
	users     ports.UserRepository
	invites   ports.InviteStore
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(users ports.UserRepository, invites ports.InviteStore, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 30 * 24 * time.Hour
	}
	return &AuthService{users: users, invites: invites, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	if in.Name == "" || in.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", domain.ErrValidation)
	}
	if len(in.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}
	role := in.Role
	if role == "" {
		role = domain.RoleClient
	}
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("%w: role must be admin or client", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		Role:         role,
		Company:      in.Company,
		Position:     in.Position,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: user}, nil
}

// Login verifies credentials. Every failure mode — unknown email, wrong
// password, deactivated account — returns the same error so accounts cannot
// be enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) Me(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	return s.users.FindByID(ctx, actor.ID)
}

// AcceptInvite consumes a one-time invite token and sets the client's own
// password. The token was issued when an admin provisioned the account.
func (s *AuthService) AcceptInvite(ctx context.Context, token, password string) (*ports.AuthResult, error) {
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	userID, err := s.invites.Redeem(ctx, token)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)
	user.IsActive = true
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	sessionToken, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: sessionToken, User: user}, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"name": user.Name,
		"role": user.Role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
