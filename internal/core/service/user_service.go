package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
	"github.com/alozievictor/feedbackapp/internal/core/ports"
)

// UserService implements account management.
type UserService struct {
	users   ports.UserRepository
	invites ports.InviteStore
	log     zerolog.Logger
}

func NewUserService(users ports.UserRepository, invites ports.InviteStore, log zerolog.Logger) *UserService {
	return &UserService{users: users, invites: invites, log: log}
}

func (s *UserService) List(ctx context.Context, actor domain.Actor, clientsOnly bool) ([]*domain.User, error) {
	if !domain.IsAdmin(actor) {
		return nil, domain.ErrForbidden
	}
	return s.users.List(ctx, clientsOnly)
}

func (s *UserService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.User, error) {
	if !domain.IsAdmin(actor) && actor.ID != id {
		return nil, domain.ErrForbidden
	}
	return s.users.FindByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, actor domain.Actor, id string, in ports.UpdateUserInput) (*domain.User, error) {
	if !domain.IsAdmin(actor) && actor.ID != id {
		return nil, domain.ErrForbidden
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Company != nil {
		user.Company = *in.Company
	}
	if in.Position != nil {
		user.Position = *in.Position
	}
	if in.Avatar != nil {
		user.Avatar = *in.Avatar
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete hard-deletes an account. Projects owned by the user are not touched.
func (s *UserService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if !domain.IsAdmin(actor) {
		return domain.ErrForbidden
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Str("deleted_by", actor.ID).Msg("user deleted")
	return nil
}

func (s *UserService) ToggleActive(ctx context.Context, actor domain.Actor, id string) (*domain.User, error) {
	if !domain.IsAdmin(actor) {
		return nil, domain.ErrForbidden
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.IsActive = !user.IsActive
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Bool("is_active", user.IsActive).Msg("user status toggled")
	return user, nil
}

func (s *UserService) CreateClient(ctx context.Context, actor domain.Actor, in ports.CreateClientInput) (*ports.CreateClientResult, error) {
	if !domain.IsAdmin(actor) {
		return nil, domain.ErrForbidden
	}
	client, token, err := provisionClient(ctx, s.users, s.invites, in.Name, in.Email, in.Company)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("client_id", client.ID).Str("created_by", actor.ID).Msg("client provisioned")
	return &ports.CreateClientResult{User: client, InviteToken: token}, nil
}
