package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
	"github.com/alozievictor/feedbackapp/internal/core/ports"
)

// ProjectService implements the project registry: lifecycle, scoped listing,
// inline client provisioning, and cascade delete.
type ProjectService struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	invites  ports.InviteStore
	files    ports.FileRepository
	feedback ports.FeedbackRepository
	messages ports.MessageRepository
	activity ports.ActivityRepository
	blobs    ports.BlobStore
	log      zerolog.Logger
}

func NewProjectService(
	projects ports.ProjectRepository,
	users ports.UserRepository,
	invites ports.InviteStore,
	files ports.FileRepository,
	feedback ports.FeedbackRepository,
	messages ports.MessageRepository,
	activity ports.ActivityRepository,
	blobs ports.BlobStore,
	log zerolog.Logger,
) *ProjectService {
	return &ProjectService{
		projects: projects,
		users:    users,
		invites:  invites,
		files:    files,
		feedback: feedback,
		messages: messages,
		activity: activity,
		blobs:    blobs,
		log:      log,
	}
}

func (s *ProjectService) List(ctx context.Context, actor domain.Actor, filter ports.ListProjectsFilter) ([]*domain.Project, error) {
	// Clients are always scoped to their own projects regardless of filter.
	if !domain.IsAdmin(actor) {
		filter.ClientID = actor.ID
	}
	return s.projects.List(ctx, filter)
}

func (s *ProjectService) Create(ctx context.Context, actor domain.Actor, in ports.CreateProjectInput) (*ports.CreateProjectResult, error) {
	if !domain.IsAdmin(actor) {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: project name is required", domain.ErrValidation)
	}

	var (
		client      *domain.User
		inviteToken string
		err         error
	)
	switch {
	case in.ClientID != "":
		client, err = s.users.FindByID(ctx, in.ClientID)
		if err != nil {
			return nil, err
		}
		if client.Role != domain.RoleClient {
			return nil, fmt.Errorf("%w: invalid client id", domain.ErrValidation)
		}
	case in.ClientName != "" && in.ClientEmail != "":
		client, inviteToken, err = provisionClient(ctx, s.users, s.invites, in.ClientName, in.ClientEmail, "")
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: either client id or client name and email must be provided", domain.ErrValidation)
	}

	now := time.Now().UTC()
	project, err := s.projects.Create(ctx, &domain.Project{
		Name:        in.Name,
		Description: in.Description,
		Status:      domain.StatusAwaitingFeedback,
		ClientID:    client.ID,
		ClientName:  client.Name,
		ClientEmail: client.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	recordActivity(ctx, s.activity, s.log, project.ID, "Project created", actor)
	s.log.Info().Str("project_id", project.ID).Str("client_id", client.ID).Msg("project created")

	return &ports.CreateProjectResult{Project: project, InviteToken: inviteToken}, nil
}

func (s *ProjectService) Get(ctx context.Context, actor domain.Actor, id string) (*ports.ProjectDetail, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccessProject(actor, project.ClientID) {
		return nil, domain.ErrForbidden
	}

	files, err := s.files.ListByProject(ctx, id)
	if err != nil {
		return nil, err
	}
	activity, err := s.activity.ListByProject(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.ProjectDetail{Project: project, Files: files, Activity: activity}, nil
}

func (s *ProjectService) Update(ctx context.Context, actor domain.Actor, id string, in ports.UpdateProjectInput) (*domain.Project, error) {
	if !domain.IsAdmin(actor) {
		return nil, domain.ErrForbidden
	}

	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		project.Name = *in.Name
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.Status != nil {
		if !domain.ValidProjectStatus(*in.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *in.Status)
		}
		project.Status = *in.Status
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}

	// A status change takes priority over the generic message.
	action := "Project details updated"
	if in.Status != nil {
		action = "Project status updated to " + string(*in.Status)
	}
	recordActivity(ctx, s.activity, s.log, project.ID, action, actor)

	return project, nil
}

// Delete removes the project and synchronously cascades to everything it
// owns: file blobs and records, feedback, messages (attachment blobs
// included), and the activity log.
func (s *ProjectService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if !domain.IsAdmin(actor) {
		return domain.ErrForbidden
	}

	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return err
	}

	files, err := s.files.ListByProject(ctx, id)
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := s.blobs.Remove(ctx, f.StoragePath); err != nil {
			s.log.Warn().Err(err).Str("key", f.StoragePath).Msg("failed to remove file blob")
		}
	}

	messages, err := s.messages.ListByProject(ctx, id)
	if err != nil {
		return err
	}
	for _, m := range messages {
		for _, a := range m.Attachments {
			if err := s.blobs.Remove(ctx, a.StoragePath); err != nil {
				s.log.Warn().Err(err).Str("key", a.StoragePath).Msg("failed to remove attachment blob")
			}
		}
	}

	if err := s.feedback.DeleteByProject(ctx, id); err != nil {
		return err
	}
	if err := s.files.DeleteByProject(ctx, id); err != nil {
		return err
	}
	if err := s.messages.DeleteByProject(ctx, id); err != nil {
		return err
	}
	if err := s.activity.DeleteByProject(ctx, id); err != nil {
		return err
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("project_id", id).Str("name", project.Name).Msg("project deleted")
	return nil
}
