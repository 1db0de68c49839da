package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
	"github.com/alozievictor/feedbackapp/internal/core/ports"
)

// FeedbackService implements the feedback ledger.
type FeedbackService struct {
	feedback ports.FeedbackRepository
	files    ports.FileRepository
	projects ports.ProjectRepository
	activity ports.ActivityRepository
	log      zerolog.Logger
}

func NewFeedbackService(
	feedback ports.FeedbackRepository,
	files ports.FileRepository,
	projects ports.ProjectRepository,
	activity ports.ActivityRepository,
	log zerolog.Logger,
) *FeedbackService {
	return &FeedbackService{
		feedback: feedback,
		files:    files,
		projects: projects,
		activity: activity,
		log:      log,
	}
}

// resolveProject walks file → project for the permission check.
func (s *FeedbackService) resolveProject(ctx context.Context, fileID string) (*domain.File, *domain.Project, error) {
	file, err := s.files.FindByID(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}
	project, err := s.projects.FindByID(ctx, file.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	return file, project, nil
}

func (s *FeedbackService) ListByFile(ctx context.Context, actor domain.Actor, fileID string) ([]*domain.Feedback, error) {
	_, project, err := s.resolveProject(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccessProject(actor, project.ClientID) {
		return nil, domain.ErrForbidden
	}
	return s.feedback.ListByFile(ctx, fileID)
}

func (s *FeedbackService) Create(ctx context.Context, actor domain.Actor, in ports.CreateFeedbackInput) (*domain.Feedback, error) {
	if in.Content == "" {
		return nil, fmt.Errorf("%w: feedback content is required", domain.ErrValidation)
	}

	file, project, err := s.resolveProject(ctx, in.FileID)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccessProject(actor, project.ClientID) {
		return nil, domain.ErrForbidden
	}

	coords := domain.Coordinates{}
	if in.X != nil {
		coords.X = *in.X
	}
	if in.Y != nil {
		coords.Y = *in.Y
	}
	if in.Width != nil {
		coords.Width = *in.Width
	}
	if in.Height != nil {
		coords.Height = *in.Height
	}

	now := time.Now().UTC()
	fb, err := s.feedback.Create(ctx, &domain.Feedback{
		Content:     in.Content,
		FileID:      file.ID,
		ProjectID:   file.ProjectID,
		CreatedBy:   actor.ID,
		CreatorName: actor.Name,
		Status:      domain.FeedbackOpen,
		Coordinates: coords,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	recordActivity(ctx, s.activity, s.log, project.ID, "New feedback added by "+actor.Name, actor)
	return fb, nil
}

// canMutate applies the creator-or-admin rule.
func canMutate(actor domain.Actor, fb *domain.Feedback) bool {
	return domain.IsAdmin(actor) || fb.CreatedBy == actor.ID
}

func (s *FeedbackService) Update(ctx context.Context, actor domain.Actor, id string, in ports.UpdateFeedbackInput) (*domain.Feedback, error) {
	fb, err := s.feedback.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canMutate(actor, fb) {
		return nil, domain.ErrForbidden
	}

	if in.Content != nil {
		fb.Content = *in.Content
	}
	if in.Status != nil {
		if !domain.ValidFeedbackStatus(*in.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *in.Status)
		}
		fb.Status = *in.Status
	}
	if in.X != nil {
		fb.Coordinates.X = *in.X
	}
	if in.Y != nil {
		fb.Coordinates.Y = *in.Y
	}
	if in.Width != nil {
		fb.Coordinates.Width = *in.Width
	}
	if in.Height != nil {
		fb.Coordinates.Height = *in.Height
	}
	fb.UpdatedAt = time.Now().UTC()

	if err := s.feedback.Update(ctx, fb); err != nil {
		return nil, err
	}
	recordActivity(ctx, s.activity, s.log, fb.ProjectID, "Feedback updated by "+actor.Name, actor)
	return fb, nil
}

func (s *FeedbackService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	fb, err := s.feedback.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !canMutate(actor, fb) {
		return domain.ErrForbidden
	}

	if err := s.feedback.Delete(ctx, id); err != nil {
		return err
	}
	recordActivity(ctx, s.activity, s.log, fb.ProjectID, "Feedback deleted by "+actor.Name, actor)
	return nil
}

// ToggleResolve is the one feedback mutation denied to clients outright.
func (s *FeedbackService) ToggleResolve(ctx context.Context, actor domain.Actor, id string) (*domain.Feedback, error) {
	if !domain.IsAdmin(actor) {
		return nil, domain.ErrForbidden
	}

	fb, err := s.feedback.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	fb.Status = fb.Status.Toggled()
	fb.UpdatedAt = time.Now().UTC()
	if err := s.feedback.Update(ctx, fb); err != nil {
		return nil, err
	}

	action := "Feedback reopened by " + actor.Name
	if fb.Status == domain.FeedbackResolved {
		action = "Feedback resolved by " + actor.Name
	}
	recordActivity(ctx, s.activity, s.log, fb.ProjectID, action, actor)
	return fb, nil
}
