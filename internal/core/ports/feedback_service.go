package ports

import (
	"context"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
)

// CreateFeedbackInput carries a new comment on a file. Unset coordinates
// default to zero.
type CreateFeedbackInput struct {
	FileID  string
	Content string
	X       *float64
	Y       *float64
	Width   *float64
	Height  *float64
}

// UpdateFeedbackInput is a partial update. Nil fields are left unchanged.
type UpdateFeedbackInput struct {
	Content *string
	Status  *domain.FeedbackStatus
	X       *float64
	Y       *float64
	Width   *float64
	Height  *float64
}

// FeedbackService defines feedback use-cases.
type FeedbackService interface {
	ListByFile(ctx context.Context, actor domain.Actor, fileID string) ([]*domain.Feedback, error)
	Create(ctx context.Context, actor domain.Actor, in CreateFeedbackInput) (*domain.Feedback, error)
	// Update edits content, status, or coordinates; creator or admin only.
	Update(ctx context.Context, actor domain.Actor, id string, in UpdateFeedbackInput) (*domain.Feedback, error)
	// Delete removes the feedback; creator or admin only.
	Delete(ctx context.Context, actor domain.Actor, id string) error
	// ToggleResolve flips open and resolved (admin only).
	ToggleResolve(ctx context.Context, actor domain.Actor, id string) (*domain.Feedback, error)
}
