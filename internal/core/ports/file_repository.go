package ports

import (
	"context"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
)

// FileRepository defines persistence for file metadata records.
type FileRepository interface {
	Create(ctx context.Context, f *domain.File) (*domain.File, error)
	FindByID(ctx context.Context, id string) (*domain.File, error)
	// ListByProject returns files newest-first by upload time.
	ListByProject(ctx context.Context, projectID string) ([]*domain.File, error)
	Delete(ctx context.Context, id string) error
	DeleteByProject(ctx context.Context, projectID string) error
}

// FeedbackRepository defines persistence for feedback items.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error)
	FindByID(ctx context.Context, id string) (*domain.Feedback, error)
	// ListByFile returns feedback newest-first.
	ListByFile(ctx context.Context, fileID string) ([]*domain.Feedback, error)
	Update(ctx context.Context, fb *domain.Feedback) error
	Delete(ctx context.Context, id string) error
	DeleteByFile(ctx context.Context, fileID string) error
	DeleteByProject(ctx context.Context, projectID string) error
}

// MessageRepository defines persistence for project chat threads.
type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	FindByID(ctx context.Context, id string) (*domain.Message, error)
	// ListByProject returns messages oldest-first (chat order).
	ListByProject(ctx context.Context, projectID string) ([]*domain.Message, error)
	MarkRead(ctx context.Context, id string) error
	DeleteByProject(ctx context.Context, projectID string) error
}
