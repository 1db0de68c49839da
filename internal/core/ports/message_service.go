package ports

import (
	"context"
	"io"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
)

// AttachmentUpload is one inbound message attachment.
type AttachmentUpload struct {
	Filename string
	MIMEType string
	Size     int64
	Content  io.Reader
}

// CreateMessageInput carries a new chat message. Text may be empty only when
// at least one attachment is present.
type CreateMessageInput struct {
	ProjectID   string
	Text        string
	Attachments []AttachmentUpload
}

// MessageService defines chat use-cases.
type MessageService interface {
	// ListByProject returns the thread oldest-first with attachment URLs
	// rehydrated.
	ListByProject(ctx context.Context, actor domain.Actor, projectID string) ([]*domain.Message, error)
	Create(ctx context.Context, actor domain.Actor, in CreateMessageInput) (*domain.Message, error)
	// MarkRead flips the read flag once; marking an already-read message
	// is a no-op.
	MarkRead(ctx context.Context, actor domain.Actor, id string) error
}
