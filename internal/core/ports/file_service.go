package ports

import (
	"context"
	"io"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
)

// UploadFileInput carries one inbound asset. Name defaults to OriginalName
// when empty. Size and MIMEType are the declared values from the upload.
type UploadFileInput struct {
	ProjectID    string
	Name         string
	OriginalName string
	MIMEType     string
	Size         int64
	Content      io.Reader
}

// FileService defines asset use-cases.
type FileService interface {
	// Upload stores the blob, creates the record, attaches it to the
	// project, and logs activity (admin only).
	Upload(ctx context.Context, actor domain.Actor, in UploadFileInput) (*domain.File, error)
	ListByProject(ctx context.Context, actor domain.Actor, projectID string) ([]*domain.File, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.File, error)
	// Delete removes the blob and record and cascades to the file's
	// feedback (admin only).
	Delete(ctx context.Context, actor domain.Actor, id string) error
}
