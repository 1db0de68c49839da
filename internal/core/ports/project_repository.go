package ports

import (
	"context"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
)

// ListProjectsFilter carries the query parameters for listing projects.
// ClientID is enforced by the service layer for client-role callers.
type ListProjectsFilter struct {
	ClientID string               // empty = no filter (admin)
	Status   domain.ProjectStatus // optional
	Search   string               // optional: case-insensitive substring on name
}

// ProjectRepository defines persistence for projects. AttachFile and
// DetachFile mutate the embedded file list atomically so concurrent uploads
// never drop ids.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// List returns projects matching filter, most recently updated first.
	List(ctx context.Context, filter ListProjectsFilter) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
	AttachFile(ctx context.Context, projectID, fileID string) error
	DetachFile(ctx context.Context, projectID, fileID string) error
}

// ActivityRepository is the append-only activity log, keyed by project.
type ActivityRepository interface {
	Append(ctx context.Context, entry *domain.ActivityEntry) error
	// ListByProject returns entries newest-first.
	ListByProject(ctx context.Context, projectID string) ([]*domain.ActivityEntry, error)
	DeleteByProject(ctx context.Context, projectID string) error
}
