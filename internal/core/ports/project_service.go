package ports

import (
	"context"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
)

// CreateProjectInput carries the data to create a project. Exactly one of
// ClientID or (ClientName, ClientEmail) must identify the owning client; the
// latter provisions a new client account.
type CreateProjectInput struct {
	Name        string
	Description string
	ClientID    string
	ClientName  string
	ClientEmail string
}

// CreateProjectResult carries the created project and, when a client was
// provisioned inline, that client's one-time invite token.
type CreateProjectResult struct {
	Project     *domain.Project
	InviteToken string
}

// UpdateProjectInput is a partial update. Nil fields are left unchanged.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	Status      *domain.ProjectStatus
}

// ProjectDetail is the full project view: the document plus its joined
// files and activity log (newest activity first).
type ProjectDetail struct {
	Project  *domain.Project
	Files    []*domain.File
	Activity []*domain.ActivityEntry
}

// ProjectService defines project lifecycle use-cases.
type ProjectService interface {
	// List returns projects visible to the actor, most recently updated
	// first. Client callers are always scoped to their own projects.
	List(ctx context.Context, actor domain.Actor, filter ListProjectsFilter) ([]*domain.Project, error)
	Create(ctx context.Context, actor domain.Actor, in CreateProjectInput) (*CreateProjectResult, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*ProjectDetail, error)
	Update(ctx context.Context, actor domain.Actor, id string, in UpdateProjectInput) (*domain.Project, error)
	// Delete removes the project and cascades to its files (blobs included),
	// feedback, messages, and activity log.
	Delete(ctx context.Context, actor domain.Actor, id string) error
}
