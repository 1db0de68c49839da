package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
	"github.com/alozievictor/feedbackapp/internal/core/ports"
)

// recordActivity appends an entry to the project's activity log. The primary
// write is the operation's outcome of record: a failed append is logged and
// swallowed, never compensated.
func recordActivity(ctx context.Context, repo ports.ActivityRepository, log zerolog.Logger, projectID, action string, actor domain.Actor) {
	entry := &domain.ActivityEntry{
		ProjectID: projectID,
		Action:    action,
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Timestamp: time.Now().UTC(),
	}
	if err := repo.Append(ctx, entry); err != nil {
		log.Warn().Err(err).
			Str("project_id", projectID).
			Str("action", action).
			Msg("failed to append activity entry")
	}
}
