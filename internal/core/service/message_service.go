package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
	"github.com/alozievictor/feedbackapp/internal/core/ports"
)

// MessageService implements the project chat thread.
type MessageService struct {
	messages ports.MessageRepository
	projects ports.ProjectRepository
	activity ports.ActivityRepository
	blobs    ports.BlobStore
	maxBytes int64
	log      zerolog.Logger
}

func NewMessageService(
	messages ports.MessageRepository,
	projects ports.ProjectRepository,
	activity ports.ActivityRepository,
	blobs ports.BlobStore,
	maxBytes int64,
	log zerolog.Logger,
) *MessageService {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &MessageService{
		messages: messages,
		projects: projects,
		activity: activity,
		blobs:    blobs,
		maxBytes: maxBytes,
		log:      log,
	}
}

func (s *MessageService) ListByProject(ctx context.Context, actor domain.Actor, projectID string) ([]*domain.Message, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccessProject(actor, project.ClientID) {
		return nil, domain.ErrForbidden
	}

	messages, err := s.messages.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	for _, m := range messages {
		for i := range m.Attachments {
			m.Attachments[i].URL = s.blobs.URL(m.Attachments[i].StoragePath)
		}
	}
	return messages, nil
}

func (s *MessageService) Create(ctx context.Context, actor domain.Actor, in ports.CreateMessageInput) (*domain.Message, error) {
	if in.Text == "" && len(in.Attachments) == 0 {
		return nil, fmt.Errorf("%w: message text or attachment required", domain.ErrValidation)
	}
	if len(in.Attachments) > domain.MaxMessageAttachments {
		return nil, fmt.Errorf("%w: at most %d attachments per message", domain.ErrValidation, domain.MaxMessageAttachments)
	}
	for _, a := range in.Attachments {
		if !domain.AllowedMIMEType(a.MIMEType) {
			return nil, fmt.Errorf("%w: file type %s not supported", domain.ErrValidation, a.MIMEType)
		}
		if a.Size > s.maxBytes {
			return nil, fmt.Errorf("%w: attachment exceeds %d byte limit", domain.ErrValidation, s.maxBytes)
		}
	}

	project, err := s.projects.FindByID(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccessProject(actor, project.ClientID) {
		return nil, domain.ErrForbidden
	}

	attachments := make([]domain.Attachment, 0, len(in.Attachments))
	for _, a := range in.Attachments {
		key := "messages/" + uuid.NewString() + filepath.Ext(a.Filename)
		url, err := s.blobs.Put(ctx, key, a.Content, a.Size, a.MIMEType)
		if err != nil {
			return nil, fmt.Errorf("store attachment: %w", err)
		}
		attachments = append(attachments, domain.Attachment{
			Filename:    a.Filename,
			StoragePath: key,
			Size:        a.Size,
			MIMEType:    a.MIMEType,
			URL:         url,
		})
	}

	message, err := s.messages.Create(ctx, &domain.Message{
		Text:        in.Text,
		ProjectID:   project.ID,
		SenderID:    actor.ID,
		SenderName:  actor.Name,
		Attachments: attachments,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	action := actor.Name + " sent a message"
	if len(attachments) > 0 {
		action += " with attachments"
	}
	recordActivity(ctx, s.activity, s.log, project.ID, action, actor)

	return message, nil
}

// MarkRead flips the read flag once; already-read messages are a no-op.
func (s *MessageService) MarkRead(ctx context.Context, actor domain.Actor, id string) error {
	message, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return err
	}
	project, err := s.projects.FindByID(ctx, message.ProjectID)
	if err != nil {
		return err
	}
	if !domain.CanAccessProject(actor, project.ClientID) {
		return domain.ErrForbidden
	}
	if message.IsRead {
		return nil
	}
	return s.messages.MarkRead(ctx, id)
}
