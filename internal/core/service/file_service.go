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

// FileService implements the asset store. The blob is written before the
// metadata record; if the target project turns out not to exist the blob is
// removed again so storage never holds orphans from failed uploads.
type FileService struct {
	files    ports.FileRepository
	feedback ports.FeedbackRepository
	projects ports.ProjectRepository
	activity ports.ActivityRepository
	blobs    ports.BlobStore
	maxBytes int64
	log      zerolog.Logger
}

func NewFileService(
	files ports.FileRepository,
	feedback ports.FeedbackRepository,
	projects ports.ProjectRepository,
	activity ports.ActivityRepository,
	blobs ports.BlobStore,
	maxBytes int64,
	log zerolog.Logger,
) *FileService {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &FileService{
		files:    files,
		feedback: feedback,
		projects: projects,
		activity: activity,
		blobs:    blobs,
		maxBytes: maxBytes,
		log:      log,
	}
}

func (s *FileService) Upload(ctx context.Context, actor domain.Actor, in ports.UploadFileInput) (*domain.File, error) {
	if !domain.IsAdmin(actor) {
		return nil, domain.ErrForbidden
	}
	if in.OriginalName == "" || in.Content == nil {
		return nil, fmt.Errorf("%w: no file uploaded", domain.ErrValidation)
	}
	if !domain.AllowedMIMEType(in.MIMEType) {
		return nil, fmt.Errorf("%w: file type %s not supported", domain.ErrValidation, in.MIMEType)
	}
	if in.Size > s.maxBytes {
		return nil, fmt.Errorf("%w: file exceeds %d byte limit", domain.ErrValidation, s.maxBytes)
	}

	key := "uploads/" + uuid.NewString() + filepath.Ext(in.OriginalName)
	url, err := s.blobs.Put(ctx, key, in.Content, in.Size, in.MIMEType)
	if err != nil {
		return nil, fmt.Errorf("store blob: %w", err)
	}

	project, err := s.projects.FindByID(ctx, in.ProjectID)
	if err != nil {
		// The blob is already stored; clean it up before surfacing the error.
		if rmErr := s.blobs.Remove(ctx, key); rmErr != nil {
			s.log.Warn().Err(rmErr).Str("key", key).Msg("failed to remove orphaned blob")
		}
		return nil, err
	}

	name := in.Name
	if name == "" {
		name = in.OriginalName
	}
	file, err := s.files.Create(ctx, &domain.File{
		Name:         name,
		OriginalName: in.OriginalName,
		URL:          url,
		StoragePath:  key,
		MIMEType:     in.MIMEType,
		Size:         in.Size,
		ProjectID:    project.ID,
		UploadedBy:   actor.ID,
		UploadedAt:   time.Now().UTC(),
	})
	if err != nil {
		if rmErr := s.blobs.Remove(ctx, key); rmErr != nil {
			s.log.Warn().Err(rmErr).Str("key", key).Msg("failed to remove orphaned blob")
		}
		return nil, err
	}

	if err := s.projects.AttachFile(ctx, project.ID, file.ID); err != nil {
		return nil, err
	}
	recordActivity(ctx, s.activity, s.log, project.ID, "New file uploaded: "+file.Name, actor)

	s.log.Info().
		Str("file_id", file.ID).
		Str("project_id", project.ID).
		Int64("size", file.Size).
		Msg("file uploaded")
	return file, nil
}

func (s *FileService) ListByProject(ctx context.Context, actor domain.Actor, projectID string) ([]*domain.File, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccessProject(actor, project.ClientID) {
		return nil, domain.ErrForbidden
	}
	return s.files.ListByProject(ctx, projectID)
}

func (s *FileService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.File, error) {
	file, err := s.files.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	project, err := s.projects.FindByID(ctx, file.ProjectID)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccessProject(actor, project.ClientID) {
		return nil, domain.ErrForbidden
	}
	return file, nil
}

// Delete removes the blob (tolerant of it already being gone), the record,
// the file's feedback, and the id from the owning project's file list.
func (s *FileService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if !domain.IsAdmin(actor) {
		return domain.ErrForbidden
	}

	file, err := s.files.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.blobs.Remove(ctx, file.StoragePath); err != nil {
		s.log.Warn().Err(err).Str("key", file.StoragePath).Msg("failed to remove blob")
	}
	if err := s.feedback.DeleteByFile(ctx, id); err != nil {
		return err
	}
	if err := s.files.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.projects.DetachFile(ctx, file.ProjectID, id); err != nil {
		return err
	}
	recordActivity(ctx, s.activity, s.log, file.ProjectID, "File deleted: "+file.Name, actor)

	s.log.Info().Str("file_id", id).Str("project_id", file.ProjectID).Msg("file deleted")
	return nil
}
