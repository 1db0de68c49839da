package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
	"github.com/alozievictor/feedbackapp/internal/core/ports"
)

type fileFixture struct {
	files    *stubFileRepo
	feedback *stubFeedbackRepo
	projects *stubProjectRepo
	activity *stubActivityRepo
	blobs    *stubBlobStore
	svc      *FileService
}

func newFileFixture(maxBytes int64) *fileFixture {
	f := &fileFixture{
		files:    newStubFileRepo(),
		feedback: newStubFeedbackRepo(),
		projects: newStubProjectRepo(),
		activity: &stubActivityRepo{},
		blobs:    newStubBlobStore(),
	}
	f.svc = NewFileService(f.files, f.feedback, f.projects, f.activity, f.blobs, maxBytes, discardLogger)
	return f
}

func pngUpload(projectID string) ports.UploadFileInput {
	return ports.UploadFileInput{
		ProjectID:    projectID,
		OriginalName: "homepage.png",
		MIMEType:     "image/png",
		Size:         1024,
		Content:      strings.NewReader("fake png bytes"),
	}
}

func TestFileService_Upload_Success(t *testing.T) {
	f := newFileFixture(0)
	seedProject(f.projects, "project_a", clientActor.ID)

	file, err := f.svc.Upload(context.Background(), adminActor, pngUpload("project_a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file.Name != "homepage.png" {
		t.Errorf("name must default to original name, got %q", file.Name)
	}
	if !strings.HasPrefix(file.StoragePath, "uploads/") || !strings.HasSuffix(file.StoragePath, ".png") {
		t.Errorf("unexpected storage key %q", file.StoragePath)
	}
	if !f.blobs.stored[file.StoragePath] {
		t.Error("blob not written")
	}

	project, _ := f.projects.FindByID(context.Background(), "project_a")
	if len(project.FileIDs) != 1 || project.FileIDs[0] != file.ID {
		t.Errorf("file id not attached to project, got %v", project.FileIDs)
	}
	if got := f.activity.lastAction("project_a"); got != "New file uploaded: homepage.png" {
		t.Errorf("unexpected activity %q", got)
	}
}

func TestFileService_Upload_NonAdminForbidden(t *testing.T) {
	f := newFileFixture(0)
	seedProject(f.projects, "project_a", clientActor.ID)

	_, err := f.svc.Upload(context.Background(), clientActor, pngUpload("project_a"))
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

// A rejected upload must leave the project's file list untouched.
func TestFileService_Upload_RejectedMIMELeavesProjectUnchanged(t *testing.T) {
	f := newFileFixture(0)
	seedProject(f.projects, "project_a", clientActor.ID)

	in := pngUpload("project_a")
	in.MIMEType = "application/x-msdownload"
	_, err := f.svc.Upload(context.Background(), adminActor, in)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	project, _ := f.projects.FindByID(context.Background(), "project_a")
	if len(project.FileIDs) != 0 {
		t.Errorf("file list must be unchanged, got %v", project.FileIDs)
	}
	if len(f.blobs.stored) != 0 {
		t.Error("no blob may be written for a rejected upload")
	}
}

func TestFileService_Upload_OversizeRejected(t *testing.T) {
	f := newFileFixture(512)
	seedProject(f.projects, "project_a", clientActor.ID)

	in := pngUpload("project_a")
	in.Size = 513
	_, err := f.svc.Upload(context.Background(), adminActor, in)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

// When the target project does not exist the already-written blob is removed
// so storage never keeps orphans.
func TestFileService_Upload_MissingProjectCleansBlob(t *testing.T) {
	f := newFileFixture(0)

	_, err := f.svc.Upload(context.Background(), adminActor, pngUpload("missing"))
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
	if len(f.blobs.stored) != 0 {
		t.Errorf("orphaned blob left behind: %v", f.blobs.stored)
	}
	if len(f.blobs.removed) != 1 {
		t.Errorf("expected exactly one blob removal, got %d", len(f.blobs.removed))
	}
}

func TestFileService_ListByProject_AccessControl(t *testing.T) {
	f := newFileFixture(0)
	seedProject(f.projects, "project_a", clientActor.ID)

	if _, err := f.svc.ListByProject(context.Background(), clientActor, "project_a"); err != nil {
		t.Errorf("owner must list own files: %v", err)
	}
	if _, err := f.svc.ListByProject(context.Background(), otherClient, "project_a"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("foreign client must be forbidden, got %v", err)
	}
}

func TestFileService_Delete_RemovesEverything(t *testing.T) {
	f := newFileFixture(0)
	project := seedProject(f.projects, "project_a", clientActor.ID)
	_ = f.projects.AttachFile(context.Background(), project.ID, "file_1")
	f.files.add(&domain.File{ID: "file_1", Name: "homepage.png", ProjectID: "project_a", StoragePath: "uploads/k1"})
	f.feedback.add(&domain.Feedback{ID: "fb_1", FileID: "file_1", ProjectID: "project_a"})
	f.blobs.stored["uploads/k1"] = true

	if err := f.svc.Delete(context.Background(), adminActor, "file_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.blobs.stored) != 0 {
		t.Error("blob must be removed")
	}
	if len(f.feedback.byID) != 0 {
		t.Error("file's feedback must be removed")
	}
	got, _ := f.projects.FindByID(context.Background(), "project_a")
	if len(got.FileIDs) != 0 {
		t.Errorf("file id must be detached from project, got %v", got.FileIDs)
	}
	if a := f.activity.lastAction("project_a"); a != "File deleted: homepage.png" {
		t.Errorf("unexpected activity %q", a)
	}

	// Second delete: the record is gone.
	if err := f.svc.Delete(context.Background(), adminActor, "file_1"); !errors.Is(err, domain.ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound on second delete, got %v", err)
	}
}

func TestFileService_Delete_NonAdminForbidden(t *testing.T) {
	f := newFileFixture(0)
	seedProject(f.projects, "project_a", clientActor.ID)
	f.files.add(&domain.File{ID: "file_1", ProjectID: "project_a"})

	if err := f.svc.Delete(context.Background(), clientActor, "file_1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
