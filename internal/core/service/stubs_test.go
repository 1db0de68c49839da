package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
	"github.com/alozievictor/feedbackapp/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[string]*domain.User
	seq       int
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	clone := *u
	r.byID[u.ID] = &clone
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.seq++
	clone := *u
	clone.ID = fmt.Sprintf("user_%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) List(_ context.Context, clientsOnly bool) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.byID {
		if clientsOnly && u.Role != domain.RoleClient {
			continue
		}
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *u
	r.byID[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubProjectRepo struct {
	byID      map[string]*domain.Project
	seq       int
	updateErr error
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{byID: make(map[string]*domain.Project)}
}

func (r *stubProjectRepo) add(p *domain.Project) *domain.Project {
	clone := *p
	r.byID[p.ID] = &clone
	return &clone
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	r.seq++
	clone := *p
	clone.ID = fmt.Sprintf("project_%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

// List applies the same filters the real Mongo repo would use.
func (r *stubProjectRepo) List(_ context.Context, f ports.ListProjectsFilter) ([]*domain.Project, error) {
	var matched []*domain.Project
	for _, p := range r.byID {
		if f.ClientID != "" && p.ClientID != f.ClientID {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
			continue
		}
		clone := *p
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].UpdatedAt.After(matched[j].UpdatedAt)
	})
	return matched, nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *domain.Project) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	stored, ok := r.byID[p.ID]
	if !ok {
		return domain.ErrProjectNotFound
	}
	clone := *p
	clone.FileIDs = stored.FileIDs
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubProjectRepo) AttachFile(_ context.Context, projectID, fileID string) error {
	p, ok := r.byID[projectID]
	if !ok {
		return domain.ErrProjectNotFound
	}
	p.FileIDs = append(p.FileIDs, fileID)
	return nil
}

func (r *stubProjectRepo) DetachFile(_ context.Context, projectID, fileID string) error {
	p, ok := r.byID[projectID]
	if !ok {
		return domain.ErrProjectNotFound
	}
	kept := p.FileIDs[:0]
	for _, id := range p.FileIDs {
		if id != fileID {
			kept = append(kept, id)
		}
	}
	p.FileIDs = kept
	return nil
}

type stubActivityRepo struct {
	entries   []*domain.ActivityEntry
	appendErr error
}

func (r *stubActivityRepo) Append(_ context.Context, e *domain.ActivityEntry) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	clone := *e
	r.entries = append(r.entries, &clone)
	return nil
}

func (r *stubActivityRepo) ListByProject(_ context.Context, projectID string) ([]*domain.ActivityEntry, error) {
	var out []*domain.ActivityEntry
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].ProjectID == projectID {
			clone := *r.entries[i]
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubActivityRepo) DeleteByProject(_ context.Context, projectID string) error {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.ProjectID != projectID {
			kept = append(kept, e)
		}
	}
	r.entries = kept
	return nil
}

// lastAction returns the most recent action recorded for a project.
func (r *stubActivityRepo) lastAction(projectID string) string {
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].ProjectID == projectID {
			return r.entries[i].Action
		}
	}
	return ""
}

type stubFileRepo struct {
	byID map[string]*domain.File
	seq  int
}

func newStubFileRepo() *stubFileRepo {
	return &stubFileRepo{byID: make(map[string]*domain.File)}
}

func (r *stubFileRepo) add(f *domain.File) *domain.File {
	clone := *f
	r.byID[f.ID] = &clone
	return &clone
}

func (r *stubFileRepo) Create(_ context.Context, f *domain.File) (*domain.File, error) {
	r.seq++
	clone := *f
	clone.ID = fmt.Sprintf("file_%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubFileRepo) FindByID(_ context.Context, id string) (*domain.File, error) {
	f, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrFileNotFound
	}
	clone := *f
	return &clone, nil
}

func (r *stubFileRepo) ListByProject(_ context.Context, projectID string) ([]*domain.File, error) {
	var out []*domain.File
	for _, f := range r.byID {
		if f.ProjectID == projectID {
			clone := *f
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UploadedAt.After(out[j].UploadedAt)
	})
	return out, nil
}

func (r *stubFileRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrFileNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubFileRepo) DeleteByProject(_ context.Context, projectID string) error {
	for id, f := range r.byID {
		if f.ProjectID == projectID {
			delete(r.byID, id)
		}
	}
	return nil
}

type stubFeedbackRepo struct {
	byID map[string]*domain.Feedback
	seq  int
}

func newStubFeedbackRepo() *stubFeedbackRepo {
	return &stubFeedbackRepo{byID: make(map[string]*domain.Feedback)}
}

func (r *stubFeedbackRepo) add(fb *domain.Feedback) *domain.Feedback {
	clone := *fb
	r.byID[fb.ID] = &clone
	return &clone
}

func (r *stubFeedbackRepo) Create(_ context.Context, fb *domain.Feedback) (*domain.Feedback, error) {
	r.seq++
	clone := *fb
	clone.ID = fmt.Sprintf("feedback_%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubFeedbackRepo) FindByID(_ context.Context, id string) (*domain.Feedback, error) {
	fb, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrFeedbackNotFound
	}
	clone := *fb
	return &clone, nil
}

func (r *stubFeedbackRepo) ListByFile(_ context.Context, fileID string) ([]*domain.Feedback, error) {
	var out []*domain.Feedback
	for _, fb := range r.byID {
		if fb.FileID == fileID {
			clone := *fb
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *stubFeedbackRepo) Update(_ context.Context, fb *domain.Feedback) error {
	if _, ok := r.byID[fb.ID]; !ok {
		return domain.ErrFeedbackNotFound
	}
	clone := *fb
	r.byID[fb.ID] = &clone
	return nil
}

func (r *stubFeedbackRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrFeedbackNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubFeedbackRepo) DeleteByFile(_ context.Context, fileID string) error {
	for id, fb := range r.byID {
		if fb.FileID == fileID {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *stubFeedbackRepo) DeleteByProject(_ context.Context, projectID string) error {
	for id, fb := range r.byID {
		if fb.ProjectID == projectID {
			delete(r.byID, id)
		}
	}
	return nil
}

type stubMessageRepo struct {
	byID map[string]*domain.Message
	seq  int
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{byID: make(map[string]*domain.Message)}
}

func (r *stubMessageRepo) add(m *domain.Message) *domain.Message {
	clone := *m
	r.byID[m.ID] = &clone
	return &clone
}

func (r *stubMessageRepo) Create(_ context.Context, m *domain.Message) (*domain.Message, error) {
	r.seq++
	clone := *m
	clone.ID = fmt.Sprintf("message_%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubMessageRepo) FindByID(_ context.Context, id string) (*domain.Message, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMessageNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubMessageRepo) ListByProject(_ context.Context, projectID string) ([]*domain.Message, error) {
	var out []*domain.Message
	for _, m := range r.byID {
		if m.ProjectID == projectID {
			clone := *m
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *stubMessageRepo) MarkRead(_ context.Context, id string) error {
	m, ok := r.byID[id]
	if !ok {
		return domain.ErrMessageNotFound
	}
	m.IsRead = true
	return nil
}

func (r *stubMessageRepo) DeleteByProject(_ context.Context, projectID string) error {
	for id, m := range r.byID {
		if m.ProjectID == projectID {
			delete(r.byID, id)
		}
	}
	return nil
}

// stubBlobStore records stored keys so tests can assert on blob lifecycle.
type stubBlobStore struct {
	stored  map[string]bool
	removed []string
	putErr  error
}

func newStubBlobStore() *stubBlobStore {
	return &stubBlobStore{stored: make(map[string]bool)}
}

func (b *stubBlobStore) Put(_ context.Context, key string, content io.Reader, _ int64, _ string) (string, error) {
	if b.putErr != nil {
		return "", b.putErr
	}
	if content != nil {
		_, _ = io.Copy(io.Discard, content)
	}
	b.stored[key] = true
	return "http://blobs.local/" + key, nil
}

func (b *stubBlobStore) Remove(_ context.Context, key string) error {
	delete(b.stored, key)
	b.removed = append(b.removed, key)
	return nil
}

func (b *stubBlobStore) URL(key string) string {
	return "http://blobs.local/" + key
}

// stubInviteStore issues and redeems one-time tokens in memory.
type stubInviteStore struct {
	tokens map[string]string
}

func newStubInviteStore() *stubInviteStore {
	return &stubInviteStore{tokens: make(map[string]string)}
}

func (s *stubInviteStore) Issue(_ context.Context, token, userID string, _ time.Duration) error {
	s.tokens[token] = userID
	return nil
}

func (s *stubInviteStore) Redeem(_ context.Context, token string) (string, error) {
	userID, ok := s.tokens[token]
	if !ok {
		return "", domain.ErrInviteInvalid
	}
	delete(s.tokens, token)
	return userID, nil
}

// ---------------------------------------------------------------------------
// Shared fixtures
// ---------------------------------------------------------------------------

var (
	adminActor  = domain.Actor{ID: "admin_1", Name: "Ada Admin", Role: domain.RoleAdmin}
	clientActor = domain.Actor{ID: "client_1", Name: "Cleo Client", Role: domain.RoleClient}
	otherClient = domain.Actor{ID: "client_2", Name: "Oscar Other", Role: domain.RoleClient}
)

func seedProject(projects *stubProjectRepo, id, clientID string) *domain.Project {
	return projects.add(&domain.Project{
		ID:        id,
		Name:      "Brand refresh",
		Status:    domain.StatusAwaitingFeedback,
		ClientID:  clientID,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})
}
