package domain

import "time"

// FeedbackStatus is the canonical three-state feedback vocabulary.
type FeedbackStatus string

const (
	FeedbackOpen     FeedbackStatus = "open"
	FeedbackResolved FeedbackStatus = "resolved"
	FeedbackRejected FeedbackStatus = "rejected"
)

// ValidFeedbackStatus reports whether s is a known feedback status.
func ValidFeedbackStatus(s FeedbackStatus) bool {
	switch s {
	case FeedbackOpen, FeedbackResolved, FeedbackRejected:
		return true
	}
	return false
}

// Toggled returns the status after an admin resolve-toggle: open becomes
// resolved, resolved reopens. Rejected feedback is left untouched.
func (s FeedbackStatus) Toggled() FeedbackStatus {
	switch s {
	case FeedbackResolved:
		return FeedbackOpen
	case FeedbackOpen:
		return FeedbackResolved
	}
	return s
}

// Coordinates pinpoint the region of a design a comment refers to, in pixels.
// A zero value means the feedback is not anchored.
type Coordinates struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Feedback is a comment anchored to a file. ProjectID is denormalized from
// the file so permission checks need a single lookup.
type Feedback struct {
	ID          string         `json:"id"`
	Content     string         `json:"content"`
	FileID      string         `json:"file_id"`
	ProjectID   string         `json:"project_id"`
	CreatedBy   string         `json:"created_by"`
	CreatorName string         `json:"creator_name"`
	Status      FeedbackStatus `json:"status"`
	Coordinates Coordinates    `json:"coordinates"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
