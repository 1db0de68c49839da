package domain

import "time"

// ProjectStatus represents the review lifecycle state of a project.
type ProjectStatus string

const (
	StatusAwaitingFeedback ProjectStatus = "awaiting_feedback"
	StatusFeedbackReceived ProjectStatus = "feedback_received"
	StatusInProgress       ProjectStatus = "in_progress"
	StatusCompleted        ProjectStatus = "completed"
)

// ValidProjectStatus reports whether s is a known status value. Transitions
// between statuses are deliberately unguarded: an admin may move a project to
// any state at any time.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case StatusAwaitingFeedback, StatusFeedbackReceived, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Project is the ownership boundary for files, feedback, and messages.
// ClientName and ClientEmail are captured at creation time and are not kept
// in sync with later User updates.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Status      ProjectStatus `json:"status"`
	ClientID    string        `json:"client_id"`
	ClientName  string        `json:"client_name"`
	ClientEmail string        `json:"client_email"`
	FileIDs     []string      `json:"file_ids"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ActivityEntry is one line in a project's append-only activity log. Entries
// live in their own collection so concurrent appends never race on the
// project document.
type ActivityEntry struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Action    string    `json:"action"`
	ActorID   string    `json:"actor_id"`
	ActorName string    `json:"actor_name"`
	Timestamp time.Time `json:"timestamp"`
}
