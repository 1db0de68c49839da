package domain

import "time"

// MaxMessageAttachments caps how many files one message may carry.
const MaxMessageAttachments = 5

// Attachment is one file carried by a message. URL is rehydrated from the
// blob store on read, not persisted.
type Attachment struct {
	Filename    string `json:"filename"`
	StoragePath string `json:"-"`
	Size        int64  `json:"size"`
	MIMEType    string `json:"mime_type"`
	URL         string `json:"url,omitempty"`
}

// Message is one entry in a project's chat thread. It must carry non-empty
// text or at least one attachment. IsRead flips once, unread to read.
type Message struct {
	ID          string       `json:"id"`
	Text        string       `json:"text"`
	ProjectID   string       `json:"project_id"`
	SenderID    string       `json:"sender_id"`
	SenderName  string       `json:"sender_name"`
	Attachments []Attachment `json:"attachments"`
	IsRead      bool         `json:"is_read"`
	CreatedAt   time.Time    `json:"created_at"`
}
