package domain

import "time"

// allowedMIMETypes is the upload allow-list: images, PDF, the common Office
// formats, postscript (AI) and photoshop (PSD).
var allowedMIMETypes = map[string]struct{}{
	"image/jpeg":               {},
	"image/jpg":                {},
	"image/png":                {},
	"image/gif":                {},
	"application/pdf":          {},
	"application/msword":       {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   {},
	"application/vnd.ms-excel": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         {},
	"application/vnd.ms-powerpoint":                                             {},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {},
	"application/postscript":       {},
	"image/vnd.adobe.photoshop":    {},
}

// AllowedMIMEType reports whether the declared content type may be uploaded.
// Only the declared type is checked; content is not sniffed.
func AllowedMIMEType(mime string) bool {
	_, ok := allowedMIMETypes[mime]
	return ok
}

// File is the metadata record for one uploaded asset. The bytes themselves
// live in the blob store under StoragePath.
type File struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	OriginalName string    `json:"original_name"`
	URL          string    `json:"url"`
	StoragePath  string    `json:"-"`
	MIMEType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	ProjectID    string    `json:"project_id"`
	UploadedBy   string    `json:"uploaded_by"`
	UploadedAt   time.Time `json:"uploaded_at"`
}
