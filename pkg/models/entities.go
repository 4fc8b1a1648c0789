package models

import "time"

// Task is a todo item, either scoped to a job or standalone
type Task struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	UserID    string     `gorm:"index;not null" json:"user_id"`
	JobID     string     `gorm:"index" json:"job_id,omitempty"`
	Title     string     `gorm:"not null" json:"title"`
	DueAt     *time.Time `json:"due_at,omitempty"`
	Done      bool       `json:"done"`
	CreatedAt time.Time  `json:"created_at"`
}

// Note is a free-text annotation attached to a job
type Note struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	JobID     string    `gorm:"index;not null" json:"job_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Contact is a person connected to an application process
type Contact struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	JobID     string    `gorm:"index" json:"job_id,omitempty"`
	Name      string    `gorm:"not null" json:"name"`
	Role      string    `json:"role,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DocumentType classifies an uploaded document
type DocumentType string

const (
	DocumentCV          DocumentType = "CV"
	DocumentCoverLetter DocumentType = "COVER_LETTER"
	DocumentOther       DocumentType = "OTHER"
)

// Document is the metadata record for a file stored in the blob store
type Document struct {
	ID        string       `gorm:"primaryKey;size:36" json:"id"`
	UserID    string       `gorm:"index;not null" json:"user_id"`
	JobID     string       `gorm:"index" json:"job_id,omitempty"`
	Label     string       `gorm:"not null" json:"label"`
	Type      DocumentType `gorm:"not null" json:"type"`
	BlobURL   string       `gorm:"not null" json:"blob_url"`
	Original  string       `json:"original,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// MaxUploadSize is the largest accepted document upload in bytes
const MaxUploadSize = 10 << 20

// AllowedUploadTypes lists the MIME types accepted for document uploads
var AllowedUploadTypes = []string{
	"application/pdf",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"image/png",
	"image/jpeg",
	"image/webp",
}

// IsAllowedUploadType reports whether contentType may be uploaded
func IsAllowedUploadType(contentType string) bool {
	for _, allowed := range AllowedUploadTypes {
		if allowed == contentType {
			return true
		}
	}
	return false
}
