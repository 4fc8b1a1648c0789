package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JobStatus represents the pipeline stage of a tracked job application
type JobStatus string

// Operational statuses are the board columns and the only values the
// create/update API accepts.
const (
	StatusApplied   JobStatus = "APPLIED"
	StatusScreening JobStatus = "SCREENING"
	StatusInterview JobStatus = "INTERVIEW"
	StatusOffer     JobStatus = "OFFER"
	StatusRejected  JobStatus = "REJECTED"
	StatusOnHold    JobStatus = "ON_HOLD"
)

// Interchange statuses extend the operational set for CSV import/export.
// Imported rows without a status land in WISHLIST rather than APPLIED so a
// bulk-loaded backlog does not pollute the active pipeline.
const (
	StatusWishlist  JobStatus = "WISHLIST"
	StatusAccepted  JobStatus = "ACCEPTED"
	StatusWithdrawn JobStatus = "WITHDRAWN"
)

// InterchangeStatuses is the full status set accepted by the CSV importer.
var InterchangeStatuses = []JobStatus{
	StatusWishlist,
	StatusApplied,
	StatusScreening,
	StatusInterview,
	StatusOffer,
	StatusRejected,
	StatusAccepted,
	StatusWithdrawn,
}

// IsInterchangeStatus reports whether s is a valid CSV import status. The
// caller is expected to upper-case s first.
func IsInterchangeStatus(s string) bool {
	for _, valid := range InterchangeStatuses {
		if string(valid) == s {
			return true
		}
	}
	return false
}

// MaxTags is the maximum number of tags a job may carry
const MaxTags = 8

// Job is a single tracked job application owned by one user
type Job struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	UserID      string     `gorm:"index;not null" json:"user_id"`
	Title       string     `gorm:"not null" json:"title"`
	Company     string     `gorm:"not null" json:"company"`
	Location    string     `json:"location,omitempty"`
	Remote      bool       `json:"remote"`
	Source      string     `json:"source,omitempty"`
	Status      JobStatus  `gorm:"index;default:'APPLIED'" json:"status"`
	SalaryNote  string     `json:"salary_note,omitempty"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	Tags        TagList    `gorm:"type:text" json:"tags"`
	URL         string     `json:"url,omitempty"`
	AppliedAt   *time.Time `json:"applied_at,omitempty"`
	NextAction  *time.Time `json:"next_action_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TagList stores job tags as a JSON-encoded text column
type TagList []string

// Value implements driver.Valuer
func (t TagList) Value() (driver.Value, error) {
	if len(t) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (t *TagList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = nil
		return nil
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("unsupported tag list source type %T", src)
	}
}
