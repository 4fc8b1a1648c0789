package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType identifies the kind of activity an event records
type EventType string

const (
	EventStatusChanged EventType = "STATUS_CHANGED"
	EventNoteAdded     EventType = "NOTE_ADDED"
	EventTaskAdded     EventType = "TASK_ADDED"
	EventTaskDone      EventType = "TASK_DONE"
	EventFileAttached  EventType = "FILE_ATTACHED"
)

// Event is an immutable activity record attached to a job. Events are only
// ever appended; there is no update or delete path for individual entries.
type Event struct {
	ID      string          `gorm:"primaryKey;size:36" json:"id"`
	UserID  string          `gorm:"index;not null" json:"user_id"`
	JobID   string          `gorm:"index;not null" json:"job_id"`
	Type    EventType       `gorm:"not null" json:"type"`
	Payload json.RawMessage `gorm:"type:jsonb" json:"payload,omitempty"`
	At      time.Time       `json:"at"`
}

// StatusChangedPayload accompanies STATUS_CHANGED events. From is empty for
// the initial event written at job creation.
type StatusChangedPayload struct {
	From JobStatus `json:"from,omitempty"`
	To   JobStatus `json:"to"`
}

// NoteAddedPayload accompanies NOTE_ADDED events
type NoteAddedPayload struct {
	NoteID string `json:"noteId"`
}

// TaskPayload accompanies TASK_ADDED and TASK_DONE events
type TaskPayload struct {
	TaskID string `json:"taskId"`
	Title  string `json:"title"`
}

// FileAttachedPayload accompanies FILE_ATTACHED events
type FileAttachedPayload struct {
	DocumentID string `json:"documentId"`
	Label      string `json:"label"`
}

// NewEvent builds an event with the payload serialized. The ID and timestamp
// are filled in by the event store on append.
func NewEvent(userID, jobID string, eventType EventType, payload interface{}) (*Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", eventType, err)
	}
	return &Event{
		UserID:  userID,
		JobID:   jobID,
		Type:    eventType,
		Payload: raw,
	}, nil
}

// DecodePayload unmarshals the payload into the concrete type for the event's
// type tag, so consumers get a typed value instead of a free-form map.
func (e *Event) DecodePayload() (interface{}, error) {
	switch e.Type {
	case EventStatusChanged:
		var p StatusChangedPayload
		err := json.Unmarshal(e.Payload, &p)
		return p, err
	case EventNoteAdded:
		var p NoteAddedPayload
		err := json.Unmarshal(e.Payload, &p)
		return p, err
	case EventTaskAdded, EventTaskDone:
		var p TaskPayload
		err := json.Unmarshal(e.Payload, &p)
		return p, err
	case EventFileAttached:
		var p FileAttachedPayload
		err := json.Unmarshal(e.Payload, &p)
		return p, err
	default:
		return nil, fmt.Errorf("unknown event type %q", e.Type)
	}
}
