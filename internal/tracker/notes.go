package tracker

import (
	"context"

	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

// NoteService manages notes; every note belongs to a job, and creating one
// appends a NOTE_ADDED event.
type NoteService struct {
	notes  NoteRepository
	events EventRepository
}

// NewNoteService creates a note service
func NewNoteService(notes NoteRepository, events EventRepository) *NoteService {
	return &NoteService{notes: notes, events: events}
}

// Create persists a note and appends its NOTE_ADDED event
func (s *NoteService) Create(ctx context.Context, ownerID string, req *models.CreateNoteRequest) (*models.Note, error) {
	if err := validate.Struct(req); err != nil {
		return nil, utils.NewValidationError(err.Error())
	}

	note := &models.Note{
		UserID:  ownerID,
		JobID:   req.JobID,
		Content: req.Content,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}

	event, err := models.NewEvent(ownerID, note.JobID, models.EventNoteAdded, models.NoteAddedPayload{NoteID: note.ID})
	if err != nil {
		return nil, err
	}
	if err := s.events.Append(ctx, event); err != nil {
		return nil, err
	}

	return note, nil
}

// Delete removes an owned note
func (s *NoteService) Delete(ctx context.Context, ownerID, noteID string) error {
	return s.notes.Delete(ctx, ownerID, noteID)
}

// ListByJob returns a job's notes, newest first
func (s *NoteService) ListByJob(ctx context.Context, ownerID, jobID string) ([]models.Note, error) {
	return s.notes.ListByJob(ctx, ownerID, jobID)
}
