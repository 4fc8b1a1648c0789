package tracker

import (
	"context"
	"testing"

	"jobdeck/pkg/models"
)

func TestCreateNoteAppendsEvent(t *testing.T) {
	notes := newFakeNoteRepo()
	events := newFakeEventRepo()
	svc := NewNoteService(notes, events)

	note, err := svc.Create(context.Background(), "owner-1", &models.CreateNoteRequest{
		JobID:   "job-1",
		Content: "Recruiter called, sounded positive",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	added := events.byType(models.EventNoteAdded)
	if len(added) != 1 {
		t.Fatalf("expected 1 NOTE_ADDED event, got %d", len(added))
	}
	payload, _ := added[0].DecodePayload()
	na := payload.(models.NoteAddedPayload)
	if na.NoteID != note.ID {
		t.Errorf("payload note id = %q, want %q", na.NoteID, note.ID)
	}
}

func TestCreateNoteRequiresContent(t *testing.T) {
	svc := NewNoteService(newFakeNoteRepo(), newFakeEventRepo())

	if _, err := svc.Create(context.Background(), "owner-1", &models.CreateNoteRequest{JobID: "job-1"}); err == nil {
		t.Error("expected error for empty content")
	}
	if _, err := svc.Create(context.Background(), "owner-1", &models.CreateNoteRequest{Content: "hi"}); err == nil {
		t.Error("expected error for missing job id")
	}
}
