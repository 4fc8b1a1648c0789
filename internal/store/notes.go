package store

import (
	"context"

	"gorm.io/gorm"

	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

// NoteStore persists notes, owner-scoped
type NoteStore struct {
	db *gorm.DB
}

// NewNoteStore creates a note repository
func NewNoteStore(db *gorm.DB) *NoteStore {
	return &NoteStore{db: db}
}

// Create inserts a note, assigning an id when absent
func (s *NoteStore) Create(ctx context.Context, note *models.Note) error {
	if note.ID == "" {
		note.ID = utils.GenerateID()
	}
	if err := s.db.WithContext(ctx).Create(note).Error; err != nil {
		return utils.NewStorageError(err.Error())
	}
	return nil
}

// Delete removes a note owned by ownerID
func (s *NoteStore) Delete(ctx context.Context, ownerID, id string) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", ownerID, id).
		Delete(&models.Note{})
	if result.Error != nil {
		return utils.NewStorageError(result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return utils.NewNotFoundError("Note not found")
	}
	return nil
}

// ListByJob returns a job's notes, newest first
func (s *NoteStore) ListByJob(ctx context.Context, ownerID, jobID string) ([]models.Note, error) {
	var notes []models.Note
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", ownerID, jobID).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, utils.NewStorageError(err.Error())
	}
	return notes, nil
}
