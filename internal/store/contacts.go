package store

import (
	"context"

	"gorm.io/gorm"

	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

// ContactStore persists contacts, owner-scoped
type ContactStore struct {
	db *gorm.DB
}

// NewContactStore creates a contact repository
func NewContactStore(db *gorm.DB) *ContactStore {
	return &ContactStore{db: db}
}

// Create inserts a contact, assigning an id when absent
func (s *ContactStore) Create(ctx context.Context, contact *models.Contact) error {
	if contact.ID == "" {
		contact.ID = utils.GenerateID()
	}
	if err := s.db.WithContext(ctx).Create(contact).Error; err != nil {
		return utils.NewStorageError(err.Error())
	}
	return nil
}

// Delete removes a contact owned by ownerID
func (s *ContactStore) Delete(ctx context.Context, ownerID, id string) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", ownerID, id).
		Delete(&models.Contact{})
	if result.Error != nil {
		return utils.NewStorageError(result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return utils.NewNotFoundError("Kontakt ikke funnet")
	}
	return nil
}

// ListByJob returns a job's contacts, newest first
func (s *ContactStore) ListByJob(ctx context.Context, ownerID, jobID string) ([]models.Contact, error) {
	var contacts []models.Contact
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", ownerID, jobID).
		Order("created_at DESC").
		Find(&contacts).Error
	if err != nil {
		return nil, utils.NewStorageError(err.Error())
	}
	return contacts, nil
}
