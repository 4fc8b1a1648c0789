package store

import (
	"context"

	"gorm.io/gorm"

	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

// DocumentStore persists document metadata; the file bytes themselves live
// in the blob store
type DocumentStore struct {
	db *gorm.DB
}

// NewDocumentStore creates a document repository
func NewDocumentStore(db *gorm.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Create inserts a document record, assigning an id when absent
func (s *DocumentStore) Create(ctx context.Context, doc *models.Document) error {
	if doc.ID == "" {
		doc.ID = utils.GenerateID()
	}
	if err := s.db.WithContext(ctx).Create(doc).Error; err != nil {
		return utils.NewStorageError(err.Error())
	}
	return nil
}

// GetByID loads a document owned by ownerID
func (s *DocumentStore) GetByID(ctx context.Context, ownerID, id string) (*models.Document, error) {
	var doc models.Document
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", ownerID, id).
		First(&doc).Error
	if err != nil {
		if isNotFound(err) {
			return nil, utils.NewNotFoundError("Dokument ikke funnet")
		}
		return nil, utils.NewStorageError(err.Error())
	}
	return &doc, nil
}

// Delete removes a document record owned by ownerID
func (s *DocumentStore) Delete(ctx context.Context, ownerID, id string) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", ownerID, id).
		Delete(&models.Document{})
	if result.Error != nil {
		return utils.NewStorageError(result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return utils.NewNotFoundError("Dokument ikke funnet")
	}
	return nil
}

// ListByJob returns a job's documents, newest first
func (s *DocumentStore) ListByJob(ctx context.Context, ownerID, jobID string) ([]models.Document, error) {
	var docs []models.Document
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", ownerID, jobID).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, utils.NewStorageError(err.Error())
	}
	return docs, nil
}

// ListAll returns every document the owner has uploaded, newest first
func (s *DocumentStore) ListAll(ctx context.Context, ownerID string) ([]models.Document, error) {
	var docs []models.Document
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, utils.NewStorageError(err.Error())
	}
	return docs, nil
}
