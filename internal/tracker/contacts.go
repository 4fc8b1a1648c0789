package tracker

import (
	"context"

	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

// ContactService manages contacts
type ContactService struct {
	contacts ContactRepository
}

// NewContactService creates a contact service
func NewContactService(contacts ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

// Create persists a contact, optionally scoped to a job
func (s *ContactService) Create(ctx context.Context, ownerID string, req *models.CreateContactRequest) (*models.Contact, error) {
	if err := validate.Struct(req); err != nil {
		return nil, utils.NewValidationError(err.Error())
	}

	contact := &models.Contact{
		UserID: ownerID,
		JobID:  req.JobID,
		Name:   req.Name,
		Role:   req.Role,
		Email:  req.Email,
		Phone:  req.Phone,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Delete removes an owned contact
func (s *ContactService) Delete(ctx context.Context, ownerID, contactID string) error {
	return s.contacts.Delete(ctx, ownerID, contactID)
}

// ListByJob returns a job's contacts, newest first
func (s *ContactService) ListByJob(ctx context.Context, ownerID, jobID string) ([]models.Contact, error) {
	return s.contacts.ListByJob(ctx, ownerID, jobID)
}
