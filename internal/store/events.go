package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

// EventStore persists the append-only activity ledger. There is no update or
// delete path by design.
type EventStore struct {
	db *gorm.DB
}

// NewEventStore creates an event repository
func NewEventStore(db *gorm.DB) *EventStore {
	return &EventStore{db: db}
}

// Append writes a new event, stamping id and timestamp when absent
func (s *EventStore) Append(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = utils.GenerateID()
	}
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return utils.NewStorageError(err.Error())
	}
	return nil
}

// ListByJob returns a job's events, owner-scoped, newest first
func (s *EventStore) ListByJob(ctx context.Context, ownerID, jobID string) ([]models.Event, error) {
	var events []models.Event
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", ownerID, jobID).
		Order("at DESC").
		Find(&events).Error
	if err != nil {
		return nil, utils.NewStorageError(err.Error())
	}
	return events, nil
}
