package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"jobdeck/internal/tracker"
	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

// JobStore persists jobs, always scoped to the owning user
type JobStore struct {
	db *gorm.DB
}

// NewJobStore creates a job repository
func NewJobStore(db *gorm.DB) *JobStore {
	return &JobStore{db: db}
}

// Create inserts a job, assigning an id when absent
func (s *JobStore) Create(ctx context.Context, job *models.Job) error {
	if job.ID == "" {
		job.ID = utils.GenerateID()
	}
	if err := s.db.WithContext(ctx).Create(job).Error; err != nil {
		return utils.NewStorageError(err.Error())
	}
	return nil
}

// GetByID loads a job owned by ownerID
func (s *JobStore) GetByID(ctx context.Context, ownerID, id string) (*models.Job, error) {
	var job models.Job
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", ownerID, id).
		First(&job).Error
	if err != nil {
		if isNotFound(err) {
			return nil, utils.NewNotFoundError("Job not found")
		}
		return nil, utils.NewStorageError(err.Error())
	}
	return &job, nil
}

// List returns the owner's jobs, optionally filtered by status and a title or
// company search, newest activity first
func (s *JobStore) List(ctx context.Context, ownerID string, filter tracker.JobFilter) ([]models.Job, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", ownerID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR company ILIKE ?", pattern, pattern)
	}

	var jobs []models.Job
	if err := query.Order("updated_at DESC").Find(&jobs).Error; err != nil {
		return nil, utils.NewStorageError(err.Error())
	}
	return jobs, nil
}

// Update applies a partial change set to a job owned by ownerID and returns
// the updated record
func (s *JobStore) Update(ctx context.Context, ownerID, id string, changes map[string]interface{}) (*models.Job, error) {
	changes["updated_at"] = time.Now().UTC()

	result := s.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("user_id = ? AND id = ?", ownerID, id).
		Updates(changes)
	if result.Error != nil {
		return nil, utils.NewStorageError(result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return nil, utils.NewNotFoundError("Job not found")
	}

	return s.GetByID(ctx, ownerID, id)
}

// Save writes back a previously loaded job
func (s *JobStore) Save(ctx context.Context, job *models.Job) error {
	if err := s.db.WithContext(ctx).Save(job).Error; err != nil {
		return utils.NewStorageError(err.Error())
	}
	return nil
}

// Delete removes a job owned by ownerID. Dependent records are left in
// place; see the lifecycle service for the orphaning contract.
func (s *JobStore) Delete(ctx context.Context, ownerID, id string) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", ownerID, id).
		Delete(&models.Job{})
	if result.Error != nil {
		return utils.NewStorageError(result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return utils.NewNotFoundError("Job not found")
	}
	return nil
}
