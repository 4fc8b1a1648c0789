package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

// TaskStore persists tasks, owner-scoped
type TaskStore struct {
	db *gorm.DB
}

// NewTaskStore creates a task repository
func NewTaskStore(db *gorm.DB) *TaskStore {
	return &TaskStore{db: db}
}

// Create inserts a task, assigning an id when absent
func (s *TaskStore) Create(ctx context.Context, task *models.Task) error {
	if task.ID == "" {
		task.ID = utils.GenerateID()
	}
	if err := s.db.WithContext(ctx).Create(task).Error; err != nil {
		return utils.NewStorageError(err.Error())
	}
	return nil
}

// GetByID loads a task owned by ownerID
func (s *TaskStore) GetByID(ctx context.Context, ownerID, id string) (*models.Task, error) {
	var task models.Task
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", ownerID, id).
		First(&task).Error
	if err != nil {
		if isNotFound(err) {
			return nil, utils.NewNotFoundError("Oppgave ikke funnet")
		}
		return nil, utils.NewStorageError(err.Error())
	}
	return &task, nil
}

// Save writes back a previously loaded task
func (s *TaskStore) Save(ctx context.Context, task *models.Task) error {
	if err := s.db.WithContext(ctx).Save(task).Error; err != nil {
		return utils.NewStorageError(err.Error())
	}
	return nil
}

// Delete removes a task owned by ownerID
func (s *TaskStore) Delete(ctx context.Context, ownerID, id string) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", ownerID, id).
		Delete(&models.Task{})
	if result.Error != nil {
		return utils.NewStorageError(result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return utils.NewNotFoundError("Oppgave ikke funnet")
	}
	return nil
}

// ListByJob returns a job's tasks, open ones first, then by due date
func (s *TaskStore) ListByJob(ctx context.Context, ownerID, jobID string) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", ownerID, jobID).
		Order("done ASC, due_at ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, utils.NewStorageError(err.Error())
	}
	return tasks, nil
}

// ListUpcoming returns open tasks with a future due date, soonest first
func (s *TaskStore) ListUpcoming(ctx context.Context, ownerID string, limit int) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND done = ? AND due_at >= ?", ownerID, false, time.Now().UTC()).
		Order("due_at ASC").
		Limit(limit).
		Find(&tasks).Error
	if err != nil {
		return nil, utils.NewStorageError(err.Error())
	}
	return tasks, nil
}
