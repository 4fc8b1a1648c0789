package tracker

import (
	"context"

	"jobdeck/internal/logging"
	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

// TaskService manages tasks and their job-scoped activity events
type TaskService struct {
	tasks  TaskRepository
	events EventRepository
	logger logging.Logger
}

// NewTaskService creates a task service
func NewTaskService(tasks TaskRepository, events EventRepository) *TaskService {
	return &TaskService{
		tasks:  tasks,
		events: events,
		logger: logging.GetGlobalLogger(),
	}
}

// Create persists a task; a TASK_ADDED event is appended only when the task
// is scoped to a job.
func (s *TaskService) Create(ctx context.Context, ownerID string, req *models.CreateTaskRequest) (*models.Task, error) {
	if err := validate.Struct(req); err != nil {
		return nil, utils.NewValidationError(err.Error())
	}

	task := &models.Task{
		UserID: ownerID,
		JobID:  req.JobID,
		Title:  req.Title,
	}
	if req.DueAt != "" {
		t, err := utils.ParseDate(req.DueAt)
		if err != nil {
			return nil, utils.NewValidationError("due_at: invalid date")
		}
		task.DueAt = &t
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	if task.JobID != "" {
		event, err := models.NewEvent(ownerID, task.JobID, models.EventTaskAdded, models.TaskPayload{
			TaskID: task.ID,
			Title:  task.Title,
		})
		if err != nil {
			return nil, err
		}
		if err := s.events.Append(ctx, event); err != nil {
			return nil, err
		}
	}

	return task, nil
}

// Update applies a partial change set to an owned task
func (s *TaskService) Update(ctx context.Context, ownerID, taskID string, req *models.UpdateTaskRequest) (*models.Task, error) {
	if err := validate.Struct(req); err != nil {
		return nil, utils.NewValidationError(err.Error())
	}

	task, err := s.tasks.GetByID(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.DueAt != nil {
		t, err := utils.ParseDate(*req.DueAt)
		if err != nil {
			return nil, utils.NewValidationError("due_at: invalid date")
		}
		task.DueAt = &t
	}
	if req.Done != nil {
		task.Done = *req.Done
	}

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Toggle flips a task's done flag. Completing a job-scoped task appends a
// TASK_DONE event; re-opening appends nothing.
func (s *TaskService) Toggle(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	task, err := s.tasks.GetByID(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	task.Done = !task.Done
	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}

	if task.Done && task.JobID != "" {
		event, err := models.NewEvent(ownerID, task.JobID, models.EventTaskDone, models.TaskPayload{
			TaskID: task.ID,
			Title:  task.Title,
		})
		if err != nil {
			return nil, err
		}
		if err := s.events.Append(ctx, event); err != nil {
			return nil, err
		}
	}

	return task, nil
}

// Delete removes an owned task
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	return s.tasks.Delete(ctx, ownerID, taskID)
}

// ListByJob returns a job's tasks
func (s *TaskService) ListByJob(ctx context.Context, ownerID, jobID string) ([]models.Task, error) {
	return s.tasks.ListByJob(ctx, ownerID, jobID)
}

// Upcoming returns the owner's next open tasks with due dates
func (s *TaskService) Upcoming(ctx context.Context, ownerID string, limit int) ([]models.Task, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.tasks.ListUpcoming(ctx, ownerID, limit)
}
