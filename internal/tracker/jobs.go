package tracker

import (
	"context"

	"github.com/go-playground/validator/v10"

	"jobdeck/internal/logging"
	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

var validate = validator.New()

// JobService is the job lifecycle manager. It validates input, persists
// changes, and appends the matching activity events.
type JobService struct {
	jobs   JobRepository
	events EventRepository
	logger logging.Logger
}

// NewJobService creates a job lifecycle manager
func NewJobService(jobs JobRepository, events EventRepository) *JobService {
	return &JobService{
		jobs:   jobs,
		events: events,
		logger: logging.GetGlobalLogger(),
	}
}

// Create validates the payload, persists the job (status defaults to
// APPLIED) and appends the initial STATUS_CHANGED event.
func (s *JobService) Create(ctx context.Context, ownerID string, req *models.CreateJobRequest) (*models.Job, error) {
	if err := validate.Struct(req); err != nil {
		return nil, utils.NewValidationError(err.Error())
	}

	status := models.JobStatus(utils.GetStringOrDefault(req.Status, string(models.StatusApplied)))

	job := &models.Job{
		UserID:      ownerID,
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Remote:      req.Remote,
		Source:      req.Source,
		Status:      status,
		SalaryNote:  req.SalaryNote,
		Description: req.Description,
		Tags:        models.TagList(req.Tags),
		URL:         req.URL,
	}

	if req.AppliedAt != "" {
		t, err := utils.ParseDate(req.AppliedAt)
		if err != nil {
			return nil, utils.NewValidationError("applied_at: invalid date")
		}
		job.AppliedAt = &t
	}
	if req.NextAction != "" {
		t, err := utils.ParseDate(req.NextAction)
		if err != nil {
			return nil, utils.NewValidationError("next_action_at: invalid date")
		}
		job.NextAction = &t
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	event, err := models.NewEvent(ownerID, job.ID, models.EventStatusChanged, models.StatusChangedPayload{To: job.Status})
	if err != nil {
		return nil, err
	}
	if err := s.events.Append(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info("Job created", map[string]interface{}{
		"job_id": job.ID,
		"status": string(job.Status),
	})

	return job, nil
}

// Update applies a partial change set to an owned job
func (s *JobService) Update(ctx context.Context, ownerID, jobID string, req *models.UpdateJobRequest) (*models.Job, error) {
	if err := validate.Struct(req); err != nil {
		return nil, utils.NewValidationError(err.Error())
	}

	changes := map[string]interface{}{}
	if req.Title != nil {
		changes["title"] = *req.Title
	}
	if req.Company != nil {
		changes["company"] = *req.Company
	}
	if req.Location != nil {
		changes["location"] = *req.Location
	}
	if req.Remote != nil {
		changes["remote"] = *req.Remote
	}
	if req.Source != nil {
		changes["source"] = *req.Source
	}
	if req.Status != nil {
		changes["status"] = *req.Status
	}
	if req.SalaryNote != nil {
		changes["salary_note"] = *req.SalaryNote
	}
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.Tags != nil {
		changes["tags"] = models.TagList(*req.Tags)
	}
	if req.URL != nil {
		changes["url"] = *req.URL
	}
	if req.AppliedAt != nil {
		t, err := utils.ParseDate(*req.AppliedAt)
		if err != nil {
			return nil, utils.NewValidationError("applied_at: invalid date")
		}
		changes["applied_at"] = t
	}
	if req.NextAction != nil {
		t, err := utils.ParseDate(*req.NextAction)
		if err != nil {
			return nil, utils.NewValidationError("next_action_at: invalid date")
		}
		changes["next_action"] = t
	}

	if len(changes) == 0 {
		return s.jobs.GetByID(ctx, ownerID, jobID)
	}

	return s.jobs.Update(ctx, ownerID, jobID, changes)
}

// MoveStatus writes the new status and appends a STATUS_CHANGED event. The
// event is appended even when the status does not actually change, so the
// activity feed mirrors every board interaction.
func (s *JobService) MoveStatus(ctx context.Context, ownerID, jobID string, newStatus models.JobStatus) (*models.Job, error) {
	job, err := s.jobs.GetByID(ctx, ownerID, jobID)
	if err != nil {
		return nil, err
	}

	oldStatus := job.Status
	job.Status = newStatus
	if err := s.jobs.Save(ctx, job); err != nil {
		return nil, err
	}

	event, err := models.NewEvent(ownerID, job.ID, models.EventStatusChanged, models.StatusChangedPayload{
		From: oldStatus,
		To:   newStatus,
	})
	if err != nil {
		return nil, err
	}
	if err := s.events.Append(ctx, event); err != nil {
		return nil, err
	}

	return job, nil
}

// Delete removes the job record only. Events, tasks, notes, contacts and
// documents referencing it are intentionally left orphaned; single-owner
// data makes them invisible without the parent and a cascade would destroy
// history that exports may still want.
func (s *JobService) Delete(ctx context.Context, ownerID, jobID string) error {
	return s.jobs.Delete(ctx, ownerID, jobID)
}

// Get loads a single owned job
func (s *JobService) Get(ctx context.Context, ownerID, jobID string) (*models.Job, error) {
	return s.jobs.GetByID(ctx, ownerID, jobID)
}

// List returns the owner's jobs with optional filtering
func (s *JobService) List(ctx context.Context, ownerID string, filter JobFilter) ([]models.Job, error) {
	return s.jobs.List(ctx, ownerID, filter)
}

// Events returns a job's activity feed, newest first
func (s *JobService) Events(ctx context.Context, ownerID, jobID string) ([]models.Event, error) {
	if _, err := s.jobs.GetByID(ctx, ownerID, jobID); err != nil {
		return nil, err
	}
	return s.events.ListByJob(ctx, ownerID, jobID)
}
