package interchange

import (
	"context"
	"fmt"
	"time"

	"jobdeck/internal/logging"
	"jobdeck/internal/tracker"
	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

// BackupVersion identifies the JSON backup document format
const BackupVersion = "1.0"

// JobBackup bundles a job with all of its dependent records
type JobBackup struct {
	Job       models.Job        `json:"job"`
	Events    []models.Event    `json:"events"`
	Tasks     []models.Task     `json:"tasks"`
	Contacts  []models.Contact  `json:"contacts"`
	Documents []models.Document `json:"documents"`
}

// Backup is the canonical full-fidelity export document. Unlike the CSV
// export it preserves history and attachment metadata.
type Backup struct {
	Jobs       []JobBackup `json:"jobs"`
	ExportedAt time.Time   `json:"exportedAt"`
	Count      int         `json:"count"`
	Version    string      `json:"version"`
}

// JobDetail is the narrower single-job export shape
type JobDetail struct {
	Job        models.Job        `json:"job"`
	Events     []models.Event    `json:"events"`
	Tasks      []models.Task     `json:"tasks"`
	Contacts   []models.Contact  `json:"contacts"`
	Documents  []models.Document `json:"documents"`
	ExportedAt time.Time         `json:"exportedAt"`
}

// Exporter assembles CSV and JSON exports and restores JSON backups
type Exporter struct {
	jobs      tracker.JobRepository
	events    tracker.EventRepository
	tasks     tracker.TaskRepository
	contacts  tracker.ContactRepository
	documents tracker.DocumentRepository
	logger    logging.Logger
}

// NewExporter creates an exporter over the full repository set
func NewExporter(
	jobs tracker.JobRepository,
	events tracker.EventRepository,
	tasks tracker.TaskRepository,
	contacts tracker.ContactRepository,
	documents tracker.DocumentRepository,
) *Exporter {
	return &Exporter{
		jobs:      jobs,
		events:    events,
		tasks:     tasks,
		contacts:  contacts,
		documents: documents,
		logger:    logging.GetGlobalLogger(),
	}
}

// ExportCSV renders all of the owner's jobs as CSV
func (e *Exporter) ExportCSV(ctx context.Context, ownerID string) (string, error) {
	jobs, err := e.jobs.List(ctx, ownerID, tracker.JobFilter{})
	if err != nil {
		return "", err
	}
	return MarshalJobsCSV(jobs), nil
}

// ExportBackup builds the versioned full backup for all of the owner's jobs
func (e *Exporter) ExportBackup(ctx context.Context, ownerID string) (*Backup, error) {
	jobs, err := e.jobs.List(ctx, ownerID, tracker.JobFilter{})
	if err != nil {
		return nil, err
	}

	backup := &Backup{
		Jobs:       make([]JobBackup, 0, len(jobs)),
		ExportedAt: time.Now().UTC(),
		Count:      len(jobs),
		Version:    BackupVersion,
	}

	for _, job := range jobs {
		bundle, err := e.collectJob(ctx, ownerID, job)
		if err != nil {
			return nil, err
		}
		backup.Jobs = append(backup.Jobs, *bundle)
	}

	return backup, nil
}

// ExportJob builds the single-job detail export
func (e *Exporter) ExportJob(ctx context.Context, ownerID, jobID string) (*JobDetail, error) {
	job, err := e.jobs.GetByID(ctx, ownerID, jobID)
	if err != nil {
		return nil, err
	}

	bundle, err := e.collectJob(ctx, ownerID, *job)
	if err != nil {
		return nil, err
	}

	return &JobDetail{
		Job:        bundle.Job,
		Events:     bundle.Events,
		Tasks:      bundle.Tasks,
		Contacts:   bundle.Contacts,
		Documents:  bundle.Documents,
		ExportedAt: time.Now().UTC(),
	}, nil
}

// Restore re-creates the contents of a backup under the calling owner.
// Records receive fresh identifiers; per-job failures are reported without
// aborting the remaining jobs, mirroring the CSV commit phase.
func (e *Exporter) Restore(ctx context.Context, ownerID string, backup *Backup) (*models.ImportResponse, error) {
	if backup.Version != BackupVersion {
		return nil, utils.NewBadRequestError(fmt.Sprintf("unsupported backup version %q", backup.Version))
	}

	result := &models.ImportResponse{}
	for i, bundle := range backup.Jobs {
		if err := e.restoreJob(ctx, ownerID, bundle); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("job %d (%s): %v", i+1, bundle.Job.Title, err))
			continue
		}
		result.Success++
	}

	return result, nil
}

func (e *Exporter) collectJob(ctx context.Context, ownerID string, job models.Job) (*JobBackup, error) {
	events, err := e.events.ListByJob(ctx, ownerID, job.ID)
	if err != nil {
		return nil, err
	}
	tasks, err := e.tasks.ListByJob(ctx, ownerID, job.ID)
	if err != nil {
		return nil, err
	}
	contacts, err := e.contacts.ListByJob(ctx, ownerID, job.ID)
	if err != nil {
		return nil, err
	}
	documents, err := e.documents.ListByJob(ctx, ownerID, job.ID)
	if err != nil {
		return nil, err
	}

	return &JobBackup{
		Job:       job,
		Events:    events,
		Tasks:     tasks,
		Contacts:  contacts,
		Documents: documents,
	}, nil
}

func (e *Exporter) restoreJob(ctx context.Context, ownerID string, bundle JobBackup) error {
	job := bundle.Job
	job.ID = ""
	job.UserID = ownerID
	if err := e.jobs.Create(ctx, &job); err != nil {
		return err
	}

	for _, event := range bundle.Events {
		event.ID = ""
		event.UserID = ownerID
		event.JobID = job.ID
		if err := e.events.Append(ctx, &event); err != nil {
			return err
		}
	}
	for _, task := range bundle.Tasks {
		task.ID = ""
		task.UserID = ownerID
		task.JobID = job.ID
		if err := e.tasks.Create(ctx, &task); err != nil {
			return err
		}
	}
	for _, contact := range bundle.Contacts {
		contact.ID = ""
		contact.UserID = ownerID
		contact.JobID = job.ID
		if err := e.contacts.Create(ctx, &contact); err != nil {
			return err
		}
	}
	for _, doc := range bundle.Documents {
		doc.ID = ""
		doc.UserID = ownerID
		doc.JobID = job.ID
		if err := e.documents.Create(ctx, &doc); err != nil {
			return err
		}
	}

	return nil
}
