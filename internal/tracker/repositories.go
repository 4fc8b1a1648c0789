package tracker

import (
	"context"

	"jobdeck/pkg/models"
)

// JobFilter narrows a job listing
type JobFilter struct {
	Status models.JobStatus
	Search string
}

// JobRepository is the persistence contract for jobs. Implementations must
// scope every operation to the given owner id.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, ownerID, id string) (*models.Job, error)
	List(ctx context.Context, ownerID string, filter JobFilter) ([]models.Job, error)
	Update(ctx context.Context, ownerID, id string, changes map[string]interface{}) (*models.Job, error)
	Save(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, ownerID, id string) error
}

// EventRepository is the persistence contract for the append-only event log
type EventRepository interface {
	Append(ctx context.Context, event *models.Event) error
	ListByJob(ctx context.Context, ownerID, jobID string) ([]models.Event, error)
}

// TaskRepository is the persistence contract for tasks
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, ownerID, id string) (*models.Task, error)
	Save(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, ownerID, id string) error
	ListByJob(ctx context.Context, ownerID, jobID string) ([]models.Task, error)
	ListUpcoming(ctx context.Context, ownerID string, limit int) ([]models.Task, error)
}

// NoteRepository is the persistence contract for notes
type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, ownerID, id string) error
	ListByJob(ctx context.Context, ownerID, jobID string) ([]models.Note, error)
}

// ContactRepository is the persistence contract for contacts
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, ownerID, id string) error
	ListByJob(ctx context.Context, ownerID, jobID string) ([]models.Contact, error)
}

// DocumentRepository is the persistence contract for document metadata
type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, ownerID, id string) (*models.Document, error)
	Delete(ctx context.Context, ownerID, id string) error
	ListByJob(ctx context.Context, ownerID, jobID string) ([]models.Document, error)
	ListAll(ctx context.Context, ownerID string) ([]models.Document, error)
}
