package interchange

import (
	"context"
	"sync"

	"jobdeck/internal/tracker"
	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

type fakeJobRepo struct {
	mu sync.Mutex
	// failTitle injects a create failure for one specific job title
	failTitle string
	failErr   error
	jobs      []models.Job
}

func (r *fakeJobRepo) Create(ctx context.Context, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failTitle != "" && job.Title == r.failTitle {
		return r.failErr
	}
	if job.ID == "" {
		job.ID = utils.GenerateID()
	}
	r.jobs = append(r.jobs, *job)
	return nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, ownerID, id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.jobs {
		if r.jobs[i].ID == id && r.jobs[i].UserID == ownerID {
			copied := r.jobs[i]
			return &copied, nil
		}
	}
	return nil, utils.NewNotFoundError("Job not found")
}

func (r *fakeJobRepo) List(ctx context.Context, ownerID string, filter tracker.JobFilter) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Job
	for _, job := range r.jobs {
		if job.UserID == ownerID {
			out = append(out, job)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, ownerID, id string, changes map[string]interface{}) (*models.Job, error) {
	return nil, utils.NewInternalServerError("not implemented")
}

func (r *fakeJobRepo) Save(ctx context.Context, job *models.Job) error {
	return nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, ownerID, id string) error {
	return utils.NewInternalServerError("not implemented")
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events []models.Event
}

func (r *fakeEventRepo) Append(ctx context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if event.ID == "" {
		event.ID = utils.GenerateID()
	}
	r.events = append(r.events, *event)
	return nil
}

func (r *fakeEventRepo) ListByJob(ctx context.Context, ownerID, jobID string) ([]models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Event
	for _, event := range r.events {
		if event.UserID == ownerID && event.JobID == jobID {
			out = append(out, event)
		}
	}
	return out, nil
}

type fakeNoteRepo struct {
	mu    sync.Mutex
	notes []models.Note
}

func (r *fakeNoteRepo) Create(ctx context.Context, note *models.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if note.ID == "" {
		note.ID = utils.GenerateID()
	}
	r.notes = append(r.notes, *note)
	return nil
}

func (r *fakeNoteRepo) Delete(ctx context.Context, ownerID, id string) error {
	return utils.NewInternalServerError("not implemented")
}

func (r *fakeNoteRepo) ListByJob(ctx context.Context, ownerID, jobID string) ([]models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Note
	for _, note := range r.notes {
		if note.UserID == ownerID && note.JobID == jobID {
			out = append(out, note)
		}
	}
	return out, nil
}

type fakeTaskRepo struct {
	mu    sync.Mutex
	tasks []models.Task
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if task.ID == "" {
		task.ID = utils.GenerateID()
	}
	r.tasks = append(r.tasks, *task)
	return nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, ownerID, id string) (*models.Task, error) {
	return nil, utils.NewNotFoundError("Oppgave ikke funnet")
}

func (r *fakeTaskRepo) Save(ctx context.Context, task *models.Task) error {
	return nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, ownerID, id string) error {
	return utils.NewInternalServerError("not implemented")
}

func (r *fakeTaskRepo) ListByJob(ctx context.Context, ownerID, jobID string) ([]models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Task
	for _, task := range r.tasks {
		if task.UserID == ownerID && task.JobID == jobID {
			out = append(out, task)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) ListUpcoming(ctx context.Context, ownerID string, limit int) ([]models.Task, error) {
	return nil, nil
}

type fakeContactRepo struct {
	mu       sync.Mutex
	contacts []models.Contact
}

func (r *fakeContactRepo) Create(ctx context.Context, contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if contact.ID == "" {
		contact.ID = utils.GenerateID()
	}
	r.contacts = append(r.contacts, *contact)
	return nil
}

func (r *fakeContactRepo) Delete(ctx context.Context, ownerID, id string) error {
	return utils.NewInternalServerError("not implemented")
}

func (r *fakeContactRepo) ListByJob(ctx context.Context, ownerID, jobID string) ([]models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Contact
	for _, contact := range r.contacts {
		if contact.UserID == ownerID && contact.JobID == jobID {
			out = append(out, contact)
		}
	}
	return out, nil
}

type fakeDocumentRepo struct {
	mu   sync.Mutex
	docs []models.Document
}

func (r *fakeDocumentRepo) Create(ctx context.Context, doc *models.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if doc.ID == "" {
		doc.ID = utils.GenerateID()
	}
	r.docs = append(r.docs, *doc)
	return nil
}

func (r *fakeDocumentRepo) GetByID(ctx context.Context, ownerID, id string) (*models.Document, error) {
	return nil, utils.NewNotFoundError("Dokument ikke funnet")
}

func (r *fakeDocumentRepo) Delete(ctx context.Context, ownerID, id string) error {
	return utils.NewInternalServerError("not implemented")
}

func (r *fakeDocumentRepo) ListByJob(ctx context.Context, ownerID, jobID string) ([]models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Document
	for _, doc := range r.docs {
		if doc.UserID == ownerID && doc.JobID == jobID {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) ListAll(ctx context.Context, ownerID string) ([]models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Document
	for _, doc := range r.docs {
		if doc.UserID == ownerID {
			out = append(out, doc)
		}
	}
	return out, nil
}
