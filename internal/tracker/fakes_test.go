package tracker

import (
	"context"
	"io"
	"strings"
	"sync"

	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

type fakeJobRepo struct {
	mu        sync.Mutex
	jobs      map[string]*models.Job
	createErr error
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job)}
}

func (r *fakeJobRepo) Create(ctx context.Context, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if job.ID == "" {
		job.ID = utils.GenerateID()
	}
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, ownerID, id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok || job.UserID != ownerID {
		return nil, utils.NewNotFoundError("Job not found")
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) List(ctx context.Context, ownerID string, filter JobFilter) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Job
	for _, job := range r.jobs {
		if job.UserID != ownerID {
			continue
		}
		if filter.Status != "" && job.Status != filter.Status {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(job.Title), needle) &&
				!strings.Contains(strings.ToLower(job.Company), needle) {
				continue
			}
		}
		out = append(out, *job)
	}
	return out, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, ownerID, id string, changes map[string]interface{}) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok || job.UserID != ownerID {
		return nil, utils.NewNotFoundError("Job not found")
	}
	for column, value := range changes {
		switch column {
		case "title":
			job.Title = value.(string)
		case "company":
			job.Company = value.(string)
		case "location":
			job.Location = value.(string)
		case "status":
			job.Status = models.JobStatus(value.(string))
		case "salary_note":
			job.SalaryNote = value.(string)
		case "url":
			job.URL = value.(string)
		}
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) Save(ctx context.Context, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, ownerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok || job.UserID != ownerID {
		return utils.NewNotFoundError("Job not found")
	}
	delete(r.jobs, id)
	return nil
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events []models.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{}
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

func (r *fakeEventRepo) byType(eventType models.EventType) []models.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Event
	for _, event := range r.events {
		if event.Type == eventType {
			out = append(out, event)
		}
	}
	return out
}

type fakeTaskRepo struct {
	mu    sync.Mutex
	tasks map[string]*models.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*models.Task)}
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if task.ID == "" {
		task.ID = utils.GenerateID()
	}
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, ownerID, id string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok || task.UserID != ownerID {
		return nil, utils.NewNotFoundError("Oppgave ikke funnet")
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) Save(ctx context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, ownerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok || task.UserID != ownerID {
		return utils.NewNotFoundError("Oppgave ikke funnet")
	}
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) ListByJob(ctx context.Context, ownerID, jobID string) ([]models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Task
	for _, task := range r.tasks {
		if task.UserID == ownerID && task.JobID == jobID {
			out = append(out, *task)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) ListUpcoming(ctx context.Context, ownerID string, limit int) ([]models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Task
	for _, task := range r.tasks {
		if task.UserID == ownerID && !task.Done && task.DueAt != nil {
			out = append(out, *task)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeDocumentRepo struct {
	mu   sync.Mutex
	docs map[string]*models.Document
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[string]*models.Document)}
}

func (r *fakeDocumentRepo) Create(ctx context.Context, doc *models.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if doc.ID == "" {
		doc.ID = utils.GenerateID()
	}
	copied := *doc
	r.docs[doc.ID] = &copied
	return nil
}

func (r *fakeDocumentRepo) GetByID(ctx context.Context, ownerID, id string) (*models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok || doc.UserID != ownerID {
		return nil, utils.NewNotFoundError("Dokument ikke funnet")
	}
	copied := *doc
	return &copied, nil
}

func (r *fakeDocumentRepo) Delete(ctx context.Context, ownerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok || doc.UserID != ownerID {
		return utils.NewNotFoundError("Dokument ikke funnet")
	}
	delete(r.docs, id)
	return nil
}

func (r *fakeDocumentRepo) ListByJob(ctx context.Context, ownerID, jobID string) ([]models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Document
	for _, doc := range r.docs {
		if doc.UserID == ownerID && doc.JobID == jobID {
			out = append(out, *doc)
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
			out = append(out, *doc)
		}
	}
	return out, nil
}

type fakeNoteRepo struct {
	mu    sync.Mutex
	notes map[string]*models.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[string]*models.Note)}
}

func (r *fakeNoteRepo) Create(ctx context.Context, note *models.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if note.ID == "" {
		note.ID = utils.GenerateID()
	}
	copied := *note
	r.notes[note.ID] = &copied
	return nil
}

func (r *fakeNoteRepo) Delete(ctx context.Context, ownerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	note, ok := r.notes[id]
	if !ok || note.UserID != ownerID {
		return utils.NewNotFoundError("Note not found")
	}
	delete(r.notes, id)
	return nil
}

func (r *fakeNoteRepo) ListByJob(ctx context.Context, ownerID, jobID string) ([]models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Note
	for _, note := range r.notes {
		if note.UserID == ownerID && note.JobID == jobID {
			out = append(out, *note)
		}
	}
	return out, nil
}

type fakeBlobStore struct {
	mu        sync.Mutex
	puts      int
	deletes   int
	putErr    error
	deleteErr error
}

func (b *fakeBlobStore) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.putErr != nil {
		return "", b.putErr
	}
	b.puts++
	return "https://blobs.test/" + key, nil
}

func (b *fakeBlobStore) Delete(ctx context.Context, blobURL string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.deletes++
	return b.deleteErr
}
