package interchange

import (
	"context"
	"testing"
	"time"

	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

func newTestExporter() (*Exporter, *fakeJobRepo, *fakeEventRepo, *fakeTaskRepo, *fakeContactRepo, *fakeDocumentRepo) {
	jobs := &fakeJobRepo{}
	events := &fakeEventRepo{}
	tasks := &fakeTaskRepo{}
	contacts := &fakeContactRepo{}
	documents := &fakeDocumentRepo{}
	return NewExporter(jobs, events, tasks, contacts, documents), jobs, events, tasks, contacts, documents
}

func TestExportBackupBundlesEverything(t *testing.T) {
	exporter, jobs, events, tasks, contacts, documents := newTestExporter()
	ctx := context.Background()

	job := &models.Job{UserID: "owner-1", Title: "Dev", Company: "Acme", Status: models.StatusApplied}
	if err := jobs.Create(ctx, job); err != nil {
		t.Fatal(err)
	}
	event, _ := models.NewEvent("owner-1", job.ID, models.EventStatusChanged, models.StatusChangedPayload{To: job.Status})
	event.At = time.Now().UTC()
	_ = events.Append(ctx, event)
	_ = tasks.Create(ctx, &models.Task{UserID: "owner-1", JobID: job.ID, Title: "Follow up"})
	_ = contacts.Create(ctx, &models.Contact{UserID: "owner-1", JobID: job.ID, Name: "Kari Nordmann"})
	_ = documents.Create(ctx, &models.Document{UserID: "owner-1", JobID: job.ID, Label: "CV", Type: models.DocumentCV, BlobURL: "https://blobs.test/cv.pdf"})

	backup, err := exporter.ExportBackup(ctx, "owner-1")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if backup.Version != BackupVersion {
		t.Errorf("version = %q, want %q", backup.Version, BackupVersion)
	}
	if backup.Count != 1 || len(backup.Jobs) != 1 {
		t.Fatalf("expected 1 job bundle, got %+v", backup)
	}
	bundle := backup.Jobs[0]
	if len(bundle.Events) != 1 || len(bundle.Tasks) != 1 || len(bundle.Contacts) != 1 || len(bundle.Documents) != 1 {
		t.Errorf("incomplete bundle %+v", bundle)
	}
	if backup.ExportedAt.IsZero() {
		t.Error("exportedAt not set")
	}
}

func TestExportBackupIsOwnerScoped(t *testing.T) {
	exporter, jobs, _, _, _, _ := newTestExporter()
	ctx := context.Background()

	_ = jobs.Create(ctx, &models.Job{UserID: "owner-1", Title: "Dev", Company: "Acme"})
	_ = jobs.Create(ctx, &models.Job{UserID: "owner-2", Title: "Dev", Company: "Globex"})

	backup, err := exporter.ExportBackup(ctx, "owner-1")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if backup.Count != 1 {
		t.Errorf("expected only owner-1 jobs, got %d", backup.Count)
	}
}

func TestRestoreRejectsUnknownVersion(t *testing.T) {
	exporter, _, _, _, _, _ := newTestExporter()

	_, err := exporter.Restore(context.Background(), "owner-1", &Backup{Version: "2.0"})
	if err == nil {
		t.Fatal("expected version error")
	}
	cerr, ok := err.(*utils.CustomError)
	if !ok || cerr.Code != 400 {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestRestoreAssignsFreshIDsAndOwner(t *testing.T) {
	exporter, jobs, events, tasks, _, _ := newTestExporter()
	ctx := context.Background()

	event, _ := models.NewEvent("someone-else", "old-job", models.EventStatusChanged, models.StatusChangedPayload{To: models.StatusApplied})
	event.ID = "old-event"
	event.At = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	backup := &Backup{
		Version: BackupVersion,
		Count:   1,
		Jobs: []JobBackup{{
			Job: models.Job{
				ID:      "old-job",
				UserID:  "someone-else",
				Title:   "Dev",
				Company: "Acme",
				Status:  models.StatusApplied,
			},
			Events: []models.Event{*event},
			Tasks:  []models.Task{{ID: "old-task", UserID: "someone-else", JobID: "old-job", Title: "Follow up"}},
		}},
	}

	result, err := exporter.Restore(ctx, "owner-1", backup)
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if result.Success != 1 || result.Failed != 0 {
		t.Fatalf("unexpected result %+v", result)
	}

	job := jobs.jobs[0]
	if job.ID == "old-job" || job.UserID != "owner-1" {
		t.Errorf("job not re-keyed: %+v", job)
	}
	restored := events.events[0]
	if restored.ID == "old-event" || restored.UserID != "owner-1" || restored.JobID != job.ID {
		t.Errorf("event not re-keyed: %+v", restored)
	}
	if !restored.At.Equal(event.At) {
		t.Errorf("event timestamp should survive restore, got %v", restored.At)
	}
	if tasks.tasks[0].ID == "old-task" || tasks.tasks[0].JobID != job.ID {
		t.Errorf("task not re-keyed: %+v", tasks.tasks[0])
	}
}

func TestRestoreReportsPerJobFailures(t *testing.T) {
	exporter, jobs, _, _, _, _ := newTestExporter()
	jobs.failTitle = "Data Engineer"
	jobs.failErr = utils.NewStorageError("disk full")

	backup := &Backup{
		Version: BackupVersion,
		Count:   2,
		Jobs: []JobBackup{
			{Job: models.Job{Title: "Backend Developer", Company: "Acme"}},
			{Job: models.Job{Title: "Data Engineer", Company: "Initech"}},
		},
	}

	result, err := exporter.Restore(context.Background(), "owner-1", backup)
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if result.Success != 1 || result.Failed != 1 {
		t.Fatalf("unexpected result %+v", result)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
}

func TestExportCSVUsesBoardContents(t *testing.T) {
	exporter, jobs, _, _, _, _ := newTestExporter()
	ctx := context.Background()

	_ = jobs.Create(ctx, &models.Job{UserID: "owner-1", Title: "Dev", Company: "Acme", Status: models.StatusApplied})

	out, err := exporter.ExportCSV(ctx, "owner-1")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	rows, err := ParseCSV(out)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Title != "Dev" {
		t.Errorf("unexpected rows %+v", rows)
	}
}
