package tracker

import (
	"context"
	"testing"

	"jobdeck/pkg/models"
)

func TestCreateTaskJobScopedAppendsEvent(t *testing.T) {
	tasks := newFakeTaskRepo()
	events := newFakeEventRepo()
	svc := NewTaskService(tasks, events)

	task, err := svc.Create(context.Background(), "owner-1", &models.CreateTaskRequest{
		JobID: "job-1",
		Title: "Send follow-up email",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	added := events.byType(models.EventTaskAdded)
	if len(added) != 1 {
		t.Fatalf("expected 1 TASK_ADDED event, got %d", len(added))
	}
	payload, _ := added[0].DecodePayload()
	tp := payload.(models.TaskPayload)
	if tp.TaskID != task.ID || tp.Title != "Send follow-up email" {
		t.Errorf("unexpected payload %+v", tp)
	}
}

func TestCreateStandaloneTaskNoEvent(t *testing.T) {
	events := newFakeEventRepo()
	svc := NewTaskService(newFakeTaskRepo(), events)

	if _, err := svc.Create(context.Background(), "owner-1", &models.CreateTaskRequest{
		Title: "Update CV",
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if got := len(events.byType(models.EventTaskAdded)); got != 0 {
		t.Errorf("standalone task should not append events, got %d", got)
	}
}

func TestToggleTaskEvents(t *testing.T) {
	tasks := newFakeTaskRepo()
	events := newFakeEventRepo()
	svc := NewTaskService(tasks, events)
	ctx := context.Background()

	task, err := svc.Create(ctx, "owner-1", &models.CreateTaskRequest{
		JobID: "job-1",
		Title: "Prepare for interview",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	toggled, err := svc.Toggle(ctx, "owner-1", task.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !toggled.Done {
		t.Error("expected task to be done after first toggle")
	}
	if got := len(events.byType(models.EventTaskDone)); got != 1 {
		t.Fatalf("expected 1 TASK_DONE event, got %d", got)
	}

	// Re-opening appends nothing
	reopened, err := svc.Toggle(ctx, "owner-1", task.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if reopened.Done {
		t.Error("expected task to be open after second toggle")
	}
	if got := len(events.byType(models.EventTaskDone)); got != 1 {
		t.Errorf("re-opening should not append events, got %d", got)
	}
}

func TestToggleStandaloneTaskNoEvent(t *testing.T) {
	events := newFakeEventRepo()
	svc := NewTaskService(newFakeTaskRepo(), events)
	ctx := context.Background()

	task, err := svc.Create(ctx, "owner-1", &models.CreateTaskRequest{Title: "Update CV"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Toggle(ctx, "owner-1", task.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if got := len(events.byType(models.EventTaskDone)); got != 0 {
		t.Errorf("standalone completion should not append events, got %d", got)
	}
}

func TestTaskNotFoundIsNorwegian(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), newFakeEventRepo())

	_, err := svc.Toggle(context.Background(), "owner-1", "missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Oppgave ikke funnet" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
