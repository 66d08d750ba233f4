package services

import (
	"errors"
	"testing"
	"time"

	"tasktracker/dto"
	"tasktracker/model"
)

func strPtr(s string) *string {
	return &s
}

func TestCreateTask_AppliesDefaults(t *testing.T) {
	db := newTestDB(t)

	task, err := CreateTask(db, dto.CreateTaskRequest{Title: "Test Task"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.ID == 0 {
		t.Error("expected a generated id")
	}
	if task.Status != model.StatusPending {
		t.Errorf("status = %q, want %q", task.Status, model.StatusPending)
	}
	if task.Priority != model.PriorityMedium {
		t.Errorf("priority = %q, want %q", task.Priority, model.PriorityMedium)
	}
	if task.Description != nil {
		t.Errorf("description = %v, want nil", *task.Description)
	}
	if task.DueDate != nil {
		t.Errorf("due_date = %v, want nil", *task.DueDate)
	}
	if !task.CreatedAt.Equal(task.UpdatedAt) {
		t.Errorf("created_at %v != updated_at %v", task.CreatedAt, task.UpdatedAt)
	}
}

func TestCreateTask_RejectsEmptyTitle(t *testing.T) {
	db := newTestDB(t)

	for _, title := range []string{"", "   "} {
		_, err := CreateTask(db, dto.CreateTaskRequest{Title: title})
		var ve ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("title %q: got %v, want a validation error", title, err)
		}
	}

	tasks, err := GetTasks(db)
	if err != nil {
		t.Fatalf("GetTasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("rejected input reached the store, %d rows", len(tasks))
	}
}

func TestCreateTask_RejectsUnknownEnumValues(t *testing.T) {
	db := newTestDB(t)

	if _, err := CreateTask(db, dto.CreateTaskRequest{Title: "a", Status: "done"}); err == nil {
		t.Error("unknown status accepted")
	}
	if _, err := CreateTask(db, dto.CreateTaskRequest{Title: "a", Priority: "urgent"}); err == nil {
		t.Error("unknown priority accepted")
	}
}

func TestGetTasks_ReturnsInsertionOrder(t *testing.T) {
	db := newTestDB(t)

	for _, title := range []string{"first", "second", "third"} {
		if _, err := CreateTask(db, dto.CreateTaskRequest{Title: title}); err != nil {
			t.Fatalf("CreateTask(%q): %v", title, err)
		}
	}

	tasks, err := GetTasks(db)
	if err != nil {
		t.Fatalf("GetTasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("len = %d, want 3", len(tasks))
	}
	for i, want := range []string{"first", "second", "third"} {
		if tasks[i].Title != want {
			t.Errorf("tasks[%d].Title = %q, want %q", i, tasks[i].Title, want)
		}
	}
}

func TestGetTask_MissingIdSignalsNil(t *testing.T) {
	db := newTestDB(t)

	task, err := GetTask(db, 42)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if task != nil {
		t.Errorf("got %+v, want nil", task)
	}
}

func TestUpdateTask_PartialUpdatePreservesOtherFields(t *testing.T) {
	db := newTestDB(t)

	created, err := CreateTask(db, dto.CreateTaskRequest{
		Title:       "keep me",
		Description: strPtr("original description"),
		Status:      model.StatusInProgress,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	updated, err := UpdateTask(db, created.ID, dto.UpdateTaskRequest{
		Priority: dto.Some(model.PriorityHigh),
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated == nil {
		t.Fatal("UpdateTask returned nil for an existing task")
	}
	if updated.Priority != model.PriorityHigh {
		t.Errorf("priority = %q, want %q", updated.Priority, model.PriorityHigh)
	}
	if updated.Title != "keep me" {
		t.Errorf("title changed to %q", updated.Title)
	}
	if updated.Status != model.StatusInProgress {
		t.Errorf("status changed to %q", updated.Status)
	}
	if updated.Description == nil || *updated.Description != "original description" {
		t.Errorf("description changed to %v", updated.Description)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("updated_at %v did not advance past %v", updated.UpdatedAt, created.UpdatedAt)
	}
}

func TestUpdateTask_ExplicitNullClearsField(t *testing.T) {
	db := newTestDB(t)

	due := time.Now().Add(24 * time.Hour)
	created, err := CreateTask(db, dto.CreateTaskRequest{
		Title:       "task",
		Description: strPtr("to be cleared"),
		DueDate:     &due,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	updated, err := UpdateTask(db, created.ID, dto.UpdateTaskRequest{
		Description: dto.Null[string](),
		DueDate:     dto.Null[time.Time](),
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Description != nil {
		t.Errorf("description = %q, want cleared", *updated.Description)
	}
	if updated.DueDate != nil {
		t.Errorf("due_date = %v, want cleared", *updated.DueDate)
	}
}

func TestUpdateTask_EmptyPatchStillBumpsUpdatedAt(t *testing.T) {
	db := newTestDB(t)

	created, err := CreateTask(db, dto.CreateTaskRequest{Title: "task"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	updated, err := UpdateTask(db, created.ID, dto.UpdateTaskRequest{})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("updated_at %v did not advance past %v", updated.UpdatedAt, created.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("created_at moved from %v to %v", created.CreatedAt, updated.CreatedAt)
	}
}

func TestUpdateTask_MissingIdSignalsNil(t *testing.T) {
	db := newTestDB(t)

	updated, err := UpdateTask(db, 7, dto.UpdateTaskRequest{
		Status: dto.Some(model.StatusCompleted),
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated != nil {
		t.Errorf("got %+v, want nil", updated)
	}
}

func TestUpdateTask_RejectsBadPatches(t *testing.T) {
	db := newTestDB(t)

	created, err := CreateTask(db, dto.CreateTaskRequest{Title: "task"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	cases := []struct {
		name string
		req  dto.UpdateTaskRequest
	}{
		{"null title", dto.UpdateTaskRequest{Title: dto.Null[string]()}},
		{"empty title", dto.UpdateTaskRequest{Title: dto.Some("  ")}},
		{"unknown status", dto.UpdateTaskRequest{Status: dto.Some("archived")}},
		{"null status", dto.UpdateTaskRequest{Status: dto.Null[string]()}},
		{"unknown priority", dto.UpdateTaskRequest{Priority: dto.Some("urgent")}},
	}
	for _, tc := range cases {
		_, err := UpdateTask(db, created.ID, tc.req)
		var ve ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: got %v, want a validation error", tc.name, err)
		}
	}
}

func TestDeleteTask_CascadesToAttachments(t *testing.T) {
	db := newTestDB(t)

	task, err := CreateTask(db, dto.CreateTaskRequest{Title: "with attachments"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	for i := 0; i < 2; i++ {
		_, err := CreateAttachment(db, dto.CreateAttachmentRequest{
			TaskID:       task.ID,
			Filename:     "175000000000_doc.pdf",
			OriginalName: "doc.pdf",
			FileSize:     2048,
			MimeType:     "application/pdf",
		})
		if err != nil {
			t.Fatalf("CreateAttachment: %v", err)
		}
	}

	removed, err := DeleteTask(db, task.ID)
	if err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if !removed {
		t.Fatal("DeleteTask returned false for an existing task")
	}

	attachments, err := GetAttachmentsByTask(db, task.ID)
	if err != nil {
		t.Fatalf("GetAttachmentsByTask: %v", err)
	}
	if len(attachments) != 0 {
		t.Errorf("%d attachments survived the cascade", len(attachments))
	}

	removed, err = DeleteTask(db, task.ID)
	if err != nil {
		t.Fatalf("DeleteTask (second): %v", err)
	}
	if removed {
		t.Error("second delete reported success")
	}
}

func TestTaskLifecycle(t *testing.T) {
	db := newTestDB(t)

	created, err := CreateTask(db, dto.CreateTaskRequest{
		Title:    "Test Task",
		Status:   model.StatusPending,
		Priority: model.PriorityMedium,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if created.ID == 0 || created.DueDate != nil {
		t.Fatalf("unexpected created task: %+v", created)
	}

	time.Sleep(20 * time.Millisecond)

	updated, err := UpdateTask(db, created.ID, dto.UpdateTaskRequest{
		Status: dto.Some(model.StatusCompleted),
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Status != model.StatusCompleted {
		t.Errorf("status = %q, want completed", updated.Status)
	}
	if updated.Title != created.Title || updated.Priority != created.Priority {
		t.Error("unrelated fields changed")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Error("updated_at did not advance")
	}

	removed, err := DeleteTask(db, created.ID)
	if err != nil || !removed {
		t.Fatalf("DeleteTask = (%v, %v), want (true, nil)", removed, err)
	}

	got, err := GetTask(db, created.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got != nil {
		t.Errorf("deleted task still readable: %+v", got)
	}
}
