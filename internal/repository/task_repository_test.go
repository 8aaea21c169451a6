package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"plantcare/internal/model"
)

func newTaskRepo(t *testing.T) *TaskRepository {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	return NewTaskRepository(db, loc)
}

func waterTask(plantID uint, due time.Time) *model.Task {
	return &model.Task{
		PlantID:     plantID,
		Type:        model.TaskWater,
		Description: "Water the plant",
		DueDate:     &due,
	}
}

func TestCreateRejectsSameDayDuplicate(t *testing.T) {
	repo := newTaskRepo(t)
	ctx := context.Background()

	morning := time.Date(2025, 1, 8, 8, 0, 0, 0, repo.loc)
	if err := repo.Create(ctx, waterTask(1, morning)); err != nil {
		t.Fatalf("first task: %v", err)
	}

	evening := time.Date(2025, 1, 8, 19, 30, 0, 0, repo.loc)
	err := repo.Create(ctx, waterTask(1, evening))
	if !errors.Is(err, ErrDuplicateTask) {
		t.Fatalf("same-day duplicate: got %v, want ErrDuplicateTask", err)
	}
}

func TestCreateRejectsDuplicateAcrossOffsets(t *testing.T) {
	repo := newTaskRepo(t)
	ctx := context.Background()

	// 04:50 UTC on Jan 9 is 23:50 on Jan 8 in New York. A second task
	// stored with the local offset lands on the same calendar day and
	// must be refused even though the raw timestamps do not overlap.
	utc := time.Date(2025, 1, 9, 4, 50, 0, 0, time.UTC)
	if err := repo.Create(ctx, waterTask(1, utc)); err != nil {
		t.Fatalf("utc task: %v", err)
	}

	local := time.Date(2025, 1, 8, 8, 0, 0, 0, repo.loc)
	err := repo.Create(ctx, waterTask(1, local))
	if !errors.Is(err, ErrDuplicateTask) {
		t.Fatalf("cross-offset duplicate: got %v, want ErrDuplicateTask", err)
	}
}

func TestCreateNormalizesDueDay(t *testing.T) {
	repo := newTaskRepo(t)
	ctx := context.Background()

	task := waterTask(1, time.Date(2025, 1, 9, 4, 50, 0, 0, time.UTC))
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.DueDay != "2025-01-08" {
		t.Errorf("DueDay = %q, want %q", task.DueDay, "2025-01-08")
	}
}

func TestCreateAllowsAfterCompletion(t *testing.T) {
	repo := newTaskRepo(t)
	ctx := context.Background()

	due := time.Date(2025, 1, 8, 8, 0, 0, 0, repo.loc)
	first := waterTask(1, due)
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("first task: %v", err)
	}
	if err := repo.MarkCompleted(ctx, first, due.Add(time.Hour)); err != nil {
		t.Fatalf("MarkCompleted: %v", err)
	}

	if err := repo.Create(ctx, waterTask(1, due)); err != nil {
		t.Fatalf("task after completion: got %v, want nil", err)
	}
}

func TestCreateAllowsDifferentTypeAndPlant(t *testing.T) {
	repo := newTaskRepo(t)
	ctx := context.Background()

	due := time.Date(2025, 1, 8, 8, 0, 0, 0, repo.loc)
	if err := repo.Create(ctx, waterTask(1, due)); err != nil {
		t.Fatalf("water task: %v", err)
	}

	fertilize := &model.Task{
		PlantID:     1,
		Type:        model.TaskFertilize,
		Description: "Fertilize the plant",
		DueDate:     &due,
	}
	if err := repo.Create(ctx, fertilize); err != nil {
		t.Errorf("different type: got %v, want nil", err)
	}
	if err := repo.Create(ctx, waterTask(2, due)); err != nil {
		t.Errorf("different plant: got %v, want nil", err)
	}
}

func TestCreateAllowsTasksWithoutDueDate(t *testing.T) {
	repo := newTaskRepo(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		task := &model.Task{
			PlantID:     1,
			Type:        model.TaskWater,
			Description: "Water when dry",
		}
		if err := repo.Create(ctx, task); err != nil {
			t.Fatalf("task %d without due date: %v", i, err)
		}
	}
}
