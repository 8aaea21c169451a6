package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"plantcare/internal/model"
	"plantcare/internal/schedule"
)

// ErrDuplicateTask is returned when an incomplete task of the same type is
// already scheduled for the plant on the same calendar day. Keeping this
// check in storage closes the race between two callers planning the same
// plant concurrently.
var ErrDuplicateTask = errors.New("an open task of this type already exists for that day")

// TaskRepository handles CRUD for care tasks.
type TaskRepository struct {
	db  *gorm.DB
	loc *time.Location
}

func NewTaskRepository(db *gorm.DB, loc *time.Location) *TaskRepository {
	if loc == nil {
		loc = time.Local
	}
	return &TaskRepository{db: db, loc: loc}
}

// Create inserts a task, enforcing at most one incomplete task per
// (plant, type, calendar day). The day is compared through the normalized
// DueDay column, never the raw timestamp, so two writes that land on the
// same calendar day with different UTC offsets still collide. The partial
// unique index on (plant_id, type, due_day) backs the check under
// concurrent writers.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if task.DueDate != nil {
		task.DueDay = schedule.DayOf(*task.DueDate, r.loc).String()
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if task.DueDay != "" {
			var count int64
			if err := tx.Model(&model.Task{}).
				Where("plant_id = ? AND type = ? AND completed = ? AND due_day = ?",
					task.PlantID, task.Type, false, task.DueDay).
				Count(&count).Error; err != nil {
				return fmt.Errorf("check duplicate task: %w", err)
			}
			if count > 0 {
				return ErrDuplicateTask
			}
		}
		if err := tx.Create(task).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateTask
			}
			return fmt.Errorf("create task: %w", err)
		}
		return nil
	})
}

// CreateDraft persists a planner draft as a task.
func (r *TaskRepository) CreateDraft(ctx context.Context, draft model.TaskDraft) (*model.Task, error) {
	due := draft.DueDate
	task := model.Task{
		PlantID:     draft.PlantID,
		Type:        draft.Type,
		Description: draft.Description,
		DueDate:     &due,
	}
	if err := r.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ListByPlant(ctx context.Context, plantID uint) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("plant_id = ?", plantID).
		Order("due_date ASC, id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) ListByPlants(ctx context.Context, plantIDs []uint) ([]model.Task, error) {
	if len(plantIDs) == 0 {
		return nil, nil
	}
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("plant_id IN ?", plantIDs).
		Order("due_date ASC, id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) ListPending(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("completed = ?", false).
		Order("due_date ASC, id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) MarkCompleted(ctx context.Context, task *model.Task, completedAt time.Time) error {
	task.Completed = true
	task.DateCompleted = &completedAt
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("complete task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Task{}, id).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
