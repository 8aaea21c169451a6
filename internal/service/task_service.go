package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"plantcare/internal/model"
	"plantcare/internal/repository"
	"plantcare/internal/schedule"
)

// TaskInput represents data required to create a care task.
type TaskInput struct {
	PlantID     uint
	Type        string
	Description string
	DueDate     *time.Time
}

// TaskService wraps task-related business logic.
type TaskService struct {
	taskRepo  *repository.TaskRepository
	plantRepo *repository.PlantRepository
	planner   schedule.Planner
	horizon   int
	log       *logrus.Logger
}

func NewTaskService(
	taskRepo *repository.TaskRepository,
	plantRepo *repository.PlantRepository,
	planner schedule.Planner,
	horizon int,
	log *logrus.Logger,
) *TaskService {
	if horizon <= 0 {
		horizon = 4
	}
	return &TaskService{
		taskRepo:  taskRepo,
		plantRepo: plantRepo,
		planner:   planner,
		horizon:   horizon,
		log:       log,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, input TaskInput) (*model.Task, error) {
	if !model.KnownTaskType(input.Type) {
		return nil, Invalid("unknown task type %q", input.Type)
	}
	if input.Description == "" {
		return nil, Invalid("description is required")
	}
	if _, err := s.plantRepo.FindByID(ctx, input.PlantID); err != nil {
		return nil, fmt.Errorf("plant %d: %w", input.PlantID, err)
	}

	task := model.Task{
		PlantID:     input.PlantID,
		Type:        input.Type,
		Description: input.Description,
		DueDate:     input.DueDate,
	}
	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	return s.taskRepo.FindByID(ctx, id)
}

func (s *TaskService) ListByPlant(ctx context.Context, plantID uint) ([]model.Task, error) {
	return s.taskRepo.ListByPlant(ctx, plantID)
}

func (s *TaskService) ListPending(ctx context.Context) ([]model.Task, error) {
	return s.taskRepo.ListPending(ctx)
}

// ListDueOn returns the user's tasks whose due date falls on day,
// regardless of the time of day they were stored with.
func (s *TaskService) ListDueOn(ctx context.Context, userID uint, day schedule.Day) ([]model.Task, error) {
	plants, err := s.plantRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(plants))
	for _, p := range plants {
		ids = append(ids, p.ID)
	}
	tasks, err := s.taskRepo.ListByPlants(ctx, ids)
	if err != nil {
		return nil, err
	}
	return s.planner.TasksDueOn(tasks, day), nil
}

// CompleteTask marks a task done. Completing a watering on an auto-watering
// plant also tops its horizon back up, so the rolling schedule stays full.
func (s *TaskService) CompleteTask(ctx context.Context, id uint, completedAt time.Time) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.Completed {
		return task, nil
	}
	if err := s.taskRepo.MarkCompleted(ctx, task, completedAt); err != nil {
		return nil, err
	}

	if task.Type == model.TaskWater {
		if err := s.replenishIfAutoWatering(ctx, task.PlantID, completedAt); err != nil && s.log != nil {
			s.log.WithField("plant_id", task.PlantID).WithError(err).Warn("horizon refill after completion failed")
		}
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	return s.taskRepo.Delete(ctx, id)
}

func (s *TaskService) replenishIfAutoWatering(ctx context.Context, plantID uint, now time.Time) error {
	plant, err := s.plantRepo.FindByID(ctx, plantID)
	if err != nil {
		return err
	}
	if !plant.AutoWatering {
		return nil
	}

	existing, err := s.taskRepo.ListByPlant(ctx, plantID)
	if err != nil {
		return err
	}
	drafts, err := s.planner.PlanWateringTasks(*plant, existing, now, s.horizon)
	if err != nil {
		return err
	}
	for _, draft := range drafts {
		if _, err := s.taskRepo.CreateDraft(ctx, draft); err != nil && !errors.Is(err, repository.ErrDuplicateTask) {
			return err
		}
	}
	return nil
}
