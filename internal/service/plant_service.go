package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"plantcare/internal/model"
	"plantcare/internal/notifier"
	"plantcare/internal/repository"
	"plantcare/internal/schedule"
)

// PlantInput represents data required to add a plant.
type PlantInput struct {
	Name                  string
	Species               string
	Status                string
	Image                 string
	WateringFrequencyDays *int
	Light                 string
	Temperature           string
	CareNotes             string
	PotSize               string
	AutoWatering          bool
	ReminderTime          string
}

// PlantUpdate carries a partial plant update; nil fields are untouched.
type PlantUpdate struct {
	Name                  *string
	Species               *string
	Status                *string
	Image                 *string
	WateringFrequencyDays *int
	Light                 *string
	Temperature           *string
	CareNotes             *string
	PotSize               *string
}

// PlantLabel is the payload a QR/PDF label renderer consumes.
type PlantLabel struct {
	PlantID          uint   `json:"plantId"`
	Name             string `json:"name"`
	Species          string `json:"species,omitempty"`
	WateringEveryDay int    `json:"wateringFrequencyDays,omitempty"`
	Light            string `json:"light,omitempty"`
	PotSize          string `json:"potSize,omitempty"`
	CareNotes        string `json:"careNotes,omitempty"`
	ShareURL         string `json:"shareUrl"`
}

// PlantService wraps plant-related business logic, including the
// auto-watering orchestration around the pure planner.
type PlantService struct {
	plantRepo *repository.PlantRepository
	taskRepo  *repository.TaskRepository
	userRepo  *repository.UserRepository
	planner   schedule.Planner
	notify    notifier.Notifier
	horizon   int
	log       *logrus.Logger
}

func NewPlantService(
	plantRepo *repository.PlantRepository,
	taskRepo *repository.TaskRepository,
	userRepo *repository.UserRepository,
	planner schedule.Planner,
	notify notifier.Notifier,
	horizon int,
	log *logrus.Logger,
) *PlantService {
	if horizon <= 0 {
		horizon = 4
	}
	return &PlantService{
		plantRepo: plantRepo,
		taskRepo:  taskRepo,
		userRepo:  userRepo,
		planner:   planner,
		notify:    notify,
		horizon:   horizon,
		log:       log,
	}
}

func (s *PlantService) CreatePlant(ctx context.Context, userID uint, input PlantInput) (*model.Plant, error) {
	if input.Name == "" {
		return nil, Invalid("name is required")
	}
	if input.Status == "" {
		input.Status = model.StatusHealthy
	}
	if input.ReminderTime == "" {
		input.ReminderTime = "08:00"
	}
	if !ValidClock(input.ReminderTime) {
		return nil, Invalid("invalid reminder time %q, expected HH:MM", input.ReminderTime)
	}

	plant := model.Plant{
		UserID:                userID,
		Name:                  input.Name,
		Species:               input.Species,
		Status:                input.Status,
		Image:                 input.Image,
		WateringFrequencyDays: input.WateringFrequencyDays,
		Light:                 input.Light,
		Temperature:           input.Temperature,
		CareNotes:             input.CareNotes,
		PotSize:               input.PotSize,
		ReminderTime:          input.ReminderTime,
		ShareToken:            uuid.NewString(),
	}

	if input.AutoWatering {
		toggled, err := s.planner.ToggleAutoWatering(plant, true)
		if err != nil {
			return nil, err
		}
		plant = toggled
	}

	if err := s.plantRepo.Create(ctx, &plant); err != nil {
		return nil, err
	}

	if plant.AutoWatering {
		if _, err := s.fillWateringHorizon(ctx, &plant, time.Now()); err != nil {
			return nil, err
		}
	}

	s.notifyOwner(ctx, plant.UserID, func(user model.User) error {
		return s.notify.PlantAdded(ctx, user, plant)
	})

	return &plant, nil
}

func (s *PlantService) GetPlant(ctx context.Context, id uint) (*model.Plant, error) {
	return s.plantRepo.FindByID(ctx, id)
}

func (s *PlantService) GetPlantByShareToken(ctx context.Context, token string) (*model.Plant, error) {
	return s.plantRepo.FindByShareToken(ctx, token)
}

func (s *PlantService) ListPlants(ctx context.Context, userID uint) ([]model.Plant, error) {
	return s.plantRepo.ListByUser(ctx, userID)
}

func (s *PlantService) UpdatePlant(ctx context.Context, id uint, update PlantUpdate) (*model.Plant, error) {
	updates := make(map[string]interface{})
	if update.Name != nil {
		if *update.Name == "" {
			return nil, Invalid("name cannot be empty")
		}
		updates["name"] = *update.Name
	}
	if update.Species != nil {
		updates["species"] = *update.Species
	}
	if update.Status != nil {
		switch *update.Status {
		case model.StatusHealthy, model.StatusWarning, model.StatusDanger:
			updates["status"] = *update.Status
		default:
			return nil, Invalid("unknown status %q", *update.Status)
		}
	}
	if update.Image != nil {
		updates["image"] = *update.Image
	}
	if update.WateringFrequencyDays != nil {
		if *update.WateringFrequencyDays <= 0 {
			return nil, Invalid("watering frequency must be positive")
		}
		updates["watering_frequency_days"] = *update.WateringFrequencyDays
	}
	if update.Light != nil {
		updates["light"] = *update.Light
	}
	if update.Temperature != nil {
		updates["temperature"] = *update.Temperature
	}
	if update.CareNotes != nil {
		updates["care_notes"] = *update.CareNotes
	}
	if update.PotSize != nil {
		updates["pot_size"] = *update.PotSize
	}
	if len(updates) == 0 {
		return s.plantRepo.FindByID(ctx, id)
	}
	return s.plantRepo.Update(ctx, id, updates)
}

// SetReminderTime updates the plant's HH:MM reminder time without touching
// the auto-watering flag.
func (s *PlantService) SetReminderTime(ctx context.Context, id uint, reminderTime string) (*model.Plant, error) {
	if !ValidClock(reminderTime) {
		return nil, Invalid("invalid reminder time %q, expected HH:MM", reminderTime)
	}
	return s.plantRepo.Update(ctx, id, map[string]interface{}{"reminder_time": reminderTime})
}

// SetAutoWatering toggles automatic watering. Enabling plans and persists
// the next watering tasks; disabling leaves already scheduled tasks alone.
func (s *PlantService) SetAutoWatering(ctx context.Context, id uint, enable bool) (*model.Plant, []model.Task, error) {
	plant, err := s.plantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	toggled, err := s.planner.ToggleAutoWatering(*plant, enable)
	if err != nil {
		return nil, nil, err
	}
	if err := s.plantRepo.Save(ctx, &toggled); err != nil {
		return nil, nil, err
	}

	var created []model.Task
	var upcoming []schedule.Day
	if enable {
		created, err = s.fillWateringHorizon(ctx, &toggled, time.Now())
		if err != nil {
			return nil, nil, err
		}
		for _, task := range created {
			if task.DueDate != nil {
				upcoming = append(upcoming, schedule.DayOf(*task.DueDate, s.planner.Location()))
			}
		}
	}

	s.notifyOwner(ctx, toggled.UserID, func(user model.User) error {
		return s.notify.AutoWateringChanged(ctx, user, toggled, enable, upcoming)
	})

	return &toggled, created, nil
}

// RefillWateringHorizons tops up the scheduled tasks of every auto-watering
// plant. The nightly job calls this so the rolling horizon never drains.
func (s *PlantService) RefillWateringHorizons(ctx context.Context, now time.Time) (int, error) {
	plants, err := s.plantRepo.ListAutoWatering(ctx)
	if err != nil {
		return 0, err
	}

	total := 0
	for i := range plants {
		created, err := s.fillWateringHorizon(ctx, &plants[i], now)
		if err != nil {
			// A plant with a broken frequency should not stall the others.
			if s.log != nil {
				s.log.WithField("plant_id", plants[i].ID).WithError(err).Warn("horizon refill skipped")
			}
			continue
		}
		total += len(created)
	}
	return total, nil
}

func (s *PlantService) DeletePlant(ctx context.Context, id uint) error {
	return s.plantRepo.Delete(ctx, id)
}

// Label returns the payload a label renderer (QR card, PDF tag) consumes.
func (s *PlantService) Label(ctx context.Context, id uint) (*PlantLabel, error) {
	plant, err := s.plantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &PlantLabel{
		PlantID:          plant.ID,
		Name:             plant.Name,
		Species:          plant.Species,
		WateringEveryDay: plant.WateringFrequency(),
		Light:            plant.Light,
		PotSize:          plant.PotSize,
		CareNotes:        plant.CareNotes,
		ShareURL:         "/shared/plants/" + plant.ShareToken,
	}, nil
}

// fillWateringHorizon plans and persists missing watering tasks for plant.
// Duplicate days reported by storage are fine: another caller got there first.
func (s *PlantService) fillWateringHorizon(ctx context.Context, plant *model.Plant, now time.Time) ([]model.Task, error) {
	existing, err := s.taskRepo.ListByPlant(ctx, plant.ID)
	if err != nil {
		return nil, err
	}

	drafts, err := s.planner.PlanWateringTasks(*plant, existing, now, s.horizon)
	if err != nil {
		return nil, err
	}

	var created []model.Task
	for _, draft := range drafts {
		task, err := s.taskRepo.CreateDraft(ctx, draft)
		if errors.Is(err, repository.ErrDuplicateTask) {
			continue
		}
		if err != nil {
			return created, err
		}
		created = append(created, *task)
	}
	return created, nil
}

// notifyOwner delivers a notification best-effort; a failed send never
// fails the request that triggered it.
func (s *PlantService) notifyOwner(ctx context.Context, userID uint, send func(model.User) error) {
	if s.notify == nil || s.userRepo == nil {
		return
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return
	}
	if err := send(*user); err != nil && s.log != nil {
		s.log.WithField("user_id", userID).WithError(err).Warn("notification failed")
	}
}
