package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"plantcare/internal/model"
	"plantcare/internal/notifier"
	"plantcare/internal/repository"
	"plantcare/internal/schedule"
)

// ReminderService runs the minute sweep: find plants whose reminder clock
// matches the current wall-clock minute and that have open tasks due today,
// and hand them to the notifier.
type ReminderService struct {
	userRepo  *repository.UserRepository
	plantRepo *repository.PlantRepository
	taskRepo  *repository.TaskRepository
	planner   schedule.Planner
	notify    notifier.Notifier
	log       *logrus.Logger
}

func NewReminderService(
	userRepo *repository.UserRepository,
	plantRepo *repository.PlantRepository,
	taskRepo *repository.TaskRepository,
	planner schedule.Planner,
	notify notifier.Notifier,
	log *logrus.Logger,
) *ReminderService {
	return &ReminderService{
		userRepo:  userRepo,
		plantRepo: plantRepo,
		taskRepo:  taskRepo,
		planner:   planner,
		notify:    notify,
		log:       log,
	}
}

// CheckDue sends reminders due at the minute of now and returns how many
// went out. Failures on one plant never stop the sweep.
func (s *ReminderService) CheckDue(ctx context.Context, now time.Time) (int, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	today := schedule.DayOf(now, s.planner.Location())
	sent := 0
	for _, user := range users {
		plants, err := s.plantRepo.ListByUser(ctx, user.ID)
		if err != nil {
			if s.log != nil {
				s.log.WithField("user_id", user.ID).WithError(err).Warn("reminder sweep: list plants failed")
			}
			continue
		}

		for _, plant := range plants {
			if !clockMatches(reminderClock(plant, user), now, s.planner.Location()) {
				continue
			}

			tasks, err := s.taskRepo.ListByPlant(ctx, plant.ID)
			if err != nil {
				if s.log != nil {
					s.log.WithField("plant_id", plant.ID).WithError(err).Warn("reminder sweep: list tasks failed")
				}
				continue
			}

			due := openTasks(s.planner.TasksDueOn(tasks, today))
			if len(due) == 0 {
				continue
			}

			if err := s.notify.TaskReminder(ctx, user, plant, due); err != nil {
				if s.log != nil {
					s.log.WithField("plant_id", plant.ID).WithError(err).Warn("reminder send failed")
				}
				continue
			}
			sent++
		}
	}
	return sent, nil
}

// reminderClock picks the HH:MM at which a plant's reminder fires: the
// plant's own time, else the owner's default, else 08:00.
func reminderClock(plant model.Plant, user model.User) string {
	if ValidClock(plant.ReminderTime) {
		return plant.ReminderTime
	}
	if ValidClock(user.ReminderTime) {
		return user.ReminderTime
	}
	return "08:00"
}

// clockMatches reports whether now falls in the clock's wall-clock minute.
func clockMatches(clock string, now time.Time, loc *time.Location) bool {
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return false
	}
	local := now.In(loc)
	return local.Hour() == hour && local.Minute() == minute
}

func openTasks(tasks []model.Task) []model.Task {
	var open []model.Task
	for _, t := range tasks {
		if !t.Completed {
			open = append(open, t)
		}
	}
	return open
}
