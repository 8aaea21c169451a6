package notifier

import (
	"context"
	"errors"

	"plantcare/internal/model"
	"plantcare/internal/schedule"
)

// Notifier delivers care notifications to a user. Services call it after
// persisting; the watering planner itself never notifies anyone.
type Notifier interface {
	// TaskReminder tells the user which tasks are due today for a plant.
	TaskReminder(ctx context.Context, user model.User, plant model.Plant, tasks []model.Task) error
	// AutoWateringChanged announces an auto-watering toggle, with the
	// projected watering days when it was enabled.
	AutoWateringChanged(ctx context.Context, user model.User, plant model.Plant, enabled bool, upcoming []schedule.Day) error
	// PlantAdded welcomes a new plant into the collection.
	PlantAdded(ctx context.Context, user model.User, plant model.Plant) error
}

// Multi fans a notification out to every configured channel. A failing
// channel does not stop the others.
type Multi []Notifier

func (m Multi) TaskReminder(ctx context.Context, user model.User, plant model.Plant, tasks []model.Task) error {
	var errs []error
	for _, n := range m {
		errs = append(errs, n.TaskReminder(ctx, user, plant, tasks))
	}
	return errors.Join(errs...)
}

func (m Multi) AutoWateringChanged(ctx context.Context, user model.User, plant model.Plant, enabled bool, upcoming []schedule.Day) error {
	var errs []error
	for _, n := range m {
		errs = append(errs, n.AutoWateringChanged(ctx, user, plant, enabled, upcoming))
	}
	return errors.Join(errs...)
}

func (m Multi) PlantAdded(ctx context.Context, user model.User, plant model.Plant) error {
	var errs []error
	for _, n := range m {
		errs = append(errs, n.PlantAdded(ctx, user, plant))
	}
	return errors.Join(errs...)
}
