package schedule

import (
	"fmt"
	"time"

	"plantcare/internal/model"
)

// Planner decides which future watering tasks a plant needs and which tasks
// belong to a given calendar day. It holds no state and performs no I/O;
// callers fetch tasks first and persist the drafts it returns, so the same
// inputs always produce the same plan.
type Planner struct {
	loc *time.Location
}

// NewPlanner returns a planner that evaluates calendar days in loc.
// A nil loc means the system local zone.
func NewPlanner(loc *time.Location) Planner {
	if loc == nil {
		loc = time.Local
	}
	return Planner{loc: loc}
}

// Location returns the canonical zone the planner compares days in.
func (p Planner) Location() *time.Location {
	if p.loc == nil {
		return time.Local
	}
	return p.loc
}

// InvalidScheduleError reports an automatic watering request on a plant
// without a usable watering frequency. It is recoverable: fix the plant's
// frequency and retry.
type InvalidScheduleError struct {
	PlantID       uint
	FrequencyDays int // 0 when the frequency is unset
}

func (e *InvalidScheduleError) Error() string {
	return fmt.Sprintf("plant %d: automatic watering requires a positive watering frequency, got %d", e.PlantID, e.FrequencyDays)
}

// TasksDueOn returns the tasks whose due date falls on target, preserving
// input order. Tasks without a due date never match. Two tasks of different
// types on the same day are both returned.
func (p Planner) TasksDueOn(tasks []model.Task, target Day) []model.Task {
	var due []model.Task
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		if DayOf(*t.DueDate, p.Location()) == target {
			due = append(due, t)
		}
	}
	return due
}

// PlanWateringTasks projects the next horizon watering dates for plant,
// spaced its watering frequency apart starting after reference, and returns
// drafts for the ones not already covered by an incomplete water task.
//
// A completed watering does not reserve its day: the user may want another
// reminder on a day they already watered once. That is a product policy,
// not an invariant (see DESIGN.md).
func (p Planner) PlanWateringTasks(plant model.Plant, existing []model.Task, reference time.Time, horizon int) ([]model.TaskDraft, error) {
	freq := plant.WateringFrequency()
	if freq <= 0 {
		return nil, &InvalidScheduleError{PlantID: plant.ID, FrequencyDays: freq}
	}

	taken := make(map[Day]bool)
	for _, t := range existing {
		if t.Type != model.TaskWater || t.Completed || t.DueDate == nil {
			continue
		}
		taken[DayOf(*t.DueDate, p.Location())] = true
	}

	// AddDate walks calendar days, so a plan crossing a DST change stays on
	// the expected dates instead of drifting by an hour's worth of epoch.
	start := reference.In(p.Location())
	var drafts []model.TaskDraft
	for k := 1; k <= horizon; k++ {
		day := DayOf(start.AddDate(0, 0, k*freq), p.Location())
		if taken[day] {
			continue
		}
		drafts = append(drafts, model.TaskDraft{
			PlantID:     plant.ID,
			Type:        model.TaskWater,
			Description: fmt.Sprintf("Automatic watering for %s", plant.Name),
			DueDate:     day.Time(p.Location()),
		})
	}
	return drafts, nil
}

// ToggleAutoWatering returns a copy of plant with automatic watering turned
// on or off. Enabling requires a positive watering frequency. Disabling
// leaves already scheduled tasks alone: stopping auto-creation is not the
// same as cancelling what is on the calendar.
func (p Planner) ToggleAutoWatering(plant model.Plant, enable bool) (model.Plant, error) {
	if enable && plant.WateringFrequency() <= 0 {
		return plant, &InvalidScheduleError{PlantID: plant.ID, FrequencyDays: plant.WateringFrequency()}
	}
	plant.AutoWatering = enable
	return plant, nil
}
