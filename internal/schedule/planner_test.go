package schedule

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"plantcare/internal/model"
)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func TestTasksDueOn(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatal(err)
	}
	p := NewPlanner(loc)

	tasks := []model.Task{
		{ID: 1, Type: model.TaskWater, DueDate: timePtr(time.Date(2025, 4, 24, 23, 50, 0, 0, loc))},
		{ID: 2, Type: model.TaskWater, DueDate: timePtr(time.Date(2025, 4, 25, 0, 10, 0, 0, loc))},
		{ID: 3, Type: model.TaskFertilize, DueDate: timePtr(time.Date(2025, 4, 25, 18, 0, 0, 0, loc))},
		{ID: 4, Type: model.TaskWater, DueDate: timePtr(time.Date(2025, 4, 26, 0, 0, 0, 0, loc))},
		{ID: 5, Type: model.TaskRepot, DueDate: nil},
	}

	got := p.TasksDueOn(tasks, Day{2025, time.April, 25})

	var ids []uint
	for _, task := range got {
		ids = append(ids, task.ID)
	}
	// Both the water and fertilize task on the 25th, in input order.
	if !reflect.DeepEqual(ids, []uint{2, 3}) {
		t.Errorf("TasksDueOn ids = %v, want [2 3]", ids)
	}
}

func TestTasksDueOnNeverReturnsNilDueDates(t *testing.T) {
	p := NewPlanner(time.UTC)
	tasks := []model.Task{
		{ID: 1, Type: model.TaskWater},
		{ID: 2, Type: model.TaskOther},
	}

	days := []Day{
		{2025, time.April, 25},
		{1, time.January, 1},
		{},
	}
	for _, day := range days {
		if got := p.TasksDueOn(tasks, day); len(got) != 0 {
			t.Errorf("TasksDueOn(%v) = %v, want empty", day, got)
		}
	}
}

func TestPlanWateringTasksInvalidFrequency(t *testing.T) {
	p := NewPlanner(time.UTC)

	tests := []struct {
		name  string
		plant model.Plant
	}{
		{"zero frequency", model.Plant{ID: 7, AutoWatering: true, WateringFrequencyDays: intPtr(0)}},
		{"negative frequency", model.Plant{ID: 7, AutoWatering: true, WateringFrequencyDays: intPtr(-3)}},
		{"unset frequency", model.Plant{ID: 7, AutoWatering: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.PlanWateringTasks(tt.plant, nil, time.Now(), 3)
			var invalid *InvalidScheduleError
			if !errors.As(err, &invalid) {
				t.Fatalf("PlanWateringTasks error = %v, want *InvalidScheduleError", err)
			}
			if invalid.PlantID != 7 {
				t.Errorf("error plant id = %d, want 7", invalid.PlantID)
			}
		})
	}
}

func TestPlanWateringTasksHorizon(t *testing.T) {
	p := NewPlanner(time.UTC)
	plant := model.Plant{ID: 1, Name: "Monstera", AutoWatering: true, WateringFrequencyDays: intPtr(7)}
	ref := time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC)

	drafts, err := p.PlanWateringTasks(plant, nil, ref, 3)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"2025-01-08", "2025-01-15", "2025-01-22"}
	if len(drafts) != len(want) {
		t.Fatalf("got %d drafts, want %d", len(drafts), len(want))
	}
	for i, d := range drafts {
		if got := DayOf(d.DueDate, time.UTC).String(); got != want[i] {
			t.Errorf("draft %d due %s, want %s", i, got, want[i])
		}
		if d.Type != model.TaskWater {
			t.Errorf("draft %d type = %q, want water", i, d.Type)
		}
		if d.PlantID != plant.ID {
			t.Errorf("draft %d plant id = %d, want %d", i, d.PlantID, plant.ID)
		}
	}
}

func TestPlanWateringTasksSkipsDaysWithIncompleteWaterTask(t *testing.T) {
	p := NewPlanner(time.UTC)
	plant := model.Plant{ID: 1, Name: "Monstera", AutoWatering: true, WateringFrequencyDays: intPtr(7)}
	ref := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	existing := []model.Task{
		// Stored with an afternoon timestamp; still occupies 2025-01-08.
		{ID: 10, PlantID: 1, Type: model.TaskWater, DueDate: timePtr(time.Date(2025, 1, 8, 14, 45, 0, 0, time.UTC))},
	}

	drafts, err := p.PlanWateringTasks(plant, existing, ref, 3)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"2025-01-15", "2025-01-22"}
	if len(drafts) != len(want) {
		t.Fatalf("got %d drafts, want %d", len(drafts), len(want))
	}
	for i, d := range drafts {
		if got := DayOf(d.DueDate, time.UTC).String(); got != want[i] {
			t.Errorf("draft %d due %s, want %s", i, got, want[i])
		}
	}
}

func TestPlanWateringTasksCompletedTaskDoesNotBlock(t *testing.T) {
	p := NewPlanner(time.UTC)
	plant := model.Plant{ID: 1, Name: "Monstera", AutoWatering: true, WateringFrequencyDays: intPtr(7)}
	ref := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	done := time.Date(2025, 1, 8, 8, 0, 0, 0, time.UTC)
	existing := []model.Task{
		{ID: 10, PlantID: 1, Type: model.TaskWater, DueDate: &done, Completed: true, DateCompleted: &done},
		// A non-water task on a candidate day does not reserve it either.
		{ID: 11, PlantID: 1, Type: model.TaskFertilize, DueDate: timePtr(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))},
	}

	drafts, err := p.PlanWateringTasks(plant, existing, ref, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(drafts) != 3 {
		t.Fatalf("got %d drafts, want 3: completed tasks must not occupy their day", len(drafts))
	}
}

func TestPlanWateringTasksIsPure(t *testing.T) {
	p := NewPlanner(time.UTC)
	plant := model.Plant{ID: 1, Name: "Monstera", AutoWatering: true, WateringFrequencyDays: intPtr(3)}
	ref := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	existing := []model.Task{
		{ID: 2, PlantID: 1, Type: model.TaskWater, DueDate: timePtr(time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC))},
	}

	first, err := p.PlanWateringTasks(plant, existing, ref, 4)
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.PlanWateringTasks(plant, existing, ref, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same inputs produced different plans:\n%v\n%v", first, second)
	}
}

func TestPlanWateringTasksAcrossDSTTransition(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	p := NewPlanner(ny)
	plant := model.Plant{ID: 1, Name: "Ficus", AutoWatering: true, WateringFrequencyDays: intPtr(2)}
	// DST starts 2025-03-09 in New York; adding 48 elapsed hours to the
	// reference lands on 00:30 of the 10th, one day late. Calendar
	// arithmetic must keep the first candidate on the 9th.
	ref := time.Date(2025, 3, 7, 23, 30, 0, 0, ny)

	drafts, err := p.PlanWateringTasks(plant, nil, ref, 3)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"2025-03-09", "2025-03-11", "2025-03-13"}
	for i, d := range drafts {
		if got := DayOf(d.DueDate, ny).String(); got != want[i] {
			t.Errorf("draft %d due %s, want %s", i, got, want[i])
		}
	}
}

func TestToggleAutoWatering(t *testing.T) {
	p := NewPlanner(time.UTC)

	t.Run("enable requires frequency", func(t *testing.T) {
		_, err := p.ToggleAutoWatering(model.Plant{ID: 3}, true)
		var invalid *InvalidScheduleError
		if !errors.As(err, &invalid) {
			t.Fatalf("error = %v, want *InvalidScheduleError", err)
		}
	})

	t.Run("enable with valid frequency", func(t *testing.T) {
		got, err := p.ToggleAutoWatering(model.Plant{ID: 3, WateringFrequencyDays: intPtr(5)}, true)
		if err != nil {
			t.Fatal(err)
		}
		if !got.AutoWatering {
			t.Error("AutoWatering not set")
		}
	})

	t.Run("disable never fails and only flips the flag", func(t *testing.T) {
		in := model.Plant{ID: 3, AutoWatering: true, Name: "Yucca", WateringFrequencyDays: intPtr(5)}
		got, err := p.ToggleAutoWatering(in, false)
		if err != nil {
			t.Fatal(err)
		}
		if got.AutoWatering {
			t.Error("AutoWatering still set")
		}
		got.AutoWatering = in.AutoWatering
		if !reflect.DeepEqual(got, in) {
			t.Errorf("disable changed more than the flag: %+v vs %+v", got, in)
		}
	})

	t.Run("input is not mutated", func(t *testing.T) {
		in := model.Plant{ID: 3, WateringFrequencyDays: intPtr(5)}
		if _, err := p.ToggleAutoWatering(in, true); err != nil {
			t.Fatal(err)
		}
		if in.AutoWatering {
			t.Error("argument plant was mutated")
		}
	})
}
