package service

import (
	"testing"
	"time"

	"plantcare/internal/model"
)

func TestReminderClock(t *testing.T) {
	tests := []struct {
		name  string
		plant model.Plant
		user  model.User
		want  string
	}{
		{"plant time wins", model.Plant{ReminderTime: "19:30"}, model.User{ReminderTime: "08:00"}, "19:30"},
		{"falls back to user", model.Plant{}, model.User{ReminderTime: "07:15"}, "07:15"},
		{"malformed plant time falls back", model.Plant{ReminderTime: "25:99"}, model.User{ReminderTime: "07:15"}, "07:15"},
		{"default when both missing", model.Plant{}, model.User{}, "08:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reminderClock(tt.plant, tt.user); got != tt.want {
				t.Errorf("reminderClock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClockMatches(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatal(err)
	}

	// 08:00 in Paris is 06:00 UTC (summer time).
	now := time.Date(2025, 7, 10, 6, 0, 42, 0, time.UTC)

	tests := []struct {
		name  string
		clock string
		loc   *time.Location
		want  bool
	}{
		{"matches in canonical zone", "08:00", paris, true},
		{"utc reading does not match", "06:00", paris, false},
		{"different minute", "08:01", paris, false},
		{"malformed clock never matches", "8am", paris, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clockMatches(tt.clock, now, tt.loc); got != tt.want {
				t.Errorf("clockMatches(%q) = %v, want %v", tt.clock, got, tt.want)
			}
		})
	}
}

func TestOpenTasks(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Completed: true},
		{ID: 2},
		{ID: 3, Completed: false},
	}
	got := openTasks(tasks)
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Errorf("openTasks() = %v, want tasks 2 and 3 in order", got)
	}
}
