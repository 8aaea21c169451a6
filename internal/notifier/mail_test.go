package notifier

import (
	"strings"
	"testing"
	"time"

	"plantcare/internal/model"
	"plantcare/internal/schedule"
)

func freqPtr(v int) *int { return &v }

func TestRenderTaskReminder(t *testing.T) {
	user := model.User{FirstName: "Léa", Email: "lea@example.com"}
	plant := model.Plant{Name: "Monstera <Deliciosa>", CareNotes: "Likes humidity"}
	tasks := []model.Task{
		{Type: model.TaskWater, Description: "Water the monstera"},
		{Type: model.TaskFertilize, Description: "Feed it"},
	}

	out := renderTaskReminder(user, plant, tasks)

	for _, want := range []string{"Hello Léa,", "Water the monstera", "Feed it", "Likes humidity", "💧", "🌱"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered reminder missing %q", want)
		}
	}
	if strings.Contains(out, "<Deliciosa>") {
		t.Error("plant name was not HTML-escaped")
	}
}

func TestRenderAutoWatering(t *testing.T) {
	user := model.User{Username: "leafpeep"}
	plant := model.Plant{Name: "Ficus", WateringFrequencyDays: freqPtr(5), ReminderTime: "08:30"}
	upcoming := []schedule.Day{
		{Year: 2025, Month: time.January, Day: 8},
		{Year: 2025, Month: time.January, Day: 13},
	}

	t.Run("enabled lists projected days", func(t *testing.T) {
		out := renderAutoWatering(user, plant, true, upcoming)
		for _, want := range []string{"every <strong>5 days</strong>", "2025-01-08", "2025-01-13", "08:30"} {
			if !strings.Contains(out, want) {
				t.Errorf("enabled mail missing %q", want)
			}
		}
	})

	t.Run("disabled keeps scheduled tasks", func(t *testing.T) {
		out := renderAutoWatering(user, plant, false, nil)
		if !strings.Contains(out, "stay there") {
			t.Error("disabled mail should say existing tasks are kept")
		}
		if strings.Contains(out, "2025-01-08") {
			t.Error("disabled mail should not list watering days")
		}
	})
}

func TestGreetingFallbacks(t *testing.T) {
	tests := []struct {
		name string
		user model.User
		want string
	}{
		{"first name", model.User{FirstName: "Ada", Username: "alovelace"}, "Hello Ada,"},
		{"username", model.User{Username: "alovelace"}, "Hello alovelace,"},
		{"anonymous", model.User{}, "Hello,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := greeting(tt.user); got != tt.want {
				t.Errorf("greeting() = %q, want %q", got, tt.want)
			}
		})
	}
}
