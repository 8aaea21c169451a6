package notifier

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"gopkg.in/gomail.v2"

	"plantcare/internal/model"
	"plantcare/internal/schedule"
)

// Mail sends HTML notification emails over SMTP. Sends are rate limited so
// a reminder sweep over many plants cannot flood the relay.
type Mail struct {
	dialer  *gomail.Dialer
	from    string
	limiter *rate.Limiter
	log     *logrus.Logger
}

func NewMail(host string, port int, username, password, from string, log *logrus.Logger) *Mail {
	return &Mail{
		dialer:  gomail.NewDialer(host, port, username, password),
		from:    from,
		limiter: rate.NewLimiter(rate.Limit(1), 5),
		log:     log,
	}
}

func (m *Mail) TaskReminder(ctx context.Context, user model.User, plant model.Plant, tasks []model.Task) error {
	if user.Email == "" {
		return nil
	}
	subject := fmt.Sprintf("🌿 Care reminder for %s", plant.Name)
	return m.send(ctx, user.Email, subject, renderTaskReminder(user, plant, tasks))
}

func (m *Mail) AutoWateringChanged(ctx context.Context, user model.User, plant model.Plant, enabled bool, upcoming []schedule.Day) error {
	if user.Email == "" {
		return nil
	}
	state := "disabled"
	if enabled {
		state = "enabled"
	}
	subject := fmt.Sprintf("💧 Automatic watering %s for %s", state, plant.Name)
	return m.send(ctx, user.Email, subject, renderAutoWatering(user, plant, enabled, upcoming))
}

func (m *Mail) PlantAdded(ctx context.Context, user model.User, plant model.Plant) error {
	if user.Email == "" {
		return nil
	}
	subject := fmt.Sprintf("🪴 %s joined your collection", plant.Name)
	return m.send(ctx, user.Email, subject, renderPlantAdded(user, plant))
}

func (m *Mail) send(ctx context.Context, to, subject, body string) error {
	if err := m.limiter.Wait(ctx); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		if m.log != nil {
			m.log.WithFields(logrus.Fields{"to": to, "subject": subject}).WithError(err).Warn("email send failed")
		}
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	if m.log != nil {
		m.log.WithField("to", to).Debug("email sent")
	}
	return nil
}

func greeting(user model.User) string {
	name := strings.TrimSpace(user.FirstName)
	if name == "" {
		name = strings.TrimSpace(user.Username)
	}
	if name == "" {
		return "Hello,"
	}
	return fmt.Sprintf("Hello %s,", html.EscapeString(name))
}

func taskIcon(taskType string) string {
	switch taskType {
	case model.TaskWater:
		return "💧"
	case model.TaskFertilize:
		return "🌱"
	case model.TaskRepot:
		return "🪴"
	case model.TaskLight:
		return "☀️"
	default:
		return "🌿"
	}
}

func renderTaskReminder(user model.User, plant model.Plant, tasks []model.Task) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<p>%s</p>", greeting(user)))
	sb.WriteString(fmt.Sprintf("<p><strong>%s</strong> needs attention today:</p><ul>",
		html.EscapeString(plant.Name)))
	for _, t := range tasks {
		sb.WriteString(fmt.Sprintf("<li>%s %s</li>", taskIcon(t.Type), html.EscapeString(t.Description)))
	}
	sb.WriteString("</ul>")
	if plant.CareNotes != "" {
		sb.WriteString(fmt.Sprintf("<p><em>%s</em></p>", html.EscapeString(plant.CareNotes)))
	}
	return wrapTemplate("Care reminder", sb.String())
}

func renderAutoWatering(user model.User, plant model.Plant, enabled bool, upcoming []schedule.Day) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<p>%s</p>", greeting(user)))
	if enabled {
		sb.WriteString(fmt.Sprintf(
			"<p>Automatic watering is now <strong>on</strong> for %s. Watering tasks will be created every <strong>%d days</strong>.</p>",
			html.EscapeString(plant.Name), plant.WateringFrequency()))
		if len(upcoming) > 0 {
			sb.WriteString("<p>Next scheduled waterings:</p><ul>")
			for _, day := range upcoming {
				sb.WriteString(fmt.Sprintf("<li>💧 %s</li>", day))
			}
			sb.WriteString("</ul>")
			sb.WriteString(fmt.Sprintf("<p>Reminders are sent at <strong>%s</strong>; you can change that on the plant page.</p>",
				html.EscapeString(plant.ReminderTime)))
		}
	} else {
		sb.WriteString(fmt.Sprintf(
			"<p>Automatic watering is now <strong>off</strong> for %s. Tasks already on your calendar stay there; new ones must be added by hand.</p>",
			html.EscapeString(plant.Name)))
	}
	return wrapTemplate("Automatic watering", sb.String())
}

func renderPlantAdded(user model.User, plant model.Plant) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<p>%s</p>", greeting(user)))
	sb.WriteString(fmt.Sprintf("<p><strong>%s</strong>", html.EscapeString(plant.Name)))
	if plant.Species != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", html.EscapeString(plant.Species)))
	}
	sb.WriteString(" was added to your collection.</p>")
	if freq := plant.WateringFrequency(); freq > 0 {
		sb.WriteString(fmt.Sprintf("<p>💧 Water every %d days.</p>", freq))
	}
	return wrapTemplate("New plant", sb.String())
}

func wrapTemplate(title, content string) string {
	return fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 560px; margin: 0 auto;">
<h2 style="color: #2e7d32;">%s</h2>
%s
<p style="font-size: 12px; color: #888;">Sent by your plant care tracker.</p>
</div>`, html.EscapeString(title), content)
}
