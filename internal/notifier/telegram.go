package notifier

import (
	"context"
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"plantcare/internal/model"
	"plantcare/internal/schedule"
)

// Telegram pushes short notifications to users who linked a chat ID.
// Users without one are silently skipped.
type Telegram struct {
	bot *tgbotapi.BotAPI
	log *logrus.Logger
}

func NewTelegram(token string, log *logrus.Logger) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return &Telegram{bot: bot, log: log}, nil
}

func (t *Telegram) TaskReminder(ctx context.Context, user model.User, plant model.Plant, tasks []model.Task) error {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🌿 <b>%s</b> needs attention today:\n", html.EscapeString(plant.Name)))
	for _, task := range tasks {
		sb.WriteString(fmt.Sprintf("%s %s\n", taskIcon(task.Type), html.EscapeString(task.Description)))
	}
	return t.send(ctx, user, sb.String())
}

func (t *Telegram) AutoWateringChanged(ctx context.Context, user model.User, plant model.Plant, enabled bool, upcoming []schedule.Day) error {
	var sb strings.Builder
	if enabled {
		sb.WriteString(fmt.Sprintf("💧 Automatic watering is on for <b>%s</b> (every %d days).\n",
			html.EscapeString(plant.Name), plant.WateringFrequency()))
		for _, day := range upcoming {
			sb.WriteString(fmt.Sprintf("• %s\n", day))
		}
	} else {
		sb.WriteString(fmt.Sprintf("🚫 Automatic watering is off for <b>%s</b>.", html.EscapeString(plant.Name)))
	}
	return t.send(ctx, user, sb.String())
}

func (t *Telegram) PlantAdded(ctx context.Context, user model.User, plant model.Plant) error {
	return t.send(ctx, user, fmt.Sprintf("🪴 <b>%s</b> joined your collection.", html.EscapeString(plant.Name)))
}

func (t *Telegram) send(ctx context.Context, user model.User, text string) error {
	if user.TelegramChatID == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(user.TelegramChatID, strings.TrimSpace(text))
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := t.bot.Send(msg); err != nil {
		if t.log != nil {
			t.log.WithField("chat_id", user.TelegramChatID).WithError(err).Warn("telegram send failed")
		}
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}
