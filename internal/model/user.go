package model

import "time"

// User owns plants and receives care reminders.
type User struct {
	ID             uint   `gorm:"primaryKey"`
	Username       string `gorm:"uniqueIndex"`
	FirstName      string
	Email          string
	ReminderTime   string `gorm:"default:08:00"` // HH:MM, fallback for plants without their own
	TelegramChatID int64  // optional second reminder channel
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
