package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config keeps runtime settings for the service.
type Config struct {
	HTTPAddr    string
	DatabaseURL string

	// Timezone is the canonical zone for calendar-day comparisons.
	Timezone string

	// WateringHorizon is how many future watering tasks the planner keeps
	// scheduled per auto-watering plant.
	WateringHorizon int

	// ReminderCheckInterval is how often the reminder sweep runs.
	ReminderCheckInterval time.Duration

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string

	TelegramToken string
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:              strings.TrimSpace(os.Getenv("HTTP_ADDR")),
		DatabaseURL:           strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Timezone:              strings.TrimSpace(os.Getenv("TIMEZONE")),
		WateringHorizon:       parsePositiveInt(os.Getenv("WATERING_HORIZON")),
		ReminderCheckInterval: parseDurationEnv(os.Getenv("REMINDER_CHECK_INTERVAL")),
		SMTPHost:              strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPPort:              parsePositiveInt(os.Getenv("SMTP_PORT")),
		SMTPUser:              strings.TrimSpace(os.Getenv("SMTP_USER")),
		SMTPPass:              os.Getenv("SMTP_PASS"),
		MailFrom:              strings.TrimSpace(os.Getenv("MAIL_FROM")),
		TelegramToken:         strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
	}

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "plantcare.db"
	}
	if cfg.WateringHorizon == 0 {
		cfg.WateringHorizon = 4
	}
	if cfg.ReminderCheckInterval == 0 {
		cfg.ReminderCheckInterval = time.Minute
	}
	if cfg.SMTPPort == 0 {
		cfg.SMTPPort = 587
	}
	if cfg.MailFrom == "" {
		cfg.MailFrom = cfg.SMTPUser
	}

	if _, err := cfg.Location(); err != nil {
		return cfg, err
	}
	if cfg.SMTPHost != "" && cfg.MailFrom == "" {
		return cfg, fmt.Errorf("MAIL_FROM or SMTP_USER is required when SMTP_HOST is set")
	}

	return cfg, nil
}

// Location resolves the configured timezone; empty means the system zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// MailEnabled reports whether the email channel is configured.
func (c Config) MailEnabled() bool {
	return c.SMTPHost != ""
}

func parsePositiveInt(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v <= 0 {
		return 0
	}
	return v
}

func parseDurationEnv(raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0
	}
	return d
}
