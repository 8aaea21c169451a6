package model

import "time"

// JournalEntry records one observation in a plant's growth journal.
type JournalEntry struct {
	ID           uint `gorm:"primaryKey"`
	PlantID      uint `gorm:"index"`
	UserID       uint `gorm:"index"`
	Date         time.Time
	Title        string
	Notes        string
	ImageURL     string
	HeightCm     *int
	LeafCount    *int
	HealthRating *int // 1..5
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
