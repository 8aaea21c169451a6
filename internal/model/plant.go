package model

import "time"

// Plant health statuses as shown on the plant card.
const (
	StatusHealthy = "healthy"
	StatusWarning = "warning"
	StatusDanger  = "danger"
)

// Plant represents a tracked houseplant.
type Plant struct {
	ID                    uint `gorm:"primaryKey"`
	UserID                uint `gorm:"index"`
	Name                  string
	Species               string
	Status                string `gorm:"default:healthy"`
	Image                 string
	WateringFrequencyDays *int   // nil when watering is not tracked
	Light                 string // indirect, direct, shade
	Temperature           string
	CareNotes             string
	PotSize               string
	AutoWatering          bool   `gorm:"default:false"`
	ReminderTime          string `gorm:"default:08:00"` // HH:MM
	ShareToken            string `gorm:"uniqueIndex"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
	Tasks                 []Task `gorm:"foreignKey:PlantID"`
}

// WateringFrequency returns the watering cadence in days, 0 when unset.
func (p Plant) WateringFrequency() int {
	if p.WateringFrequencyDays == nil {
		return 0
	}
	return *p.WateringFrequencyDays
}
