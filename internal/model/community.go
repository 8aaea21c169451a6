package model

import "time"

// CommunityTip is a care tip shared on the community board.
type CommunityTip struct {
	ID           uint `gorm:"primaryKey"`
	UserID       uint `gorm:"index"`
	Title        string
	Content      string
	PlantSpecies string
	Category     string // watering, diseases, care, ...
	Tags         string `gorm:"type:text"` // JSON-encoded list
	ImageURL     string
	Votes        int  `gorm:"default:0"`
	Approved     bool `gorm:"default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Comments     []CommunityComment `gorm:"foreignKey:TipID"`
}

// CommunityComment is a reply attached to a tip.
type CommunityComment struct {
	ID        uint `gorm:"primaryKey"`
	TipID     uint `gorm:"index"`
	UserID    uint `gorm:"index"`
	Content   string
	Likes     int `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
