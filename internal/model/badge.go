package model

// Badge categories.
const (
	BadgeCare       = "care"
	BadgeCollection = "collection"
	BadgeJournal    = "journal"
	BadgeCommunity  = "community"
)

// Badge is computed on request from the user's activity; it is never stored.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Unlocked    bool   `json:"unlocked"`
	Progress    int    `json:"progress"`
	MaxProgress int    `json:"maxProgress"`
}
