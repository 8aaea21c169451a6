package model

import "time"

// Task types. Anything the UI does not know renders as "other".
const (
	TaskWater     = "water"
	TaskFertilize = "fertilize"
	TaskRepot     = "repot"
	TaskLight     = "light"
	TaskOther     = "other"
)

// KnownTaskType reports whether t is one of the supported task types.
func KnownTaskType(t string) bool {
	switch t {
	case TaskWater, TaskFertilize, TaskRepot, TaskLight, TaskOther:
		return true
	}
	return false
}

// Task is a single care action scheduled for a plant. The time-of-day part
// of DueDate carries no meaning; tasks belong to a calendar day. DueDay holds
// that day as YYYY-MM-DD in the canonical zone, so duplicate checks compare
// one representation no matter what offset the timestamp was stored with.
// The partial unique index makes the at-most-one-open-task-per-day guarantee
// hold under concurrent writers.
type Task struct {
	ID            uint   `gorm:"primaryKey"`
	PlantID       uint   `gorm:"index;uniqueIndex:idx_open_task_day,priority:1"`
	Type          string `gorm:"index;uniqueIndex:idx_open_task_day,priority:2"`
	Description   string
	DueDate       *time.Time
	DueDay        string `gorm:"uniqueIndex:idx_open_task_day,priority:3,where:completed = 0 AND due_day <> ''"`
	Completed     bool   `gorm:"default:false"`
	DateCompleted *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TaskDraft is a task creation request produced by the watering planner.
// It becomes a Task once the caller persists it.
type TaskDraft struct {
	PlantID     uint
	Type        string
	Description string
	DueDate     time.Time
}
