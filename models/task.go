package models

import (
	"time"
)

// TaskPriority levels
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

func IsValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Task is a user task. ScheduledDate ("YYYY-MM-DD") and StartTime ("HH:mm")
// are nullable together: a task without a date never carries a start time.
// Seq is the per-user insertion ordinal; list order follows it.
type Task struct {
	ID            string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID        string    `gorm:"type:varchar(50);index:idx_tasks_user" json:"-"`
	Seq           int64     `json:"-"`
	Title         string    `gorm:"type:varchar(200)" json:"title"`
	IsCompleted   bool      `gorm:"default:false" json:"isCompleted"`
	CreatedAt     time.Time `json:"createdAt"`
	ScheduledDate *string   `gorm:"type:varchar(10)" json:"scheduledDate"`
	StartTime     *string   `gorm:"type:varchar(5)" json:"startTime"`
	Duration      int       `gorm:"default:25" json:"duration"` // minutes
	Priority      string    `gorm:"type:varchar(10);default:medium" json:"priority"`
	Notes         string    `gorm:"type:text" json:"notes"`
}
