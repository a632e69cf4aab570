package models

import (
	"time"
)

// ActivityLog records one closed focus session. Entries are append-only:
// the core never mutates or deletes them. TaskID and TaskTitle are a
// snapshot taken at close time and stay valid after the task is deleted.
type ActivityLog struct {
	ID          string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID      string    `gorm:"type:varchar(50);index:idx_activity_logs_user" json:"-"`
	TaskID      *string   `gorm:"type:varchar(50)" json:"taskId"`
	TaskTitle   *string   `gorm:"type:varchar(200)" json:"taskTitle"`
	Mode        string    `gorm:"type:varchar(10)" json:"mode"`
	Duration    int       `json:"duration"` // minutes, nominal per mode
	CompletedAt time.Time `json:"completedAt"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
