package models

import (
	"time"
)

// DayOfWeek names match time.Weekday.String().
const (
	Monday    = "Monday"
	Tuesday   = "Tuesday"
	Wednesday = "Wednesday"
	Thursday  = "Thursday"
	Friday    = "Friday"
	Saturday  = "Saturday"
	Sunday    = "Sunday"
)

func IsValidDay(day string) bool {
	switch day {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	default:
		return false
	}
}

// Block types
const (
	BlockWork  = "work"
	BlockHobby = "hobby"
	BlockRest  = "rest"
	BlockOther = "other"
)

func IsValidBlockType(t string) bool {
	switch t {
	case BlockWork, BlockHobby, BlockRest, BlockOther:
		return true
	default:
		return false
	}
}

// TimeBlock is a recurring weekly interval. Times are zero-padded 24h
// "HH:mm" strings, so string comparison equals time comparison. Blocks on
// the same day may overlap; no overlap check is enforced. Seq is the
// per-user insertion ordinal used to break start-time ties.
type TimeBlock struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(50);index:idx_time_blocks_user" json:"-"`
	Seq       int64     `json:"-"`
	Day       string    `gorm:"type:varchar(10)" json:"day"`
	StartTime string    `gorm:"type:varchar(5)" json:"startTime"`
	EndTime   string    `gorm:"type:varchar(5)" json:"endTime"`
	Type      string    `gorm:"type:varchar(10)" json:"type"`
	Label     string    `gorm:"type:varchar(100)" json:"label"`
	CreatedAt time.Time `json:"-"`
}

func (TimeBlock) TableName() string {
	return "time_blocks"
}
