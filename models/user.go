package models

import (
	"time"
)

// User model
type User struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(100)" json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	IsGuest   bool      `gorm:"default:true" json:"isGuest"`
}
