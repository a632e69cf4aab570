package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/cansuyumceylan/FlowSync/models"
	"github.com/cansuyumceylan/FlowSync/utils"
)

// ActivityService owns the append-only log of closed focus sessions. The
// core only ever appends; nothing inside it reads the log back.
type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// Append writes exactly one entry for a session closure.
func (s *ActivityService) Append(userID string, taskID, taskTitle *string, mode string, duration int, notes string) (*models.ActivityLog, error) {
	entry := models.ActivityLog{
		ID:          utils.GenerateID(),
		UserID:      userID,
		TaskID:      taskID,
		TaskTitle:   taskTitle,
		Mode:        mode,
		Duration:    duration,
		CompletedAt: time.Now(),
		Notes:       notes,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns the user's log, newest first.
func (s *ActivityService) List(userID string) ([]models.ActivityLog, error) {
	var logs []models.ActivityLog
	err := s.db.Where("user_id = ?", userID).Order("completed_at desc").Find(&logs).Error
	return logs, err
}

// ReplaceAll swaps the user's full log. This is an administrative path for
// the import surface, not a core mutation.
func (s *ActivityService) ReplaceAll(userID string, logs []models.ActivityLog) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.ActivityLog{}).Error; err != nil {
			return err
		}
		for i := range logs {
			logs[i].UserID = userID
			if logs[i].ID == "" {
				logs[i].ID = utils.GenerateID()
			}
			if err := tx.Create(&logs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
