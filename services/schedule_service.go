package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/cansuyumceylan/FlowSync/models"
	"github.com/cansuyumceylan/FlowSync/utils"
)

// ScheduleService owns the weekly availability model: recurring time blocks
// per weekday. Blocks on the same day may overlap; only start < end is
// enforced.
type ScheduleService struct {
	db *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{db: db}
}

func validateBlockTimes(start, end string) error {
	if _, err := time.Parse("15:04", start); err != nil {
		return &ValidationError{Message: "startTime must be HH:mm"}
	}
	if _, err := time.Parse("15:04", end); err != nil {
		return &ValidationError{Message: "endTime must be HH:mm"}
	}
	// Zero-padded 24h strings, so string order equals time order.
	if start >= end {
		return &ValidationError{Message: "startTime must be before endTime"}
	}
	return nil
}

// AddBlock creates a block with a generated id.
func (s *ScheduleService) AddBlock(userID string, req models.AddBlockRequest) (*models.TimeBlock, error) {
	if !models.IsValidDay(req.Day) {
		return nil, &ValidationError{Message: "invalid day of week"}
	}
	if !models.IsValidBlockType(req.Type) {
		return nil, &ValidationError{Message: "invalid block type"}
	}
	if err := validateBlockTimes(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	block := models.TimeBlock{
		ID:        utils.GenerateID(),
		UserID:    userID,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Type:      req.Type,
		Label:     req.Label,
		CreatedAt: time.Now(),
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		seq, err := nextSeq(tx, &models.TimeBlock{}, userID)
		if err != nil {
			return err
		}
		block.Seq = seq
		return tx.Create(&block).Error
	})
	if err != nil {
		return nil, err
	}
	return &block, nil
}

// RemoveBlock deletes a block. Removing a nonexistent id is a no-op.
func (s *ScheduleService) RemoveBlock(userID, id string) error {
	return s.db.Where("user_id = ? AND id = ?", userID, id).Delete(&models.TimeBlock{}).Error
}

// UpdateBlock merges the supplied fields. No-op if the id is not found.
func (s *ScheduleService) UpdateBlock(userID, id string, req models.UpdateBlockRequest) error {
	var block models.TimeBlock
	err := s.db.Where("user_id = ? AND id = ?", userID, id).First(&block).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if req.Day != nil {
		if !models.IsValidDay(*req.Day) {
			return &ValidationError{Message: "invalid day of week"}
		}
		block.Day = *req.Day
	}
	if req.Type != nil {
		if !models.IsValidBlockType(*req.Type) {
			return &ValidationError{Message: "invalid block type"}
		}
		block.Type = *req.Type
	}
	if req.StartTime != nil {
		block.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		block.EndTime = *req.EndTime
	}
	if req.Label != nil {
		block.Label = *req.Label
	}
	if err := validateBlockTimes(block.StartTime, block.EndTime); err != nil {
		return err
	}
	return s.db.Save(&block).Error
}

// BlocksForDay returns the blocks for a weekday sorted ascending by start
// time, ties broken by insertion order. The reschedule advisor relies on
// "first" meaning "earliest in the day".
func (s *ScheduleService) BlocksForDay(userID, day string) ([]models.TimeBlock, error) {
	var blocks []models.TimeBlock
	err := s.db.Where("user_id = ? AND day = ?", userID, day).
		Order("start_time asc, seq asc").Find(&blocks).Error
	return blocks, err
}

// List returns every block of the user.
func (s *ScheduleService) List(userID string) ([]models.TimeBlock, error) {
	var blocks []models.TimeBlock
	err := s.db.Where("user_id = ?", userID).Order("seq asc").Find(&blocks).Error
	return blocks, err
}

// ReplaceAll swaps the user's full schedule, used by the import surface.
// Imported blocks pass the same validation AddBlock applies; one invalid
// block rejects the whole import before anything is touched.
func (s *ScheduleService) ReplaceAll(userID string, blocks []models.TimeBlock) error {
	for i := range blocks {
		if !models.IsValidDay(blocks[i].Day) {
			return &ValidationError{Message: "invalid day of week"}
		}
		if !models.IsValidBlockType(blocks[i].Type) {
			return &ValidationError{Message: "invalid block type"}
		}
		if err := validateBlockTimes(blocks[i].StartTime, blocks[i].EndTime); err != nil {
			return err
		}
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.TimeBlock{}).Error; err != nil {
			return err
		}
		for i := range blocks {
			blocks[i].UserID = userID
			blocks[i].Seq = int64(i + 1)
			if blocks[i].ID == "" {
				blocks[i].ID = utils.GenerateID()
			}
			if err := tx.Create(&blocks[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
