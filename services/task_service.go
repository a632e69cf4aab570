package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/cansuyumceylan/FlowSync/models"
	"github.com/cansuyumceylan/FlowSync/utils"
)

// TaskService owns the task registry of every user. Tasks are only mutated
// through these operations; operations on a missing id are silent no-ops.
type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// nextSeq hands out the next per-user insertion ordinal for the model.
// List order sorts on seq, which does not depend on timestamp resolution.
func nextSeq(tx *gorm.DB, model interface{}, userID string) (int64, error) {
	var max int64
	err := tx.Model(model).Where("user_id = ?", userID).
		Select("COALESCE(MAX(seq), 0)").Scan(&max).Error
	return max + 1, err
}

// Add creates a task with the registry defaults. The title must be
// non-empty after trimming.
func (s *TaskService) Add(userID, title string, scheduledDate *string) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, &ValidationError{Message: "task title cannot be empty"}
	}

	task := models.Task{
		ID:            utils.GenerateID(),
		UserID:        userID,
		Title:         title,
		IsCompleted:   false,
		CreatedAt:     time.Now(),
		ScheduledDate: scheduledDate,
		StartTime:     nil,
		Duration:      25,
		Priority:      models.PriorityMedium,
		Notes:         "",
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		seq, err := nextSeq(tx, &models.Task{}, userID)
		if err != nil {
			return err
		}
		task.Seq = seq
		return tx.Create(&task).Error
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Remove deletes a task. Removing a nonexistent id is a no-op.
func (s *TaskService) Remove(userID, id string) error {
	return s.db.Where("user_id = ? AND id = ?", userID, id).Delete(&models.Task{}).Error
}

// ToggleComplete flips the completion flag. No-op if the id is not found.
func (s *TaskService) ToggleComplete(userID, id string) error {
	task, err := s.Get(userID, id)
	if err != nil || task == nil {
		return err
	}
	return s.db.Model(task).Update("is_completed", !task.IsCompleted).Error
}

// Update merges the supplied fields into the task; nil fields retain their
// prior values. No-op if the id is not found.
func (s *TaskService) Update(userID, id string, req models.UpdateTaskRequest) error {
	task, err := s.Get(userID, id)
	if err != nil || task == nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.IsCompleted != nil {
		updates["is_completed"] = *req.IsCompleted
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.Priority != nil {
		if !models.IsValidPriority(*req.Priority) {
			return &ValidationError{Message: "invalid priority"}
		}
		updates["priority"] = *req.Priority
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) == 0 {
		return nil
	}
	return s.db.Model(task).Updates(updates).Error
}

// Move sets scheduledDate and startTime together. A nil date unschedules
// the task and always clears the start time as well, so a task never holds
// a start time without a date. No-op if the id is not found.
func (s *TaskService) Move(userID, id string, date, startTime *string) error {
	task, err := s.Get(userID, id)
	if err != nil || task == nil {
		return err
	}
	if date == nil {
		startTime = nil
	}
	return s.db.Model(task).Updates(map[string]interface{}{
		"scheduled_date": date,
		"start_time":     startTime,
	}).Error
}

// Get resolves a task by id, returning (nil, nil) when absent. Weak
// references (the focus session's active task) resolve through this.
func (s *TaskService) Get(userID, id string) (*models.Task, error) {
	var task models.Task
	err := s.db.Where("user_id = ? AND id = ?", userID, id).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns all tasks of the user in insertion order.
func (s *TaskService) List(userID string) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.Where("user_id = ?", userID).Order("seq asc").Find(&tasks).Error
	return tasks, err
}

// TasksForDate returns tasks scheduled on the given "YYYY-MM-DD" date.
func (s *TaskService) TasksForDate(userID, date string) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.Where("user_id = ? AND scheduled_date = ?", userID, date).
		Order("seq asc").Find(&tasks).Error
	return tasks, err
}

// UnscheduledTasks returns open tasks without a scheduled date.
func (s *TaskService) UnscheduledTasks(userID string) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.Where("user_id = ? AND scheduled_date IS NULL AND is_completed = ?", userID, false).
		Order("seq asc").Find(&tasks).Error
	return tasks, err
}

// ReplaceAll swaps the user's full task list, used by the import surface.
// Imported tasks go through the same normalization Move enforces: a task
// without a scheduled date never keeps a start time.
func (s *TaskService) ReplaceAll(userID string, tasks []models.Task) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		for i := range tasks {
			tasks[i].UserID = userID
			tasks[i].Seq = int64(i + 1)
			if tasks[i].ID == "" {
				tasks[i].ID = utils.GenerateID()
			}
			if tasks[i].ScheduledDate == nil {
				tasks[i].StartTime = nil
			}
			if err := tx.Create(&tasks[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
