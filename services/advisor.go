package services

import (
	"fmt"
	"time"

	"github.com/cansuyumceylan/FlowSync/models"
)

// Advisor proposes a reschedule slot from the weekly availability model.
// The heuristic is greedy and conflict-blind: it does not check whether
// other tasks occupy the slot or whether the block fits the task duration.
// The result is advisory; the user confirms before anything is moved.
type Advisor struct {
	schedule *ScheduleService
}

func NewAdvisor(schedule *ScheduleService) *Advisor {
	return &Advisor{schedule: schedule}
}

// SuggestSlot picks tomorrow's earliest work block, or falls back to a
// 09:00 morning slot when the day has no work blocks.
func (a *Advisor) SuggestSlot(userID string, referenceDate time.Time) (*models.SlotSuggestion, error) {
	target := referenceDate.AddDate(0, 0, 1)
	weekday := target.Weekday().String()

	blocks, err := a.schedule.BlocksForDay(userID, weekday)
	if err != nil {
		return nil, err
	}

	// BlocksForDay is sorted by start time, so the first work block is the
	// earliest in the day.
	for _, b := range blocks {
		if b.Type == models.BlockWork {
			return &models.SlotSuggestion{
				Date:   target.Format("2006-01-02"),
				Time:   b.StartTime,
				Reason: fmt.Sprintf("found a free '%s' slot tomorrow", b.Label),
			}, nil
		}
	}

	return &models.SlotSuggestion{
		Date:   target.Format("2006-01-02"),
		Time:   "09:00",
		Reason: "no work blocks found, defaulting to morning",
	}, nil
}
