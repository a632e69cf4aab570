package services

import (
	"testing"
	"time"

	"github.com/cansuyumceylan/FlowSync/models"
)

func addBlock(t *testing.T, svc *ScheduleService, day, start, end, blockType, label string) *models.TimeBlock {
	t.Helper()
	block, err := svc.AddBlock(testUser, models.AddBlockRequest{
		Day:       day,
		StartTime: start,
		EndTime:   end,
		Type:      blockType,
		Label:     label,
	})
	if err != nil {
		t.Fatalf("AddBlock failed: %v", err)
	}
	return block
}

func TestBlocksForDaySortedByStartTime(t *testing.T) {
	svc := NewScheduleService(newTestDB(t))

	// Inserted out of order on purpose.
	addBlock(t, svc, models.Wednesday, "13:00", "17:00", models.BlockWork, "Afternoon")
	addBlock(t, svc, models.Wednesday, "09:00", "12:00", models.BlockWork, "Morning")
	addBlock(t, svc, models.Wednesday, "19:00", "21:00", models.BlockHobby, "Reading")
	addBlock(t, svc, models.Thursday, "08:00", "10:00", models.BlockWork, "Other day")

	blocks, err := svc.BlocksForDay(testUser, models.Wednesday)
	if err != nil {
		t.Fatalf("BlocksForDay failed: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}
	for i := 1; i < len(blocks); i++ {
		if blocks[i-1].StartTime > blocks[i].StartTime {
			t.Errorf("blocks out of order: %q before %q", blocks[i-1].StartTime, blocks[i].StartTime)
		}
	}
	if blocks[0].Label != "Morning" {
		t.Errorf("first block = %q, want the 09:00 one", blocks[0].Label)
	}
}

func TestBlocksForDayStableOnEqualStarts(t *testing.T) {
	svc := NewScheduleService(newTestDB(t))

	first := addBlock(t, svc, models.Monday, "09:00", "10:00", models.BlockWork, "first")
	second := addBlock(t, svc, models.Monday, "09:00", "11:00", models.BlockWork, "second")

	blocks, err := svc.BlocksForDay(testUser, models.Monday)
	if err != nil {
		t.Fatalf("BlocksForDay failed: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].ID != first.ID || blocks[1].ID != second.ID {
		t.Error("equal start times must keep insertion order")
	}
}

func TestBlocksForDayTieBreakIgnoresTimestamps(t *testing.T) {
	db := newTestDB(t)
	svc := NewScheduleService(db)

	first := addBlock(t, svc, models.Monday, "09:00", "10:00", models.BlockWork, "first")
	second := addBlock(t, svc, models.Monday, "09:00", "11:00", models.BlockWork, "second")

	// Collapse the creation timestamps; the tie-break must not depend on
	// timestamp resolution.
	fixed := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	err := db.Model(&models.TimeBlock{}).Where("user_id = ?", testUser).
		Update("created_at", fixed).Error
	if err != nil {
		t.Fatalf("collapse timestamps: %v", err)
	}

	blocks, err := svc.BlocksForDay(testUser, models.Monday)
	if err != nil {
		t.Fatalf("BlocksForDay failed: %v", err)
	}
	if len(blocks) != 2 || blocks[0].ID != first.ID || blocks[1].ID != second.ID {
		t.Error("equal start times must keep insertion order regardless of timestamps")
	}
}

func TestReplaceAllValidatesBlocks(t *testing.T) {
	svc := NewScheduleService(newTestDB(t))

	addBlock(t, svc, models.Monday, "09:00", "12:00", models.BlockWork, "existing")

	err := svc.ReplaceAll(testUser, []models.TimeBlock{
		{Day: models.Tuesday, StartTime: "09:00", EndTime: "10:00", Type: models.BlockWork},
		{Day: models.Tuesday, StartTime: "12:00", EndTime: "09:00", Type: models.BlockWork},
	})
	if !IsValidationError(err) {
		t.Fatalf("got %v, want ValidationError for inverted times", err)
	}

	// A rejected replacement leaves the schedule untouched.
	blocks, _ := svc.List(testUser)
	if len(blocks) != 1 || blocks[0].Label != "existing" {
		t.Errorf("schedule mutated by a rejected replacement: %+v", blocks)
	}
}

func TestOverlappingBlocksPermitted(t *testing.T) {
	svc := NewScheduleService(newTestDB(t))

	addBlock(t, svc, models.Friday, "09:00", "17:00", models.BlockWork, "Workday")
	// Nested block inside the workday is allowed.
	addBlock(t, svc, models.Friday, "10:00", "11:00", models.BlockRest, "Break")

	blocks, err := svc.BlocksForDay(testUser, models.Friday)
	if err != nil {
		t.Fatalf("BlocksForDay failed: %v", err)
	}
	if len(blocks) != 2 {
		t.Errorf("got %d blocks, want overlapping blocks to coexist", len(blocks))
	}
}

func TestAddBlockValidation(t *testing.T) {
	svc := NewScheduleService(newTestDB(t))

	cases := []struct {
		name string
		req  models.AddBlockRequest
	}{
		{"bad day", models.AddBlockRequest{Day: "Funday", StartTime: "09:00", EndTime: "10:00", Type: models.BlockWork}},
		{"bad type", models.AddBlockRequest{Day: models.Monday, StartTime: "09:00", EndTime: "10:00", Type: "nap"}},
		{"start after end", models.AddBlockRequest{Day: models.Monday, StartTime: "11:00", EndTime: "10:00", Type: models.BlockWork}},
		{"start equals end", models.AddBlockRequest{Day: models.Monday, StartTime: "10:00", EndTime: "10:00", Type: models.BlockWork}},
		{"bad time format", models.AddBlockRequest{Day: models.Monday, StartTime: "9am", EndTime: "10:00", Type: models.BlockWork}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.AddBlock(testUser, tc.req); !IsValidationError(err) {
				t.Errorf("got %v, want ValidationError", err)
			}
		})
	}
}

func TestUpdateBlockMergesAndRevalidates(t *testing.T) {
	svc := NewScheduleService(newTestDB(t))

	block := addBlock(t, svc, models.Monday, "09:00", "12:00", models.BlockWork, "Deep Work")

	err := svc.UpdateBlock(testUser, block.ID, models.UpdateBlockRequest{
		Label:   strPtr("Focus"),
		EndTime: strPtr("13:00"),
	})
	if err != nil {
		t.Fatalf("UpdateBlock failed: %v", err)
	}

	blocks, _ := svc.BlocksForDay(testUser, models.Monday)
	if blocks[0].Label != "Focus" || blocks[0].EndTime != "13:00" {
		t.Errorf("block not merged: %+v", blocks[0])
	}
	if blocks[0].StartTime != "09:00" {
		t.Error("unspecified field changed")
	}

	// Merged times are validated as a pair.
	err = svc.UpdateBlock(testUser, block.ID, models.UpdateBlockRequest{EndTime: strPtr("08:00")})
	if !IsValidationError(err) {
		t.Errorf("got %v, want ValidationError for inverted times", err)
	}

	// Missing ids are no-ops.
	if err := svc.UpdateBlock(testUser, "nope", models.UpdateBlockRequest{Label: strPtr("x")}); err != nil {
		t.Errorf("UpdateBlock missing id: %v", err)
	}
}

func TestRemoveBlockIdempotent(t *testing.T) {
	svc := NewScheduleService(newTestDB(t))

	block := addBlock(t, svc, models.Tuesday, "09:00", "10:00", models.BlockWork, "w")

	if err := svc.RemoveBlock(testUser, block.ID); err != nil {
		t.Fatalf("RemoveBlock failed: %v", err)
	}
	if err := svc.RemoveBlock(testUser, block.ID); err != nil {
		t.Errorf("second RemoveBlock: %v", err)
	}

	blocks, _ := svc.BlocksForDay(testUser, models.Tuesday)
	if len(blocks) != 0 {
		t.Errorf("got %d blocks, want 0", len(blocks))
	}
}
