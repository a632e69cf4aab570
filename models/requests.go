package models

// AddTaskRequest creates a task. The title must be non-empty after trimming.
type AddTaskRequest struct {
	Title         string  `json:"title"`
	ScheduledDate *string `json:"scheduledDate"`
}

// UpdateTaskRequest merges the supplied fields into a task; nil fields keep
// their prior values. Scheduling changes go through MoveTaskRequest so the
// date/time pairing stays consistent.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	IsCompleted *bool   `json:"isCompleted"`
	Duration    *int    `json:"duration"`
	Priority    *string `json:"priority"`
	Notes       *string `json:"notes"`
}

// MoveTaskRequest sets scheduledDate and startTime together. A nil date
// unschedules the task and clears the start time regardless of Time.
type MoveTaskRequest struct {
	Date *string `json:"date"`
	Time *string `json:"time"`
}

// AddBlockRequest creates a weekly time block; the id is generated.
type AddBlockRequest struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Type      string `json:"type"`
	Label     string `json:"label"`
}

// UpdateBlockRequest merges the supplied fields into a block.
type UpdateBlockRequest struct {
	Day       *string `json:"day"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Type      *string `json:"type"`
	Label     *string `json:"label"`
}

// SetModeRequest switches the focus timer preset.
type SetModeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

// SetActiveTaskRequest attaches (or with a nil id detaches) the task linked
// to the focus session.
type SetActiveTaskRequest struct {
	TaskID *string `json:"taskId"`
}

// Dispositions applied to the linked task when a session is closed.
const (
	DispositionComplete          = "complete"
	DispositionReschedule        = "reschedule"
	DispositionRescheduleAdvised = "rescheduleAdvised"
	DispositionUnschedule        = "unschedule"
	DispositionDiscard           = "discard"
)

func IsValidDisposition(d string) bool {
	switch d {
	case DispositionComplete, DispositionReschedule, DispositionRescheduleAdvised,
		DispositionUnschedule, DispositionDiscard:
		return true
	default:
		return false
	}
}

// CloseSessionRequest closes a completed session with one disposition and
// an optional free-text note for the activity log.
type CloseSessionRequest struct {
	Disposition string `json:"disposition" binding:"required"`
	Notes       string `json:"notes"`
}

// SuggestModeRequest asks the suggestion provider for a focus mode.
type SuggestModeRequest struct {
	Task string `json:"task" binding:"required"`
}

// ImportRequest carries an exported document. Only the keys present are
// overwritten; absent keys leave the corresponding store untouched.
type ImportRequest struct {
	Tasks    *[]Task        `json:"tasks"`
	Focus    *FocusSession  `json:"focus"`
	Schedule *[]TimeBlock   `json:"schedule"`
	Activity *[]ActivityLog `json:"activity"`
	Version  int            `json:"version"`
}
