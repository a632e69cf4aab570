package models

import (
	"time"
)

// SlotSuggestion is the advisory reschedule slot computed from the weekly
// schedule. It is a suggestion only: no conflict checking is done and the
// user confirms before any task is moved.
type SlotSuggestion struct {
	Date   string `json:"date"` // "YYYY-MM-DD"
	Time   string `json:"time"` // "HH:mm"
	Reason string `json:"reason"`
}

// ModeSuggestion is the suggestion provider's answer for a task.
type ModeSuggestion struct {
	Mode       string `json:"mode"`
	Motivation string `json:"motivation"`
	IsFallback bool   `json:"isFallback,omitempty"`
}

// ExportDocument bundles the four state stores into one JSON document.
type ExportDocument struct {
	Tasks      []Task        `json:"tasks"`
	Focus      *FocusSession `json:"focus"`
	Schedule   []TimeBlock   `json:"schedule"`
	Activity   []ActivityLog `json:"activity"`
	Version    int           `json:"version"`
	ExportedAt time.Time     `json:"exportedAt"`
}

// ExportVersion is the current export document version.
const ExportVersion = 1
