package models

import "errors"

// Focus modes
const (
	ModeSpark    = "spark"
	ModeDeepDive = "deepDive"
	ModePeakFlow = "peakFlow"
	ModeCustom   = "custom"
)

// ModeDurations holds the fixed session length per mode, in seconds.
var ModeDurations = map[string]int{
	ModeSpark:    25 * 60,
	ModeDeepDive: 50 * 60,
	ModePeakFlow: 90 * 60,
	ModeCustom:   25 * 60,
}

// ModeMinutes is the nominal length per mode in minutes, used when logging
// a completed session. This is the planned length, not measured elapsed time.
var ModeMinutes = map[string]int{
	ModeSpark:    25,
	ModeDeepDive: 50,
	ModePeakFlow: 90,
	ModeCustom:   25,
}

func IsValidMode(mode string) bool {
	_, ok := ModeDurations[mode]
	return ok
}

var (
	// ErrSessionComplete is returned when Start is called on a completed
	// session. The session must be closed or reset first.
	ErrSessionComplete = errors.New("session is complete, close or reset it first")

	// ErrSessionNotComplete is returned when a close is requested before
	// the timer has run down.
	ErrSessionNotComplete = errors.New("session is not complete")
)

// FocusSession is the single countdown timer of one user. All transitions
// keep 0 <= TimeLeft <= TotalDuration, and IsActive and IsSessionComplete
// are never true at the same time.
type FocusSession struct {
	Mode              string  `json:"mode"`
	TotalDuration     int     `json:"totalDuration"` // seconds
	TimeLeft          int     `json:"timeLeft"`      // seconds
	IsActive          bool    `json:"isActive"`
	ActiveTaskID      *string `json:"activeTaskId"`
	IsSessionComplete bool    `json:"isSessionComplete"`
}

// NewFocusSession returns an idle session in the default spark mode.
func NewFocusSession() *FocusSession {
	return &FocusSession{
		Mode:          ModeSpark,
		TotalDuration: ModeDurations[ModeSpark],
		TimeLeft:      ModeDurations[ModeSpark],
	}
}

// SetMode switches the timer preset and resets to idle. A running session
// is stopped silently; switching modes is not a completion.
func (s *FocusSession) SetMode(mode string) {
	if !IsValidMode(mode) {
		return
	}
	s.Mode = mode
	s.TotalDuration = ModeDurations[mode]
	s.TimeLeft = ModeDurations[mode]
	s.IsActive = false
	s.IsSessionComplete = false
}

// Start resumes the countdown from idle or paused. Starting a completed
// session is rejected; CloseSession or Reset must run first.
func (s *FocusSession) Start() error {
	if s.IsSessionComplete {
		return ErrSessionComplete
	}
	s.IsActive = true
	return nil
}

// Pause stops the countdown without resetting it. No-op unless running.
func (s *FocusSession) Pause() {
	s.IsActive = false
}

// Tick advances the countdown by one second. Only a running session ticks;
// reaching zero stops the timer and marks the session complete. Ticking an
// already expired session changes nothing.
func (s *FocusSession) Tick() {
	if !s.IsActive {
		return
	}
	if s.TimeLeft <= 1 {
		s.TimeLeft = 0
		s.IsActive = false
		s.IsSessionComplete = true
		return
	}
	s.TimeLeft--
}

// Reset returns the timer to idle under the current mode. The active task
// reference is kept; resetting is not a completion and writes no log entry.
func (s *FocusSession) Reset() {
	s.TimeLeft = s.TotalDuration
	s.IsActive = false
	s.IsSessionComplete = false
}

// SetActiveTask attaches or detaches the linked task. Timer fields are
// untouched; the reference is weak and may go stale if the task is removed.
func (s *FocusSession) SetActiveTask(taskID *string) {
	s.ActiveTaskID = taskID
}
