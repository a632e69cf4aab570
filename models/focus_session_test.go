package models

import (
	"errors"
	"testing"
)

func checkInvariants(t *testing.T, s *FocusSession) {
	t.Helper()
	if s.TimeLeft < 0 || s.TimeLeft > s.TotalDuration {
		t.Fatalf("timeLeft %d outside [0, %d]", s.TimeLeft, s.TotalDuration)
	}
	if s.IsActive && s.IsSessionComplete {
		t.Fatal("session is active and complete at the same time")
	}
}

func TestNewFocusSessionDefaults(t *testing.T) {
	s := NewFocusSession()
	if s.Mode != ModeSpark {
		t.Errorf("mode = %q, want spark", s.Mode)
	}
	if s.TimeLeft != 1500 || s.TotalDuration != 1500 {
		t.Errorf("timer = %d/%d, want 1500/1500", s.TimeLeft, s.TotalDuration)
	}
	if s.IsActive || s.IsSessionComplete || s.ActiveTaskID != nil {
		t.Error("new session must be idle with no task")
	}
	checkInvariants(t, s)
}

func TestSparkSessionRunsToCompletion(t *testing.T) {
	s := NewFocusSession()
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	for i := 0; i < 1500; i++ {
		s.Tick()
		checkInvariants(t, s)
	}

	if !s.IsSessionComplete {
		t.Error("expected completion after 1500 ticks")
	}
	if s.TimeLeft != 0 {
		t.Errorf("timeLeft = %d, want 0", s.TimeLeft)
	}
	if s.IsActive {
		t.Error("completed session must not be active")
	}
}

func TestTickIsIdempotentAtZero(t *testing.T) {
	s := NewFocusSession()
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	for i := 0; i < 1500; i++ {
		s.Tick()
	}

	before := *s
	for i := 0; i < 10; i++ {
		s.Tick()
		if *s != before {
			t.Fatalf("tick after zero changed state: %+v", s)
		}
	}
}

func TestTickOnlyRunsWhileActive(t *testing.T) {
	s := NewFocusSession()

	s.Tick()
	if s.TimeLeft != 1500 {
		t.Errorf("idle tick changed timeLeft to %d", s.TimeLeft)
	}

	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	s.Tick()
	s.Pause()
	left := s.TimeLeft
	s.Tick()
	if s.TimeLeft != left {
		t.Errorf("paused tick changed timeLeft to %d", s.TimeLeft)
	}
}

func TestSetModeWhileRunningResetsToIdle(t *testing.T) {
	s := NewFocusSession()
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	for i := 0; i < 500; i++ {
		s.Tick()
	}
	if s.TimeLeft != 1000 {
		t.Fatalf("timeLeft = %d, want 1000", s.TimeLeft)
	}

	s.SetMode(ModeDeepDive)

	if s.IsActive {
		t.Error("mode change must stop a running session")
	}
	if s.IsSessionComplete {
		t.Error("mode change is not a completion")
	}
	if s.TimeLeft != 3000 || s.TotalDuration != 3000 {
		t.Errorf("timer = %d/%d, want 3000/3000", s.TimeLeft, s.TotalDuration)
	}
	checkInvariants(t, s)
}

func TestSetModeIgnoresUnknownModes(t *testing.T) {
	s := NewFocusSession()
	s.SetMode("marathon")
	if s.Mode != ModeSpark || s.TotalDuration != 1500 {
		t.Errorf("unknown mode mutated the session: %+v", s)
	}
}

func TestModeDurations(t *testing.T) {
	want := map[string]int{
		ModeSpark:    1500,
		ModeDeepDive: 3000,
		ModePeakFlow: 5400,
		ModeCustom:   1500,
	}
	for mode, seconds := range want {
		s := NewFocusSession()
		s.SetMode(mode)
		if s.TotalDuration != seconds || s.TimeLeft != seconds {
			t.Errorf("%s: timer = %d/%d, want %d", mode, s.TimeLeft, s.TotalDuration, seconds)
		}
	}
}

func TestStartRejectedWhenComplete(t *testing.T) {
	s := NewFocusSession()
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	for i := 0; i < 1500; i++ {
		s.Tick()
	}

	if err := s.Start(); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("Start on complete session: got %v, want ErrSessionComplete", err)
	}

	// After an explicit reset the session starts again.
	s.Reset()
	if err := s.Start(); err != nil {
		t.Errorf("Start after reset failed: %v", err)
	}
	checkInvariants(t, s)
}

func TestPauseAndResumeKeepTimeLeft(t *testing.T) {
	s := NewFocusSession()
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	for i := 0; i < 100; i++ {
		s.Tick()
	}

	s.Pause()
	if s.IsActive {
		t.Error("pause must deactivate the session")
	}
	if s.TimeLeft != 1400 {
		t.Errorf("timeLeft = %d, want 1400", s.TimeLeft)
	}

	if err := s.Start(); err != nil {
		t.Fatalf("resume failed: %v", err)
	}
	s.Tick()
	if s.TimeLeft != 1399 {
		t.Errorf("timeLeft = %d, want countdown to resume", s.TimeLeft)
	}
}

func TestSetActiveTaskLeavesTimerAlone(t *testing.T) {
	s := NewFocusSession()
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	s.Tick()

	id := "task-1"
	s.SetActiveTask(&id)
	if s.ActiveTaskID == nil || *s.ActiveTaskID != id {
		t.Error("active task not attached")
	}
	if !s.IsActive || s.TimeLeft != 1499 {
		t.Error("attaching a task must not touch the timer")
	}

	s.SetActiveTask(nil)
	if s.ActiveTaskID != nil {
		t.Error("active task not detached")
	}
}
