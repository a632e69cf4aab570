package services

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/cansuyumceylan/FlowSync/config"
	"github.com/cansuyumceylan/FlowSync/models"
)

// FocusService is the session engine. It owns one FocusSession per user,
// drives its state machine, and on close reconciles the linked task against
// the registry and writes the activity log. Tick, SetMode and CloseSession
// all read-then-write composite state, so every operation runs under the
// service lock.
type FocusService struct {
	mu       sync.Mutex
	sessions map[string]*models.FocusSession

	tasks    *TaskService
	activity *ActivityService
	advisor  *Advisor
	store    SessionStore // optional; nil keeps sessions in memory only

	now func() time.Time
}

func NewFocusService(tasks *TaskService, activity *ActivityService, advisor *Advisor, store SessionStore) *FocusService {
	return &FocusService{
		sessions: make(map[string]*models.FocusSession),
		tasks:    tasks,
		activity: activity,
		advisor:  advisor,
		store:    store,
		now:      time.Now,
	}
}

// session returns the user's session, loading a snapshot or creating a
// fresh one on first access. Caller must hold the lock.
func (s *FocusService) session(ctx context.Context, userID string) *models.FocusSession {
	if sess, ok := s.sessions[userID]; ok {
		return sess
	}

	var sess *models.FocusSession
	if s.store != nil {
		loaded, err := s.store.Load(ctx, userID)
		if err != nil {
			config.Logger.Warnw("failed to load focus session snapshot",
				"error", err, "userID", userID)
		} else if loaded != nil {
			sess = normalizeSession(loaded)
		}
	}
	if sess == nil {
		sess = models.NewFocusSession()
	}
	s.sessions[userID] = sess
	return sess
}

// normalizeSession repairs a snapshot coming from outside (Redis or an
// imported document) so the session invariants hold.
func normalizeSession(sess *models.FocusSession) *models.FocusSession {
	if !models.IsValidMode(sess.Mode) {
		return models.NewFocusSession()
	}
	sess.TotalDuration = models.ModeDurations[sess.Mode]
	if sess.TimeLeft < 0 {
		sess.TimeLeft = 0
	}
	if sess.TimeLeft > sess.TotalDuration {
		sess.TimeLeft = sess.TotalDuration
	}
	if sess.IsSessionComplete {
		sess.IsActive = false
	}
	return sess
}

// persist snapshots the session; a failing store is logged, not surfaced.
func (s *FocusService) persist(ctx context.Context, userID string, sess *models.FocusSession) {
	if s.store == nil {
		return
	}
	if err := s.store.Save(ctx, userID, sess); err != nil {
		config.Logger.Warnw("failed to save focus session snapshot",
			"error", err, "userID", userID)
	}
}

// State returns a copy of the user's current session.
func (s *FocusService) State(ctx context.Context, userID string) models.FocusSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.session(ctx, userID)
}

// SetMode switches the timer preset and resets to idle. A running session
// stops silently; no completion event fires.
func (s *FocusService) SetMode(ctx context.Context, userID, mode string) (models.FocusSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(ctx, userID)
	if !models.IsValidMode(mode) {
		return *sess, &ValidationError{Message: "invalid focus mode"}
	}
	sess.SetMode(mode)
	s.persist(ctx, userID, sess)
	return *sess, nil
}

// Start resumes the countdown. Starting a completed session is rejected
// until it is closed or reset.
func (s *FocusService) Start(ctx context.Context, userID string) (models.FocusSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(ctx, userID)
	if err := sess.Start(); err != nil {
		return *sess, err
	}
	s.persist(ctx, userID, sess)
	return *sess, nil
}

// Pause stops the countdown without resetting it.
func (s *FocusService) Pause(ctx context.Context, userID string) models.FocusSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(ctx, userID)
	sess.Pause()
	s.persist(ctx, userID, sess)
	return *sess
}

// Tick advances the countdown by one second; the caller invokes it once per
// elapsed wall-clock second while the session runs.
func (s *FocusService) Tick(ctx context.Context, userID string) models.FocusSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(ctx, userID)
	sess.Tick()
	s.persist(ctx, userID, sess)
	return *sess
}

// Reset returns the timer to idle under the current mode without writing a
// log entry. It is the escape hatch out of the complete state when the user
// abandons the close dialog.
func (s *FocusService) Reset(ctx context.Context, userID string) models.FocusSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(ctx, userID)
	sess.Reset()
	s.persist(ctx, userID, sess)
	return *sess
}

// SetActiveTask attaches or detaches the linked task without touching the
// timer.
func (s *FocusService) SetActiveTask(ctx context.Context, userID string, taskID *string) models.FocusSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(ctx, userID)
	sess.SetActiveTask(taskID)
	s.persist(ctx, userID, sess)
	return *sess
}

// CloseSession reconciles a completed session: it appends exactly one
// activity log entry, applies the chosen disposition to the linked task,
// and resets the timer. The logged duration is the mode's nominal length,
// not measured elapsed time. A stale active task reference degrades the
// disposition to discard; the log entry is still written.
func (s *FocusService) CloseSession(ctx context.Context, userID, disposition, notes string) (models.FocusSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(ctx, userID)
	if !sess.IsSessionComplete {
		return *sess, models.ErrSessionNotComplete
	}
	if !models.IsValidDisposition(disposition) {
		return *sess, &ValidationError{Message: "invalid disposition"}
	}

	var taskID, taskTitle *string
	if sess.ActiveTaskID != nil {
		task, err := s.tasks.Get(userID, *sess.ActiveTaskID)
		if err != nil {
			return *sess, err
		}
		if task != nil {
			id, title := task.ID, task.Title
			taskID, taskTitle = &id, &title
		}
	}

	duration := models.ModeMinutes[sess.Mode]

	// The log append and the disposition commit or fail together, so a
	// close that hits a write error can be retried without leaving a
	// duplicate log entry behind.
	txErr := s.tasks.db.Transaction(func(tx *gorm.DB) error {
		activity := &ActivityService{db: tx}
		tasks := &TaskService{db: tx}

		if _, err := activity.Append(userID, taskID, taskTitle, sess.Mode, duration, notes); err != nil {
			return err
		}
		if taskID == nil {
			return nil
		}

		switch disposition {
		case models.DispositionComplete:
			return tasks.ToggleComplete(userID, *taskID)
		case models.DispositionReschedule:
			tomorrow := s.now().AddDate(0, 0, 1).Format("2006-01-02")
			return tasks.Move(userID, *taskID, &tomorrow, nil)
		case models.DispositionRescheduleAdvised:
			suggestion, err := s.advisor.SuggestSlot(userID, s.now())
			if err != nil {
				return err
			}
			return tasks.Move(userID, *taskID, &suggestion.Date, &suggestion.Time)
		case models.DispositionUnschedule:
			return tasks.Move(userID, *taskID, nil, nil)
		default: // discard: log only, no registry mutation
			return nil
		}
	})
	if txErr != nil {
		return *sess, txErr
	}

	sess.Reset()
	sess.SetActiveTask(nil)
	s.persist(ctx, userID, sess)
	return *sess, nil
}

// ReplaceSession overwrites the user's snapshot from an imported document
// and drops the in-memory session so the next access reloads it from
// persistence.
func (s *FocusService) ReplaceSession(ctx context.Context, userID string, sess *models.FocusSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := normalizeSession(sess)
	if s.store != nil {
		if err := s.store.Save(ctx, userID, normalized); err != nil {
			return err
		}
		delete(s.sessions, userID)
		return nil
	}
	s.sessions[userID] = normalized
	return nil
}
