package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cansuyumceylan/FlowSync/models"
	"github.com/cansuyumceylan/FlowSync/services"
)

// SyncController is the export/import surface: the four state stores
// serialized as one JSON document.
type SyncController struct {
	tasks    *services.TaskService
	schedule *services.ScheduleService
	activity *services.ActivityService
	focus    *services.FocusService
}

func NewSyncController(tasks *services.TaskService, schedule *services.ScheduleService, activity *services.ActivityService, focus *services.FocusService) *SyncController {
	return &SyncController{
		tasks:    tasks,
		schedule: schedule,
		activity: activity,
		focus:    focus,
	}
}

// Export returns {tasks, focus, schedule, activity, version, exportedAt}.
func (sc *SyncController) Export(c *gin.Context) {
	uid := c.GetString("uid")
	ctx := c.Request.Context()

	tasks, err := sc.tasks.List(uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	blocks, err := sc.schedule.List(uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	logs, err := sc.activity.List(uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	session := sc.focus.State(ctx, uid)

	c.JSON(http.StatusOK, models.ExportDocument{
		Tasks:      tasks,
		Focus:      &session,
		Schedule:   blocks,
		Activity:   logs,
		Version:    models.ExportVersion,
		ExportedAt: time.Now(),
	})
}

// Import overwrites only the keys present in the document; absent keys
// leave the corresponding store untouched. The in-memory focus session is
// reloaded from persistence afterwards.
func (sc *SyncController) Import(c *gin.Context) {
	uid := c.GetString("uid")
	ctx := c.Request.Context()

	var req models.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	// The schedule is the only key whose replacement can be rejected for
	// invalid content, so it applies first; a rejected document leaves
	// every store untouched.
	if req.Schedule != nil {
		if err := sc.schedule.ReplaceAll(uid, *req.Schedule); err != nil {
			respondServiceError(c, err)
			return
		}
	}
	if req.Tasks != nil {
		if err := sc.tasks.ReplaceAll(uid, *req.Tasks); err != nil {
			respondServiceError(c, err)
			return
		}
	}
	if req.Activity != nil {
		if err := sc.activity.ReplaceAll(uid, *req.Activity); err != nil {
			respondServiceError(c, err)
			return
		}
	}
	if req.Focus != nil {
		if err := sc.focus.ReplaceSession(ctx, uid, req.Focus); err != nil {
			respondServiceError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "import complete"})
}
