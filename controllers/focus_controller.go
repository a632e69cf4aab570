package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cansuyumceylan/FlowSync/models"
	"github.com/cansuyumceylan/FlowSync/services"
)

// FocusController drives the session engine. Tick is called by the client
// once per elapsed wall-clock second while a session runs.
type FocusController struct {
	focus   *services.FocusService
	advisor *services.Advisor
}

func NewFocusController(focus *services.FocusService, advisor *services.Advisor) *FocusController {
	return &FocusController{focus: focus, advisor: advisor}
}

// GetState returns the current session.
func (fc *FocusController) GetState(c *gin.Context) {
	uid := c.GetString("uid")
	session := fc.focus.State(c.Request.Context(), uid)
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SetMode switches the timer preset.
func (fc *FocusController) SetMode(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.SetModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	session, err := fc.focus.SetMode(c.Request.Context(), uid, req.Mode)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Start resumes the countdown.
func (fc *FocusController) Start(c *gin.Context) {
	uid := c.GetString("uid")

	session, err := fc.focus.Start(c.Request.Context(), uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Pause stops the countdown without resetting it.
func (fc *FocusController) Pause(c *gin.Context) {
	uid := c.GetString("uid")
	session := fc.focus.Pause(c.Request.Context(), uid)
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Tick advances the countdown by one second.
func (fc *FocusController) Tick(c *gin.Context) {
	uid := c.GetString("uid")
	session := fc.focus.Tick(c.Request.Context(), uid)
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Reset returns the timer to idle without logging anything.
func (fc *FocusController) Reset(c *gin.Context) {
	uid := c.GetString("uid")
	session := fc.focus.Reset(c.Request.Context(), uid)
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SetActiveTask attaches or detaches the linked task.
func (fc *FocusController) SetActiveTask(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.SetActiveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	session := fc.focus.SetActiveTask(c.Request.Context(), uid, req.TaskID)
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SuggestSlot returns the advisory reschedule slot for tomorrow. The user
// confirms before anything moves; committing happens through CloseSession
// with the rescheduleAdvised disposition.
func (fc *FocusController) SuggestSlot(c *gin.Context) {
	uid := c.GetString("uid")

	suggestion, err := fc.advisor.SuggestSlot(uid, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
}

// CloseSession finishes a completed session with one disposition.
func (fc *FocusController) CloseSession(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.CloseSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	session, err := fc.focus.CloseSession(c.Request.Context(), uid, req.Disposition, req.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}
