package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cansuyumceylan/FlowSync/models"
	"github.com/cansuyumceylan/FlowSync/services"
)

type ScheduleController struct {
	schedule *services.ScheduleService
}

func NewScheduleController(schedule *services.ScheduleService) *ScheduleController {
	return &ScheduleController{schedule: schedule}
}

// ListBlocks returns the user's time blocks; ?day=Monday narrows to one
// weekday, sorted by start time.
func (sc *ScheduleController) ListBlocks(c *gin.Context) {
	uid := c.GetString("uid")

	var (
		blocks []models.TimeBlock
		err    error
	)
	if day := c.Query("day"); day != "" {
		if !models.IsValidDay(day) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid day of week"})
			return
		}
		blocks, err = sc.schedule.BlocksForDay(uid, day)
	} else {
		blocks, err = sc.schedule.List(uid)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}

// AddBlock creates a weekly time block.
func (sc *ScheduleController) AddBlock(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.AddBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	block, err := sc.schedule.AddBlock(uid, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"block": block})
}

// RemoveBlock deletes a block; deleting an unknown id still succeeds.
func (sc *ScheduleController) RemoveBlock(c *gin.Context) {
	uid := c.GetString("uid")

	if err := sc.schedule.RemoveBlock(uid, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "block removed"})
}

// UpdateBlock merges the supplied fields into the block.
func (sc *ScheduleController) UpdateBlock(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.UpdateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if err := sc.schedule.UpdateBlock(uid, c.Param("id"), req); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "block updated"})
}
