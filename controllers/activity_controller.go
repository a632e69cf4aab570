package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cansuyumceylan/FlowSync/services"
)

type ActivityController struct {
	activity *services.ActivityService
}

func NewActivityController(activity *services.ActivityService) *ActivityController {
	return &ActivityController{activity: activity}
}

// ListLogs returns the user's session history, newest first.
func (ac *ActivityController) ListLogs(c *gin.Context) {
	uid := c.GetString("uid")

	logs, err := ac.activity.List(uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
