package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cansuyumceylan/FlowSync/models"
	"github.com/cansuyumceylan/FlowSync/services"
)

type SuggestController struct {
	suggest *services.SuggestService
}

func NewSuggestController(suggest *services.SuggestService) *SuggestController {
	return &SuggestController{suggest: suggest}
}

// SuggestMode asks the provider for a focus mode matching the task. The
// response is always 200: provider failures resolve to the fallback
// suggestion instead of an error.
func (sc *SuggestController) SuggestMode(c *gin.Context) {
	var req models.SuggestModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task is required"})
		return
	}

	suggestion := sc.suggest.SuggestMode(c.Request.Context(), req.Task)
	c.JSON(http.StatusOK, suggestion)
}
