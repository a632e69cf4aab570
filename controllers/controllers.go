package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cansuyumceylan/FlowSync/config"
	"github.com/cansuyumceylan/FlowSync/models"
	"github.com/cansuyumceylan/FlowSync/services"
)

// respondServiceError maps service errors onto HTTP statuses: validation
// failures are 400, session state misuse is 409, everything else is 500.
func respondServiceError(c *gin.Context, err error) {
	if services.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, models.ErrSessionComplete) || errors.Is(err, models.ErrSessionNotComplete) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	config.Logger.Errorw("internal error", "error", err, "path", c.Request.URL.Path)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
