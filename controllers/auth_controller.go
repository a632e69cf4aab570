package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cansuyumceylan/FlowSync/config"
	"github.com/cansuyumceylan/FlowSync/models"
	"github.com/cansuyumceylan/FlowSync/utils"
)

// AuthController issues tokens. FlowSync runs with guest accounts; the
// client keeps the token and all state is scoped to it.
type AuthController struct{}

type GuestLoginRequest struct {
	Username string `json:"username"`
}

// GuestLogin creates a guest user and returns its token.
func (ac *AuthController) GuestLogin(c *gin.Context) {
	var req GuestLoginRequest
	// Body is optional; a bare POST creates an unnamed guest.
	_ = c.ShouldBindJSON(&req)

	user := models.User{
		ID:        utils.GenerateID(),
		Username:  req.Username,
		CreatedAt: time.Now(),
		IsGuest:   true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		config.Logger.Errorw("failed to create guest user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		config.Logger.Errorw("failed to generate token", "error", err, "uid", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}
