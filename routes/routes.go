package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cansuyumceylan/FlowSync/config"
	"github.com/cansuyumceylan/FlowSync/controllers"
	"github.com/cansuyumceylan/FlowSync/middleware"
	"github.com/cansuyumceylan/FlowSync/services"
)

func RegisterRoutes(r *gin.Engine, gemini *services.GeminiClient) {
	taskService := services.NewTaskService(config.DB)
	scheduleService := services.NewScheduleService(config.DB)
	activityService := services.NewActivityService(config.DB)
	advisor := services.NewAdvisor(scheduleService)
	sessionStore := services.NewRedisSessionStore(config.RedisClient)
	focusService := services.NewFocusService(taskService, activityService, advisor, sessionStore)
	suggestService := services.NewSuggestService(gemini)

	authController := controllers.AuthController{}
	taskController := controllers.NewTaskController(taskService)
	scheduleController := controllers.NewScheduleController(scheduleService)
	focusController := controllers.NewFocusController(focusService, advisor)
	activityController := controllers.NewActivityController(activityService)
	suggestController := controllers.NewSuggestController(suggestService)
	syncController := controllers.NewSyncController(taskService, scheduleService, activityService, focusService)

	// Public routes
	public := r.Group("/api/v1")
	{
		public.POST("/auth/guest", authController.GuestLogin)
	}

	// Authenticated routes
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware())
	{
		// Task registry
		private.GET("/tasks", taskController.ListTasks)
		private.POST("/tasks", taskController.AddTask)
		private.DELETE("/tasks/:id", taskController.RemoveTask)
		private.POST("/tasks/:id/toggle", taskController.ToggleTask)
		private.PATCH("/tasks/:id", taskController.UpdateTask)
		private.POST("/tasks/:id/move", taskController.MoveTask)

		// Weekly schedule
		private.GET("/schedule/blocks", scheduleController.ListBlocks)
		private.POST("/schedule/blocks", scheduleController.AddBlock)
		private.DELETE("/schedule/blocks/:id", scheduleController.RemoveBlock)
		private.PATCH("/schedule/blocks/:id", scheduleController.UpdateBlock)

		// Focus session engine
		private.GET("/focus", focusController.GetState)
		private.POST("/focus/mode", focusController.SetMode)
		private.POST("/focus/start", focusController.Start)
		private.POST("/focus/pause", focusController.Pause)
		private.POST("/focus/tick", focusController.Tick)
		private.POST("/focus/reset", focusController.Reset)
		private.POST("/focus/task", focusController.SetActiveTask)
		private.GET("/focus/suggestion", focusController.SuggestSlot)
		private.POST("/focus/close", focusController.CloseSession)

		// Activity log
		private.GET("/activity", activityController.ListLogs)

		// AI mode suggestion
		private.POST("/suggest-mode", suggestController.SuggestMode)

		// Export / import
		private.GET("/sync/export", syncController.Export)
		private.POST("/sync/import", syncController.Import)
	}

	// Healthcheck
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
