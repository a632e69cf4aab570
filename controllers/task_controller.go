package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cansuyumceylan/FlowSync/models"
	"github.com/cansuyumceylan/FlowSync/services"
)

type TaskController struct {
	tasks *services.TaskService
}

func NewTaskController(tasks *services.TaskService) *TaskController {
	return &TaskController{tasks: tasks}
}

// ListTasks returns the user's tasks. ?date=YYYY-MM-DD narrows to tasks
// scheduled on that date; ?unscheduled=true returns open unscheduled tasks.
func (tc *TaskController) ListTasks(c *gin.Context) {
	uid := c.GetString("uid")

	var (
		tasks []models.Task
		err   error
	)
	switch {
	case c.Query("date") != "":
		tasks, err = tc.tasks.TasksForDate(uid, c.Query("date"))
	case c.Query("unscheduled") == "true":
		tasks, err = tc.tasks.UnscheduledTasks(uid)
	default:
		tasks, err = tc.tasks.List(uid)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// AddTask creates a task.
func (tc *TaskController) AddTask(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.AddTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	task, err := tc.tasks.Add(uid, req.Title, req.ScheduledDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task": task})
}

// RemoveTask deletes a task; deleting an unknown id still succeeds.
func (tc *TaskController) RemoveTask(c *gin.Context) {
	uid := c.GetString("uid")

	if err := tc.tasks.Remove(uid, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "task removed"})
}

// ToggleTask flips the completion flag.
func (tc *TaskController) ToggleTask(c *gin.Context) {
	uid := c.GetString("uid")

	if err := tc.tasks.ToggleComplete(uid, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "task toggled"})
}

// UpdateTask merges the supplied fields into the task.
func (tc *TaskController) UpdateTask(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if err := tc.tasks.Update(uid, c.Param("id"), req); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "task updated"})
}

// MoveTask sets the task's scheduled date and start time together.
func (tc *TaskController) MoveTask(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if err := tc.tasks.Move(uid, c.Param("id"), req.Date, req.Time); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "task moved"})
}
