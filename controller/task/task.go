package task

import (
	"log"
	"net/http"
	"strconv"

	"tasktracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TaskController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/tasks")
	{
		routes.GET("", func(c *gin.Context) {
			GetTasks(c, db)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetTask(c, db)
		})
	}
}

func GetTasks(c *gin.Context, db *gorm.DB) {
	tasks, err := services.GetTasks(db)
	if err != nil {
		log.Printf("Failed to fetch tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func GetTask(c *gin.Context, db *gorm.DB) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	task, err := services.GetTask(db, id)
	if err != nil {
		log.Printf("Failed to fetch task %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}
