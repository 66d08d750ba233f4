package task

import (
	"errors"
	"log"
	"net/http"

	"tasktracker/dto"
	"tasktracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateTaskController(router *gin.Engine, db *gorm.DB) {
	router.POST("/tasks", func(c *gin.Context) {
		CreateTask(c, db)
	})
}

func CreateTask(c *gin.Context, db *gorm.DB) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	task, err := services.CreateTask(db, req)
	if err != nil {
		var ve services.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
			return
		}
		log.Printf("Failed to create task: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}
	c.JSON(http.StatusCreated, task)
}
