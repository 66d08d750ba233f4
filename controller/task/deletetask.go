package task

import (
	"log"
	"net/http"
	"strconv"

	"tasktracker/dto"
	"tasktracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DeleteTaskController(router *gin.Engine, db *gorm.DB) {
	router.DELETE("/tasks/:id", func(c *gin.Context) {
		DeleteTask(c, db)
	})
}

func DeleteTask(c *gin.Context, db *gorm.DB) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	removed, err := services.DeleteTask(db, id)
	if err != nil {
		log.Printf("Failed to delete task %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Success: true})
}
