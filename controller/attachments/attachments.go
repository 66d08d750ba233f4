package attachments

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"tasktracker/dto"
	"tasktracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AttachmentsController(router *gin.Engine, db *gorm.DB) {
	router.POST("/attachments", func(c *gin.Context) {
		CreateAttachment(c, db)
	})
	router.GET("/tasks/:id/attachments", func(c *gin.Context) {
		GetAttachmentsByTask(c, db)
	})
	router.DELETE("/attachments/:id", func(c *gin.Context) {
		DeleteAttachment(c, db)
	})
}

func CreateAttachment(c *gin.Context, db *gorm.DB) {
	var req dto.CreateAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	attachment, err := services.CreateAttachment(db, req)
	if err != nil {
		var ve services.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
			return
		}
		var nf services.TaskNotFoundError
		if errors.As(err, &nf) {
			c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
			return
		}
		log.Printf("Failed to create attachment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create attachment"})
		return
	}
	c.JSON(http.StatusCreated, attachment)
}

func GetAttachmentsByTask(c *gin.Context, db *gorm.DB) {
	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	attachments, err := services.GetAttachmentsByTask(db, taskID)
	if err != nil {
		log.Printf("Failed to fetch attachments for task %d: %v", taskID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attachments"})
		return
	}
	c.JSON(http.StatusOK, attachments)
}

func DeleteAttachment(c *gin.Context, db *gorm.DB) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attachment ID"})
		return
	}

	removed, err := services.DeleteAttachment(db, id)
	if err != nil {
		log.Printf("Failed to delete attachment %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete attachment"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Attachment not found"})
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Success: true})
}
