package services

import (
	"errors"
	"strings"
	"time"

	"tasktracker/dto"
	"tasktracker/model"

	"gorm.io/gorm"
)

func CreateAttachment(db *gorm.DB, req dto.CreateAttachmentRequest) (*model.Attachment, error) {
	if strings.TrimSpace(req.Filename) == "" {
		return nil, ValidationError("filename is required")
	}
	if strings.TrimSpace(req.OriginalName) == "" {
		return nil, ValidationError("original_name is required")
	}
	if req.FileSize <= 0 {
		return nil, ValidationError("file_size must be a positive number")
	}
	if strings.TrimSpace(req.MimeType) == "" {
		return nil, ValidationError("mime_type is required")
	}

	// Check if the parent task exists
	var task model.Task
	if err := db.Where("id = ?", req.TaskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, TaskNotFoundError{TaskID: req.TaskID}
		}
		return nil, err
	}

	attachment := model.Attachment{
		TaskID:       req.TaskID,
		Filename:     req.Filename,
		OriginalName: req.OriginalName,
		FileSize:     req.FileSize,
		MimeType:     req.MimeType,
		CreatedAt:    time.Now(),
	}
	if err := db.Create(&attachment).Error; err != nil {
		return nil, err
	}
	return &attachment, nil
}

// GetAttachmentsByTask does not check that the task exists: a task with no
// attachments and an unknown task id both yield an empty slice.
func GetAttachmentsByTask(db *gorm.DB, taskID int) ([]model.Attachment, error) {
	attachments := make([]model.Attachment, 0)
	if err := db.Where("task_id = ?", taskID).Find(&attachments).Error; err != nil {
		return nil, err
	}
	return attachments, nil
}

func DeleteAttachment(db *gorm.DB, id int) (bool, error) {
	result := db.Where("id = ?", id).Delete(&model.Attachment{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
