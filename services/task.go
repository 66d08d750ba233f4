package services

import (
	"errors"
	"strings"
	"time"

	"tasktracker/dto"
	"tasktracker/model"

	"gorm.io/gorm"
)

func CreateTask(db *gorm.DB, req dto.CreateTaskRequest) (*model.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ValidationError("title is required")
	}
	status := req.Status
	if status == "" {
		status = model.StatusPending
	}
	if !model.ValidStatus(status) {
		return nil, ValidationError("status must be one of pending, in_progress, completed")
	}
	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !model.ValidPriority(priority) {
		return nil, ValidationError("priority must be one of low, medium, high")
	}

	now := time.Now()
	task := model.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func GetTasks(db *gorm.DB) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	if err := db.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask returns (nil, nil) when no task matches the id.
func GetTask(db *gorm.DB, id int) (*model.Task, error) {
	var task model.Task
	if err := db.Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

// UpdateTask writes only the fields present in the request. updated_at is
// refreshed on every call, including one carrying no other fields.
// Returns (nil, nil) when the id matches no task.
func UpdateTask(db *gorm.DB, id int, req dto.UpdateTaskRequest) (*model.Task, error) {
	updates := make(map[string]interface{})

	if req.Title.Set {
		if req.Title.Value == nil || strings.TrimSpace(*req.Title.Value) == "" {
			return nil, ValidationError("title cannot be empty")
		}
		updates["title"] = *req.Title.Value
	}
	if req.Description.Set {
		updates["description"] = req.Description.Value
	}
	if req.Status.Set {
		if req.Status.Value == nil || !model.ValidStatus(*req.Status.Value) {
			return nil, ValidationError("status must be one of pending, in_progress, completed")
		}
		updates["status"] = *req.Status.Value
	}
	if req.Priority.Set {
		if req.Priority.Value == nil || !model.ValidPriority(*req.Priority.Value) {
			return nil, ValidationError("priority must be one of low, medium, high")
		}
		updates["priority"] = *req.Priority.Value
	}
	if req.DueDate.Set {
		updates["due_date"] = req.DueDate.Value
	}
	updates["updated_at"] = time.Now()

	var task model.Task
	if err := db.Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := db.Model(&model.Task{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := db.Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes the task and its attachments in one transaction.
// The attachment delete runs first so the pair can never be observed
// half-applied.
func DeleteTask(db *gorm.DB, id int) (bool, error) {
	var removed bool
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&model.Attachment{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.Task{})
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}
