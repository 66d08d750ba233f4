package model

import (
	"time"
)

type Attachment struct {
	ID           int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TaskID       int       `gorm:"column:task_id;not null;index" json:"task_id"`
	Filename     string    `gorm:"column:filename;type:varchar(255);not null" json:"filename"`
	OriginalName string    `gorm:"column:original_name;type:varchar(255);not null" json:"original_name"`
	FileSize     int64     `gorm:"column:file_size;not null" json:"file_size"`
	MimeType     string    `gorm:"column:mime_type;type:varchar(100);not null" json:"mime_type"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"-"`
}

func (Attachment) TableName() string {
	return "attachments"
}
