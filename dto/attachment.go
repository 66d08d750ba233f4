package dto

type CreateAttachmentRequest struct {
	TaskID       int    `json:"task_id" binding:"required"`
	Filename     string `json:"filename" binding:"required"`
	OriginalName string `json:"original_name" binding:"required"`
	FileSize     int64  `json:"file_size" binding:"required,gt=0"`
	MimeType     string `json:"mime_type" binding:"required"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
}
