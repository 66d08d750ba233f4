package client

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"tasktracker/dto"
	"tasktracker/model"
)

// AttachmentPanel holds the attachment list for one selected task and
// refreshes it independently of the task list.
type AttachmentPanel struct {
	api         *Client
	TaskID      int
	Attachments []model.Attachment
}

func NewAttachmentPanel(api *Client, taskID int) *AttachmentPanel {
	return &AttachmentPanel{api: api, TaskID: taskID}
}

func (p *AttachmentPanel) Refresh(ctx context.Context) error {
	attachments, err := p.api.GetAttachmentsByTask(ctx, p.TaskID)
	if err != nil {
		log.Printf("Failed to load attachments: %v", err)
		return err
	}
	p.Attachments = attachments
	return nil
}

// SetTask switches the panel to another task and refetches its list.
func (p *AttachmentPanel) SetTask(ctx context.Context, taskID int) error {
	p.TaskID = taskID
	p.Attachments = nil
	return p.Refresh(ctx)
}

// Upload records attachment metadata for a selected file. No bytes are
// transferred; the storage backend is out of scope, so the storage
// filename is synthesized here the same way the original front end did.
func (p *AttachmentPanel) Upload(ctx context.Context, originalName string, size int64, mimeType string) error {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	req := dto.CreateAttachmentRequest{
		TaskID:       p.TaskID,
		Filename:     fmt.Sprintf("%d_%s", time.Now().UnixMilli(), originalName),
		OriginalName: originalName,
		FileSize:     size,
		MimeType:     mimeType,
	}

	attachment, err := p.api.CreateAttachment(ctx, req)
	if err != nil {
		log.Printf("Failed to upload attachment: %v", err)
		return err
	}
	p.Attachments = append([]model.Attachment{*attachment}, p.Attachments...)
	return nil
}

func (p *AttachmentPanel) Delete(ctx context.Context, attachmentID int) error {
	if _, err := p.api.DeleteAttachment(ctx, attachmentID); err != nil {
		log.Printf("Failed to delete attachment: %v", err)
		return err
	}
	kept := make([]model.Attachment, 0, len(p.Attachments))
	for _, a := range p.Attachments {
		if a.ID != attachmentID {
			kept = append(kept, a)
		}
	}
	p.Attachments = kept
	return nil
}

// FormatFileSize renders a byte count the way the attachment list shows it.
func FormatFileSize(size int64) string {
	if size == 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	value := float64(size)
	i := 0
	for value >= 1024 && i < len(units)-1 {
		value /= 1024
		i++
	}
	value = math.Round(value*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + units[i]
}
