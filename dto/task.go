package dto

import (
	"encoding/json"
	"time"
)

type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	Status      string     `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateTaskRequest is a partial update: only fields present in the JSON
// body are written. The task id comes from the URL.
type UpdateTaskRequest struct {
	Title       Optional[string]    `json:"title"`
	Description Optional[string]    `json:"description"`
	Status      Optional[string]    `json:"status"`
	Priority    Optional[string]    `json:"priority"`
	DueDate     Optional[time.Time] `json:"due_date"`
}

// MarshalJSON emits only the fields that were set, so a round trip through
// the wire preserves the present-vs-absent distinction.
func (r UpdateTaskRequest) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{})
	if r.Title.Set {
		out["title"] = r.Title
	}
	if r.Description.Set {
		out["description"] = r.Description
	}
	if r.Status.Set {
		out["status"] = r.Status
	}
	if r.Priority.Set {
		out["priority"] = r.Priority
	}
	if r.DueDate.Set {
		out["due_date"] = r.DueDate
	}
	return json.Marshal(out)
}
