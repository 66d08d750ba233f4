package services

import (
	"fmt"
)

// ValidationError rejects bad input before any store access.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

// TaskNotFoundError signals a reference to a task that does not exist.
// Unlike the nil not-found signal on task reads, attachment creation
// reports the missing parent as an error naming the id.
type TaskNotFoundError struct {
	TaskID int
}

func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task with id %d not found", e.TaskID)
}
