package domain

import (
	"errors"
	"time"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

// Possible task status values. The store assigns "Pendente" to every new
// row; no transition out of it exists in this version.
const (
	TaskStatusPending TaskStatus = "Pendente"
)

// FallbackTaskTitle is substituted when title generation fails so that a
// persisted task always carries a non-empty title.
const FallbackTaskTitle = "Nova Tarefa (IA indisponível)"

// Common validation errors for Task
var (
	ErrEmptyTaskDescription = errors.New("task description cannot be empty")
	ErrInvalidTaskStatus    = errors.New("invalid task status")
)

// Task represents a to-do item with a caller-supplied description and a
// title derived from it at creation time. DueDate is optional; a nil
// value is persisted as SQL NULL, never as a zero time.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Status      TaskStatus `json:"status"`
}

// NewTask creates a new Task with the given description and optional due
// date. The status is set to pending; the ID is assigned by the store on
// insert and the title by the service before persistence.
// Returns an error if validation fails.
func NewTask(description string, dueDate *time.Time) (*Task, error) {
	task := &Task{
		Description: description,
		DueDate:     dueDate,
		Status:      TaskStatusPending,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.Description == "" {
		return ErrEmptyTaskDescription
	}

	if !isValidTaskStatus(t.Status) {
		return ErrInvalidTaskStatus
	}

	return nil
}

// isValidTaskStatus checks if the given status is a valid TaskStatus.
func isValidTaskStatus(status TaskStatus) bool {
	switch status {
	case TaskStatusPending:
		return true
	default:
		return false
	}
}
