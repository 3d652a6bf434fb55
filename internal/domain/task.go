package domain

import "github.com/google/uuid"

// Task represents a single to-do item in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID          uuid.UUID
	Title       string
	IsCompleted bool
}

// NewTask creates a new, not yet completed Task with a fresh identifier.
func NewTask(title string) Task {
	return Task{
		ID:    uuid.New(),
		Title: title,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.ID != uuid.Nil && t.Title != ""
}

// Toggle returns a copy of the task with its completion flag flipped.
func (t Task) Toggle() Task {
	t.IsCompleted = !t.IsCompleted
	return t
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

// CloneTasks returns a copy of tasks that shares no backing array with it.
// A nil or empty input yields an empty, non-nil slice.
func CloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}
