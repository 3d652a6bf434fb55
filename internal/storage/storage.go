// Package storage defines the whole-list persistence contract for todos.
// Sub packages implement it: file (durable structured text), memory
// (volatile, process lifetime) and sqlite (durable, transactional).
package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"todo-cli/internal/domain"
	"todo-cli/internal/validation"
)

// Store persists the complete, ordered task list as a single snapshot.
type Store interface {
	// Save replaces the stored snapshot with tasks.
	Save(ctx context.Context, tasks []domain.Task) error
	// Load returns the most recent snapshot, or an empty list when nothing
	// has been saved yet or the stored data is unreadable. The returned
	// slice is never nil and is owned by the caller.
	Load(ctx context.Context) ([]domain.Task, error)
}

// LoadWarner is implemented by stores that replace an unreadable snapshot
// with an empty list. LoadWarning returns the reason from the most recent
// Load, or nil when that load read the snapshot.
type LoadWarner interface {
	LoadWarning() error
}

// Record is the serialized form of a task shared by the durable stores.
type Record struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	IsCompleted bool   `json:"isCompleted" yaml:"isCompleted"`
}

// ToRecords converts tasks to their serialized form, preserving order.
func ToRecords(tasks []domain.Task) []Record {
	records := make([]Record, len(tasks))
	for i, task := range tasks {
		records[i] = Record{
			ID:          task.ID.String(),
			Title:       task.Title,
			IsCompleted: task.IsCompleted,
		}
	}
	return records
}

// FromRecords converts records back to tasks. Any malformed identifier,
// empty title or repeated identifier rejects the whole snapshot.
func FromRecords(records []Record) ([]domain.Task, error) {
	validator := validation.NewTaskValidator()
	seen := make(map[uuid.UUID]struct{}, len(records))

	tasks := make([]domain.Task, 0, len(records))
	for i, record := range records {
		id, err := uuid.Parse(record.ID)
		if err != nil {
			return nil, fmt.Errorf("record %d: invalid id %q: %w", i+1, record.ID, err)
		}
		task := domain.Task{ID: id, Title: record.Title, IsCompleted: record.IsCompleted}
		if err := validator.ValidateTask(task); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %s", i+1, id)
		}
		seen[id] = struct{}{}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
