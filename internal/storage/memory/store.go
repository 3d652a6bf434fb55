package memory

import (
	"context"

	"todo-cli/internal/domain"
)

// Store keeps the task snapshot in process memory only. It never fails and
// its contents are lost when the process exits. Not safe for concurrent use.
type Store struct {
	tasks []domain.Task
}

// New returns an empty in-memory store
func New() *Store {
	return &Store{}
}

// NewSeeded returns an in-memory store already holding a copy of tasks
func NewSeeded(tasks []domain.Task) *Store {
	return &Store{tasks: domain.CloneTasks(tasks)}
}

// Save replaces the held snapshot wholesale
func (s *Store) Save(_ context.Context, tasks []domain.Task) error {
	s.tasks = domain.CloneTasks(tasks)
	return nil
}

// Load returns a copy of the held snapshot, or an empty list if nothing was saved
func (s *Store) Load(_ context.Context) ([]domain.Task, error) {
	return domain.CloneTasks(s.tasks), nil
}
