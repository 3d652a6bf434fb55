// Package manager owns the in-memory, ordered todo list and keeps the
// backing store in step with every change.
package manager

import (
	"context"

	"todo-cli/internal/config"
	"todo-cli/internal/domain"
	"todo-cli/internal/errors"
	"todo-cli/internal/logging"
	"todo-cli/internal/storage"
	"todo-cli/internal/validation"
)

// Entry is a task together with its 1-based display position
type Entry struct {
	Position int
	Task     domain.Task
}

// Manager holds the working list. Positions exposed to callers are 1-based.
type Manager struct {
	store         storage.Store
	tasks         []domain.Task
	taskValidator *validation.TaskValidator
	logger        *logging.Logger
	loadErr       error
}

// Option configures a Manager
type Option func(*Manager)

// WithLogger sets the logger
func WithLogger(logger *logging.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithConfig applies configured validation limits
func WithConfig(cfg *config.Config) Option {
	return func(m *Manager) {
		m.taskValidator = validation.NewTaskValidatorWithConfig(cfg)
	}
}

// New creates a manager and loads the current list from store. A failed
// load is logged and leaves the list empty; see LoadErr.
func New(ctx context.Context, store storage.Store, opts ...Option) *Manager {
	m := &Manager{
		store:         store,
		tasks:         []domain.Task{},
		taskValidator: validation.NewTaskValidator(),
		logger:        logging.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	tasks, err := store.Load(ctx)
	if err != nil {
		m.loadErr = err
		m.logger.Errorf("failed to load todos: %v", err)
		return m
	}
	m.tasks = domain.CloneTasks(tasks)
	m.logger.Debugf("manager started with %d todos", len(m.tasks))
	return m
}

// LoadErr returns the error from the initial load, if any
func (m *Manager) LoadErr() error {
	return m.loadErr
}

// Len returns the number of tasks
func (m *Manager) Len() int {
	return len(m.tasks)
}

// Tasks returns a copy of the list in order
func (m *Manager) Tasks() []domain.Task {
	return domain.CloneTasks(m.tasks)
}

// List returns every task with its position
func (m *Manager) List() []Entry {
	entries := make([]Entry, len(m.tasks))
	for i, task := range m.tasks {
		entries[i] = Entry{Position: i + 1, Task: task}
	}
	return entries
}

// Add appends a new, pending task with the trimmed title and saves. If the
// save fails the task stays in the list and the storage error is returned.
func (m *Manager) Add(ctx context.Context, title string) (domain.Task, error) {
	trimmed, err := m.taskValidator.GetValidTitle(title)
	if err != nil {
		return domain.Task{}, validationError(err)
	}

	task := domain.NewTask(trimmed)
	m.tasks = append(m.tasks, task)
	m.logger.Debugf("added todo %s", task.ID)

	return task, m.save(ctx)
}

// Toggle flips the completion state of the task at position and saves
func (m *Manager) Toggle(ctx context.Context, position int) (domain.Task, error) {
	if err := validation.ValidatePosition(position, len(m.tasks)); err != nil {
		return domain.Task{}, err
	}

	i := position - 1
	m.tasks[i] = m.tasks[i].Toggle()
	m.logger.Debugf("toggled todo %s to completed=%t", m.tasks[i].ID, m.tasks[i].IsCompleted)

	return m.tasks[i], m.save(ctx)
}

// Delete removes the task at position; later tasks move up by one
func (m *Manager) Delete(ctx context.Context, position int) (domain.Task, error) {
	if err := validation.ValidatePosition(position, len(m.tasks)); err != nil {
		return domain.Task{}, err
	}

	i := position - 1
	removed := m.tasks[i]
	m.tasks = append(m.tasks[:i:i], m.tasks[i+1:]...)
	m.logger.Debugf("deleted todo %s", removed.ID)

	return removed, m.save(ctx)
}

func (m *Manager) save(ctx context.Context) error {
	if err := m.store.Save(ctx, domain.CloneTasks(m.tasks)); err != nil {
		if !errors.IsAppError(err) {
			err = errors.NewStorageError("save todos", err)
		}
		m.logger.Errorf("failed to save todos: %v", err)
		return err
	}
	return nil
}

func validationError(err error) error {
	message := err.Error()
	if ve, ok := err.(*validation.ValidationError); ok {
		message = ve.GetUserFriendlyMessage()
	}
	return errors.NewValidationError(message, err)
}
