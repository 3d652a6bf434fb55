// Package session runs one interactive sitting as a write-back cache: the
// durable store is read once when the session opens, all edits go to a
// volatile copy, and the durable store is written once when it closes.
package session

import (
	"context"

	"todo-cli/internal/config"
	"todo-cli/internal/domain"
	"todo-cli/internal/errors"
	"todo-cli/internal/logging"
	"todo-cli/internal/manager"
	"todo-cli/internal/storage"
	"todo-cli/internal/storage/memory"
)

// Session pairs a durable store with the manager working on its cached copy
type Session struct {
	durable     storage.Store
	cache       *countingStore
	manager     *manager.Manager
	logger      *logging.Logger
	loadErr     error
	loadWarning error
	closed      bool
}

// Option configures a Session
type Option func(*settings)

type settings struct {
	logger *logging.Logger
	cfg    *config.Config
}

// WithLogger sets the logger shared by the session and its manager
func WithLogger(logger *logging.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithConfig applies configured validation limits to the manager
func WithConfig(cfg *config.Config) Option {
	return func(s *settings) {
		s.cfg = cfg
	}
}

// countingStore forwards to a volatile store and counts saves, which is
// the number of edits made during the session.
type countingStore struct {
	*memory.Store
	saves int
}

func (c *countingStore) Save(ctx context.Context, tasks []domain.Task) error {
	c.saves++
	return c.Store.Save(ctx, tasks)
}

// Open loads durable once and starts a manager over a volatile copy of the
// result. A failed load is logged and the session starts empty, as does a
// snapshot the store reports as unreadable through storage.LoadWarner.
func Open(ctx context.Context, durable storage.Store, opts ...Option) *Session {
	st := settings{logger: logging.Nop()}
	for _, opt := range opts {
		opt(&st)
	}

	tasks, loadErr := durable.Load(ctx)
	if loadErr != nil {
		st.logger.Errorf("failed to load todos: %v", loadErr)
		tasks = nil
	}

	var loadWarning error
	if warner, ok := durable.(storage.LoadWarner); ok {
		loadWarning = warner.LoadWarning()
	}

	cache := &countingStore{Store: memory.NewSeeded(tasks)}

	managerOpts := []manager.Option{manager.WithLogger(st.logger)}
	if st.cfg != nil {
		managerOpts = append(managerOpts, manager.WithConfig(st.cfg))
	}

	return &Session{
		durable:     durable,
		cache:       cache,
		manager:     manager.New(ctx, cache, managerOpts...),
		logger:      st.logger,
		loadErr:     loadErr,
		loadWarning: loadWarning,
	}
}

// Manager returns the manager for this session
func (s *Session) Manager() *manager.Manager {
	return s.manager
}

// LoadErr returns the error from reading the durable store, if any
func (s *Session) LoadErr() error {
	return s.loadErr
}

// LoadWarning returns the reason the durable snapshot was discarded as
// unreadable, if it was
func (s *Session) LoadWarning() error {
	return s.loadWarning
}

// Close writes the working list to the durable store. Only the first call
// does anything. If the durable store could not be read, or held a snapshot
// it could not parse, and nothing was edited, it is left untouched.
func (s *Session) Close(ctx context.Context) error {
	if s.closed {
		return nil
	}
	s.closed = true

	if (s.loadErr != nil || s.loadWarning != nil) && s.cache.saves == 0 {
		s.logger.Debugf("durable store unreadable and no edits made, skipping flush")
		return nil
	}

	tasks := s.manager.Tasks()
	if err := s.durable.Save(ctx, tasks); err != nil {
		if !errors.IsAppError(err) {
			err = errors.NewStorageError("save todos", err)
		}
		s.logger.Errorf("failed to save todos on exit: %v", err)
		return err
	}

	s.logger.Debugf("flushed %d todos on exit", len(tasks))
	return nil
}
