// Package sqlite is a durable task store kept in a single SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"todo-cli/internal/domain"
	"todo-cli/internal/errors"
	"todo-cli/internal/logging"
	"todo-cli/internal/storage"
	"todo-cli/internal/storage/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// Store implements storage.Store on top of the tasks table. Each row's
// position column holds the task's index in the list.
type Store struct {
	db      *sql.DB
	path    string
	logger  *logging.Logger
	warning error
}

// Option configures a Store
type Option func(*options)

type options struct {
	logger  *logging.Logger
	dirPerm os.FileMode
}

// WithLogger sets the logger used to report unreadable rows
func WithLogger(logger *logging.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDirPermissions sets the mode used when creating the database directory
func WithDirPermissions(perm os.FileMode) Option {
	return func(o *options) {
		o.dirPerm = perm
	}
}

// New opens (creating if needed) the database at dbPath and applies any
// pending migrations.
func New(ctx context.Context, dbPath string, opts ...Option) (*Store, error) {
	o := options{logger: logging.Nop(), dirPerm: 0755}
	for _, opt := range opts {
		opt(&o)
	}

	if dbPath != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(dbPath), o.dirPerm); err != nil {
			return nil, errors.NewStorageError("create data directory", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}
	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	o.logger.Debugf("opened sqlite store at %s", dbPath)
	return &Store{db: db, path: dbPath, logger: o.logger}, nil
}

// Path returns the database path
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadWarning returns the corrupt data error from the last Load, if any
func (s *Store) LoadWarning() error {
	return s.warning
}

// Save replaces every row with tasks inside one transaction
func (s *Store) Save(ctx context.Context, tasks []domain.Task) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin save", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM tasks"); err != nil {
		return HandleDatabaseError("clear tasks", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO tasks (position, id, title, is_completed)
	VALUES (?, ?, ?, ?)`)
	if err != nil {
		return HandleDatabaseError("prepare insert", err)
	}
	defer stmt.Close()

	for i, record := range storage.ToRecords(tasks) {
		if _, err := stmt.ExecContext(ctx, i, record.ID, record.Title, record.IsCompleted); err != nil {
			return HandleDatabaseError("insert task", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit save", err)
	}

	s.logger.Debugf("saved %d todos to %s", len(tasks), s.path)
	return nil
}

// Load returns the tasks ordered by position. Rows that do not form a
// valid list are reported and replaced by an empty list.
func (s *Store) Load(ctx context.Context) ([]domain.Task, error) {
	s.warning = nil
	query := `
	SELECT id, title, is_completed
	FROM tasks
	ORDER BY position`

	records, err := QueryRecords(ctx, s.db, query)
	if err != nil {
		return []domain.Task{}, err
	}

	tasks, err := storage.FromRecords(records)
	if err != nil {
		corrupt := errors.NewCorruptDataError(s.path, err)
		s.logger.Warnf("%s (%s); starting with an empty list", corrupt.Message, err)
		s.warning = corrupt
		return []domain.Task{}, nil
	}

	s.logger.Debugf("loaded %d todos from %s", len(tasks), s.path)
	return tasks, nil
}
