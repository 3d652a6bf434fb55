package file

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"todo-cli/internal/domain"
	"todo-cli/internal/errors"
	"todo-cli/internal/logging"
	"todo-cli/internal/storage"
)

const defaultDirPermissions = 0755

// Store is the durable store: the whole list serialized to one JSON or
// YAML file. Saves go through a temp file and a rename so a crash mid-write
// leaves the previous snapshot intact.
type Store struct {
	path     string
	dirPerm  fs.FileMode
	filePerm fs.FileMode
	codec    codec
	logger   *logging.Logger
	warning  error
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used to report unreadable snapshots
func WithLogger(logger *logging.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithDirPermissions sets the mode used when creating the data directory
func WithDirPermissions(perm fs.FileMode) Option {
	return func(s *Store) {
		s.dirPerm = perm
	}
}

// New creates a durable store backed by the file at path. Nothing is
// touched on disk until the first Save.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:     path,
		dirPerm:  defaultDirPermissions,
		filePerm: 0644,
		codec:    codecFor(path),
		logger:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Save atomically replaces the file contents with tasks
func (s *Store) Save(ctx context.Context, tasks []domain.Task) error {
	if err := ctx.Err(); err != nil {
		return errors.NewStorageError("save todos", err)
	}

	data, err := s.codec.Marshal(storage.ToRecords(tasks))
	if err != nil {
		return errors.NewStorageError("encode todos", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, s.dirPerm); err != nil {
		return errors.NewStorageError("create data directory", err)
	}

	if err := s.writeAtomic(dir, data); err != nil {
		return errors.NewStorageError("save todos", err)
	}

	s.logger.Debugf("saved %d todos to %s", len(tasks), s.path)
	return nil
}

func (s *Store) writeAtomic(dir string, data []byte) (err error) {
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(s.filePerm); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, s.path)
}

// Load reads the file. A missing file is an empty list; an unreadable one
// is reported through the logger and also treated as an empty list.
func (s *Store) Load(ctx context.Context) ([]domain.Task, error) {
	s.warning = nil
	if err := ctx.Err(); err != nil {
		return []domain.Task{}, errors.NewStorageError("load todos", err)
	}

	data, err := os.ReadFile(s.path)
	if stderrors.Is(err, fs.ErrNotExist) {
		s.logger.Debugf("no todos file at %s, starting empty", s.path)
		return []domain.Task{}, nil
	}
	if err != nil {
		return []domain.Task{}, errors.NewStorageError("load todos", err)
	}

	records, err := s.codec.Unmarshal(data)
	if err != nil {
		return s.corrupt(err), nil
	}

	tasks, err := storage.FromRecords(records)
	if err != nil {
		return s.corrupt(err), nil
	}

	s.logger.Debugf("loaded %d todos from %s", len(tasks), s.path)
	return tasks, nil
}

func (s *Store) corrupt(cause error) []domain.Task {
	err := errors.NewCorruptDataError(s.path, cause)
	s.logger.Warnf("%s (%s); starting with an empty list", err.Message, cause)
	s.warning = err
	return []domain.Task{}
}

// LoadWarning returns the corrupt data error from the last Load, if any
func (s *Store) LoadWarning() error {
	return s.warning
}
