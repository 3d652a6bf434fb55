package main

import (
	"context"
	"fmt"
	"io/fs"

	"todo-cli/internal/config"
	"todo-cli/internal/logging"
	"todo-cli/internal/storage"
	"todo-cli/internal/storage/file"
	"todo-cli/internal/storage/sqlite"
)

// StoreFactory creates the durable store selected by the configuration
type StoreFactory struct {
	config *config.Config
	logger *logging.Logger
}

// NewStoreFactory creates a new store factory for cfg
func NewStoreFactory(cfg *config.Config, logger *logging.Logger) *StoreFactory {
	return &StoreFactory{config: cfg, logger: logger}
}

// Open creates the durable store. The close function releases any handle
// the backend holds.
func (sf *StoreFactory) Open(ctx context.Context) (storage.Store, func() error, error) {
	switch sf.config.Storage.Backend {
	case config.BackendSQLite:
		return sf.openSQLite(ctx)
	case config.BackendFile, "":
		return sf.openFile()
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", sf.config.Storage.Backend)
	}
}

// openFile creates the JSON or YAML file store
func (sf *StoreFactory) openFile() (storage.Store, func() error, error) {
	path := sf.config.StorePath()
	sf.logger.Debugf("using file store at %s", path)

	store := file.New(path,
		file.WithLogger(sf.logger),
		file.WithDirPermissions(fs.FileMode(sf.config.Storage.DirPermissions)),
	)
	return store, func() error { return nil }, nil
}

// openSQLite opens the SQLite database, running migrations
func (sf *StoreFactory) openSQLite(ctx context.Context) (storage.Store, func() error, error) {
	path := sf.config.StorePath()
	sf.logger.Debugf("using sqlite store at %s", path)

	store, err := sqlite.New(ctx, path,
		sqlite.WithLogger(sf.logger),
		sqlite.WithDirPermissions(fs.FileMode(sf.config.Storage.DirPermissions)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize sqlite store: %w", err)
	}
	return store, store.Close, nil
}
