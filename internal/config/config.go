package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// DefaultFilename is the durable store filename.
	DefaultFilename = "todos.json"

	// DefaultSQLiteFilename is used when the sqlite backend is selected and
	// the filename was left at its default.
	DefaultSQLiteFilename = "todos.db"

	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds all configuration options for the todo application
type Config struct {
	Storage     StorageConfig
	Validation  ValidationConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// StorageConfig holds durable store configuration
type StorageConfig struct {
	Dir            string `mapstructure:"data_dir"`
	Filename       string `mapstructure:"filename"`
	Backend        string `mapstructure:"backend"`
	DirPermissions uint32 `mapstructure:"dir_permissions"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMaxLength int `mapstructure:"title_max"`
}

// DisplayConfig holds list rendering configuration
type DisplayConfig struct {
	CompletedMark string `mapstructure:"mark_done"`
	PendingMark   string `mapstructure:"mark_pending"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Debug bool `mapstructure:"debug"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Dir:            DefaultDataDir(),
			Filename:       DefaultFilename,
			Backend:        BackendFile,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			TitleMaxLength: 255,
		},
		Display: DisplayConfig{
			CompletedMark: "✅",
			PendingMark:   "❌",
		},
		Application: ApplicationConfig{
			Debug: false,
		},
	}
}

// DefaultDataDir returns the per-user data directory.
// Uses XDG_DATA_HOME if set, otherwise $HOME/.local/share.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return "." + AppName
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// StorePath returns the full path to the durable store file
func (c *Config) StorePath() string {
	filename := c.Storage.Filename
	if c.Storage.Backend == BackendSQLite && filename == DefaultFilename {
		filename = DefaultSQLiteFilename
	}
	return filepath.Join(c.Storage.Dir, filename)
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.data_dir", Message: "data directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "filename cannot be empty"}
	}
	if strings.ContainsRune(c.Storage.Filename, filepath.Separator) {
		return &ConfigError{Field: "storage.filename", Message: "filename must not contain a path separator"}
	}
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
	default:
		return &ConfigError{Field: "storage.backend", Message: "backend must be \"file\" or \"sqlite\""}
	}
	if c.Storage.DirPermissions == 0 || c.Storage.DirPermissions > 0777 {
		return &ConfigError{Field: "storage.dir_permissions", Message: "directory permissions must be between 0001 and 0777"}
	}

	if c.Validation.TitleMaxLength < 1 {
		return &ConfigError{Field: "validation.title_max", Message: "title maximum length must be at least 1"}
	}

	if c.Display.CompletedMark == "" || c.Display.PendingMark == "" {
		return &ConfigError{Field: "display.marks", Message: "completion marks cannot be empty"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
