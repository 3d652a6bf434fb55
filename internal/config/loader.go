package config

import (
	"strconv"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key when read from the environment.
const EnvPrefix = "TODO"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
	v      *viper.Viper
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	cfg := NewConfig()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("data_dir", cfg.Storage.Dir)
	v.SetDefault("filename", cfg.Storage.Filename)
	v.SetDefault("backend", cfg.Storage.Backend)
	v.SetDefault("dir_permissions", strconv.FormatUint(uint64(cfg.Storage.DirPermissions), 8))
	v.SetDefault("title_max", strconv.Itoa(cfg.Validation.TitleMaxLength))
	v.SetDefault("mark_done", cfg.Display.CompletedMark)
	v.SetDefault("mark_pending", cfg.Display.PendingMark)
	v.SetDefault("debug", "")

	return &Loader{
		config: cfg,
		v:      v,
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Validate
func (l *Loader) Load() (*Config, error) {
	// Step 1: Start with defaults (already done in NewConfig)

	// Step 2: Load from environment variables
	l.loadFromEnvironment()

	// Step 3: Validate the configuration
	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// loadFromEnvironment reads TODO_* variables. Values that fail to parse
// keep their defaults.
func (l *Loader) loadFromEnvironment() {
	c := l.config

	if dir := l.v.GetString("data_dir"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := l.v.GetString("filename"); filename != "" {
		c.Storage.Filename = filename
	}
	if backend := l.v.GetString("backend"); backend != "" {
		c.Storage.Backend = backend
	}
	c.Storage.DirPermissions = ParseUint32WithFallback(l.v.GetString("dir_permissions"), 8, c.Storage.DirPermissions)

	c.Validation.TitleMaxLength = ParseIntWithFallback(l.v.GetString("title_max"), c.Validation.TitleMaxLength)

	if mark := l.v.GetString("mark_done"); mark != "" {
		c.Display.CompletedMark = mark
	}
	if mark := l.v.GetString("mark_pending"); mark != "" {
		c.Display.PendingMark = mark
	}

	// Any non-empty value that is not an explicit false enables debug output
	if debug := l.v.GetString("debug"); debug != "" {
		c.Application.Debug = ParseBoolWithFallback(debug, true)
	}
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
