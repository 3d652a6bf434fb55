package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DebugEnabled returns true if debug mode is enabled via TODO_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("TODO_DEBUG") != ""
}

// Logger writes diagnostic messages. Debug output is only emitted when
// debug mode is on; warnings and errors are always written.
type Logger struct {
	out   io.Writer
	debug bool
}

// New creates a logger writing to out
func New(out io.Writer, debug bool) *Logger {
	if out == nil {
		out = io.Discard
	}
	return &Logger{out: out, debug: debug}
}

// NewFromEnvironment creates a stderr logger with debug mode taken from TODO_DEBUG
func NewFromEnvironment() *Logger {
	return New(os.Stderr, DebugEnabled())
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return New(io.Discard, false)
}

// DebugEnabled reports whether debug messages are written
func (l *Logger) DebugEnabled() bool {
	return l != nil && l.debug
}

// Debugf prints a formatted debug message only if debug mode is enabled
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.DebugEnabled() {
		l.printf("debug", format, args...)
	}
}

// Warnf prints a formatted warning
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.printf("warning", format, args...)
}

// Errorf prints a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.printf("error", format, args...)
}

func (l *Logger) printf(level string, format string, args ...interface{}) {
	if l == nil {
		return
	}
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	fmt.Fprintf(l.out, "%s: %s\n", level, msg)
}
