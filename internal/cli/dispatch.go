package cli

import (
	"context"
	"fmt"
	"strings"

	"todo-cli/internal/config"
	"todo-cli/internal/logging"
	"todo-cli/internal/manager"
	"todo-cli/internal/validation"
)

const (
	invalidInputMessage = "Invalid input. Please try again."
	emptyListMessage    = "Empty (try add todos)"
	listHeader          = "Your Todos:"
	exitMessage         = "Goodbye!"
)

// Result is the outcome of one dispatched command
type Result struct {
	Message string
	Exit    bool
}

// Dispatcher runs commands against a manager without touching the terminal
type Dispatcher struct {
	completedMark string
	pendingMark   string
	errorHandler  *ErrorHandler
}

// NewDispatcher creates a dispatcher using the display marks from cfg. A
// nil cfg uses the defaults.
func NewDispatcher(cfg *config.Config, logger *logging.Logger) *Dispatcher {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Dispatcher{
		completedMark: cfg.Display.CompletedMark,
		pendingMark:   cfg.Display.PendingMark,
		errorHandler:  NewErrorHandler(logger),
	}
}

// Dispatch runs cmd with the default display settings
func Dispatch(ctx context.Context, m *manager.Manager, cmd Command, arg string) Result {
	return NewDispatcher(nil, nil).Dispatch(ctx, m, cmd, arg)
}

// Dispatch runs cmd against m. arg is the title for add and the position
// text for toggle and delete; other commands ignore it.
func (d *Dispatcher) Dispatch(ctx context.Context, m *manager.Manager, cmd Command, arg string) Result {
	switch cmd {
	case CommandAdd:
		task, err := m.Add(ctx, arg)
		if err != nil {
			return d.failure(err)
		}
		return Result{Message: fmt.Sprintf("Added %q.", task.Title)}

	case CommandList:
		return Result{Message: d.RenderList(m.List())}

	case CommandToggle:
		position, err := validation.ParsePosition(arg, m.Len())
		if err != nil {
			return d.failure(err)
		}
		task, err := m.Toggle(ctx, position)
		if err != nil {
			return d.failure(err)
		}
		state := "not done"
		if task.IsCompleted {
			state = "done"
		}
		return Result{Message: fmt.Sprintf("Marked %q as %s.", task.Title, state)}

	case CommandDelete:
		position, err := validation.ParsePosition(arg, m.Len())
		if err != nil {
			return d.failure(err)
		}
		task, err := m.Delete(ctx, position)
		if err != nil {
			return d.failure(err)
		}
		return Result{Message: fmt.Sprintf("Deleted %q.", task.Title)}

	case CommandExit:
		return Result{Message: exitMessage, Exit: true}

	default:
		return Result{Message: invalidInputMessage}
	}
}

// RenderList formats entries for display, one numbered line per todo
func (d *Dispatcher) RenderList(entries []manager.Entry) string {
	if len(entries) == 0 {
		return emptyListMessage
	}

	var b strings.Builder
	b.WriteString(listHeader)
	for _, entry := range entries {
		mark := d.pendingMark
		if entry.Task.IsCompleted {
			mark = d.completedMark
		}
		fmt.Fprintf(&b, "\n%d. %s %s", entry.Position, mark, entry.Task.Title)
	}
	return b.String()
}

func (d *Dispatcher) failure(err error) Result {
	message := d.errorHandler.Message(err)
	if d.errorHandler.IsUserError(err) {
		message = fmt.Sprintf("Invalid input: %s. Please try again.", message)
	}
	return Result{Message: message}
}
