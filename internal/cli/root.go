package cli

import (
	"context"

	"github.com/spf13/cobra"

	"todo-cli/internal/config"
	"todo-cli/internal/logging"
	"todo-cli/internal/session"
	"todo-cli/internal/storage"
)

// OpenStoreFunc opens the durable store. The returned close function is
// called once the session has been flushed.
type OpenStoreFunc func(ctx context.Context) (storage.Store, func() error, error)

// RootCommand is the todo command
type RootCommand struct {
	cmd       *cobra.Command
	config    *config.Config
	openStore OpenStoreFunc
	logger    *logging.Logger
}

// NewRootCommand creates the cobra command that runs the interactive loop
func NewRootCommand(cfg *config.Config, openStore OpenStoreFunc, logger *logging.Logger) *RootCommand {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if logger == nil {
		logger = logging.Nop()
	}

	root := &RootCommand{
		config:    cfg,
		openStore: openStore,
		logger:    logger,
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "An interactive command-line to-do list",
		Long: `todo keeps a list of things to do between runs.

At the prompt type one of:
  add       Add a todo (you will be asked for its title)
  list      Show all todos with their numbers
  toggle    Mark a todo as done or not done
  delete    Remove a todo
  exit      Save and quit

CONFIGURATION:
    TODO_DATA_DIR                          Data directory (default: $XDG_DATA_HOME/todo or ~/.local/share/todo)
    TODO_FILENAME                          Data file name; .yaml/.yml selects YAML (default: todos.json)
    TODO_BACKEND                           file or sqlite (default: file)
    TODO_DIR_PERMISSIONS                   Mode for a new data directory, octal (default: 0755)
    TODO_TITLE_MAX                         Maximum title length (default: 255)
    TODO_MARK_DONE                         Mark for completed todos (default: ✅)
    TODO_MARK_PENDING                      Mark for pending todos (default: ❌)
    TODO_DEBUG                             Write debug output to stderr`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.run(cmd)
		},
	}

	return root
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// ExecuteContext runs the root command with ctx
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

func (r *RootCommand) run(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, closeStore, err := r.openStore(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeStore == nil {
			return
		}
		if err := closeStore(); err != nil {
			r.logger.Warnf("failed to close store: %v", err)
		}
	}()

	sess := session.Open(ctx, store, session.WithLogger(r.logger), session.WithConfig(r.config))
	repl := NewREPL(cmd.InOrStdin(), cmd.OutOrStdout(), sess, NewDispatcher(r.config, r.logger), r.logger)
	return repl.Run(ctx)
}
