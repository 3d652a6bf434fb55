package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-cli/internal/cli"
	"todo-cli/internal/config"
	"todo-cli/internal/logging"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		logging.NewFromEnvironment().Errorf("failed to load configuration: %v", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, cfg.Application.Debug)
	factory := NewStoreFactory(cfg, logger)
	root := cli.NewRootCommand(cfg, factory.Open, logger)

	// Interrupts end the loop; the list is still saved before exiting
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
