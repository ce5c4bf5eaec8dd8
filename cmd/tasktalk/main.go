// Package main is the entry point for the tasktalk CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"tasktalk/internal/agent"
	"tasktalk/internal/backend/googletasks"
	"tasktalk/internal/backend/todoist"
	"tasktalk/internal/config"
	"tasktalk/internal/exitcode"
	"tasktalk/internal/ops"
	"tasktalk/internal/repl"
	"tasktalk/internal/service"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitcode.ConfigError
	}

	logger := newLogger(cfg)

	svc, err := newService(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitcode.ConfigError
	}

	model, err := agent.NewModel(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitcode.ConfigError
	}
	logger.Debug("using model", "provider", cfg.Provider, "model", cfg.Model)

	executor := ops.NewExecutor(svc, logger)
	router := agent.NewRouter(model, executor, logger)
	session := repl.NewSession(router, os.Stdin, os.Stdout, logger)

	if err := session.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitcode.RuntimeError
	}
	return exitcode.Success
}

// newService constructs the configured task-store backend.
func newService(ctx context.Context, cfg *config.Config) (service.Service, error) {
	switch cfg.Backend {
	case config.BackendTodoist:
		return todoist.New(cfg.TodoistToken), nil
	case config.BackendGoogleTasks:
		if !cfg.HasOAuthClient() {
			return nil, fmt.Errorf("oauth_client.json not found in %s", cfg.Dir)
		}
		if !cfg.HasToken() {
			return nil, fmt.Errorf("token.json not found in %s", cfg.Dir)
		}
		return googletasks.New(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
	}
}

// newLogger builds the structured logger. Logs go to stderr so they never
// interleave with session output.
func newLogger(cfg *config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil && cfg.LogLevel != "" {
		logger.SetLevel(lvl)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
