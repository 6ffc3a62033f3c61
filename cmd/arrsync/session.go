package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrsync/internal/app"
	"github.com/vmunix/arrsync/internal/arr"
	"github.com/vmunix/arrsync/internal/config"
	"github.com/vmunix/arrsync/internal/logging"
)

// openSession loads the configuration and builds a session. The returned
// cleanup closes the session and the log file.
func openSession(cmd *cobra.Command) (*app.Session, func(), error) {
	path := configPath
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			return nil, nil, err
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(cmd.ErrOrStderr(), configErr)
			return nil, nil, fmt.Errorf("configuration invalid, run 'arrsync config test %s'", path)
		}
		return nil, nil, err
	}

	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	logger, closer, err := logging.New(logging.Options{
		Level:      level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Stderr:     cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}

	session, err := app.New(cfg, app.WithLogger(logger))
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}
	cleanup := func() {
		_ = session.Close()
		_ = closer.Close()
	}
	if instanceKey != "" {
		if _, err := session.Select(instanceKey); err != nil {
			cleanup()
			return nil, nil, err
		}
	}
	return session, cleanup, nil
}

// requestError turns a failed store request into a command error. A request
// that failed without an error was cancelled.
func requestError(ctx context.Context, op string, err *arr.Error) error {
	if err == nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s: %w", op, ctx.Err())
		}
		return fmt.Errorf("%s failed", op)
	}
	if hint := err.Suggestion(); hint != "" {
		return fmt.Errorf("%s: %w\n  %s", op, err, hint)
	}
	return fmt.Errorf("%s: %w", op, err)
}
