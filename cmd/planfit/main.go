package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/mtuomisto/planfit/internal/errors"
	"github.com/mtuomisto/planfit/internal/logging"
)

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool), args []string) error {
	cfg, err := loadConfig(lookupEnv)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	app := application{
		logger: logger,
		cfg:    cfg,
	}

	root := app.newRootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		return errors.Wrap(err, "execute command")
	}
	return nil
}

func main() {
	ctx := context.Background()
	level := slog.LevelWarn
	if os.Getenv("PLANFIT_DEBUG") != "" {
		level = slog.LevelDebug
	}
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		AddSource:   false,
		Level:       level,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv, os.Args[1:]); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "command failed", errors.SlogError(err))
		os.Exit(1)
	}
}
