package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/operation"
	"github.com/walteh/renamerc/pkg/status"
	"github.com/walteh/renamerc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	debug bool
	async bool
)

// newRootCmd builds the root command. The tool takes no arguments: the
// project root is the working directory and the rule set is compiled in.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "renamerc",
		Short:         "Rewrite old project-name references across the project tree",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}

	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().BoolVar(&async, "async", false, "run the batch on a background goroutine")

	return cmd
}

// setupLogging configures zerolog based on flags. Structured logs go to
// stderr; stdout is reserved for the batch progress and summary.
func setupLogging() zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)
}

func run(ctx context.Context) error {
	logger := setupLogging()
	ctx = logger.WithContext(ctx)

	projectRoot, err := os.Getwd()
	if err != nil {
		return errors.Errorf("getting working directory: %w", err)
	}

	cfg := config.Default(projectRoot)
	cfg.Async = async
	if err := cfg.Validate(); err != nil {
		return errors.Errorf("validating config: %w", err)
	}
	logger.Debug().Stringer("config", cfg).Msg("configuration loaded")

	reporter := status.NewReporter(os.Stdout)
	op, err := operation.NewRenameOperation(operation.Options{
		Config:   cfg,
		Replacer: text.NewSimpleTextReplacer(),
		Reporter: reporter,
	})
	if err != nil {
		return errors.Errorf("creating rename operation: %w", err)
	}

	runner := operation.NewRunner(cfg.Async)
	if err := runner.Run(ctx, op); err != nil {
		return errors.Errorf("running rename operation: %w", err)
	}

	return nil
}
