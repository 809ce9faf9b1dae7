// Package cli implements the uuidv7 command tree.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lqviet/uuidv7"
	"github.com/lqviet/uuidv7/internal/config"
	"github.com/lqviet/uuidv7/internal/logging"
)

// errInvalidIDs is returned by validate when at least one argument is not a UUIDv7.
var errInvalidIDs = errors.New("one or more identifiers are not valid UUIDv7 values")

type app struct {
	cfg    *config.Config
	logger *zap.Logger
	gen    *uuidv7.Generator

	// extra generator options, used by tests to pin the clock
	genOpts []uuidv7.Option
}

// NewRoot constructs the root command. cfg provides flag defaults; logger is
// replaced when --log-level or --log-format is given.
func NewRoot(cfg *config.Config, logger *zap.Logger) *cobra.Command {
	return newRoot(&app{cfg: cfg, logger: logger})
}

func newRoot(a *app) *cobra.Command {
	if a.logger == nil {
		a.logger = zap.NewNop()
	}

	root := &cobra.Command{
		Use:           "uuidv7",
		Short:         "Generate and inspect time-ordered UUIDv7 identifiers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfg.Output, "output", "o", a.cfg.Output, "output format: text, json or yaml")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level")
	flags.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "log format: console or json")
	flags.DurationVar(&a.cfg.WaitTimeout, "timeout", a.cfg.WaitTimeout, "give up generating after this long (0 = no limit)")

	root.AddCommand(
		newNewCommand(a),
		newInspectCommand(a),
		newValidateCommand(a),
		newRangeCommand(a),
		newAfterCommand(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") || flags.Changed("log-format") {
		logger, err := logging.New(cmd.ErrOrStderr(), a.cfg.LogLevel, a.cfg.LogFormat)
		if err != nil {
			return err
		}
		a.logger = logger
	}

	opts := append(a.cfg.GeneratorOptions(a.logger), a.genOpts...)
	a.gen = uuidv7.NewGenerator(opts...)
	a.logger.Debug("generator ready",
		zap.Duration("backoff", a.cfg.Backoff),
		zap.Duration("timeout", a.cfg.WaitTimeout))
	return nil
}

// context bounds generation by the configured timeout.
func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a.cfg.WaitTimeout > 0 {
		return context.WithTimeout(ctx, a.cfg.WaitTimeout)
	}
	return context.WithCancel(ctx)
}

// base64IDLen is the length of UUID.EncodeToBase64 output.
const base64IDLen = 22

// parseID accepts any form uuidv7.Parse does, plus the 22-character base64 form.
func parseID(s string) (uuidv7.UUID, error) {
	id, err := uuidv7.Parse(s)
	if err != nil && len(s) == base64IDLen {
		if b64, b64Err := uuidv7.DecodeFromBase64(s); b64Err == nil {
			return b64, nil
		}
	}
	if err != nil {
		return uuidv7.Nil, fmt.Errorf("%q: %w", s, err)
	}
	return id, nil
}
