package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/console"
	"github.com/vancomm/sweeper/internal/game"
)

type cli struct {
	logger   *slog.Logger
	closers  []io.Closer
	defaults game.Params
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "sweeper",
		Short: "Reveal every safe cell without touching a mine",
		Long: `sweeper is a grid-reveal puzzle. Play it in the terminal or serve it
over websockets.

Environment:
  MINES_WIDTH, MINES_HEIGHT, MINES_COUNT  default board (10x10 with 10 mines)
  DEVELOPMENT, LOG_LEVEL, LOG_FILE        logging
  APP_PORT, ALLOWED_ORIGINS               server

Variables may also be set in a .env file.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	root.AddCommand(newPlayCmd(c), newServeCmd(c))
	return root
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("unable to load .env: %w", err)
	}

	logging, err := config.NewLogging()
	if err != nil {
		return err
	}
	var closer io.Closer
	c.logger, closer = logging.Logger(os.Stderr)
	c.closers = append(c.closers, closer)
	slog.SetDefault(c.logger)
	game.Log = c.logger
	console.Log = c.logger

	defaults, err := config.NewGameDefaults()
	if err != nil {
		return fmt.Errorf("unable to read game defaults: %w", err)
	}
	c.defaults = *defaults

	c.logger.Debug("starting up",
		slog.String("command", cmd.Name()),
		slog.Bool("development", logging.Development),
		slog.String("defaults", c.defaults.String()),
	)
	return nil
}

func (c *cli) close() error {
	var errs []error
	for _, closer := range c.closers {
		errs = append(errs, closer.Close())
	}
	c.closers = nil
	return errors.Join(errs...)
}
