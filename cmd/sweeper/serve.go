package main

import (
	"github.com/spf13/cobra"

	"github.com/vancomm/sweeper/internal/app"
	"github.com/vancomm/sweeper/internal/config"
)

func newServeCmd(c *cli) *cobra.Command {
	var (
		addr    string
		origins []string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve games over websockets",
		Long: `Serve games over websockets.

Connect to /game/connect?width=&height=&mine_count= and send newline
separated commands ("o x y", "f x y", "c x y", "r", "quit"), counting from 0.
The board is sent back as JSON after every message.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = config.Port()
			}
			a := app.New(c.logger, addr, c.defaults, app.WithOrigins(origins...))
			return a.Start(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from APP_PORT or :8080)")
	cmd.Flags().StringSliceVar(&origins, "origins", nil, "Allowed origins (default from ALLOWED_ORIGINS, any when unset)")

	return cmd
}
