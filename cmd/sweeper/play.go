package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vancomm/sweeper/internal/console"
	"github.com/vancomm/sweeper/internal/game"
	"github.com/vancomm/sweeper/internal/mines"
)

type playFlags struct {
	width, height, mines int
	board                string
	seed                 uint64
}

func newPlayCmd(c *cli) *cobra.Command {
	var f playFlags
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		Long: `Play a game in the terminal.

Enter "x y" to reveal a cell and "x y flag" to toggle a flag, counting from 1.
The short forms "o x y", "f x y", "c x y" (chord) and "r" (give up) also
work. Type "quit" to leave.

Examples:
  sweeper play
  sweeper play --board 16:16:40
  sweeper play -W 30 -H 16 -m 99 --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := f.params(cmd, c.defaults)
			if err != nil {
				return err
			}

			var src mines.PositionSource = mines.NewSource()
			if cmd.Flags().Changed("seed") {
				src = mines.NewSeededSource(f.seed)
			}

			g, err := game.New(params, src)
			if err != nil {
				return err
			}

			_, err = console.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), g)
			if errors.Is(err, console.ErrQuit) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVarP(&f.width, "width", "W", 0, "Board width (default from MINES_WIDTH or 10)")
	cmd.Flags().IntVarP(&f.height, "height", "H", 0, "Board height (default from MINES_HEIGHT or 10)")
	cmd.Flags().IntVarP(&f.mines, "mines", "m", 0, "Number of mines (default from MINES_COUNT or 10)")
	cmd.Flags().StringVarP(&f.board, "board", "b", "", "Board as width:height:mines, e.g. 16:16:40")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Seed for a reproducible board")

	return cmd
}

// params starts from defaults, applies --board and then the single
// dimension flags that were set explicitly.
func (f playFlags) params(cmd *cobra.Command, defaults game.Params) (game.Params, error) {
	params := defaults
	if f.board != "" {
		var err error
		if params, err = game.ParseSeed(f.board); err != nil {
			return game.Params{}, err
		}
	}
	if cmd.Flags().Changed("width") {
		params.Width = f.width
	}
	if cmd.Flags().Changed("height") {
		params.Height = f.height
	}
	if cmd.Flags().Changed("mines") {
		params.MineCount = f.mines
	}
	return params, params.Validate()
}
