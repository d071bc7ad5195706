package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vancomm/sweeper/internal/command"
	"github.com/vancomm/sweeper/internal/game"
	"github.com/vancomm/sweeper/internal/render"
)

var Log *slog.Logger = slog.Default()

var ErrQuit = errors.New("player quit")

const prompt = "Enter the horizontal coordinate then the vertical coordinate separated by a space. " +
	"To place a flag, enter the coordinates followed by flag, e.g.: 3 3 flag"

// Run plays g turn by turn, reading one command per line from in. Bad input
// is reported on out and asked for again. The loop ends when the game is
// over, the player quits (ErrQuit), in runs dry (io.ErrUnexpectedEOF) or ctx
// is done.
func Run(ctx context.Context, in io.Reader, out io.Writer, g *game.Game) (game.Status, error) {
	done := make(chan struct{})
	defer close(done)
	lines, readErr := readLines(in, done)

	for !g.Status().Over() {
		if err := ctx.Err(); err != nil {
			return g.Status(), err
		}
		if err := showBoard(out, g); err != nil {
			return g.Status(), err
		}
		fmt.Fprintln(out, prompt)

		var line string
		select {
		case <-ctx.Done():
			return g.Status(), ctx.Err()
		case l, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return g.Status(), fmt.Errorf("unable to read input: %w", err)
				}
				return g.Status(), io.ErrUnexpectedEOF
			}
			line = l
		}

		cmd, err := command.Parse(line, 1)
		if err != nil {
			Log.Debug("bad input", slog.String("line", line), slog.Any("error", err))
			fmt.Fprintf(out, "Invalid input: %s\n", err)
			continue
		}
		if cmd.Kind == command.Quit {
			fmt.Fprintln(out, "Thanks for playing! Goodbye!")
			return g.Status(), ErrQuit
		}
		if err := command.Apply(g, cmd); err != nil {
			Log.Debug("rejected move", slog.String("kind", cmd.Kind.String()), slog.Any("error", err))
			fmt.Fprintf(out, "Invalid move: %s\n", err)
		}
	}

	if err := render.Board(out, g); err != nil {
		return g.Status(), err
	}
	switch {
	case g.Status() == game.Won:
		fmt.Fprintln(out, "WINNER! You found all the mines!")
	case g.Exploded() != nil:
		fmt.Fprintln(out, "YOU HIT A MINE!")
		fmt.Fprintln(out, "--------- GAME OVER ---------")
	default:
		fmt.Fprintln(out, "--------- GAME OVER ---------")
	}
	return g.Status(), nil
}

// readLines scans in on its own goroutine so that a blocked read does not
// hold up cancellation. The goroutine stops once done is closed and the
// pending read returns. readErr receives the scan error before lines closes.
func readLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()
	return lines, readErr
}

func showBoard(out io.Writer, g *game.Game) error {
	if err := render.Board(out, g); err != nil {
		return err
	}
	return render.Status(out, g)
}
