package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/sweeper/internal/game"
)

// Board writes the player's view with 1-based row labels on the right and
// column labels underneath.
func Board(w io.Writer, g *game.Game) error {
	var b strings.Builder
	grid := g.Grid()
	width := g.Width()

	for y := range g.Height() {
		for x := range width {
			b.WriteString(grid.At(x, y, width).String())
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "|%d\n", y+1)
	}

	for range width {
		b.WriteString("_  ")
	}
	b.WriteByte('\n')

	for x := range width {
		label := strconv.Itoa(x + 1)
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", max(1, 3-len(label))))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func Status(w io.Writer, g *game.Game) error {
	_, err := fmt.Fprintf(w, "%d revealed of %d with %d mines! Flagged: %d\n",
		g.RevealedCount(), g.Area(), g.MineCount(), g.FlaggedCount())
	return err
}
