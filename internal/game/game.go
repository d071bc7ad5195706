package game

import (
	"fmt"
	"log/slog"

	"github.com/vancomm/sweeper/internal/mines"
)

var Log *slog.Logger = slog.Default()

// Game drives one board from the first move to a win or a loss. It owns the
// guards the board leaves to its caller: bounds, revealed and flagged cells,
// and moves after the game has ended.
type Game struct {
	params   Params
	board    *mines.Board
	status   Status
	exploded *mines.Position
}

func New(params Params, src mines.PositionSource) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	board, err := mines.NewBoard(params.Width, params.Height)
	if err != nil {
		return nil, err
	}
	if err := board.SpawnMines(params.MineCount, src); err != nil {
		return nil, fmt.Errorf("unable to spawn mines: %w", err)
	}
	Log.Debug("new game", slog.String("params", params.String()))
	return &Game{params: params, board: board}, nil
}

func (g *Game) Params() Params     { return g.params }
func (g *Game) Status() Status     { return g.status }
func (g *Game) Width() int         { return g.board.Width() }
func (g *Game) Height() int        { return g.board.Height() }
func (g *Game) Area() int          { return g.board.Area() }
func (g *Game) MineCount() int     { return g.board.MineCount() }
func (g *Game) RevealedCount() int { return g.board.RevealedCount() }
func (g *Game) FlaggedCount() int  { return g.board.FlaggedCount() }

// Exploded is the mine that ended the game, nil unless one was opened.
func (g *Game) Exploded() *mines.Position { return g.exploded }

func (g *Game) IsValidPosition(p mines.Position) bool {
	return g.board.IsValidPosition(p)
}

func (g *Game) checkMove(p mines.Position) error {
	if g.status.Over() {
		return ErrGameOver
	}
	if !g.board.IsValidPosition(p) {
		return fmt.Errorf("%w (%s)", ErrOutOfBounds, p)
	}
	if g.board.IsCellRevealed(p) {
		return ErrAlreadyRevealed
	}
	return nil
}

// Open reveals the cell at p.
func (g *Game) Open(p mines.Position) error {
	if err := g.checkMove(p); err != nil {
		return err
	}
	if g.board.IsCellFlagged(p) {
		return ErrCellFlagged
	}
	g.board.Reveal(p)
	g.settle(p)
	return nil
}

// Flag toggles the flag at p.
func (g *Game) Flag(p mines.Position) error {
	if err := g.checkMove(p); err != nil {
		return err
	}
	g.board.ToggleFlag(p)
	return nil
}

// Chord opens every hidden, unflagged neighbour of a revealed number once
// the number of flags around it matches. It is a no-op otherwise.
func (g *Game) Chord(p mines.Position) error {
	if g.status.Over() {
		return ErrGameOver
	}
	if !g.board.IsValidPosition(p) {
		return fmt.Errorf("%w (%s)", ErrOutOfBounds, p)
	}
	if !g.board.IsCellRevealed(p) {
		return ErrNotRevealed
	}
	want := g.board.Cell(p).AdjacentMines()
	if want == 0 {
		return nil
	}

	flags := 0
	var hidden []mines.Position
	for q := range g.board.Block(p) {
		switch {
		case q == p, g.board.IsCellRevealed(q):
			// a cascade may have opened a flagged cell, its flag no
			// longer marks a mine
		case g.board.IsCellFlagged(q):
			flags++
		default:
			hidden = append(hidden, q)
		}
	}
	if flags != want {
		return nil
	}

	for _, q := range hidden {
		// an earlier cascade may already have opened q
		if g.board.IsCellRevealed(q) {
			continue
		}
		g.board.Reveal(q)
		g.settle(q)
		if g.status.Over() {
			return nil
		}
	}
	return nil
}

// Forfeit ends a running game as lost.
func (g *Game) Forfeit() {
	if !g.status.Over() {
		g.status = Lost
		Log.Debug("game forfeited", slog.String("params", g.params.String()))
	}
	g.board.RevealAll()
}

// settle updates the status after p was revealed.
func (g *Game) settle(p mines.Position) {
	switch {
	case g.board.IsCellMine(p):
		g.status = Lost
		g.exploded = &p
	case g.board.IsWon():
		g.status = Won
	default:
		return
	}
	g.board.RevealAll()
	Log.Debug("game over",
		slog.String("status", g.status.String()),
		slog.String("params", g.params.String()),
		slog.Int("revealed", g.board.RevealedCount()),
	)
}

// Grid returns the player's view. Once the game is over flags are marked
// correct or wrong and every mine is shown.
func (g *Game) Grid() Grid {
	grid := make(Grid, 0, g.board.Area())
	for y := range g.board.Height() {
		for x := range g.board.Width() {
			grid = append(grid, g.cellState(mines.Position{X: x, Y: y}))
		}
	}
	return grid
}

func (g *Game) cellState(p mines.Position) CellState {
	c := g.board.Cell(p)
	over := g.status.Over()
	switch {
	case g.exploded != nil && *g.exploded == p:
		return ExplodedMine
	case over && c.IsFlagged() && c.IsMine():
		return CorrectFlag
	case over && c.IsFlagged():
		return WrongFlag
	case c.IsRevealed() && c.IsMine():
		return UnflaggedMine
	case c.IsRevealed():
		return CellState(c.AdjacentMines())
	case c.IsFlagged():
		return Flagged
	default:
		return Unknown
	}
}

type View struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	MineCount int    `json:"mine_count"`
	Revealed  int    `json:"revealed"`
	Flagged   int    `json:"flagged"`
	Status    Status `json:"status"`
	Grid      Grid   `json:"grid"`
}

func (g *Game) View() View {
	return View{
		Width:     g.board.Width(),
		Height:    g.board.Height(),
		MineCount: g.board.MineCount(),
		Revealed:  g.board.RevealedCount(),
		Flagged:   g.board.FlaggedCount(),
		Status:    g.status,
		Grid:      g.Grid(),
	}
}
