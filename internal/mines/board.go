package mines

import (
	"fmt"
	"iter"
)

// Board owns a dense row-major grid of cells along with the counters used
// to decide the outcome of a game. A Board is not safe for concurrent use.
type Board struct {
	width, height int
	cells         []Cell

	mineCount     int
	revealedCount int
	flaggedCount  int
}

func NewBoard(width, height int) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w (width = %d, height = %d)",
			ErrBadDimensions, width, height)
	}
	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	return b, nil
}

func (b *Board) Width() int         { return b.width }
func (b *Board) Height() int        { return b.height }
func (b *Board) Area() int          { return b.width * b.height }
func (b *Board) MineCount() int     { return b.mineCount }
func (b *Board) RevealedCount() int { return b.revealedCount }
func (b *Board) FlaggedCount() int  { return b.flaggedCount }

func (b *Board) IsValidPosition(p Position) bool {
	return 0 <= p.X && p.X < b.width && 0 <= p.Y && p.Y < b.height
}

func (b *Board) index(p Position) int {
	return p.Y*b.width + p.X
}

// cell panics on positions outside the board.
func (b *Board) cell(p Position) *Cell {
	return &b.cells[b.index(p)]
}

// Cell returns a copy of the cell at p.
func (b *Board) Cell(p Position) Cell {
	return *b.cell(p)
}

func (b *Board) IsCellMine(p Position) bool     { return b.cell(p).IsMine() }
func (b *Board) IsCellRevealed(p Position) bool { return b.cell(p).IsRevealed() }
func (b *Board) IsCellFlagged(p Position) bool  { return b.cell(p).IsFlagged() }

// Block yields every in-bounds position of the 3x3 block centred on p,
// p included, row by row.
func (b *Board) Block(p Position) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for y := max(0, p.Y-1); y <= min(b.height-1, p.Y+1); y++ {
			for x := max(0, p.X-1); x <= min(b.width-1, p.X+1); x++ {
				if !yield(Position{x, y}) {
					return
				}
			}
		}
	}
}

// PlaceMine reports false when p already holds a mine. Every cell of the
// block around p, the mine itself included, counts the new mine.
func (b *Board) PlaceMine(p Position) bool {
	if b.cell(p).IsMine() {
		return false
	}
	for q := range b.Block(p) {
		b.cell(q).IncrementAdjacency()
	}
	b.cell(p).MarkAsMine()
	b.mineCount++
	return true
}

// SpawnMines places count more mines at positions drawn from src, drawing
// again whenever a position is already mined. At least one cell must stay
// free of mines, otherwise nothing is placed and ErrTooManyMines is
// returned.
func (b *Board) SpawnMines(count int, src PositionSource) error {
	if count < 0 {
		return fmt.Errorf("%w (count = %d)", ErrNegativeMineCount, count)
	}
	if total := b.mineCount + count; total >= b.Area() {
		return fmt.Errorf("%w (mines = %d, cells = %d)",
			ErrTooManyMines, total, b.Area())
	}
	for placed := 0; placed < count; {
		if b.PlaceMine(src.Next(b.width, b.height)) {
			placed++
		}
	}
	return nil
}

// ToggleFlag flips the flag at p and keeps FlaggedCount in step. Flagging a
// revealed cell is not prevented here.
func (b *Board) ToggleFlag(p Position) {
	c := b.cell(p)
	c.ToggleFlag()
	if c.IsFlagged() {
		b.flaggedCount++
	} else {
		b.flaggedCount--
	}
}

func (b *Board) IsWon() bool {
	return b.revealedCount+b.mineCount == b.Area()
}

// RevealAll exposes every cell for the final display. Counters are left
// alone.
func (b *Board) RevealAll() {
	for i := range b.cells {
		b.cells[i].Reveal()
	}
}
