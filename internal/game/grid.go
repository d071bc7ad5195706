package game

import (
	"strconv"
	"strings"
)

type CellState int8

const (
	Unknown       CellState = -2
	Flagged       CellState = -1
	CorrectFlag   CellState = 64 // post-game-over
	ExplodedMine  CellState = 65
	WrongFlag     CellState = 66
	UnflaggedMine CellState = 67
	// 0-8 for an open cell with that many mined neighbours
)

func (s CellState) String() string {
	switch s {
	case Unknown:
		return "*"
	case Flagged, CorrectFlag:
		return "F"
	case ExplodedMine:
		return "X"
	case WrongFlag:
		return "!"
	case UnflaggedMine:
		return "M"
	case 0, 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(s))
	default:
		return "?"
	}
}

// Grid is the player's view of the board in row-major order.
type Grid []CellState

func (g Grid) At(x, y, width int) CellState {
	return g[y*width+x]
}

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(g[y*width+x].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
