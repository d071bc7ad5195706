package game

import (
	"fmt"
	"strings"
)

type Params struct {
	Width, Height, MineCount int
}

// DefaultParams is the classic 10x10 board with 10 mines.
func DefaultParams() Params {
	return Params{Width: 10, Height: 10, MineCount: 10}
}

// MaxArea bounds the number of cells of a single game.
const MaxArea = 1 << 16

// Validate requires a non-empty board of at most MaxArea cells that keeps at
// least one safe cell.
func (p Params) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("%w: board must be at least 1x1 (have %dx%d)",
			ErrBadParams, p.Width, p.Height)
	}
	// divide first, the product may not fit in an int
	if p.Width > MaxArea/p.Height {
		return fmt.Errorf("%w: board must have at most %d cells (have %dx%d)",
			ErrBadParams, MaxArea, p.Width, p.Height)
	}
	if p.MineCount < 0 || p.MineCount >= p.Width*p.Height {
		return fmt.Errorf("%w: mine count must be in [0, %d) (have %d)",
			ErrBadParams, p.Width*p.Height, p.MineCount)
	}
	return nil
}

// Seed encodes p as "width:height:mines".
func (p Params) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func (p Params) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (Params, error) {
	var p Params
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return Params{}, fmt.Errorf(
			`%w: bad seed (seed = "%s", n = %d, err = %v)`,
			ErrBadParams, seed, n, err,
		)
	}
	return p, p.Validate()
}
