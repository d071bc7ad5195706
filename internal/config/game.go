package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vancomm/sweeper/internal/game"
)

func lookupInt(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	return v, nil
}

// NewGameDefaults reads MINES_WIDTH, MINES_HEIGHT and MINES_COUNT on top of
// the classic 10x10 board with 10 mines.
func NewGameDefaults() (*game.Params, error) {
	params := game.DefaultParams()

	var err error
	if params.Width, err = lookupInt("MINES_WIDTH", params.Width); err != nil {
		return nil, err
	}
	if params.Height, err = lookupInt("MINES_HEIGHT", params.Height); err != nil {
		return nil, err
	}
	if params.MineCount, err = lookupInt("MINES_COUNT", params.MineCount); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &params, nil
}
