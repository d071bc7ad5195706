package mines

import "errors"

var (
	ErrBadDimensions     = errors.New("board dimensions must be positive")
	ErrNegativeMineCount = errors.New("mine count must not be negative")
	ErrTooManyMines      = errors.New("too many mines for board")
)
