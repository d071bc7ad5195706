package game

import "errors"

var (
	ErrBadParams       = errors.New("invalid game params")
	ErrGameOver        = errors.New("the game is over")
	ErrOutOfBounds     = errors.New("coordinate not inside the play space")
	ErrAlreadyRevealed = errors.New("that cell is already revealed")
	ErrCellFlagged     = errors.New("you need to un-flag that cell first")
	ErrNotRevealed     = errors.New("only revealed cells can be chorded")
)
