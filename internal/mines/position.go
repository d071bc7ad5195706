package mines

import "fmt"

// Position is a zero-based (column, row) pair.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

func (p Position) add(dx, dy int) Position {
	return Position{p.X + dx, p.Y + dy}
}
