package mines

// Cell is one square of the board. The zero value is an empty, hidden,
// unflagged cell.
type Cell struct {
	mine          bool
	revealed      bool
	flagged       bool
	adjacentMines int
}

func (c *Cell) MarkAsMine() {
	c.mine = true
}

// Reveal is one-way: nothing hides a cell again.
func (c *Cell) Reveal() {
	c.revealed = true
}

// ToggleFlag does not look at the revealed state.
func (c *Cell) ToggleFlag() {
	c.flagged = !c.flagged
}

func (c *Cell) IncrementAdjacency() {
	c.adjacentMines++
}

func (c Cell) IsMine() bool       { return c.mine }
func (c Cell) IsRevealed() bool   { return c.revealed }
func (c Cell) IsFlagged() bool    { return c.flagged }
func (c Cell) AdjacentMines() int { return c.adjacentMines }
