package mines

var orthogonal = [4]Position{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Reveal opens the cell at p. A numbered cell (or a mine) opens alone. A cell
// with no adjacent mines opens its whole zero-region together with the
// numbered cells bordering it.
//
// The caller must not reveal a cell that is already revealed: the counter
// would be bumped twice.
func (b *Board) Reveal(p Position) {
	c := b.cell(p)
	if c.AdjacentMines() != 0 {
		c.Reveal()
		b.revealedCount++
		return
	}
	region := b.floodFill(p)
	border := b.revealBorder(region)
	b.revealedCount += len(region) + len(border)
}

// floodFill reveals the zero-region containing start, walking orthogonal
// neighbours breadth first. Cells are marked visited when queued so no cell
// is queued twice.
func (b *Board) floodFill(start Position) []Position {
	visited := make([]bool, len(b.cells))
	visited[b.index(start)] = true
	queue := []Position{start}

	var region []Position
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		b.cell(p).Reveal()
		region = append(region, p)

		for _, d := range orthogonal {
			n := p.add(d.X, d.Y)
			if !b.IsValidPosition(n) {
				continue
			}
			i := b.index(n)
			if visited[i] || b.cells[i].IsRevealed() || b.cells[i].AdjacentMines() != 0 {
				continue
			}
			visited[i] = true
			queue = append(queue, n)
		}
	}
	return region
}

// revealBorder reveals the hidden numbered cells around every member of
// region. A zero cell has no mine in its block, so mines are never reached.
func (b *Board) revealBorder(region []Position) []Position {
	var border []Position
	for _, p := range region {
		for q := range b.Block(p) {
			c := b.cell(q)
			if c.IsRevealed() || c.AdjacentMines() == 0 {
				continue
			}
			c.Reveal()
			border = append(border, q)
		}
	}
	return border
}
