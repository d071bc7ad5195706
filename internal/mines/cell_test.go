package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellDefaults(t *testing.T) {
	var c Cell
	assert.False(t, c.IsMine())
	assert.False(t, c.IsRevealed())
	assert.False(t, c.IsFlagged())
	assert.Equal(t, 0, c.AdjacentMines())
}

func TestCellMutations(t *testing.T) {
	var c Cell

	c.MarkAsMine()
	c.MarkAsMine()
	assert.True(t, c.IsMine())

	c.IncrementAdjacency()
	c.IncrementAdjacency()
	assert.Equal(t, 2, c.AdjacentMines())

	c.ToggleFlag()
	assert.True(t, c.IsFlagged())
	c.ToggleFlag()
	assert.False(t, c.IsFlagged())

	c.Reveal()
	c.Reveal()
	assert.True(t, c.IsRevealed())
}
