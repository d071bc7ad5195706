package mines

import (
	"hash/maphash"
	"math/rand/v2"
)

// PositionSource picks positions for new mines. Next must return a position
// inside a width x height board.
type PositionSource interface {
	Next(width, height int) Position
}

// PositionSourceFunc adapts a plain function to [PositionSource].
type PositionSourceFunc func(width, height int) Position

func (f PositionSourceFunc) Next(width, height int) Position {
	return f(width, height)
}

// RandSource draws uniformly distributed positions.
type RandSource struct {
	rnd *rand.Rand
}

func NewRandSource(rnd *rand.Rand) *RandSource {
	return &RandSource{rnd: rnd}
}

// NewSeededSource returns a reproducible source.
func NewSeededSource(seed uint64) *RandSource {
	return NewRandSource(rand.New(rand.NewPCG(seed, seed)))
}

// NewSource returns a source seeded from the runtime's random hash seed.
func NewSource() *RandSource {
	return NewRandSource(rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	)))
}

func (s *RandSource) Next(width, height int) Position {
	return Position{s.rnd.IntN(width), s.rnd.IntN(height)}
}
