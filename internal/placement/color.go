package placement

import (
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/blockspiral/internal/core"
)

// ColorSource draws block colors.
type ColorSource interface {
	Next() core.Color
}

// RandomColors draws uniformly distributed 24-bit colors.
type RandomColors struct {
	rng *rand.Rand
}

// NewRandomColors creates a color source. Seed 0 uses the current time.
func NewRandomColors(seed int64) *RandomColors {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomColors{
		rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
}

// Next returns a color in [#000000, #ffffff].
func (r *RandomColors) Next() core.Color {
	return core.Color(r.rng.Uint32N(uint32(core.MaxColor) + 1))
}

// PickColor draws from src until the color differs from the last block's.
// With no previous block the first draw is used. Only consecutive blocks are
// kept apart; colors may repeat elsewhere on the grid.
func PickColor(src ColorSource, blocks []core.Block) core.Color {
	c := src.Next()
	last, ok := core.Last(blocks)
	if !ok {
		return c
	}
	for c == last.Color {
		c = src.Next()
	}
	return c
}
