// Package placement decides where and in which color the next block goes,
// and keeps the locally observed block list in step with the blocks store.
//
// State changes are pure transitions on a Grid value (Plan, then Commit once
// the store has confirmed). Controller wraps a Grid with a Store and applies
// those transitions only after the store responds.
package placement

import (
	"github.com/vovakirdan/blockspiral/internal/core"
	"github.com/vovakirdan/blockspiral/internal/spiral"
)

// Grid is the client-side view of the placed blocks plus the derived cursor.
// The store is the source of truth; Grid is a cache rebuilt on every load.
type Grid struct {
	Blocks []core.Block
	Cursor spiral.State
}

// EmptyGrid returns the grid for an empty store.
func EmptyGrid() Grid {
	return Grid{Cursor: spiral.Initial()}
}

// Loaded builds a grid from the blocks listed by the store.
func Loaded(blocks []core.Block) Grid {
	owned := make([]core.Block, len(blocks))
	copy(owned, blocks)
	return Grid{Blocks: owned, Cursor: Reconstruct(owned)}
}

// Len returns the number of placed blocks.
func (g Grid) Len() int {
	return len(g.Blocks)
}

// Plan is a candidate placement that has not been confirmed by the store.
type Plan struct {
	Block  core.Block   // block to submit (no ID yet)
	Cursor spiral.State // cursor to adopt once the block is stored
}

// Plan computes the next block without changing the grid.
// The first block always goes to the origin and leaves the cursor where it is.
func (g Grid) Plan(colors ColorSource) Plan {
	cursor := g.Cursor
	pos := core.Pos(0, 0)
	if len(g.Blocks) > 0 {
		cursor = spiral.MustAdvance(g.Cursor)
		pos = cursor.Position()
	}

	return Plan{
		Block: core.Block{
			Position: pos,
			Color:    PickColor(colors, g.Blocks),
		},
		Cursor: cursor,
	}
}

// Commit returns the grid after the store confirmed the planned block.
// saved is the store's echo, which may carry an ID.
func (g Grid) Commit(p Plan, saved core.Block) Grid {
	blocks := make([]core.Block, len(g.Blocks), len(g.Blocks)+1)
	copy(blocks, g.Blocks)
	return Grid{
		Blocks: append(blocks, saved),
		Cursor: p.Cursor,
	}
}

// Preview returns the positions of the next n placements without changing
// the grid.
func (g Grid) Preview(n int) []core.Position {
	if n <= 0 {
		return nil
	}
	out := make([]core.Position, 0, n)
	cursor := g.Cursor
	if len(g.Blocks) == 0 {
		out = append(out, core.Pos(0, 0))
	}
	for len(out) < n {
		cursor = spiral.MustAdvance(cursor)
		out = append(out, cursor.Position())
	}
	return out
}
