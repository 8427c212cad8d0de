package placement

import (
	"github.com/vovakirdan/blockspiral/internal/core"
	"github.com/vovakirdan/blockspiral/internal/spiral"
)

// Reconstruct derives the traversal cursor from the blocks the store holds,
// taking the last block (store order) as the cursor position.
//
// When the blocks are exactly a prefix of the spiral, the cursor is the state
// the spiral was in after emitting the last block, so advancing it continues
// the sequence. Any other block set (blocks written by another client, rows
// edited by hand) falls back to inferBounds.
func Reconstruct(blocks []core.Block) spiral.State {
	last, ok := core.Last(blocks)
	if !ok {
		return spiral.Initial()
	}
	if isSpiralPrefix(blocks) {
		return stateAt(last.Position)
	}
	return inferBounds(blocks)
}

// stateAt returns the cursor the spiral holds right after emitting p.
// Ring k is the square [0,k]x[0,k]; it is entered at (k,0) moving right,
// runs down column k, then left along row k.
func stateAt(p core.Position) spiral.State {
	k := max(p.X, p.Y)
	if k == 0 {
		return spiral.Initial()
	}

	s := spiral.State{X: p.X, Y: p.Y, MaxX: k, MaxY: k}
	switch {
	case p.X == k && p.Y == 0:
		s.Dir = spiral.Right
	case p.X == k:
		s.Dir = spiral.Down
	default:
		s.Dir = spiral.Left
	}
	return s
}

// isSpiralPrefix reports whether blocks occupy the first len(blocks) spiral
// cells in order.
func isSpiralPrefix(blocks []core.Block) bool {
	s := spiral.Initial()
	for i, b := range blocks {
		if i > 0 {
			s = spiral.MustAdvance(s)
		}
		if b.Position != s.Position() {
			return false
		}
	}
	return true
}

// inferBounds guesses a cursor from the last block and the bounding box of
// all blocks (floored at 1): right while left of the box edge, then down
// while above it, then left, else right to open a new ring.
func inferBounds(blocks []core.Block) spiral.State {
	last, ok := core.Last(blocks)
	if !ok {
		return spiral.Initial()
	}

	maxX, maxY := core.Bounds(blocks)
	maxX = max(maxX, 1)
	maxY = max(maxY, 1)

	x, y := last.Position.X, last.Position.Y

	var dir spiral.Direction
	switch {
	case x < maxX:
		dir = spiral.Right
	case y < maxY:
		dir = spiral.Down
	case x > 0:
		dir = spiral.Left
	default:
		dir = spiral.Right
	}

	return spiral.State{X: x, Y: y, Dir: dir, MaxX: maxX, MaxY: maxY}
}
