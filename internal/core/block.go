// Package core provides the value types shared by the spiral grid: lattice
// positions, colors and blocks, plus the pure layout helpers used by renderers.
// It contains no external dependencies (especially no Bubble Tea or HTTP) to
// keep grid logic pure and testable.
package core

import "fmt"

// DefaultCellSize is the side length of one block in pixels.
const DefaultCellSize = 54

// Position identifies a lattice cell. Both coordinates are non-negative.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pos is a convenience constructor for Position.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Valid reports whether both coordinates are non-negative.
func (p Position) Valid() bool {
	return p.X >= 0 && p.Y >= 0
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Block is one placed cell. ID is opaque and assigned by the blocks store;
// it is empty until the store has confirmed the block.
type Block struct {
	ID       string   `json:"id,omitempty"`
	Position Position `json:"position"`
	Color    Color    `json:"color"`
}

// String formats the block the way the grid tooltip shows it.
func (b Block) String() string {
	return fmt.Sprintf("Pos: (%d, %d) Color: %s", b.Position.X, b.Position.Y, b.Color)
}

// Last returns the most recently placed block and whether there is one.
func Last(blocks []Block) (Block, bool) {
	if len(blocks) == 0 {
		return Block{}, false
	}
	return blocks[len(blocks)-1], true
}

// Bounds returns the maximum x and y over all blocks.
// Returns (0, 0) for an empty slice.
func Bounds(blocks []Block) (maxX, maxY int) {
	for _, b := range blocks {
		maxX = max(maxX, b.Position.X)
		maxY = max(maxY, b.Position.Y)
	}
	return maxX, maxY
}

// PixelOffset maps a position to the top-left pixel of its block.
// Cells are one-based so the origin block sits one cell in from the edge.
func PixelOffset(p Position, cellSize int) (left, top int) {
	return (p.X + 1) * cellSize, (p.Y + 1) * cellSize
}

// CellRect returns the screen rectangle a block occupies when each lattice
// cell is w columns wide and h rows tall. Same one-based layout as PixelOffset.
func CellRect(p Position, w, h int) Rect {
	return NewRect((p.X+1)*w, (p.Y+1)*h, w, h)
}
