// Package spiral implements the square-ring outward spiral used to place
// blocks on the lattice. The cursor is the last emitted cell plus the current
// ring bound and travel direction, so each step is O(1) and the cursor can be
// rebuilt from a block set without a stored counter.
//
// From the origin the sequence is
//
//	(0,0) (1,0) (1,1) (0,1) (2,0) (2,1) (2,2) (1,2) (0,2) (3,0) ...
//
// Each ring is one cell wider and taller than the last and is entered at the
// top of a new column.
package spiral

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/blockspiral/internal/core"
)

// ErrInvalidDirection is returned by Advance for a direction outside
// {Right, Down, Left}. It signals a programming defect.
var ErrInvalidDirection = errors.New("spiral: invalid direction")

// Direction is the direction of travel that produced the current cell.
type Direction uint8

const (
	Right Direction = iota
	Down
	Left
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Valid reports whether d is one of Right, Down or Left.
func (d Direction) Valid() bool {
	return d <= Left
}

// State is the traversal cursor: the position just placed, the direction
// that produced it and the bounds of the current ring.
type State struct {
	X    int
	Y    int
	Dir  Direction
	MaxX int
	MaxY int
}

// Initial returns the cursor before any block has been advanced from.
func Initial() State {
	return State{X: 0, Y: 0, Dir: Right, MaxX: 1, MaxY: 1}
}

// Position returns the cell the cursor points at.
func (s State) Position() core.Position {
	return core.Pos(s.X, s.Y)
}

// String returns a compact representation for status lines and logs.
func (s State) String() string {
	return fmt.Sprintf("(%d,%d) %s ring %dx%d", s.X, s.Y, s.Dir, s.MaxX, s.MaxY)
}

// Advance returns the cursor for the next cell in spiral order.
func Advance(s State) (State, error) {
	switch s.Dir {
	case Right:
		if s.X < s.MaxX {
			s.X++
			return s, nil
		}
		s.Y++
		s.Dir = Down
		return s, nil

	case Down:
		if s.Y < s.MaxY {
			s.Y++
			return s, nil
		}
		s.X--
		s.Dir = Left
		return s, nil

	case Left:
		if s.X > 0 {
			s.X--
			return s, nil
		}
		// Ring complete: open the next column and grow both bounds.
		next := s.MaxX + 1
		return State{X: next, Y: 0, Dir: Right, MaxX: next, MaxY: next}, nil

	default:
		return s, fmt.Errorf("%w: %s", ErrInvalidDirection, s.Dir)
	}
}

// MustAdvance is like Advance but panics on an invalid direction.
// An invalid cursor can only come from a bug, never from user input or the store.
func MustAdvance(s State) State {
	next, err := Advance(s)
	if err != nil {
		panic(err)
	}
	return next
}

// Sequence returns the first n positions of the spiral, starting at the origin.
func Sequence(n int) []core.Position {
	if n <= 0 {
		return nil
	}
	out := make([]core.Position, 0, n)
	s := Initial()
	out = append(out, s.Position())
	for len(out) < n {
		s = MustAdvance(s)
		out = append(out, s.Position())
	}
	return out
}

// Walk returns the states reached by n successive advances from s.
func Walk(s State, n int) ([]State, error) {
	out := make([]State, 0, max(n, 0))
	for i := 0; i < n; i++ {
		next, err := Advance(s)
		if err != nil {
			return out, err
		}
		out = append(out, next)
		s = next
	}
	return out, nil
}
