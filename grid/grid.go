// Package grid provides the value types of a 2D grid: positions and moves.
// Both are comparable structs, so they work directly as map keys.
package grid

import "fmt"

// Position is a point (x, y) on an unbounded grid. Bounds are the business of
// whoever interprets the position, not of the type itself.
type Position struct {
	X int
	Y int
}

// Shift returns the position reached by applying m on an unbounded grid.
func (p Position) Shift(m Move) Position {
	return Position{X: p.X + m.DX, Y: p.Y + m.DY}
}

func (p Position) String() string {
	return fmt.Sprintf("P(%d,%d)", p.X, p.Y)
}

// Move is a change of position (dx, dy). Moves add together; positions do not.
type Move struct {
	DX int
	DY int
}

// Add composes two moves component-wise.
func (m Move) Add(other Move) Move {
	return Move{DX: m.DX + other.DX, DY: m.DY + other.DY}
}

func (m Move) String() string {
	return fmt.Sprintf("m(%d,%d)", m.DX, m.DY)
}
