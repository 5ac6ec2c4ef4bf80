// Package board implements the windy gridworld transition model: a bounded
// rectangular grid with walls around it and a wind blowing across it.
package board

import (
	"errors"
	"fmt"

	"github.com/sw965/windy/grid"
	"github.com/sw965/windy/wind"
)

var (
	ErrInvalidPosition = errors.New("position is not on the board")
	ErrInvalidSize     = errors.New("board must be at least 1x1")
	ErrNilBlower       = errors.New("board needs a wind, use a zero-speed one for calm")
)

// Board converts an agent's intended move at a position into the position it
// actually ends up at. Coordinates range over [0, maxX] x [0, maxY]. A Board
// holds no mutable state, so one instance can serve any number of calls.
type Board struct {
	maxX   int
	maxY   int
	blower wind.Blower
}

func New(width, height int, blower wind.Blower) (Board, error) {
	if width < 1 || height < 1 {
		return Board{}, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	if blower == nil {
		return Board{}, ErrNilBlower
	}
	return Board{maxX: width - 1, maxY: height - 1, blower: blower}, nil
}

// Dimensions returns (maxX, maxY): 0 <= x <= maxX, 0 <= y <= maxY.
func (b Board) Dimensions() (int, int) {
	return b.maxX, b.maxY
}

// Contains reports whether pos lies on the board.
func (b Board) Contains(pos grid.Position) bool {
	return pos.X >= 0 && pos.X <= b.maxX && pos.Y >= 0 && pos.Y <= b.maxY
}

// Move applies agentMove plus the wind's contribution to pos and clamps the
// result to the board, axis by axis. The wind is always evaluated at the
// position the agent moves from. An off-board pos is a caller bug and is
// reported as ErrInvalidPosition.
func (b Board) Move(pos grid.Position, agentMove grid.Move) (grid.Position, error) {
	if !b.Contains(pos) {
		return grid.Position{}, fmt.Errorf("%w: %v", ErrInvalidPosition, pos)
	}
	actual := agentMove.Add(b.blower.Blow(pos))
	return b.clamp(pos.Shift(actual)), nil
}

func (b Board) clamp(pos grid.Position) grid.Position {
	return grid.Position{
		X: min(b.maxX, max(0, pos.X)),
		Y: min(b.maxY, max(0, pos.Y)),
	}
}
