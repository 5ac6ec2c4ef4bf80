// Package policy projects a learned value table onto the board as text: one
// symbol per cell, the currently best move winning.
package policy

import (
	"strings"

	omwmath "github.com/sw965/omw/math"
	"gonum.org/v1/gonum/floats"

	"github.com/sw965/windy/board"
	"github.com/sw965/windy/grid"
	"github.com/sw965/windy/qtable"
	"github.com/sw965/windy/sarsa"
)

const (
	GoalSymbol    = "@"
	UnknownSymbol = "*"

	// sentinel sits below every estimate the trainer can produce; a cell whose
	// best lookup is still the sentinel has never been estimated.
	sentinel = -1.0
)

// Render draws the board row by row, highest y first, cells space-separated.
// Rendering is a read-only projection: the table is never written, so
// inspecting a policy cannot alter learned estimates.
func Render(b board.Board, table qtable.Table, moveSymbols sarsa.MoveSymbols, goal grid.Position) (string, error) {
	if len(moveSymbols) == 0 {
		return "", sarsa.ErrNoMoves
	}

	maxX, maxY := b.Dimensions()
	var sb strings.Builder
	for y := maxY; y >= 0; y-- {
		if y != maxY {
			sb.WriteString("\n")
		}
		for x := 0; x <= maxX; x++ {
			if x != 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(cellSymbol(table, moveSymbols, grid.Position{X: x, Y: y}, goal))
		}
	}
	return sb.String(), nil
}

func cellSymbol(table qtable.Table, moveSymbols sarsa.MoveSymbols, pos, goal grid.Position) string {
	if pos == goal {
		return GoalSymbol
	}

	vals := make([]float64, len(moveSymbols))
	for i, ms := range moveSymbols {
		vals[i] = table.Get(qtable.StateMove{Pos: pos, Move: ms.Move}, sentinel)
	}
	if omwmath.Max(vals...) == sentinel {
		return UnknownSymbol
	}
	return moveSymbols[floats.MaxIdx(vals)].Symbol
}
