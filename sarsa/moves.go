package sarsa

import "github.com/sw965/windy/grid"

// MoveSymbol pairs an allowed move with the single character that represents
// it in a rendered policy.
type MoveSymbol struct {
	Move   grid.Move
	Symbol string
}

// MoveSymbols is an ordered action set. The order is significant: whenever
// estimated values tie, the earliest entry wins, which keeps greedy selection
// deterministic.
type MoveSymbols []MoveSymbol

// Moves returns the moves in set order.
func (ms MoveSymbols) Moves() []grid.Move {
	moves := make([]grid.Move, len(ms))
	for i, m := range ms {
		moves[i] = m.Move
	}
	return moves
}

// StandardMoveSymbols is the four-direction action set.
func StandardMoveSymbols() MoveSymbols {
	return MoveSymbols{
		{Move: grid.Move{DX: -1, DY: 0}, Symbol: "L"},
		{Move: grid.Move{DX: 1, DY: 0}, Symbol: "R"},
		{Move: grid.Move{DX: 0, DY: 1}, Symbol: "U"},
		{Move: grid.Move{DX: 0, DY: -1}, Symbol: "D"},
	}
}

// DiagonalMoveSymbols extends the standard set with the four diagonals,
// rendered as digits to keep symbols single-character.
func DiagonalMoveSymbols() MoveSymbols {
	return MoveSymbols{
		{Move: grid.Move{DX: 1, DY: 0}, Symbol: "R"},
		{Move: grid.Move{DX: -1, DY: 0}, Symbol: "L"},
		{Move: grid.Move{DX: 0, DY: 1}, Symbol: "U"},
		{Move: grid.Move{DX: 0, DY: -1}, Symbol: "D"},
		{Move: grid.Move{DX: 1, DY: 1}, Symbol: "3"},
		{Move: grid.Move{DX: 1, DY: -1}, Symbol: "9"},
		{Move: grid.Move{DX: -1, DY: 1}, Symbol: "1"},
		{Move: grid.Move{DX: -1, DY: -1}, Symbol: "7"},
	}
}
