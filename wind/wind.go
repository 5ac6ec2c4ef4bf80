// Package wind models the lateral force blowing across a gridworld board.
package wind

import "github.com/sw965/windy/grid"

// Speeds maps a single coordinate value to a wind speed. Absent entries mean
// calm, so any integer coordinate is a valid lookup.
type Speeds map[int]int

// Blower reports the extra move the wind contributes at a position. It must be
// a pure function of the position.
type Blower interface {
	Blow(grid.Position) grid.Move
}

// South blows toward +y with a strength that depends on the x coordinate.
type South struct {
	Speeds Speeds
}

func (w South) Blow(pos grid.Position) grid.Move {
	return grid.Move{DY: w.Speeds[pos.X]}
}

// West blows toward +x with a strength that depends on the y coordinate.
type West struct {
	Speeds Speeds
}

func (w West) Blow(pos grid.Position) grid.Move {
	return grid.Move{DX: w.Speeds[pos.Y]}
}
