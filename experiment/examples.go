package experiment

// Example1 is the classic setup: a 10x7 board with a wind from the south.
func Example1() Config {
	return Config{
		Width:      10,
		Height:     7,
		Wind:       WindSouth,
		WindSpeeds: map[int]int{3: 1, 4: 1, 5: 1, 6: 2, 7: 2, 8: 1},
		Start:      PositionConfig{X: 1, Y: 3},
		Goal:       PositionConfig{X: 7, Y: 3},
	}
}

// Example2 is an "express-way" wind: a strong push to the east on a single
// y-level.
func Example2() Config {
	return Config{
		Width:      12,
		Height:     7,
		Wind:       WindWest,
		WindSpeeds: map[int]int{1: 4},
		Start:      PositionConfig{X: 1, Y: 3},
		Goal:       PositionConfig{X: 10, Y: 3},
		TotalSteps: 50000,
	}
}

// Example3 is Example1 with diagonal moves available too.
func Example3() Config {
	c := Example1()
	c.TotalSteps = 50000
	c.Moves = []MoveConfig{
		{DX: 1, DY: 0, Symbol: "R"},
		{DX: -1, DY: 0, Symbol: "L"},
		{DX: 0, DY: 1, Symbol: "U"},
		{DX: 0, DY: -1, Symbol: "D"},
		{DX: 1, DY: 1, Symbol: "3"},
		{DX: 1, DY: -1, Symbol: "9"},
		{DX: -1, DY: 1, Symbol: "1"},
		{DX: -1, DY: -1, Symbol: "7"},
	}
	return c
}
