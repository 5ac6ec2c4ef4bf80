package wind_test

import (
	"testing"

	"github.com/sw965/windy/grid"
	"github.com/sw965/windy/wind"
)

func TestSouthBlow(t *testing.T) {
	w := wind.South{Speeds: wind.Speeds{3: 1, 6: 2}}

	testCases := []struct {
		pos      grid.Position
		expected grid.Move
	}{
		{grid.Position{X: 3, Y: 0}, grid.Move{DX: 0, DY: 1}},
		{grid.Position{X: 6, Y: 5}, grid.Move{DX: 0, DY: 2}},
		{grid.Position{X: 0, Y: 3}, grid.Move{DX: 0, DY: 0}},
		{grid.Position{X: -7, Y: 100}, grid.Move{DX: 0, DY: 0}},
	}

	for _, tc := range testCases {
		got := w.Blow(tc.pos)
		if got != tc.expected {
			t.Errorf("Blow(%v) = %v, expected %v", tc.pos, got, tc.expected)
		}
	}
}

func TestWestBlow(t *testing.T) {
	w := wind.West{Speeds: wind.Speeds{1: 4}}

	testCases := []struct {
		pos      grid.Position
		expected grid.Move
	}{
		{grid.Position{X: 0, Y: 1}, grid.Move{DX: 4, DY: 0}},
		{grid.Position{X: 9, Y: 1}, grid.Move{DX: 4, DY: 0}},
		{grid.Position{X: 1, Y: 0}, grid.Move{DX: 0, DY: 0}},
	}

	for _, tc := range testCases {
		got := w.Blow(tc.pos)
		if got != tc.expected {
			t.Errorf("Blow(%v) = %v, expected %v", tc.pos, got, tc.expected)
		}
	}
}

func TestBlowIsDeterministic(t *testing.T) {
	blowers := []wind.Blower{
		wind.South{Speeds: wind.Speeds{3: 1, 4: 1, 5: 1, 6: 2, 7: 2, 8: 1}},
		wind.West{Speeds: wind.Speeds{1: 4}},
	}

	for _, b := range blowers {
		for x := -2; x <= 10; x++ {
			for y := -2; y <= 10; y++ {
				pos := grid.Position{X: x, Y: y}
				if first, second := b.Blow(pos), b.Blow(pos); first != second {
					t.Errorf("%T.Blow(%v) not deterministic: %v then %v", b, pos, first, second)
				}
			}
		}
	}
}

func TestNilSpeedsMeanCalm(t *testing.T) {
	if got := (wind.South{}).Blow(grid.Position{X: 4, Y: 4}); got != (grid.Move{}) {
		t.Errorf("nil speed table should yield zero move, got %v", got)
	}
}
