package qtable_test

import (
	"testing"

	"github.com/sw965/windy/grid"
	"github.com/sw965/windy/qtable"
)

func TestGetOrInit(t *testing.T) {
	table := qtable.New()
	k := qtable.StateMove{Pos: grid.Position{X: 1, Y: 3}, Move: grid.Move{DX: 1}}

	if got := table.GetOrInit(k, 1.0); got != 1.0 {
		t.Errorf("first lookup = %v, expected the default 1.0", got)
	}
	if got := table.GetOrInit(k, 99.0); got != 1.0 {
		t.Errorf("second lookup = %v, expected the value materialized first", got)
	}
	if len(table) != 1 {
		t.Errorf("table size = %d, expected 1", len(table))
	}

	table[k] = 42.0
	if got := table.GetOrInit(k, 1.0); got != 42.0 {
		t.Errorf("lookup after write = %v, expected 42.0", got)
	}
}

func TestGetDoesNotMutate(t *testing.T) {
	table := qtable.New()
	k := qtable.StateMove{Pos: grid.Position{X: 0, Y: 0}, Move: grid.Move{DY: 1}}

	if got := table.Get(k, -1.0); got != -1.0 {
		t.Errorf("absent lookup = %v, expected the fallback -1.0", got)
	}
	if len(table) != 0 {
		t.Errorf("Get materialized an entry, table size = %d", len(table))
	}

	table[k] = 7.0
	if got := table.Get(k, -1.0); got != 7.0 {
		t.Errorf("present lookup = %v, expected 7.0", got)
	}
}
