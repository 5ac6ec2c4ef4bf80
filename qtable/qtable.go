// Package qtable stores estimated state-action values for a gridworld agent.
package qtable

import "github.com/sw965/windy/grid"

// StateMove keys the table by a (position, move) pair.
type StateMove struct {
	Pos  grid.Position
	Move grid.Move
}

// Table maps state-action pairs to estimated values. Entries appear lazily on
// first reference and are never removed, so the table stays sparse: only pairs
// the agent has actually considered take up space.
type Table map[StateMove]float64

func New() Table {
	return Table{}
}

// GetOrInit returns the value for k. If k is absent it is first inserted with
// the value def, so a later read observes the same estimate.
func (t Table) GetOrInit(k StateMove, def float64) float64 {
	v, ok := t[k]
	if !ok {
		t[k] = def
		v = def
	}
	return v
}

// Get returns the value for k, or fallback if k has never been estimated.
// The table is not modified either way.
func (t Table) Get(k StateMove, fallback float64) float64 {
	if v, ok := t[k]; ok {
		return v
	}
	return fallback
}
