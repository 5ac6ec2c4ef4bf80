// Package sarsa trains an agent on a windy gridworld board with on-policy
// temporal-difference control. The behavior policy and the bootstrap target
// use the same epsilon-greedy rule over the same value table.
package sarsa

import (
	"errors"
	"math/rand"

	omwrand "github.com/sw965/omw/math/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/sw965/windy/board"
	"github.com/sw965/windy/grid"
	"github.com/sw965/windy/qtable"
)

const (
	// GoalReward is granted on arriving at the goal position.
	GoalReward = 100.0

	// DefaultActionValue seeds unseen state-action pairs. It should be read
	// relative to GoalReward: small enough that optimistic initialization
	// stays mild.
	DefaultActionValue = 1.0
)

var (
	ErrNoMoves = errors.New("sarsa: allowed move set is empty")
	ErrNilRand = errors.New("sarsa: Rand is nil")
)

// UpdateQ returns the new estimate for a state-action value after observing
// reward and the bootstrapped value of the successor pair.
func UpdateQ(q, nextQ, reward, lr, discountRate float64) float64 {
	qRatio := 1.0 - lr
	newQ := reward + discountRate*nextQ
	return (qRatio * q) + (lr * newQ)
}

// Trainer runs a fixed budget of environment steps. The budget counts steps,
// not episodes: reaching the goal resets the agent to Start and training
// continues until the budget is spent.
type Trainer struct {
	Board       board.Board
	Start       grid.Position
	Goal        grid.Position
	TotalSteps  int
	Alpha       float64
	Gamma       float64
	Epsilon     float64
	MoveSymbols MoveSymbols
	Rand        *rand.Rand
}

// Result is what a finished run hands over: the learned table, read-only from
// here on, plus per-episode accounting.
type Result struct {
	Table        qtable.Table
	Episodes     int
	EpisodeSteps []int
}

func (t Trainer) Validate() error {
	if len(t.MoveSymbols) == 0 {
		return ErrNoMoves
	}
	if t.Rand == nil {
		return ErrNilRand
	}
	if !t.Board.Contains(t.Start) {
		return board.ErrInvalidPosition
	}
	if !t.Board.Contains(t.Goal) {
		return board.ErrInvalidPosition
	}
	return nil
}

// Run trains until the step budget is exhausted. Exploratory steps draw a
// random move but do not transition or update; only greedy steps move the
// agent and adjust the table.
func (t Trainer) Run() (Result, error) {
	if err := t.Validate(); err != nil {
		return Result{}, err
	}

	moves := t.MoveSymbols.Moves()
	table := qtable.New()
	result := Result{Table: table}

	pos := t.Start
	stepsInEpisode := 0

	for step := 0; step < t.TotalSteps; step++ {
		stepsInEpisode++

		if t.Rand.Float64() < t.Epsilon {
			omwrand.Choice(moves, t.Rand)
			continue
		}

		chosen := greedyMove(table, pos, moves)
		newPos, err := t.Board.Move(pos, chosen)
		if err != nil {
			return Result{}, err
		}

		// Bootstrap from the pair the policy itself would pick next.
		nextMove := t.policyMove(table, newPos, moves)
		nextQ := table.GetOrInit(qtable.StateMove{Pos: newPos, Move: nextMove}, DefaultActionValue)

		reward := 0.0
		if newPos == t.Goal {
			reward = GoalReward
		}

		k := qtable.StateMove{Pos: pos, Move: chosen}
		table[k] = UpdateQ(table.GetOrInit(k, DefaultActionValue), nextQ, reward, t.Alpha, t.Gamma)

		if newPos == t.Goal {
			result.Episodes++
			result.EpisodeSteps = append(result.EpisodeSteps, stepsInEpisode)
			stepsInEpisode = 0
			pos = t.Start
		} else {
			pos = newPos
		}
	}
	return result, nil
}

// policyMove is the epsilon-greedy behavior policy.
func (t Trainer) policyMove(table qtable.Table, pos grid.Position, moves []grid.Move) grid.Move {
	if t.Rand.Float64() < t.Epsilon {
		return omwrand.Choice(moves, t.Rand)
	}
	return greedyMove(table, pos, moves)
}

// greedyMove returns the highest-valued move at pos, materializing defaults
// for pairs seen for the first time. Ties go to the earliest move.
func greedyMove(table qtable.Table, pos grid.Position, moves []grid.Move) grid.Move {
	vals := make([]float64, len(moves))
	for i, m := range moves {
		vals[i] = table.GetOrInit(qtable.StateMove{Pos: pos, Move: m}, DefaultActionValue)
	}
	return moves[floats.MaxIdx(vals)]
}
