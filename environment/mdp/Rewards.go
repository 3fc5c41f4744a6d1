package mdp

import (
	"fmt"

	"github.com/samuelfneumann/gridmdp/environment/gridworld"
	"gonum.org/v1/gonum/mat"
)

// Rewards maps cell types to the reward for entering a cell of that
// type
type Rewards map[gridworld.Cell]float64

// DefaultRewards returns the default reward for each cell type. Start
// cells have no entry and are rewarded as Frozen cells.
func DefaultRewards() Rewards {
	return Rewards{
		gridworld.Frozen: 0,
		gridworld.Hole:   0,
		gridworld.Coin:   0.5,
		gridworld.Goal:   1,
	}
}

// withDefaults returns the default rewards overridden by r
func (r Rewards) withDefaults() (Rewards, error) {
	merged := DefaultRewards()
	for cell, reward := range r {
		if _, err := gridworld.ParseCell(rune(cell)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRewards, err)
		}
		merged[cell] = reward
	}
	return merged, nil
}

// Of returns the reward for entering a cell of type c
func (r Rewards) Of(c gridworld.Cell) float64 {
	if reward, ok := r[c]; ok {
		return reward
	}
	return r[gridworld.Frozen]
}

// Vector returns the reward vector R of a gridworld, where R[s] is the
// reward for entering state s
func (r Rewards) Vector(g *gridworld.Grid) *mat.VecDense {
	rewards := make([]float64, g.NumStates())
	for s := range rewards {
		rewards[s] = r.Of(g.Cell(s))
	}
	return mat.NewVecDense(len(rewards), rewards)
}
