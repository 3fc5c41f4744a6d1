// Package random implements an agent which selects actions uniformly
// at random
package random

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gridmdp/environment/gridworld"
	"github.com/samuelfneumann/gridmdp/timestep"
	"gonum.org/v1/gonum/stat/distuv"
)

// Random selects each of the gridworld actions with equal probability
type Random struct {
	seed uint64
	rand distuv.Categorical
}

// New returns a new Random agent
func New(seed uint64) *Random {
	weights := make([]float64, gridworld.NumActions)
	for i := range weights {
		weights[i] = 1.0 / float64(len(weights))
	}

	source := rand.NewSource(seed)
	return &Random{seed, distuv.NewCategorical(weights, source)}
}

// SelectAction returns a random action, ignoring the timestep
func (r *Random) SelectAction(timestep.TimeStep) gridworld.Action {
	return gridworld.Action(r.rand.Rand())
}
