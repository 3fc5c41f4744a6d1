package environment

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// SingleStart always starts episodes in the same state
type SingleStart int

// Start returns the starting state
func (s SingleStart) Start() int {
	return int(s)
}

// States returns the single starting state
func (s SingleStart) States() []int {
	return []int{int(s)}
}

// CategoricalStarter samples starting states uniformly from a fixed set
// of candidate states
type CategoricalStarter struct {
	states []int
	rand   distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter sampling
// uniformly from states
func NewCategoricalStarter(states []int, seed uint64) (*CategoricalStarter,
	error) {
	if len(states) == 0 {
		return nil, fmt.Errorf("newCategoricalStarter: no starting states")
	}

	// Create the weights for the uniform categorical distribution
	weights := make([]float64, len(states))
	for i := range weights {
		weights[i] = 1.0 / float64(len(weights))
	}

	candidates := make([]int, len(states))
	copy(candidates, states)

	source := rand.NewSource(seed)
	return &CategoricalStarter{
		states: candidates,
		rand:   distuv.NewCategorical(weights, source),
	}, nil
}

// Start returns a starting state
func (c *CategoricalStarter) Start() int {
	return c.states[int(c.rand.Rand())]
}

// States returns a copy of the candidate starting states
func (c *CategoricalStarter) States() []int {
	states := make([]int, len(c.states))
	copy(states, c.states)
	return states
}
