package mdp

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/gridmdp/environment/gridworld"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

// Tolerance is the largest distance from 1 that a row of a transition
// tensor may sum to
const Tolerance float64 = 1e-9

// DefaultSlipProb is the slip probability used by slippery MDPs when
// none is given. It splits the probability mass evenly between the
// intended action and its two neighbours, as the classic slippery
// FrozenLake does. This differs from the configurable slippery lake,
// whose default of 0.3334 keeps about 2/3 of the mass on the intended
// action; pass SlipProb explicitly to reproduce that split.
const DefaultSlipProb float64 = 2.0 / 3.0

// Transitions is the transition tensor T of an MDP, where T[s][a][n] is
// the probability of entering state n after taking action a in state s.
//
// The tensor is stored as a single flat slice indexed by
// (s*actions + a)*states + n. Transitions are immutable once built.
type Transitions struct {
	states, actions int
	data            []float64
}

// BuildTransitions builds the transition tensor of a gridworld.
//
// If slippery is false, each action moves the agent to the clipped cell
// in its direction with probability 1. If slippery is true, the
// intended move happens with probability 1 - slipProb and each of the
// action's two cyclic neighbours happens with probability slipProb / 2.
// When two of these moves lead to the same cell, their probabilities
// are summed.
func BuildTransitions(g *gridworld.Grid, slippery bool,
	slipProb float64) (*Transitions, error) {
	if g == nil {
		return nil, &Error{"buildTransitions", ErrGrid}
	}
	if slippery {
		if err := validSlipProb(slipProb); err != nil {
			return nil, &Error{"buildTransitions", err}
		}
	}

	states := g.NumStates()
	t := &Transitions{
		states:  states,
		actions: gridworld.NumActions,
		data:    make([]float64, states*gridworld.NumActions*states),
	}

	for s := 0; s < states; s++ {
		for _, a := range gridworld.Actions() {
			row := t.row(s, a)
			if !slippery {
				row[g.MoveState(s, a)] = 1
				continue
			}

			prev, next := a.Neighbours()
			row[g.MoveState(s, a)] += 1 - slipProb
			row[g.MoveState(s, prev)] += slipProb / 2
			row[g.MoveState(s, next)] += slipProb / 2
		}
	}

	if err := t.Check(); err != nil {
		return nil, &Error{"buildTransitions", err}
	}
	return t, nil
}

// validSlipProb returns an error if p is not a probability
func validSlipProb(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: have %v", ErrSlipProb, p)
	}
	return nil
}

// Check verifies that every row T[s][a] is a probability distribution
func (t *Transitions) Check() error {
	for s := 0; s < t.states; s++ {
		for a := 0; a < t.actions; a++ {
			row := t.row(s, gridworld.Action(a))
			if lowest := floats.Min(row); lowest < 0 {
				return fmt.Errorf("%w: T[%d][%d] has negative entry %v",
					ErrNotStochastic, s, a, lowest)
			}
			if sum := floats.Sum(row); math.Abs(sum-1) > Tolerance {
				return fmt.Errorf("%w: T[%d][%d] sums to %v",
					ErrNotStochastic, s, a, sum)
			}
		}
	}
	return nil
}

// Dims returns the number of states and actions of the tensor
func (t *Transitions) Dims() (states, actions int) {
	return t.states, t.actions
}

// Prob returns T[s][a][n]
func (t *Transitions) Prob(s int, a gridworld.Action, n int) float64 {
	t.checkIndex(s, a)
	if n < 0 || n >= t.states {
		panic(fmt.Sprintf("prob: next state %d out of range [0, %d)", n,
			t.states))
	}
	return t.data[t.offset(s, a)+n]
}

// Row returns a copy of the distribution T[s][a] over next states
func (t *Transitions) Row(s int, a gridworld.Action) []float64 {
	t.checkIndex(s, a)
	row := make([]float64, t.states)
	copy(row, t.row(s, a))
	return row
}

// Successors returns the next states reachable with non-zero
// probability from taking action a in state s, in increasing order
func (t *Transitions) Successors(s int, a gridworld.Action) []int {
	t.checkIndex(s, a)
	var next []int
	for n, p := range t.row(s, a) {
		if p > 0 {
			next = append(next, n)
		}
	}
	return next
}

// Matrix returns a copy of the transition matrix of action a, whose
// element (s, n) is T[s][a][n]
func (t *Transitions) Matrix(a gridworld.Action) *mat.Dense {
	if !a.Valid() {
		panic(fmt.Sprintf("matrix: no such action %d", int(a)))
	}
	m := mat.NewDense(t.states, t.states, nil)
	for s := 0; s < t.states; s++ {
		m.SetRow(s, t.row(s, a))
	}
	return m
}

// Tensor returns a copy of the transitions as a tensor of shape
// (states, actions, states)
func (t *Transitions) Tensor() *tensor.Dense {
	backing := make([]float64, len(t.data))
	copy(backing, t.data)

	return tensor.New(
		tensor.WithShape(t.states, t.actions, t.states),
		tensor.WithBacking(backing),
	)
}

// row returns the underlying slice holding T[s][a]
func (t *Transitions) row(s int, a gridworld.Action) []float64 {
	offset := t.offset(s, a)
	return t.data[offset : offset+t.states]
}

func (t *Transitions) offset(s int, a gridworld.Action) int {
	return (s*t.actions + int(a)) * t.states
}

func (t *Transitions) checkIndex(s int, a gridworld.Action) {
	if s < 0 || s >= t.states {
		panic(fmt.Sprintf("state %d out of range [0, %d)", s, t.states))
	}
	if !a.Valid() {
		panic(fmt.Sprintf("no such action %d", int(a)))
	}
}
