// Package wrappers implements wrappers which change what an environment
// reports to its caller
package wrappers

import (
	"github.com/samuelfneumann/gridmdp/environment/gridworld"
	"github.com/samuelfneumann/gridmdp/environment/mdp"
)

// XY reports the states of an MDP as (row, col) grid positions instead
// of state indices
type XY struct {
	*mdp.MDP
}

// NewXY returns a new XY wrapper
func NewXY(m *mdp.MDP) *XY {
	return &XY{m}
}

// Reset starts a new episode and returns the starting position
func (x *XY) Reset() gridworld.Position {
	return x.Grid().PositionOf(x.MDP.Reset())
}

// Step takes one environmental step given some action, returning the
// position the agent moved to
func (x *XY) Step(a gridworld.Action) (gridworld.Position, float64, bool,
	error) {
	state, reward, done, err := x.MDP.Step(a)
	return x.Grid().PositionOf(state), reward, done, err
}

// Position returns the current position of the agent
func (x *XY) Position() gridworld.Position {
	return x.Grid().PositionOf(x.Current())
}
