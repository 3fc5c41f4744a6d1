// Package agent defines the interface of agents acting in gridworld
// MDPs. Learning algorithms live outside of this module; agents here
// only select actions.
package agent

import (
	"github.com/samuelfneumann/gridmdp/environment/gridworld"
	"github.com/samuelfneumann/gridmdp/timestep"
)

// Agent selects an action to take after each timestep
type Agent interface {
	SelectAction(t timestep.TimeStep) gridworld.Action
}

// Table is a deterministic policy which maps each state index to the
// action taken in that state. States past the end of the table take
// Left.
type Table []gridworld.Action

// SelectAction returns the action stored for the timestep's state
func (t Table) SelectAction(step timestep.TimeStep) gridworld.Action {
	if step.State < 0 || step.State >= len(t) {
		return gridworld.Left
	}
	return t[step.State]
}
