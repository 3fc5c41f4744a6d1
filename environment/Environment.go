// Package environment outlines the interfaces and structs needed to
// implement concrete discrete environments
package environment

import (
	"github.com/samuelfneumann/gridmdp/environment/gridworld"
	"github.com/samuelfneumann/gridmdp/timestep"
)

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() int
}

// Candidates is implemented by Starters which can list every state
// they may start in
type Candidates interface {
	States() []int
}

// Ender determines when episodes should end
type Ender interface {
	End(*timestep.TimeStep) bool
}

// Renderer displays the current state of a gridworld. It is an external
// collaborator: environments hold no rendering state of their own.
type Renderer interface {
	Render(g *gridworld.Grid, state int) error
}

// Environment implements a simulated environment with discrete states
// and actions
type Environment interface {
	Reset() (timestep.TimeStep, error) // Resets between episodes
	Step(action gridworld.Action) (timestep.TimeStep, bool, error)
	CurrentTimeStep() timestep.TimeStep
	ObservationSpec() Spec
	ActionSpec() Spec
	Render() error
	Close() error
}
