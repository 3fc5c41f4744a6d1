package mdp

import (
	"github.com/samuelfneumann/gridmdp/environment"
	"github.com/samuelfneumann/gridmdp/environment/gridworld"
	ts "github.com/samuelfneumann/gridmdp/timestep"
)

// Env adapts an MDP to the environment.Environment interface, packaging
// each transition as a TimeStep. Episodes end when a Hole or Goal is
// entered or, if a step limit is given, after that many steps.
type Env struct {
	mdp    *MDP
	enders []environment.Ender

	currentStep ts.TimeStep
}

// NewEnv returns a new Env. A stepLimit of 0 or less disables the step
// limit.
func NewEnv(m *MDP, stepLimit int) *Env {
	g := m.Grid()
	terminal := environment.NewFunctionEnder(func(s int) bool {
		return g.Cell(s).Terminal()
	}, ts.TerminalStateReached)

	enders := []environment.Ender{terminal}
	if stepLimit > 0 {
		enders = append(enders, environment.NewStepLimit(stepLimit))
	}

	return &Env{mdp: m, enders: enders}
}

// MDP returns the underlying MDP
func (e *Env) MDP() *MDP {
	return e.mdp
}

// Reset resets the environment to some starting state
func (e *Env) Reset() (ts.TimeStep, error) {
	state := e.mdp.Reset()

	step := ts.New(ts.First, 0, state, 0)
	e.currentStep = step
	return step, nil
}

// Step takes a single environmental step
func (e *Env) Step(a gridworld.Action) (ts.TimeStep, bool, error) {
	if e.currentStep.Last() {
		return e.currentStep, true, &Error{"step", ErrEpisodeOver}
	}

	state, reward, _, err := e.mdp.Step(a)
	if err != nil {
		return e.currentStep, e.currentStep.Last(), err
	}

	step := ts.New(ts.Mid, reward, state, e.currentStep.Number+1)
	for _, ender := range e.enders {
		if ender.End(&step) {
			break
		}
	}
	e.currentStep = step

	return step, step.Last(), nil
}

// CurrentTimeStep returns the current timestep in the environment
func (e *Env) CurrentTimeStep() ts.TimeStep {
	return e.currentStep
}

// ObservationSpec returns the observation spec of the environment
func (e *Env) ObservationSpec() environment.Spec {
	return environment.NewDiscreteSpec(environment.Observation,
		e.mdp.StateSpace())
}

// ActionSpec returns the action spec of the environment
func (e *Env) ActionSpec() environment.Spec {
	return environment.NewDiscreteSpec(environment.Action,
		e.mdp.ActionSpace())
}

// Render renders the underlying MDP
func (e *Env) Render() error {
	return e.mdp.Render()
}

// Close closes the underlying MDP
func (e *Env) Close() error {
	return e.mdp.Close()
}
