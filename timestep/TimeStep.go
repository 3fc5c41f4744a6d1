// Package timestep implements timesteps of the agent-environment interaction
package timestep

import "fmt"

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType describes why an episode ended
type EndType int

const (
	// Not ended yet
	Running EndType = iota

	// A Hole or Goal cell was entered
	TerminalStateReached

	// The episode step limit was reached
	StepLimitReached
)

func (e EndType) String() string {
	switch e {
	case TerminalStateReached:
		return "TerminalStateReached"
	case StepLimitReached:
		return "StepLimitReached"
	default:
		return "Running"
	}
}

// TimeStep packages together a single timestep in an environment
type TimeStep struct {
	StepType StepType
	Reward   float64
	State    int // state index the environment is in
	Number   int
	endType  EndType
}

// New returns a new TimeStep
func New(t StepType, r float64, state, n int) TimeStep {
	return TimeStep{StepType: t, Reward: r, State: state, Number: n}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd records why the episode ended
func (t *TimeStep) SetEnd(e EndType) {
	t.endType = e
}

// EndType returns why the episode ended, or Running if it has not
func (t TimeStep) EndType() EndType {
	return t.endType
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  State: %d  |  " +
		"Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.State, t.Number)
}
