package mdp

import (
	"errors"

	"github.com/samuelfneumann/gridmdp/environment/gridworld"
)

// Error implements errors unique to building and stepping an MDP. Op
// names the operation which failed.
type Error struct {
	Op  string
	Err error
}

// Error satisfies the error interface
func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// Configuration errors
var (
	ErrGrid     = errors.New("no grid given")
	ErrSlipProb = errors.New("slip probability must be in [0, 1]")
	ErrRewards  = errors.New("reward given for unknown cell type")
	ErrStart    = errors.New("starting state outside the grid")
)

// Invariant violations
var (
	ErrNotStochastic = errors.New("transition row is not a probability " +
		"distribution")
)

// Caller misuse
var (
	ErrAction      = errors.New("no such action")
	ErrNotReset    = errors.New("step called before reset")
	ErrEpisodeOver = errors.New("step called after the episode ended, " +
		"reset required")
)

// IsConfigError returns whether err reports an invalid configuration,
// including an invalid grid
func IsConfigError(err error) bool {
	return errors.Is(err, ErrGrid) || errors.Is(err, ErrSlipProb) ||
		errors.Is(err, ErrRewards) || errors.Is(err, ErrStart) ||
		gridworld.IsConfigError(err)
}

// IsInvariantViolation returns whether err reports a malformed
// transition tensor
func IsInvariantViolation(err error) bool {
	return errors.Is(err, ErrNotStochastic)
}

// IsMisuse returns whether err reports that an MDP was used incorrectly,
// for example by stepping without resetting after an episode ended
func IsMisuse(err error) bool {
	return errors.Is(err, ErrAction) || errors.Is(err, ErrNotReset) ||
		errors.Is(err, ErrEpisodeOver)
}
