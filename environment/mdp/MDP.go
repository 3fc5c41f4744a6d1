// Package mdp builds explicit Markov Decision Process models of
// gridworlds.
//
// An MDP holds the full transition tensor T and reward vector R of a
// gridworld.Grid, so that planning algorithms may read the dynamics
// directly, and can also be stepped like an environment by sampling
// next states from T.
package mdp

import (
	"fmt"
	"io"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gridmdp/environment"
	"github.com/samuelfneumann/gridmdp/environment/gridworld"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Config configures the dynamics, rewards and collaborators of an MDP
type Config struct {
	// Slippery selects stochastic dynamics
	Slippery bool

	// SlipProb is the probability of slipping to one of the two
	// neighbouring directions when Slippery is set. Zero selects
	// DefaultSlipProb. It must lie in [0, 1] even if Slippery is not
	// set.
	SlipProb float64

	// Rewards overrides the default reward of each given cell type
	Rewards Rewards

	// Starter picks the state episodes start in. Defaults to the
	// grid's Start cell. If the Starter implements environment.Candidates
	// its candidate states are checked against the grid by New.
	Starter environment.Starter

	// Renderer displays the MDP on Render. Render is a no-op if nil.
	Renderer environment.Renderer
}

// MDP is a finite Markov Decision Process over the cells of a gridworld
//
// An MDP is not safe for concurrent use. Step must be preceded by
// Reset, and after Step reports that the episode is done, Reset must be
// called again before stepping.
type MDP struct {
	grid *gridworld.Grid
	t    *Transitions

	rewards Rewards
	r       *mat.VecDense

	source rand.Source
	dists  []*distuv.Categorical // one per (s, a), built on first use

	starter  environment.Starter
	renderer environment.Renderer

	current int
	started bool
	done    bool
}

// New builds the MDP of a gridworld. The seed determines the sequence
// of next states sampled by Step.
func New(g *gridworld.Grid, c Config, seed uint64) (*MDP, error) {
	if g == nil {
		return nil, &Error{"new", ErrGrid}
	}

	if err := validSlipProb(c.SlipProb); err != nil {
		return nil, &Error{"new", err}
	}
	slipProb := c.SlipProb
	if c.Slippery && slipProb == 0 {
		slipProb = DefaultSlipProb
	}

	rewards, err := c.Rewards.withDefaults()
	if err != nil {
		return nil, &Error{"new", err}
	}

	t, err := BuildTransitions(g, c.Slippery, slipProb)
	if err != nil {
		return nil, &Error{"new", err}
	}

	starter := c.Starter
	if starter == nil {
		starter = environment.SingleStart(g.Start())
	}
	if candidates, ok := starter.(environment.Candidates); ok {
		for _, s := range candidates.States() {
			if !g.Contains(s) {
				return nil, &Error{"new", fmt.Errorf("%w: state %d not in "+
					"[0, %d)", ErrStart, s, g.NumStates())}
			}
		}
	}

	return &MDP{
		grid:     g,
		t:        t,
		rewards:  rewards,
		r:        rewards.Vector(g),
		source:   rand.NewSource(seed),
		dists:    make([]*distuv.Categorical, g.NumStates()*gridworld.NumActions),
		starter:  starter,
		renderer: c.Renderer,
	}, nil
}

// Reset starts a new episode and returns the starting state. Reset
// panics if a Starter without candidate states returns a state outside
// the grid.
func (m *MDP) Reset() int {
	start := m.starter.Start()
	if !m.grid.Contains(start) {
		panic(fmt.Sprintf("reset: starting state %d out of range [0, %d)",
			start, m.StateSpace()))
	}

	m.current = start
	m.started = true
	m.done = false
	return m.current
}

// Step takes action a in the current state. It samples the next state
// from the transition tensor, moves the MDP to that state and returns
// the state, the reward for entering it, and whether the state is a
// Hole or Goal and so ends the episode.
func (m *MDP) Step(a gridworld.Action) (int, float64, bool, error) {
	if !a.Valid() {
		return m.current, 0, m.done, &Error{"step", fmt.Errorf("%w: %d",
			ErrAction, int(a))}
	}
	if !m.started {
		return m.current, 0, m.done, &Error{"step", ErrNotReset}
	}
	if m.done {
		return m.current, 0, m.done, &Error{"step", ErrEpisodeOver}
	}

	next := int(m.dist(m.current, a).Rand())
	m.current = next
	m.done = m.grid.Cell(next).Terminal()

	return next, m.r.AtVec(next), m.done, nil
}

// dist returns the categorical distribution T[s][a]
func (m *MDP) dist(s int, a gridworld.Action) *distuv.Categorical {
	i := s*gridworld.NumActions + int(a)
	if m.dists[i] == nil {
		c := distuv.NewCategorical(m.t.row(s, a), m.source)
		m.dists[i] = &c
	}
	return m.dists[i]
}

// SetRewards rebuilds the reward vector from the default rewards
// overridden by overrides. The transition tensor is left untouched.
func (m *MDP) SetRewards(overrides Rewards) error {
	rewards, err := overrides.withDefaults()
	if err != nil {
		return &Error{"setRewards", err}
	}

	m.rewards = rewards
	m.r = rewards.Vector(m.grid)
	return nil
}

// Rewards returns a copy of the reward assigned to each cell type
func (m *MDP) Rewards() Rewards {
	rewards := make(Rewards, len(m.rewards))
	for cell, r := range m.rewards {
		rewards[cell] = r
	}
	return rewards
}

// StateSpace returns the number of states
func (m *MDP) StateSpace() int {
	return m.grid.NumStates()
}

// ActionSpace returns the number of actions
func (m *MDP) ActionSpace() int {
	return gridworld.NumActions
}

// T returns the transition tensor
func (m *MDP) T() *Transitions {
	return m.t
}

// R returns a copy of the reward vector
func (m *MDP) R() *mat.VecDense {
	return mat.VecDenseCopyOf(m.r)
}

// Reward returns the reward for entering state s
func (m *MDP) Reward(s int) float64 {
	return m.r.AtVec(s)
}

// Grid returns the gridworld the MDP models
func (m *MDP) Grid() *gridworld.Grid {
	return m.grid
}

// Current returns the state the MDP is in
func (m *MDP) Current() int {
	return m.current
}

// Done returns whether the current episode has ended
func (m *MDP) Done() bool {
	return m.done
}

// Render displays the current state with the configured Renderer
func (m *MDP) Render() error {
	if m.renderer == nil {
		return nil
	}
	if err := m.renderer.Render(m.grid, m.current); err != nil {
		return fmt.Errorf("render: %v", err)
	}
	return nil
}

// Close releases the Renderer, if it holds any resources
func (m *MDP) Close() error {
	if closer, ok := m.renderer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// String returns the layout of the gridworld
func (m *MDP) String() string {
	return m.grid.String()
}
