package mdp

import (
	"testing"

	"github.com/samuelfneumann/gridmdp/environment"
	"github.com/samuelfneumann/gridmdp/environment/gridworld"
	ts "github.com/samuelfneumann/gridmdp/timestep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ environment.Environment = (*Env)(nil)

func TestEnvTerminalStep(t *testing.T) {
	m, err := New(openGrid(t), Config{}, 0)
	require.NoError(t, err)
	env := NewEnv(m, 0)

	step, err := env.Reset()
	require.NoError(t, err)
	assert.True(t, step.First())
	assert.Equal(t, 0, step.State)

	var last bool
	for _, a := range []gridworld.Action{gridworld.Right, gridworld.Right,
		gridworld.Right, gridworld.Down, gridworld.Down, gridworld.Down} {
		step, last, err = env.Step(a)
		require.NoError(t, err)
	}
	assert.True(t, last)
	assert.Equal(t, 15, step.State)
	assert.Equal(t, 6, step.Number)
	assert.Equal(t, 1.0, step.Reward)
	assert.Equal(t, ts.TerminalStateReached, step.EndType())
	assert.Equal(t, step, env.CurrentTimeStep())

	_, _, err = env.Step(gridworld.Up)
	assert.ErrorIs(t, err, ErrEpisodeOver)
}

func TestEnvStepLimit(t *testing.T) {
	m, err := New(openGrid(t), Config{}, 0)
	require.NoError(t, err)
	env := NewEnv(m, 3)

	_, err = env.Reset()
	require.NoError(t, err)

	var (
		step ts.TimeStep
		last bool
	)
	for i := 0; i < 3; i++ {
		require.False(t, last)
		step, last, err = env.Step(gridworld.Left)
		require.NoError(t, err)
	}
	assert.True(t, last)
	assert.Equal(t, ts.StepLimitReached, step.EndType())
	assert.Equal(t, 0, step.State)
	assert.False(t, m.Done())

	_, _, err = env.Step(gridworld.Left)
	assert.True(t, IsMisuse(err))

	step, err = env.Reset()
	require.NoError(t, err)
	_, last, err = env.Step(gridworld.Right)
	require.NoError(t, err)
	assert.False(t, last)
}

func TestEnvStepBeforeReset(t *testing.T) {
	m, err := New(openGrid(t), Config{}, 0)
	require.NoError(t, err)
	env := NewEnv(m, 0)

	_, _, err = env.Step(gridworld.Right)
	assert.ErrorIs(t, err, ErrNotReset)
}

func TestEnvSpecs(t *testing.T) {
	m, err := New(mustMap(t, gridworld.Map8x8), Config{}, 0)
	require.NoError(t, err)
	env := NewEnv(m, 0)

	assert.Equal(t, 64, env.ObservationSpec().Size())
	assert.Equal(t, 4, env.ActionSpec().Size())
	assert.Equal(t, environment.Discrete, env.ActionSpec().Cardinality)
	assert.Same(t, m, env.MDP())
}
