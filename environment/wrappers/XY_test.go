package wrappers

import (
	"testing"

	"github.com/samuelfneumann/gridmdp/environment/envconfig"
	"github.com/samuelfneumann/gridmdp/environment/gridworld"
	"github.com/samuelfneumann/gridmdp/environment/mdp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXY(t *testing.T) {
	m, err := envconfig.FrozenLake(gridworld.Map4x4, false).Create(0, nil)
	require.NoError(t, err)
	x := NewXY(m)

	_, _, _, err = x.Step(gridworld.Down)
	assert.ErrorIs(t, err, mdp.ErrNotReset)

	assert.Equal(t, gridworld.Position{Row: 0, Col: 0}, x.Reset())

	pos, reward, done, err := x.Step(gridworld.Right)
	require.NoError(t, err)
	assert.Equal(t, gridworld.Position{Row: 0, Col: 1}, pos)
	assert.Equal(t, 0.0, reward)
	assert.False(t, done)

	pos, _, done, err = x.Step(gridworld.Down)
	require.NoError(t, err)
	assert.Equal(t, gridworld.Position{Row: 1, Col: 1}, pos)
	assert.True(t, done)
	assert.Equal(t, pos, x.Position())
}
