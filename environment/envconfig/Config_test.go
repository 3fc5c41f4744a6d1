package envconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/gridmdp/environment/gridworld"
	"github.com/samuelfneumann/gridmdp/environment/mdp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrozenLakeVariants(t *testing.T) {
	for _, name := range []string{gridworld.Map4x4, gridworld.Map8x8} {
		for _, slippery := range []bool{true, false} {
			m, err := FrozenLake(name, slippery).Create(0, nil)
			require.NoError(t, err)

			want, err := gridworld.Map(name)
			require.NoError(t, err)
			assert.Equal(t, want.String(), m.String())

			successors := m.T().Successors(want.IndexOf(1, 1), gridworld.Up)
			if slippery {
				assert.Len(t, successors, 3)
			} else {
				assert.Len(t, successors, 1)
			}
		}
	}
}

func TestCreateGenerated(t *testing.T) {
	c := Config{Rows: 4, Cols: 4, Holes: 2, Coins: 2, Slippery: true,
		SlipProb: 0.3334, Rewards: map[string]float64{"C": 2}}
	m, err := c.Create(100, nil)
	require.NoError(t, err)

	g := m.Grid()
	assert.Equal(t, 2, g.Count(gridworld.Hole))
	for _, s := range g.Find(gridworld.Coin) {
		assert.Equal(t, 2.0, m.Reward(s))
	}

	again, err := c.Create(100, nil)
	require.NoError(t, err)
	assert.Equal(t, m.String(), again.String())
}

func TestRewardsByName(t *testing.T) {
	c := Config{Map: gridworld.Map4x4, Rewards: map[string]float64{
		"Goal": 10,
		"H":    -1,
	}}
	m, err := c.Create(0, nil)
	require.NoError(t, err)
	assert.Equal(t, 10.0, m.Reward(15))
	assert.Equal(t, -1.0, m.Reward(5))
}

func TestCreateRejectsConfig(t *testing.T) {
	_, err := Config{Rows: 2, Cols: 2, Holes: 3}.Create(0, nil)
	assert.ErrorIs(t, err, gridworld.ErrCellCount)
	assert.True(t, mdp.IsConfigError(err))

	_, err = Config{Map: "4x4", Rewards: map[string]float64{"Z": 1}}.Create(0, nil)
	assert.ErrorIs(t, err, mdp.ErrRewards)

	_, err = Config{Map: "4x4", Rewards: map[string]float64{"GH": 1}}.Create(0, nil)
	assert.ErrorIs(t, err, mdp.ErrRewards)

	_, err = Config{Map: "4x4", Slippery: true, SlipProb: -1}.Create(0, nil)
	assert.ErrorIs(t, err, mdp.ErrSlipProb)
}

func TestLoad(t *testing.T) {
	c := Config{Map: gridworld.Map8x8, Slippery: true, StepLimit: 100,
		Rewards: map[string]float64{"H": -1}}
	data, err := json.Marshal(c)
	require.NoError(t, err)

	filename := filepath.Join(t.TempDir(), "env.json")
	require.NoError(t, os.WriteFile(filename, data, 0o600))

	loaded, err := Load(filename)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)

	env, err := loaded.CreateEnv(0, nil)
	require.NoError(t, err)
	assert.Equal(t, -1.0, env.MDP().Reward(19))

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
