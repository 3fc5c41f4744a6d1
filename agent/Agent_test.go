package agent

import (
	"testing"

	"github.com/samuelfneumann/gridmdp/environment/gridworld"
	"github.com/samuelfneumann/gridmdp/timestep"
	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	policy := Table{gridworld.Down, gridworld.Right, gridworld.Up}

	for state, want := range policy {
		step := timestep.New(timestep.Mid, 0, state, 1)
		assert.Equal(t, want, policy.SelectAction(step))
	}

	// Table shorter than the state space
	step := timestep.New(timestep.Mid, 0, 15, 1)
	assert.Equal(t, gridworld.Left, policy.SelectAction(step))
}
