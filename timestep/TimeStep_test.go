package timestep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeStep(t *testing.T) {
	step := New(First, 0, 3, 0)
	assert.True(t, step.First())
	assert.Equal(t, Running, step.EndType())

	step = New(Mid, 1, 15, 6)
	step.StepType = Last
	step.SetEnd(TerminalStateReached)
	assert.True(t, step.Last())
	assert.False(t, step.Mid())
	assert.Equal(t, "TerminalStateReached", step.EndType().String())
	assert.Contains(t, step.String(), "State: 15")
}
