package gridworld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	c := GenerateConfig{Rows: 4, Cols: 5, Holes: 3, Coins: 2, Seed: 100}
	g, err := Generate(c)
	require.NoError(t, err)

	assert.Equal(t, Start, g.Cell(0))
	assert.Equal(t, Goal, g.Cell(g.NumStates()-1))
	assert.Equal(t, 3, g.Count(Hole))
	assert.Equal(t, 2, g.Count(Coin))
	assert.Equal(t, 1, g.Count(Start))
	assert.Equal(t, 1, g.Count(Goal))
	assert.Equal(t, c.Free(), g.Count(Frozen))

	again, err := Generate(c)
	require.NoError(t, err)
	assert.Equal(t, g.String(), again.String())
}

func TestGenerateFullGrid(t *testing.T) {
	g, err := Generate(GenerateConfig{Rows: 2, Cols: 2, Holes: 1, Coins: 1})
	require.NoError(t, err)
	assert.Zero(t, g.Count(Frozen))
}

func TestGenerateRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		c    GenerateConfig
		want error
	}{
		{"too many holes", GenerateConfig{Rows: 2, Cols: 2, Holes: 2, Coins: 1}, ErrCellCount},
		{"negative coins", GenerateConfig{Rows: 4, Cols: 4, Coins: -1}, ErrCellCount},
		{"zero rows", GenerateConfig{Rows: 0, Cols: 4}, ErrDimensions},
		{"single cell", GenerateConfig{Rows: 1, Cols: 1}, ErrDimensions},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g, err := Generate(test.c)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, test.want)
			assert.True(t, IsConfigError(err))
		})
	}
}
