package gridworld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexPositionBijection(t *testing.T) {
	for _, dims := range [][2]int{{4, 4}, {3, 5}, {1, 7}, {6, 1}} {
		cells := make([]Cell, dims[0]*dims[1])
		for i := range cells {
			cells[i] = Frozen
		}
		cells[0], cells[len(cells)-1] = Start, Goal
		g, err := New(dims[0], dims[1], cells)
		require.NoError(t, err)

		seen := make(map[int]bool)
		for row := 0; row < dims[0]; row++ {
			for col := 0; col < dims[1]; col++ {
				s := g.IndexOf(row, col)
				require.True(t, g.Contains(s))
				require.False(t, seen[s], "state %d produced twice", s)
				seen[s] = true
				assert.Equal(t, Position{row, col}, g.PositionOf(s))
			}
		}
		assert.Len(t, seen, g.NumStates())
	}
}

func TestMoveClampsAtEdges(t *testing.T) {
	g, err := Map(Map4x4)
	require.NoError(t, err)

	tests := []struct {
		from Position
		a    Action
		want Position
	}{
		{Position{0, 1}, Up, Position{0, 1}},
		{Position{0, 0}, Left, Position{0, 0}},
		{Position{3, 3}, Down, Position{3, 3}},
		{Position{3, 3}, Right, Position{3, 3}},
		{Position{1, 1}, Up, Position{0, 1}},
		{Position{1, 1}, Down, Position{2, 1}},
		{Position{1, 1}, Left, Position{1, 0}},
		{Position{1, 1}, Right, Position{1, 2}},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, g.Move(test.from, test.a),
			"%v from %v", test.a, test.from)
	}
	assert.Equal(t, 1, g.MoveState(1, Up))
	assert.Equal(t, 5, g.MoveState(1, Down))
}

func TestActionNeighbours(t *testing.T) {
	prev, next := Left.Neighbours()
	assert.Equal(t, Up, prev)
	assert.Equal(t, Down, next)

	prev, next = Up.Neighbours()
	assert.Equal(t, Right, prev)
	assert.Equal(t, Left, next)

	for _, a := range Actions() {
		prev, next := a.Neighbours()
		dr, dc := a.Displacement()
		pr, pc := prev.Displacement()
		nr, nc := next.Displacement()
		assert.Zero(t, dr*pr+dc*pc, "%v and %v not perpendicular", a, prev)
		assert.Zero(t, dr*nr+dc*nc, "%v and %v not perpendicular", a, next)
	}
	assert.False(t, Action(4).Valid())
	assert.False(t, Action(-1).Valid())
}

func TestFromRows(t *testing.T) {
	g, err := FromRows([]string{"SFC", "HFG"})
	require.NoError(t, err)

	r, c := g.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, Coin, g.At(0, 2))
	assert.Equal(t, Hole, g.Cell(3))
	assert.Equal(t, 0, g.Start())
	assert.Equal(t, []int{5}, g.Find(Goal))
	assert.Equal(t, "SFC\nHFG", g.String())

	_, err = FromRows([]string{"SFX", "FFG"})
	assert.ErrorIs(t, err, ErrSymbol)
	assert.True(t, IsConfigError(err))

	_, err = FromRows([]string{"SFF", "FG"})
	assert.ErrorIs(t, err, ErrLayout)

	_, err = FromRows([]string{"FFF", "FFG"})
	assert.ErrorIs(t, err, ErrLayout)

	_, err = FromRows(nil)
	assert.ErrorIs(t, err, ErrDimensions)
}

func TestStartNeedNotBeFirst(t *testing.T) {
	g, err := FromRows([]string{"FFG", "FSF"})
	require.NoError(t, err)
	assert.Equal(t, 4, g.Start())
}

func TestMaps(t *testing.T) {
	g, err := Map(Map8x8)
	require.NoError(t, err)
	r, c := g.Dims()
	assert.Equal(t, 8, r)
	assert.Equal(t, 8, c)
	assert.Equal(t, Goal, g.Cell(63))
	assert.Equal(t, 10, g.Count(Hole))

	_, err = Map("16x16")
	assert.ErrorIs(t, err, ErrLayout)
}

func TestCells(t *testing.T) {
	for _, c := range Cells() {
		parsed, err := ParseCell(rune(c))
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	assert.True(t, Hole.Terminal())
	assert.True(t, Goal.Terminal())
	assert.False(t, Coin.Terminal())
	assert.Equal(t, "Frozen", Frozen.Name())

	_, err := ParseCell('X')
	assert.ErrorIs(t, err, ErrSymbol)
}

func TestLookupCell(t *testing.T) {
	for _, c := range Cells() {
		bySymbol, err := LookupCell(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, bySymbol)

		byName, err := LookupCell(c.Name())
		require.NoError(t, err)
		assert.Equal(t, c, byName)
	}

	for _, key := range []string{"", "X", "GH", "goal"} {
		_, err := LookupCell(key)
		assert.ErrorIs(t, err, ErrSymbol, key)
		assert.True(t, IsConfigError(err), key)
	}
}
