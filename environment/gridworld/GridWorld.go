// Package gridworld implements the topology of 2D FrozenLake style
// gridworlds: the cell layout, the mapping between states and grid
// positions, and the movement of an agent between cells.
package gridworld

import (
	"fmt"
	"strings"

	"github.com/samuelfneumann/gridmdp/utils/intutils"
)

// Position is a (row, col) location in a Grid. Row 0 is the top row.
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Grid represents the layout of a gridworld
//
// A grid is stored as a flattened row-major slice of cells. States are
// the indices into this slice. A Grid is immutable once created.
type Grid struct {
	r, c  int
	cells []Cell
}

// New creates a new Grid with r rows and c columns from the row-major
// cells. The layout must contain at least one Start and one Goal cell.
func New(r, c int, cells []Cell) (*Grid, error) {
	if r <= 0 || c <= 0 {
		return nil, &Error{"new", fmt.Errorf("%w: (%d, %d)", ErrDimensions,
			r, c)}
	}
	if len(cells) != r*c {
		return nil, &Error{"new", fmt.Errorf("%w: have %d cells, want %d",
			ErrLayout, len(cells), r*c)}
	}

	var starts, goals int
	for i, cell := range cells {
		if _, err := ParseCell(rune(cell)); err != nil {
			return nil, &Error{"new", fmt.Errorf("cell %d: %w", i, err)}
		}
		switch cell {
		case Start:
			starts++
		case Goal:
			goals++
		}
	}
	if starts == 0 || goals == 0 {
		return nil, &Error{"new", fmt.Errorf("%w: need a start and a goal "+
			"cell, have %d start and %d goal", ErrLayout, starts, goals)}
	}

	layout := make([]Cell, len(cells))
	copy(layout, cells)
	return &Grid{r, c, layout}, nil
}

// FromRows creates a Grid from one string per row, each character
// being a cell symbol
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, &Error{"fromRows", ErrDimensions}
	}

	c := len(rows[0])
	cells := make([]Cell, 0, len(rows)*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, &Error{"fromRows", fmt.Errorf("%w: row %d has "+
				"length %d, want %d", ErrLayout, i, len(row), c)}
		}
		for _, symbol := range row {
			cell, err := ParseCell(symbol)
			if err != nil {
				return nil, &Error{"fromRows", err}
			}
			cells = append(cells, cell)
		}
	}

	return New(len(rows), c, cells)
}

// Dims gets the rows and columns of the Grid
func (g *Grid) Dims() (r, c int) {
	return g.r, g.c
}

// NumStates returns the number of states, one per cell
func (g *Grid) NumStates() int {
	return g.r * g.c
}

// IndexOf converts the position (row, col) to a state index
func (g *Grid) IndexOf(row, col int) int {
	return row*g.c + col
}

// PositionOf converts a state index into its position in the Grid
func (g *Grid) PositionOf(state int) Position {
	return Position{Row: state / g.c, Col: state % g.c}
}

// Contains returns whether a state index lies in the Grid
func (g *Grid) Contains(state int) bool {
	return state >= 0 && state < g.NumStates()
}

// At returns the cell type at (row, col)
func (g *Grid) At(row, col int) Cell {
	return g.cells[g.IndexOf(row, col)]
}

// Cell returns the cell type of a state
func (g *Grid) Cell(state int) Cell {
	return g.cells[state]
}

// Cells returns a copy of the row-major layout
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return cells
}

// Move returns the position reached by taking action a at position p.
// Each coordinate is clipped to the Grid, so that moving into a wall
// leaves the agent where it was.
func (g *Grid) Move(p Position, a Action) Position {
	dRow, dCol := a.Displacement()
	return Position{
		Row: intutils.Clip(p.Row+dRow, 0, g.r-1),
		Col: intutils.Clip(p.Col+dCol, 0, g.c-1),
	}
}

// MoveState returns the state reached by taking action a in state s
func (g *Grid) MoveState(s int, a Action) int {
	p := g.Move(g.PositionOf(s), a)
	return g.IndexOf(p.Row, p.Col)
}

// Start returns the first Start state in row-major order
func (g *Grid) Start() int {
	return g.Find(Start)[0]
}

// Find returns all states of cell type c in row-major order
func (g *Grid) Find(c Cell) []int {
	var states []int
	for i, cell := range g.cells {
		if cell == c {
			states = append(states, i)
		}
	}
	return states
}

// Count returns the number of cells of type c
func (g *Grid) Count(c Cell) int {
	return len(g.Find(c))
}

// String returns the layout, one line per row
func (g *Grid) String() string {
	rows := make([]string, g.r)
	for i := range rows {
		var row strings.Builder
		for _, cell := range g.cells[i*g.c : (i+1)*g.c] {
			row.WriteByte(byte(cell))
		}
		rows[i] = row.String()
	}
	return strings.Join(rows, "\n")
}
