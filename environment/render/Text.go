// Package render implements display collaborators for gridworld MDPs
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/samuelfneumann/gridmdp/environment/gridworld"
)

// Text renders a gridworld as one line of symbols per row, colouring
// cells by type and highlighting the cell the agent is in
type Text struct {
	w      io.Writer
	au     aurora.Aurora
	colors bool
}

// NewText returns a new Text renderer writing to w. If colors is
// false, no escape codes are written and the agent's cell is wrapped in
// brackets instead.
func NewText(w io.Writer, colors bool) *Text {
	return &Text{w, aurora.NewAurora(colors), colors}
}

// Render writes the grid with the agent at state
func (t *Text) Render(g *gridworld.Grid, state int) error {
	if _, err := io.WriteString(t.w, t.Format(g, state)+"\n"); err != nil {
		return fmt.Errorf("render: could not write grid: %v", err)
	}
	return nil
}

// Format returns the text Render writes, without the final newline
func (t *Text) Format(g *gridworld.Grid, state int) string {
	r, c := g.Dims()
	pos := g.PositionOf(state)

	rows := make([]string, r)
	for i := 0; i < r; i++ {
		var row strings.Builder
		for j := 0; j < c; j++ {
			cell := g.At(i, j)
			if (gridworld.Position{Row: i, Col: j}) == pos {
				row.WriteString(t.agent(cell))
			} else {
				row.WriteString(t.colour(cell).String())
			}
		}
		rows[i] = row.String()
	}
	return strings.Join(rows, "\n")
}

func (t *Text) agent(cell gridworld.Cell) string {
	if !t.colors {
		return "[" + cell.String() + "]"
	}
	return t.au.Reverse(t.colour(cell)).String()
}

func (t *Text) colour(cell gridworld.Cell) aurora.Value {
	switch cell {
	case gridworld.Hole:
		return t.au.Red(cell)
	case gridworld.Goal:
		return t.au.Green(cell)
	case gridworld.Coin:
		return t.au.Yellow(cell)
	case gridworld.Start:
		return t.au.Cyan(cell)
	}
	return t.au.White(cell)
}
