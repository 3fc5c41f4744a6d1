package gridworld

import "fmt"

// Cell is the type of a single grid cell, stored as the symbol used to
// draw it
type Cell byte

// Cell types of a FrozenLake style grid
const (
	Start  Cell = 'S'
	Frozen Cell = 'F'
	Hole   Cell = 'H'
	Goal   Cell = 'G'
	Coin   Cell = 'C'
)

// Cells returns every legal cell type
func Cells() []Cell {
	return []Cell{Start, Frozen, Hole, Goal, Coin}
}

// ParseCell converts a symbol into a Cell
func ParseCell(symbol rune) (Cell, error) {
	for _, c := range Cells() {
		if rune(c) == symbol {
			return c, nil
		}
	}
	return 0, &Error{"parseCell", fmt.Errorf("%w %q", ErrSymbol, symbol)}
}

// LookupCell converts either a single symbol such as "G" or a cell name
// such as "Goal" into a Cell
func LookupCell(key string) (Cell, error) {
	if symbol := []rune(key); len(symbol) == 1 {
		return ParseCell(symbol[0])
	}
	for _, c := range Cells() {
		if c.Name() == key {
			return c, nil
		}
	}
	return 0, &Error{"lookupCell", fmt.Errorf("%w %q", ErrSymbol, key)}
}

// Terminal returns whether entering a cell of this type ends an episode
func (c Cell) Terminal() bool {
	return c == Hole || c == Goal
}

// String returns the cell's symbol
func (c Cell) String() string {
	return string(rune(c))
}

// Name returns a human readable name for the cell type
func (c Cell) Name() string {
	switch c {
	case Start:
		return "Start"
	case Frozen:
		return "Frozen"
	case Hole:
		return "Hole"
	case Goal:
		return "Goal"
	case Coin:
		return "Coin"
	}
	return fmt.Sprintf("Cell(%d)", byte(c))
}
