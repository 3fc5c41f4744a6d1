package gridworld

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// GenerateConfig describes a randomly generated layout. The Start cell
// is always at (0, 0) and the Goal cell is always the last cell; Holes
// holes and Coins coins are shuffled over the remaining cells using
// Seed.
type GenerateConfig struct {
	Rows, Cols   int
	Holes, Coins int
	Seed         uint64
}

// Free returns the number of Frozen cells the configuration leaves
func (c GenerateConfig) Free() int {
	return c.Rows*c.Cols - c.Holes - c.Coins - 2
}

// Validate checks that the configuration describes a legal layout
func (c GenerateConfig) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: (%d, %d)", ErrDimensions, c.Rows, c.Cols)
	}
	if c.Rows*c.Cols < 2 {
		return fmt.Errorf("%w: a %dx%d grid cannot hold a start and a goal",
			ErrDimensions, c.Rows, c.Cols)
	}
	if c.Holes < 0 || c.Coins < 0 {
		return fmt.Errorf("%w: holes = %d, coins = %d", ErrCellCount,
			c.Holes, c.Coins)
	}
	if free := c.Free(); free < 0 {
		return fmt.Errorf("%w: %d holes and %d coins do not fit in a "+
			"%dx%d grid", ErrCellCount, c.Holes, c.Coins, c.Rows, c.Cols)
	}
	return nil
}

// Generate creates a new random Grid. The same configuration always
// produces the same layout.
func Generate(c GenerateConfig) (*Grid, error) {
	if err := c.Validate(); err != nil {
		return nil, &Error{"generate", err}
	}

	interior := make([]Cell, 0, c.Rows*c.Cols-2)
	for i := 0; i < c.Holes; i++ {
		interior = append(interior, Hole)
	}
	for i := 0; i < c.Coins; i++ {
		interior = append(interior, Coin)
	}
	for i := 0; i < c.Free(); i++ {
		interior = append(interior, Frozen)
	}

	rng := rand.New(rand.NewSource(c.Seed))
	rng.Shuffle(len(interior), func(i, j int) {
		interior[i], interior[j] = interior[j], interior[i]
	})

	cells := make([]Cell, 0, c.Rows*c.Cols)
	cells = append(cells, Start)
	cells = append(cells, interior...)
	cells = append(cells, Goal)

	return New(c.Rows, c.Cols, cells)
}
