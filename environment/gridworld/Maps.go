package gridworld

import "fmt"

// Names of the built-in layouts
const (
	Map4x4 string = "4x4"
	Map8x8 string = "8x8"
)

var maps = map[string][]string{
	Map4x4: {
		"SFFF",
		"FHFH",
		"FFFH",
		"HFFG",
	},
	Map8x8: {
		"SFFFFFFF",
		"FFFFFFFF",
		"FFFHFFFF",
		"FFFFFHFF",
		"FFFHFFFF",
		"FHHFFFHF",
		"FHFFHFHF",
		"FFFHFFFG",
	},
}

// Map returns one of the built-in FrozenLake layouts by name
func Map(name string) (*Grid, error) {
	rows, ok := maps[name]
	if !ok {
		return nil, &Error{"map", fmt.Errorf("%w: no such map %q", ErrLayout,
			name)}
	}
	return FromRows(rows)
}
