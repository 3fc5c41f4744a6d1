// Package envconfig provides configuration structs for configuring
// gridworld MDPs with default dynamics and rewards. Configurations in
// this package are JSON serializable, and Create is the single factory
// through which configured MDPs are built.
package envconfig

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samuelfneumann/gridmdp/environment"
	"github.com/samuelfneumann/gridmdp/environment/gridworld"
	"github.com/samuelfneumann/gridmdp/environment/mdp"
)

// Config implements a specific configuration of a gridworld MDP. If Map
// names a built-in layout, that layout is used and the generation
// fields are ignored. Otherwise a layout of Rows x Cols with Holes holes
// and Coins coins is generated.
type Config struct {
	Map string `json:",omitempty"`

	Rows  int `json:",omitempty"`
	Cols  int `json:",omitempty"`
	Holes int `json:",omitempty"`
	Coins int `json:",omitempty"`

	Slippery bool
	SlipProb float64 `json:",omitempty"`

	// Rewards maps cell symbols ("S", "F", "H", "G", "C") to rewards
	Rewards map[string]float64 `json:",omitempty"`

	// StepLimit is the maximum episode length of the environment
	// returned by CreateEnv. 0 means unlimited.
	StepLimit int `json:",omitempty"`
}

// FrozenLake returns the Config of a built-in FrozenLake layout
func FrozenLake(mapName string, slippery bool) Config {
	return Config{Map: mapName, Slippery: slippery}
}

// Load reads a JSON encoded Config from a file
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("load: could not read config: %v", err)
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("load: could not decode config: %v", err)
	}
	return c, nil
}

// Grid returns the layout described by the Config. Generated layouts
// are shuffled using seed.
func (c Config) Grid(seed uint64) (*gridworld.Grid, error) {
	if c.Map != "" {
		return gridworld.Map(c.Map)
	}

	return gridworld.Generate(gridworld.GenerateConfig{
		Rows:  c.Rows,
		Cols:  c.Cols,
		Holes: c.Holes,
		Coins: c.Coins,
		Seed:  seed,
	})
}

// MDPRewards converts the rewards of the Config, keyed by cell symbol
// ("G") or cell name ("Goal")
func (c Config) MDPRewards() (mdp.Rewards, error) {
	rewards := make(mdp.Rewards, len(c.Rewards))
	for key, r := range c.Rewards {
		cell, err := gridworld.LookupCell(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", mdp.ErrRewards, err)
		}
		rewards[cell] = r
	}
	return rewards, nil
}

// Create returns the MDP described by the Config. The seed determines
// both the generated layout, if any, and the sampled transitions.
func (c Config) Create(seed uint64,
	renderer environment.Renderer) (*mdp.MDP, error) {
	g, err := c.Grid(seed)
	if err != nil {
		return nil, fmt.Errorf("create: could not create grid: %w", err)
	}

	rewards, err := c.MDPRewards()
	if err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}

	m, err := mdp.New(g, mdp.Config{
		Slippery: c.Slippery,
		SlipProb: c.SlipProb,
		Rewards:  rewards,
		Renderer: renderer,
	}, seed)
	if err != nil {
		return nil, fmt.Errorf("create: could not create mdp: %w", err)
	}
	return m, nil
}

// CreateEnv returns the MDP described by the Config wrapped as an
// environment.Environment with the Config's step limit
func (c Config) CreateEnv(seed uint64,
	renderer environment.Renderer) (*mdp.Env, error) {
	m, err := c.Create(seed, renderer)
	if err != nil {
		return nil, err
	}
	return mdp.NewEnv(m, c.StepLimit), nil
}
