// Package experiment implements functionality for running an experiment
package experiment

import (
	"fmt"

	"github.com/samuelfneumann/gridmdp/agent/random"
	"github.com/samuelfneumann/gridmdp/environment"
	"github.com/samuelfneumann/gridmdp/environment/envconfig"
	"github.com/samuelfneumann/gridmdp/experiment/trackers"
)

// Experiment runs an agent in an environment. Experiments send each
// TimeStep to their trackers.Trackers, which cache the data they need
// in RAM until Save is called. Run runs episodes until the maximum
// timestep limit is reached; RunEpisode runs a single episode.
type Experiment interface {
	Run() error
	RunEpisode() (bool, error) // Returns whether the step limit is reached
	Save() error
	Register(t trackers.Tracker)
}

// Type is the kind of an Experiment
type Type string

const (
	OnlineExp Type = "OnlineExperiment"
)

// Config represents a configuration of an experiment. An experiment
// built from a Config runs a uniform random agent.
type Config struct {
	Type
	MaxSteps uint
	EnvConf  envconfig.Config
}

// CreateExp creates the experiment described by the Config
func (c Config) CreateExp(seed uint64, renderer environment.Renderer,
	t ...trackers.Tracker) (Experiment, error) {
	e, err := c.EnvConf.CreateEnv(seed, renderer)
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create environment: %w",
			err)
	}

	switch c.Type {
	case OnlineExp, "":
		online := NewOnline(e, random.New(seed), c.MaxSteps, t...)
		online.SetRender(renderer != nil)
		return online, nil
	}

	return nil, fmt.Errorf("createExp: no such experiment type %v", c.Type)
}
