package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/samuelfneumann/gridmdp/environment"
	"github.com/samuelfneumann/gridmdp/environment/envconfig"
	"github.com/samuelfneumann/gridmdp/environment/render"
	"github.com/samuelfneumann/gridmdp/experiment"
	"github.com/samuelfneumann/gridmdp/experiment/trackers"
	ts "github.com/samuelfneumann/gridmdp/timestep"
	"github.com/samuelfneumann/progressbar"
)

// progress is a Tracker which advances a progress bar once per step
type progress struct {
	bar *progressbar.ProgressBar
}

// newProgress returns a progress tracker for a run of steps steps
func newProgress(steps uint) progress {
	return progress{progressbar.New(50, int(steps), time.Second, true)}
}

func (p progress) Track(t ts.TimeStep) {
	if !t.First() {
		p.bar.Increment()
	}
}

func (p progress) Save() error {
	return nil
}

func main() {
	var c envconfig.Config

	configFile := flag.String("config", "", "JSON environment config; "+
		"overrides the environment flags")
	flag.StringVar(&c.Map, "map", "", "built-in map (4x4 or 8x8); if "+
		"empty a map is generated")
	flag.IntVar(&c.Rows, "rows", 4, "rows of a generated map")
	flag.IntVar(&c.Cols, "cols", 4, "columns of a generated map")
	flag.IntVar(&c.Holes, "holes", 2, "holes in a generated map")
	flag.IntVar(&c.Coins, "coins", 2, "coins in a generated map")
	flag.BoolVar(&c.Slippery, "slippery", false, "use slippery dynamics")
	flag.Float64Var(&c.SlipProb, "slip", 0, "slip probability (0 selects "+
		"an even three-way split)")
	flag.IntVar(&c.StepLimit, "limit", 100, "maximum episode length")

	seed := flag.Uint64("seed", 100, "random seed")
	steps := flag.Uint("steps", 10_000, "environment steps to run")
	renderMode := flag.String("render", "none", "render mode: none, "+
		"text or png")
	frames := flag.String("frames", "frames", "directory of png frames")
	out := flag.String("out", "", "file to save episodic returns to")
	chart := flag.String("chart", "", "HTML file to plot returns to")
	flag.Parse()

	if *configFile != "" {
		var err error
		if c, err = envconfig.Load(*configFile); err != nil {
			log.Fatal(err)
		}
	}

	var renderer environment.Renderer
	switch *renderMode {
	case "none":
	case "text":
		renderer = render.NewText(os.Stdout, true)
	case "png":
		im, err := render.NewImage(*frames, render.DefaultCellSize)
		if err != nil {
			log.Fatal(err)
		}
		renderer = im
	default:
		log.Fatalf("no such render mode %q", *renderMode)
	}

	m, err := c.Create(*seed, nil)
	if err != nil {
		log.Fatalf("could not create environment: %v", err)
	}
	fmt.Println(m)
	fmt.Printf("states: %d  actions: %d  slippery: %v\n\n", m.StateSpace(),
		m.ActionSpace(), c.Slippery)

	returns := trackers.NewReturn(*out)
	lengths := trackers.NewEpisodeLength("")
	expConf := experiment.Config{
		Type:     experiment.OnlineExp,
		MaxSteps: *steps,
		EnvConf:  c,
	}
	exp, err := expConf.CreateExp(*seed, renderer, returns, lengths)
	if err != nil {
		log.Fatalf("could not create experiment: %v", err)
	}

	var bar *progressbar.ProgressBar
	if renderer == nil {
		p := newProgress(*steps)
		exp.Register(p)
		bar = p.bar
		bar.Display()
	}

	if err := exp.Run(); err != nil {
		log.Fatal(err)
	}
	if bar != nil {
		bar.Close()
	}

	episodes := returns.Returns()
	var total float64
	for _, r := range episodes {
		total += r
	}
	var length int
	for _, l := range lengths.Lengths() {
		length += l
	}
	if len(episodes) > 0 {
		log.Printf("episodes: %d  mean return: %.3f  mean length: %.1f",
			len(episodes), total/float64(len(episodes)),
			float64(length)/float64(len(episodes)))
	}

	if *out != "" {
		if err := returns.Save(); err != nil {
			log.Fatal(err)
		}
	}
	if *chart != "" {
		if err := trackers.Plot(*chart, "Episodic return", episodes,
			10); err != nil {
			log.Fatal(err)
		}
	}
}
