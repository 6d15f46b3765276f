package main

import (
	"flag"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

// parseConfig merges defaults, an optional JSON file and explicitly set flags
func parseConfig(args []string) (utils.Config, error) {
	fs := flag.NewFlagSet("go-life", flag.ContinueOnError)

	defaults := utils.DefaultConfig()
	var (
		configPath = fs.String("config", "", "path to a JSON config file")
		iterations = fs.Int("iterations", defaults.Iterations, "for how many iterations evolve the simulation")
		boardSize  = fs.Int("board-size", defaults.BoardSize, "the size of the square simulation board")
		sleepMs    = fs.Int("sleep-time-ms", int(defaults.SleepTime.Milliseconds()), "sleep duration between iterations in milliseconds")
		aliveCells = fs.Int("alive-cells", defaults.AliveCells, "initial number of randomly turned on cells")
		randomSeed = fs.Int("random-seed", defaults.RandomSeed, "seed for the initial state (0-255)")
		output     = fs.String("output", defaults.OutputPath, "path of the animated gif")
		quiet      = fs.Bool("quiet", defaults.Quiet, "do not draw the board in the terminal")
		noPool     = fs.Bool("no-pool", !defaults.UsePool, "allocate a new board every generation")
		verbose    = fs.Bool("v", false, "log every generation")
	)
	if err := fs.Parse(args); err != nil {
		return defaults, err
	}

	config := defaults
	if *configPath != "" {
		loaded, err := utils.LoadConfig(*configPath)
		if err != nil {
			return defaults, err
		}
		config = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "iterations":
			config.Iterations = *iterations
		case "board-size":
			config.BoardSize = *boardSize
		case "sleep-time-ms":
			config.SleepTime = time.Duration(*sleepMs) * time.Millisecond
		case "alive-cells":
			config.AliveCells = *aliveCells
		case "random-seed":
			config.RandomSeed = *randomSeed
		case "output":
			config.OutputPath = *output
		case "quiet":
			config.Quiet = *quiet
		case "no-pool":
			config.UsePool = !*noPool
		}
	})

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	return config, nil
}

func main() {
	log.SetHandler(cli.New(os.Stderr))

	config, err := parseConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.WithError(err).Fatal("invalid arguments")
	}

	g, err := initializeGame(config, os.Stdout)
	if err != nil {
		log.WithError(err).Fatal("cannot start simulation")
	}

	g.run()
	g.saveAnimation()
	g.displayFinalStats()
}
