package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/config"
	"github.com/lox/blackjack-cli/internal/simulator"
)

type SimulateCmd struct {
	Config      string `short:"c" default:"blackjack.hcl" help:"Path to HCL configuration file"`
	Sessions    int    `default:"100" help:"Number of sessions to simulate"`
	Rounds      int    `default:"500" help:"Maximum rounds per session"`
	Seed        int64  `default:"0" help:"RNG seed (0 for random)"`
	Parallelism int    `default:"0" help:"Concurrent sessions (0 for GOMAXPROCS)"`
	Verbose     bool   `help:"Verbose logging"`
}

func (c *SimulateCmd) Run() error {
	cfg, err := config.LoadConfig(c.Config)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level := log.WarnLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	parallelism := c.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	fmt.Printf("Simulating %d sessions x %d rounds (seed %d, %d workers)\n",
		c.Sessions, c.Rounds, seed, parallelism)

	sim := simulator.New(simulator.Config{
		Sessions:    c.Sessions,
		Rounds:      c.Rounds,
		Seed:        seed,
		Parallelism: parallelism,
		Rules:       cfg.Rules(),
		Players:     cfg.Players,
		Logger:      logger,
	})

	stats, err := sim.Run(context.Background())
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	simulator.PrintSummary(stats)
	return nil
}
