package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack-cli/internal/config"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/randutil"
	"github.com/lox/blackjack-cli/internal/simulator"
	"github.com/lox/blackjack-cli/internal/tui"
)

type PlayCmd struct {
	Config   string        `short:"c" default:"blackjack.hcl" help:"Path to HCL configuration file"`
	Name     string        `short:"n" default:"You" help:"Your name at the table"`
	BuyIn    int           `help:"Buy-in amount (overrides config)"`
	Seed     int64         `help:"RNG seed (0 for random)"`
	Delay    time.Duration `default:"600ms" help:"Pause between dealer cards"`
	LogLevel string        `short:"l" help:"Log level (overrides config)"`
	LogFile  string        `help:"Log file path (overrides config)"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.LoadConfig(c.Config)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Apply command line overrides
	if c.BuyIn > 0 {
		cfg.Session.BuyIn = c.BuyIn
	}
	if c.Seed != 0 {
		cfg.Session.Seed = c.Seed
	}
	if c.LogLevel != "" {
		cfg.Session.LogLevel = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.Session.LogFile = c.LogFile
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file
	logFile, err := os.OpenFile(cfg.Session.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	logger := log.New(logFile)
	logger.SetLevel(parseLogLevel(cfg.Session.LogLevel))

	seed := cfg.Session.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info("starting blackjack table",
		"player", c.Name,
		"buyIn", cfg.Session.BuyIn,
		"decks", cfg.Table.Decks,
		"seed", seed)

	engine := game.NewEngine(randutil.New(seed), cfg.Rules(), logger)

	tuiModel := tui.New(logger)
	human := tui.NewHumanAgent(tuiModel, logger, quartz.NewReal(), tui.DefaultDecisionTimeout)

	if _, err := engine.AddPlayer(c.Name, cfg.Session.BuyIn, human); err != nil {
		return fmt.Errorf("failed to seat %s: %w", c.Name, err)
	}

	// Seat the configured computer players alongside the human
	for _, playerCfg := range cfg.Players {
		agent, err := simulator.NewStrategyAgent(playerCfg, logger)
		if err != nil {
			return err
		}
		if _, err := engine.AddPlayer(playerCfg.Name, playerCfg.BuyIn, agent); err != nil {
			return fmt.Errorf("failed to seat %s: %w", playerCfg.Name, err)
		}
	}

	engine.EventBus().Subscribe(tui.NewEventLogger(tuiModel, c.Name))
	if c.Delay > 0 {
		engine.EventBus().Subscribe(tui.NewDealerPacer(quartz.NewReal(), c.Delay))
	}

	session := tui.NewSession(engine, tuiModel, human, logger)
	go func() {
		if err := session.Run(); err != nil {
			logger.Error("session ended with error", "error", err)
		}
	}()

	program := tea.NewProgram(tuiModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func parseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
