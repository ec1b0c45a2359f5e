// Package config loads table and session configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
)

// Config represents the complete blackjack configuration
type Config struct {
	Table   TableSettings   `hcl:"table,block"`
	Session SessionSettings `hcl:"session,block"`
	Players []PlayerConfig  `hcl:"player,block"`
}

// TableSettings contains the house rules for the table
type TableSettings struct {
	Decks  int `hcl:"decks,optional"`
	CutMin int `hcl:"cut_min,optional"`
	CutMax int `hcl:"cut_max,optional"`
	MinBet int `hcl:"min_bet,optional"`
	MaxBet int `hcl:"max_bet,optional"`
}

// SessionSettings contains session-level configuration
type SessionSettings struct {
	BuyIn    int    `hcl:"buy_in,optional"`
	Seed     int64  `hcl:"seed,optional"`
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// PlayerConfig defines a computer-controlled seat at the table
type PlayerConfig struct {
	Name      string `hcl:"name,label"`
	Strategy  string `hcl:"strategy"`
	Threshold int    `hcl:"threshold,optional"`
	BuyIn     int    `hcl:"buy_in,optional"`
	Bet       int    `hcl:"bet,optional"`
}

// DefaultConfig returns the default configuration: a six-deck table with
// three $200 players betting the table minimum.
func DefaultConfig() *Config {
	return &Config{
		Table: TableSettings{
			Decks:  deck.DefaultNumDecks,
			CutMin: deck.DefaultCutRange.Min,
			CutMax: deck.DefaultCutRange.Max,
			MinBet: 10,
			MaxBet: 100,
		},
		Session: SessionSettings{
			BuyIn:    200,
			LogLevel: "info",
			LogFile:  "blackjack.log",
		},
		Players: []PlayerConfig{
			{Name: "player-1", Strategy: "threshold", Threshold: 17, BuyIn: 200, Bet: 10},
			{Name: "player-2", Strategy: "threshold", Threshold: 17, BuyIn: 200, Bet: 10},
			{Name: "player-3", Strategy: "mimic", BuyIn: 200, Bet: 10},
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields
// the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Table.Decks == 0 {
		config.Table.Decks = deck.DefaultNumDecks
	}
	if config.Table.CutMin == 0 && config.Table.CutMax == 0 {
		config.Table.CutMin = deck.DefaultCutRange.Min
		config.Table.CutMax = deck.DefaultCutRange.Max
	}
	if config.Table.MinBet == 0 {
		config.Table.MinBet = 10
	}
	if config.Table.MaxBet == 0 {
		config.Table.MaxBet = 100
	}

	if config.Session.BuyIn == 0 {
		config.Session.BuyIn = 200
	}
	if config.Session.LogLevel == "" {
		config.Session.LogLevel = "info"
	}
	if config.Session.LogFile == "" {
		config.Session.LogFile = "blackjack.log"
	}

	// Apply defaults to players
	for i := range config.Players {
		if config.Players[i].Strategy == "" {
			config.Players[i].Strategy = "threshold"
		}
		if config.Players[i].Strategy == "threshold" && config.Players[i].Threshold == 0 {
			config.Players[i].Threshold = 17
		}
		if config.Players[i].BuyIn == 0 {
			config.Players[i].BuyIn = config.Session.BuyIn
		}
		if config.Players[i].Bet == 0 {
			config.Players[i].Bet = config.Table.MinBet
		}
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Table.Decks < 1 {
		return fmt.Errorf("decks must be at least 1, got %d", c.Table.Decks)
	}
	if c.Table.CutMin < 0 || c.Table.CutMax < c.Table.CutMin {
		return fmt.Errorf("invalid cut range %d-%d", c.Table.CutMin, c.Table.CutMax)
	}
	if c.Table.CutMax >= c.Table.Decks*52 {
		return fmt.Errorf("cut range %d-%d would empty a %d-deck shoe", c.Table.CutMin, c.Table.CutMax, c.Table.Decks)
	}
	if c.Table.MinBet <= 0 {
		return fmt.Errorf("minimum bet must be positive, got %d", c.Table.MinBet)
	}
	if c.Table.MaxBet < c.Table.MinBet {
		return fmt.Errorf("maximum bet %d is below the minimum bet %d", c.Table.MaxBet, c.Table.MinBet)
	}

	if c.Session.BuyIn < c.Table.MinBet {
		return fmt.Errorf("buy-in %d cannot cover the minimum bet %d", c.Session.BuyIn, c.Table.MinBet)
	}

	validStrategies := map[string]bool{
		"threshold": true,
		"mimic":     true,
		"stand":     true,
	}

	for _, p := range c.Players {
		if !validStrategies[p.Strategy] {
			return fmt.Errorf("player %s: invalid strategy %s", p.Name, p.Strategy)
		}
		if p.Strategy == "threshold" && (p.Threshold < 2 || p.Threshold > 21) {
			return fmt.Errorf("player %s: threshold must be between 2 and 21, got %d", p.Name, p.Threshold)
		}
		if p.BuyIn <= 0 {
			return fmt.Errorf("player %s: buy-in must be positive", p.Name)
		}
	}

	return nil
}

// Rules converts the table settings into engine rules
func (c *Config) Rules() game.Rules {
	return game.Rules{
		NumDecks: c.Table.Decks,
		CutRange: deck.CutRange{Min: c.Table.CutMin, Max: c.Table.CutMax},
		MinBet:   c.Table.MinBet,
		MaxBet:   c.Table.MaxBet,
	}
}
