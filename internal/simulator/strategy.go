package simulator

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/config"
	"github.com/lox/blackjack-cli/internal/game"
)

// ThresholdAgent hits until its best total reaches a fixed threshold. With
// a threshold of 17 this is the basic "play like the book says stand on 17"
// strategy.
type ThresholdAgent struct {
	bet       int
	threshold int
	logger    *log.Logger
}

// NewThresholdAgent creates an agent that stands at or above threshold
func NewThresholdAgent(bet, threshold int, logger *log.Logger) *ThresholdAgent {
	return &ThresholdAgent{bet: bet, threshold: threshold, logger: logger}
}

func (a *ThresholdAgent) PlaceBet(view game.TableView) int {
	return a.bet
}

func (a *ThresholdAgent) Decide(view game.TableView) game.Action {
	if view.Player.BestTotal < a.threshold {
		a.logger.Debug("threshold agent hits",
			"player", view.Player.Name,
			"total", view.Player.BestTotal,
			"threshold", a.threshold)
		return game.Hit
	}
	return game.Stand
}

// MimicAgent plays by the house's own rules: hit below hard 17, hit soft 17
type MimicAgent struct {
	bet    int
	logger *log.Logger
}

// NewMimicAgent creates an agent that copies the dealer's fixed policy
func NewMimicAgent(bet int, logger *log.Logger) *MimicAgent {
	return &MimicAgent{bet: bet, logger: logger}
}

func (a *MimicAgent) PlaceBet(view game.TableView) int {
	return a.bet
}

func (a *MimicAgent) Decide(view game.TableView) game.Action {
	totals := view.Player.Totals

	if len(totals) > 1 {
		for _, t := range totals {
			if t == 17 {
				return game.Hit
			}
		}
	}

	max := 0
	for _, t := range totals {
		if t > max {
			max = t
		}
	}
	if max < 17 {
		return game.Hit
	}
	return game.Stand
}

// StandAgent never hits. Useful as a baseline: it only ever loses to a
// dealer hand that beats the deal.
type StandAgent struct {
	bet int
}

// NewStandAgent creates an agent that stands on every hand
func NewStandAgent(bet int) *StandAgent {
	return &StandAgent{bet: bet}
}

func (a *StandAgent) PlaceBet(view game.TableView) int {
	return a.bet
}

func (a *StandAgent) Decide(view game.TableView) game.Action {
	return game.Stand
}

// NewStrategyAgent creates an agent from a player configuration
func NewStrategyAgent(cfg config.PlayerConfig, logger *log.Logger) (game.Agent, error) {
	switch cfg.Strategy {
	case "threshold":
		return NewThresholdAgent(cfg.Bet, cfg.Threshold, logger), nil
	case "mimic":
		return NewMimicAgent(cfg.Bet, logger), nil
	case "stand":
		return NewStandAgent(cfg.Bet), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q for player %s", cfg.Strategy, cfg.Name)
	}
}
