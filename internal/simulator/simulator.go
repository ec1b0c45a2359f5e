// Package simulator runs headless blackjack sessions and aggregates the
// results. It exists to answer strategy questions: how does a threshold
// player fare against the house over thousands of rounds?
package simulator

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack-cli/internal/config"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/randutil"
)

// Config holds configuration for running simulations
type Config struct {
	Sessions    int
	Rounds      int
	Seed        int64
	Parallelism int
	Rules       game.Rules
	Players     []config.PlayerConfig
	Logger      *log.Logger
}

// Simulator runs blackjack session simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run executes the simulation and returns aggregated statistics for the
// first configured player. Sessions run in parallel, each on its own
// seeded engine so results are reproducible for a given seed.
func (s *Simulator) Run(ctx context.Context) (*Statistics, error) {
	if len(s.config.Players) == 0 {
		return nil, errors.New("at least one player is required")
	}

	parallelism := s.config.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}

	sessionStats := make([]*Statistics, s.config.Sessions)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i := 0; i < s.config.Sessions; i++ {
		g.Go(func() error {
			// Each session gets an independent seed for replay
			sessionSeed := s.config.Seed + int64(i)

			stats, err := s.runSession(ctx, sessionSeed)
			if err != nil {
				return fmt.Errorf("session %d (seed %d): %w", i+1, sessionSeed, err)
			}
			sessionStats[i] = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &Statistics{}
	for _, stats := range sessionStats {
		merged.Merge(stats)
	}

	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return merged, nil
}

// runSession plays a full session: rounds until the limit, the tracked
// player going bankrupt, or the whole table going bankrupt.
func (s *Simulator) runSession(ctx context.Context, sessionSeed int64) (*Statistics, error) {
	stats := &Statistics{}

	engine := game.NewEngine(randutil.New(sessionSeed), s.config.Rules, s.config.Logger)

	for _, cfg := range s.config.Players {
		agent, err := NewStrategyAgent(cfg, s.config.Logger)
		if err != nil {
			return nil, err
		}
		if _, err := engine.AddPlayer(cfg.Name, cfg.BuyIn, agent); err != nil {
			return nil, err
		}
	}

	tracked := engine.Players()[0]

	for round := 0; round < s.config.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := engine.PlayRound()
		if errors.Is(err, game.ErrNoActivePlayers) {
			break
		}
		if err != nil {
			return nil, err
		}

		for _, r := range result.Results {
			if r.PlayerName != tracked.Name {
				continue
			}
			stats.Add(RoundRecord{
				Net:     float64(r.Credited - r.Bet),
				Seed:    sessionSeed,
				Round:   result.Round,
				Outcome: r.Outcome,
			})
		}

		if tracked.Bankrupt || engine.AllBankrupt() {
			break
		}

		if err := engine.ResetForNextRound(); err != nil {
			return nil, err
		}
	}

	stats.AddSession(float64(tracked.Bankroll), tracked.Bankrupt)
	return stats, nil
}

// PrintSummary prints a comprehensive summary of simulation results
func PrintSummary(stats *Statistics) {
	mean := stats.Mean()
	median := stats.Median()
	stdDev := stats.StdDev()
	stdErr := stats.StdError()
	low, high := stats.ConfidenceInterval95()

	fmt.Printf("\n=== SIMULATION RESULTS ===\n")
	fmt.Printf("Sessions: %d (%d ended bankrupt)\n", stats.Sessions, stats.BankruptSessions)
	fmt.Printf("Rounds played: %d\n", stats.Rounds)

	fmt.Printf("\n=== STATISTICAL RESULTS ===\n")
	fmt.Printf("Mean: %.4f $/round\n", mean)
	fmt.Printf("Median: %.4f $/round\n", median)
	fmt.Printf("Std Dev: %.4f $\n", stdDev)
	fmt.Printf("Std Error: %.4f $\n", stdErr)
	fmt.Printf("95%% CI: [%.4f, %.4f] $/round\n", low, high)

	fmt.Printf("\n=== OUTCOME ANALYSIS ===\n")
	fmt.Printf("Wins: %d (%.1f%%)\n", stats.Wins, stats.WinRate()*100)
	fmt.Printf("Pushes: %d (%.1f%%)\n", stats.Pushes, float64(stats.Pushes)/float64(stats.Rounds)*100)
	fmt.Printf("Losses: %d (%.1f%%)\n", stats.Losses, float64(stats.Losses)/float64(stats.Rounds)*100)
	fmt.Printf("Busts: %d (%.1f%%)\n", stats.Busts, stats.BustRate()*100)

	fmt.Printf("\n=== BANKROLL ANALYSIS ===\n")
	fmt.Printf("Mean final bankroll: $%.2f\n", stats.MeanFinalBankroll())
	fmt.Printf("Net over all rounds: $%.2f\n", stats.AllNet)
}
