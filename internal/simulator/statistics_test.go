package simulator

import (
	"math"
	"testing"

	"github.com/lox/blackjack-cli/internal/game"
)

func TestStatisticsAdd(t *testing.T) {
	stats := &Statistics{}
	stats.Add(RoundRecord{Net: 20, Outcome: game.Win})
	stats.Add(RoundRecord{Net: -20, Outcome: game.Lose})
	stats.Add(RoundRecord{Net: 0, Outcome: game.Push})
	stats.Add(RoundRecord{Net: -10, Outcome: game.Bust})
	stats.AddSession(190, false)

	if stats.Rounds != 4 {
		t.Errorf("expected 4 rounds, got %d", stats.Rounds)
	}
	if stats.Wins != 1 || stats.Pushes != 1 || stats.Losses != 1 || stats.Busts != 1 {
		t.Errorf("unexpected outcome buckets: %d/%d/%d/%d",
			stats.Wins, stats.Pushes, stats.Losses, stats.Busts)
	}
	if got := stats.Mean(); math.Abs(got-(-2.5)) > 1e-9 {
		t.Errorf("expected mean -2.5, got %f", got)
	}
	if !stats.IsLedgerBalanced() {
		t.Error("expected balanced ledger")
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("expected valid statistics, got %v", err)
	}
}

func TestStatisticsMerge(t *testing.T) {
	a := &Statistics{}
	a.Add(RoundRecord{Net: 20, Outcome: game.Win})
	a.AddSession(220, false)

	b := &Statistics{}
	b.Add(RoundRecord{Net: -20, Outcome: game.Lose})
	b.Add(RoundRecord{Net: -180, Outcome: game.Bust})
	b.AddSession(0, true)

	a.Merge(b)

	if a.Rounds != 3 {
		t.Errorf("expected 3 rounds after merge, got %d", a.Rounds)
	}
	if a.Sessions != 2 || a.BankruptSessions != 1 {
		t.Errorf("expected 2 sessions with 1 bankrupt, got %d/%d", a.Sessions, a.BankruptSessions)
	}
	if got := a.MeanFinalBankroll(); math.Abs(got-110) > 1e-9 {
		t.Errorf("expected mean final bankroll 110, got %f", got)
	}
	if err := a.Validate(); err != nil {
		t.Errorf("expected valid merged statistics, got %v", err)
	}
}

func TestStatisticsMedian(t *testing.T) {
	stats := &Statistics{}
	for _, net := range []float64{-20, 0, 20, 40} {
		outcome := game.Win
		if net < 0 {
			outcome = game.Lose
		} else if net == 0 {
			outcome = game.Push
		}
		stats.Add(RoundRecord{Net: net, Outcome: outcome})
	}

	if got := stats.Median(); math.Abs(got-10) > 1e-9 {
		t.Errorf("expected median 10, got %f", got)
	}
}

func TestStatisticsVariance(t *testing.T) {
	stats := &Statistics{}
	stats.Add(RoundRecord{Net: 10, Outcome: game.Win})
	stats.Add(RoundRecord{Net: -10, Outcome: game.Lose})

	// Sample variance of {10, -10} is 200
	if got := stats.Variance(); math.Abs(got-200) > 1e-9 {
		t.Errorf("expected variance 200, got %f", got)
	}
}

func TestValidateCatchesBucketMismatch(t *testing.T) {
	stats := &Statistics{}
	stats.Add(RoundRecord{Net: 20, Outcome: game.Win})
	stats.Wins++ // Corrupt the buckets

	if err := stats.Validate(); err == nil {
		t.Error("expected validation error for corrupted buckets")
	}
}
