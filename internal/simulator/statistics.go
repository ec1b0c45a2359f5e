package simulator

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/blackjack-cli/internal/game"
)

// RoundRecord represents the outcome of a single round for the tracked player
type RoundRecord struct {
	Net     float64 // Net dollars won/lost this round
	Seed    int64   // Session seed (for replay)
	Round   int     // Round number within the session
	Outcome game.Outcome
}

// Statistics tracks simulation results across sessions
type Statistics struct {
	Rounds  int
	SumNet  float64
	SumNet2 float64   // Sum of squares for variance calculation
	Values  []float64 // Store all values for median/percentile calculation

	// Outcome buckets - every round lands in exactly one
	Wins   int
	Pushes int
	Losses int
	Busts  int

	// Net broken down by outcome for the ledger check
	WinNet  float64
	LossNet float64
	AllNet  float64

	// Session analytics
	Sessions         int
	BankruptSessions int
	FinalBankrolls   []float64
}

// Add incorporates a round result into the statistics
func (s *Statistics) Add(record RoundRecord) {
	net := record.Net
	s.Rounds++
	s.SumNet += net
	s.SumNet2 += net * net
	s.Values = append(s.Values, net)

	switch record.Outcome {
	case game.Win:
		s.Wins++
		s.WinNet += net
	case game.Push:
		s.Pushes++
	case game.Lose:
		s.Losses++
		s.LossNet += net
	case game.Bust:
		s.Busts++
		s.LossNet += net
	}
	s.AllNet += net
}

// AddSession records the end of one session
func (s *Statistics) AddSession(finalBankroll float64, bankrupt bool) {
	s.Sessions++
	s.FinalBankrolls = append(s.FinalBankrolls, finalBankroll)
	if bankrupt {
		s.BankruptSessions++
	}
}

// Merge folds another statistics block into this one
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.SumNet += other.SumNet
	s.SumNet2 += other.SumNet2
	s.Values = append(s.Values, other.Values...)

	s.Wins += other.Wins
	s.Pushes += other.Pushes
	s.Losses += other.Losses
	s.Busts += other.Busts

	s.WinNet += other.WinNet
	s.LossNet += other.LossNet
	s.AllNet += other.AllNet

	s.Sessions += other.Sessions
	s.BankruptSessions += other.BankruptSessions
	s.FinalBankrolls = append(s.FinalBankrolls, other.FinalBankrolls...)
}

// Mean returns the arithmetic mean of all results in dollars per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumNet / float64(s.Rounds)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// WinRate returns the fraction of rounds won
func (s *Statistics) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Rounds)
}

// BustRate returns the fraction of rounds the tracked player busted
func (s *Statistics) BustRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Busts) / float64(s.Rounds)
}

// MeanFinalBankroll returns the average bankroll at session end
func (s *Statistics) MeanFinalBankroll() float64 {
	if len(s.FinalBankrolls) == 0 {
		return 0
	}
	sum := 0.0
	for _, b := range s.FinalBankrolls {
		sum += b
	}
	return sum / float64(len(s.FinalBankrolls))
}

// IsLedgerBalanced checks if the accounting is consistent. Pushes always
// net zero, so wins and losses must account for everything.
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllNet-s.WinNet-s.LossNet) <= 1e-6
}

// Validate performs comprehensive validation of statistics data
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: AllNet=%.6f, WinNet=%.6f, LossNet=%.6f",
			s.AllNet, s.WinNet, s.LossNet)
	}

	if s.Rounds <= 0 {
		return fmt.Errorf("invalid round count: %d", s.Rounds)
	}

	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values array length (%d) does not match round count (%d)",
			len(s.Values), s.Rounds)
	}

	if bucketed := s.Wins + s.Pushes + s.Losses + s.Busts; bucketed != s.Rounds {
		return fmt.Errorf("outcome buckets total (%d) does not match round count (%d)",
			bucketed, s.Rounds)
	}

	if s.BankruptSessions > s.Sessions {
		return fmt.Errorf("bankrupt sessions (%d) exceeds total sessions (%d)",
			s.BankruptSessions, s.Sessions)
	}

	return nil
}
