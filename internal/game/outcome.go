package game

// Outcome is the result of one player's hand against the dealer
type Outcome int

const (
	Bust Outcome = iota
	Win
	Push
	Lose
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case Bust:
		return "bust"
	case Win:
		return "win"
	case Push:
		return "push"
	case Lose:
		return "lose"
	default:
		return "unknown"
	}
}

// DetermineOutcome resolves a player's hand against the dealer. A busted
// player loses outright whatever the dealer holds; otherwise a dealer bust
// is a win and the best totals are compared, each side taken at its most
// favorable legal value.
func DetermineOutcome(player *Player, dealer *Dealer) Outcome {
	if player.Busted {
		return Bust
	}
	if dealer.Hand.IsBust() {
		return Win
	}

	playerBest := player.Hand.BestTotal()
	dealerBest := dealer.Hand.BestTotal()

	switch {
	case playerBest > dealerBest:
		return Win
	case playerBest == dealerBest:
		return Push
	default:
		return Lose
	}
}

// Payout returns the amount credited back for a settled bet: a win pays the
// stake plus equal winnings, a push returns the stake, a loss or bust pays
// nothing (the stake was debited at bet time).
func Payout(outcome Outcome, bet int) int {
	switch outcome {
	case Win:
		return bet * 2
	case Push:
		return bet
	default:
		return 0
	}
}
