package game

import "github.com/lox/blackjack-cli/internal/deck"

// Action represents a player decision during their turn
type Action int

const (
	Hit Action = iota
	Stand
	Quit
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// PlayerView is the read-only state of a player for decision making
type PlayerView struct {
	Name      string
	Cards     []deck.Card
	Totals    []int
	BestTotal int
	Bankroll  int
	Bet       int
	Busted    bool
}

// DealerView is the read-only state of the dealer for decision making.
// While the hole card is hidden only the up cards are populated.
type DealerView struct {
	UpCards    []deck.Card
	HoleHidden bool
	Totals     []int // only populated once the hole card is revealed
}

// TableView is the snapshot handed to an agent when the engine needs a
// decision. Agents receive immutable state and return decisions; all
// mutation stays inside the engine.
type TableView struct {
	State  RoundState
	Round  int
	MinBet int
	MaxBet int
	Player PlayerView
	Dealer DealerView
}

// Agent is any entity (human bridge or strategy) that decides for a player.
// The engine blocks on these calls; input waits are unbounded.
type Agent interface {
	// PlaceBet returns the requested stake for the round. Anything below
	// the table minimum folds the player for the round.
	PlaceBet(view TableView) int

	// Decide returns the next action for the player's turn
	Decide(view TableView) Action
}
