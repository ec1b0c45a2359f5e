package game

// RoundState represents the current phase of a round. The state gates which
// actions are legal and which display mode the presentation layer uses.
type RoundState int

const (
	Betting RoundState = iota
	PlayerTurn
	DealerTurn
	Showdown
	RoundEnd
)

// String returns the string representation of a round state
func (rs RoundState) String() string {
	switch rs {
	case Betting:
		return "betting"
	case PlayerTurn:
		return "player turn"
	case DealerTurn:
		return "dealer turn"
	case Showdown:
		return "showdown"
	case RoundEnd:
		return "round end"
	default:
		return "unknown"
	}
}
