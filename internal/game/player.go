package game

import (
	"github.com/lox/blackjack-cli/internal/deck"
)

// Player wraps a hand with a bankroll that persists across rounds. Busted
// and Folded are per-round flags; Bankrupt tracks whether the bankroll can
// still cover play and is recomputed after every debit and credit.
type Player struct {
	Name     string
	Hand     Hand
	Bankroll int
	Bet      int
	Busted   bool
	Folded   bool
	Bankrupt bool
}

// NewPlayer creates a player with a starting bankroll and an initial
// two-card hand. A non-positive bankroll fails with ErrInvalidBankroll.
func NewPlayer(name string, bankroll int, cards []deck.Card) (*Player, error) {
	if bankroll <= 0 {
		return nil, ErrInvalidBankroll
	}

	hand, err := NewHand(cards)
	if err != nil {
		return nil, err
	}

	return &Player{
		Name:     name,
		Hand:     hand,
		Bankroll: bankroll,
	}, nil
}

// PlaceBet debits the round's wager and returns the amount actually staked.
// Requests above the table maximum are clamped to it, and a bet at or above
// the remaining bankroll silently becomes an all-in rather than an error.
// A player who cannot cover the table minimum, or asks below it, folds for
// the round and stakes nothing.
func (p *Player) PlaceBet(requested, tableMin, tableMax int) int {
	if p.Bankrupt || p.Bankroll < tableMin || requested < tableMin {
		p.Folded = true
		return 0
	}

	bet := requested
	if tableMax > 0 && bet > tableMax {
		bet = tableMax
	}
	if bet >= p.Bankroll {
		bet = p.Bankroll // all-in
	}

	p.Bankroll -= bet
	p.Bet = bet
	p.checkBankruptcy()
	return bet
}

// Credit pays winnings (or a returned stake) into the bankroll
func (p *Player) Credit(amount int) {
	p.Bankroll += amount
	p.checkBankruptcy()
}

// checkBankruptcy recomputes the bankrupt flag from the current bankroll.
// A player all-in at zero is only out for good if the round's payout does
// not restore them.
func (p *Player) checkBankruptcy() {
	p.Bankrupt = p.Bankroll <= 0
}

// HasBet reports whether the player staked money this round. An all-in
// player has a zero bankroll but still holds a live bet to settle at
// showdown.
func (p *Player) HasBet() bool {
	return p.Bet > 0 && !p.Folded
}

// CanAct reports whether the player may still hit or stand
func (p *Player) CanAct() bool {
	return p.HasBet() && !p.Busted
}
