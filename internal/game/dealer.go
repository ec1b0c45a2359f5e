package game

import (
	"github.com/lox/blackjack-cli/internal/deck"
)

// Dealer wraps a hand with hole-card visibility. The dealer has no bankroll;
// the house never busts out of the game.
type Dealer struct {
	Hand           Hand
	holeCardHidden bool
	hasRevealed    bool
}

// NewDealer creates a dealer from the initial two-card deal. The first card
// is the hole card and starts face down.
func NewDealer(cards []deck.Card) (*Dealer, error) {
	hand, err := NewHand(cards)
	if err != nil {
		return nil, err
	}

	return &Dealer{
		Hand:           hand,
		holeCardHidden: true,
	}, nil
}

// HasBlackjack reports a dealer natural. With the hole card dealt this is
// checkable before the reveal, which is what makes the peek rule work.
func (d *Dealer) HasBlackjack() bool {
	return d.Hand.IsBlackjack()
}

// RevealHoleCard turns the hole card face up. Revealing twice is a no-op.
func (d *Dealer) RevealHoleCard() {
	if d.holeCardHidden {
		d.holeCardHidden = false
		d.hasRevealed = true
	}
}

// HoleCardHidden reports whether the hole card is still face down
func (d *Dealer) HoleCardHidden() bool {
	return d.holeCardHidden
}

// HasRevealed reports whether the hole card was revealed this round
func (d *Dealer) HasRevealed() bool {
	return d.hasRevealed
}

// HoleCard returns the face-down card. Display code must gate on
// HoleCardHidden before showing it.
func (d *Dealer) HoleCard() deck.Card {
	return d.Hand.cards[0]
}

// UpCards returns the cards visible to the table: everything except the
// hole card while it stays hidden, the whole hand afterwards.
func (d *Dealer) UpCards() []deck.Card {
	cards := d.Hand.Cards()
	if d.holeCardHidden {
		return cards[1:]
	}
	return cards
}

// ShouldHit applies the fixed house policy: blackjack and bust are
// absorbing, soft 17 hits, anything under 17 hits, hard 17 or better
// stands.
func (d *Dealer) ShouldHit() bool {
	if d.Hand.IsBust() {
		return false
	}
	if d.HasBlackjack() {
		return false
	}

	totals := d.Hand.Totals()

	// Soft 17: an ace counted as eleven reaches 17, so the set holds a
	// second total. The house hits these.
	if len(totals) > 1 {
		for _, t := range totals {
			if t == 17 {
				return true
			}
		}
	}

	max := totals[0]
	for _, t := range totals[1:] {
		if t > max {
			max = t
		}
	}
	return max < 17
}
