package game

import (
	"strings"

	"github.com/lox/blackjack-cli/internal/deck"
)

// Hand is an ordered sequence of cards belonging to one participant. Totals
// are derived from the card sequence and cached until the next mutation,
// never set directly.
type Hand struct {
	cards  []deck.Card
	totals []int
}

// NewHand creates a hand from an initial deal. Blackjack hands always start
// with exactly two cards; anything less fails with ErrShortHand.
func NewHand(cards []deck.Card) (Hand, error) {
	if len(cards) < 2 {
		return Hand{}, ErrShortHand
	}

	h := Hand{cards: append([]deck.Card(nil), cards...)}
	h.recompute()
	return h, nil
}

// AddCard appends a card to the hand and recomputes the totals
func (h *Hand) AddCard(card deck.Card) {
	h.cards = append(h.cards, card)
	h.recompute()
}

// recompute derives the legal totals from the current cards. All aces start
// at one; if any ace is present a second total promotes exactly one ace to
// eleven. Promoting more than one can never help, so two totals suffice.
func (h *Hand) recompute() {
	low := 0
	aces := 0

	for _, c := range h.cards {
		low += c.PointValue().Low()
		if c.IsAce() {
			aces++
		}
	}

	if aces > 0 {
		h.totals = []int{low, low + 10}
	} else {
		h.totals = []int{low}
	}
}

// Totals returns the set of legal hand totals, lowest first. Hands with an
// ace carry two totals (hard and soft); all others carry one. The slice is
// a copy, so views and events never alias the hand's cache.
func (h Hand) Totals() []int {
	return append([]int(nil), h.totals...)
}

// BestTotal returns the highest total not exceeding 21, or the lowest total
// when every option busts.
func (h Hand) BestTotal() int {
	best := -1
	for _, t := range h.totals {
		if t <= 21 && t > best {
			best = t
		}
	}
	if best >= 0 {
		return best
	}

	min := h.totals[0]
	for _, t := range h.totals[1:] {
		if t < min {
			min = t
		}
	}
	return min
}

// IsBust reports whether every legal total exceeds 21
func (h Hand) IsBust() bool {
	for _, t := range h.totals {
		if t <= 21 {
			return false
		}
	}
	return true
}

// IsBlackjack reports a natural: exactly two cards totaling 21
func (h Hand) IsBlackjack() bool {
	if len(h.cards) != 2 {
		return false
	}
	for _, t := range h.totals {
		if t == 21 {
			return true
		}
	}
	return false
}

// IsSoft reports whether an ace is currently counted as eleven without
// busting, i.e. the hand has a usable second total.
func (h Hand) IsSoft() bool {
	return len(h.totals) > 1 && h.totals[1] <= 21
}

// Cards returns a copy of the hand's card sequence
func (h Hand) Cards() []deck.Card {
	return append([]deck.Card(nil), h.cards...)
}

// Size returns the number of cards in the hand
func (h Hand) Size() int {
	return len(h.cards)
}

// String returns the string representation of a hand (e.g., "A♠ T♥")
func (h Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
