package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-cli/internal/deck"
)

// cards builds a hand's card list, cycling suits so tests only name ranks
func cards(ranks ...deck.Rank) []deck.Card {
	suits := []deck.Suit{deck.Spades, deck.Hearts, deck.Diamonds, deck.Clubs}
	out := make([]deck.Card, len(ranks))
	for i, r := range ranks {
		out[i] = deck.NewCard(suits[i%len(suits)], r)
	}
	return out
}

func mustHand(t *testing.T, ranks ...deck.Rank) Hand {
	t.Helper()
	h, err := NewHand(cards(ranks...))
	require.NoError(t, err)
	return h
}

func TestNewHandRequiresTwoCards(t *testing.T) {
	_, err := NewHand(cards(deck.Five))
	assert.ErrorIs(t, err, ErrShortHand)

	_, err = NewHand(nil)
	assert.ErrorIs(t, err, ErrShortHand)

	_, err = NewHand(cards(deck.Five, deck.Six))
	assert.NoError(t, err)
}

func TestTotalsWithoutAces(t *testing.T) {
	tests := []struct {
		name  string
		ranks []deck.Rank
		total int
	}{
		{name: "ten five", ranks: []deck.Rank{deck.Ten, deck.Five}, total: 15},
		{name: "face cards", ranks: []deck.Rank{deck.Jack, deck.Queen}, total: 20},
		{name: "low pair", ranks: []deck.Rank{deck.Two, deck.Three}, total: 5},
		{name: "three cards", ranks: []deck.Rank{deck.Seven, deck.Eight, deck.Six}, total: 21},
		{name: "busted", ranks: []deck.Rank{deck.King, deck.Queen, deck.Five}, total: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mustHand(t, tt.ranks...)
			assert.Equal(t, []int{tt.total}, h.Totals())
		})
	}
}

func TestTotalsWithAces(t *testing.T) {
	tests := []struct {
		name   string
		ranks  []deck.Rank
		totals []int
	}{
		{name: "ace six", ranks: []deck.Rank{deck.Ace, deck.Six}, totals: []int{7, 17}},
		{name: "natural", ranks: []deck.Rank{deck.Ace, deck.King}, totals: []int{11, 21}},
		{name: "two aces", ranks: []deck.Rank{deck.Ace, deck.Ace}, totals: []int{2, 12}},
		{name: "aces and nine", ranks: []deck.Rank{deck.Ace, deck.Ace, deck.Nine}, totals: []int{11, 21}},
		{name: "ace after bust risk", ranks: []deck.Rank{deck.Ace, deck.Six, deck.Ten}, totals: []int{17, 27}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mustHand(t, tt.ranks...)
			require.Len(t, h.Totals(), 2)
			assert.Equal(t, tt.totals, h.Totals())
			assert.Equal(t, 10, h.Totals()[1]-h.Totals()[0], "soft and hard totals differ by exactly 10")
		})
	}
}

func TestBestTotal(t *testing.T) {
	tests := []struct {
		name  string
		ranks []deck.Rank
		best  int
	}{
		{name: "hard hand", ranks: []deck.Rank{deck.Ten, deck.Nine}, best: 19},
		{name: "soft prefers high", ranks: []deck.Rank{deck.Ace, deck.Seven}, best: 18},
		{name: "soft falls back to low", ranks: []deck.Rank{deck.Ace, deck.Six, deck.Ten}, best: 17},
		{name: "bust reports lowest", ranks: []deck.Rank{deck.King, deck.Queen, deck.Five}, best: 25},
		{name: "bust with ace reports lowest", ranks: []deck.Rank{deck.Ace, deck.King, deck.Five, deck.Nine}, best: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mustHand(t, tt.ranks...)
			assert.Equal(t, tt.best, h.BestTotal())
			if !h.IsBust() {
				assert.LessOrEqual(t, h.BestTotal(), 21)
			}
		})
	}
}

func TestAddCardRecomputesTotals(t *testing.T) {
	h := mustHand(t, deck.Ace, deck.Six)
	assert.Equal(t, []int{7, 17}, h.Totals())

	h.AddCard(deck.NewCard(deck.Clubs, deck.Ten))
	assert.Equal(t, []int{17, 27}, h.Totals())
	assert.Equal(t, 17, h.BestTotal())
	assert.False(t, h.IsBust())

	h.AddCard(deck.NewCard(deck.Spades, deck.King))
	assert.True(t, h.IsBust())
	assert.Equal(t, 27, h.BestTotal())
}

func TestTotalsReturnsCopy(t *testing.T) {
	h := mustHand(t, deck.Ace, deck.Six)

	totals := h.Totals()
	totals[0] = 99
	totals[1] = 99

	assert.Equal(t, []int{7, 17}, h.Totals(), "callers must not be able to mutate the hand's totals")
}

func TestIsBlackjack(t *testing.T) {
	assert.True(t, mustHand(t, deck.Ace, deck.King).IsBlackjack())
	assert.True(t, mustHand(t, deck.Ten, deck.Ace).IsBlackjack())
	assert.False(t, mustHand(t, deck.Ten, deck.Nine).IsBlackjack(), "21 needs an ace")
	assert.False(t, mustHand(t, deck.Seven, deck.Seven, deck.Seven).IsBlackjack(), "21 with three cards is not a natural")
}

func TestIsSoft(t *testing.T) {
	assert.True(t, mustHand(t, deck.Ace, deck.Six).IsSoft())
	assert.False(t, mustHand(t, deck.Ten, deck.Seven).IsSoft())
	assert.False(t, mustHand(t, deck.Ace, deck.Six, deck.Ten).IsSoft(), "ace forced to one is hard")
}
