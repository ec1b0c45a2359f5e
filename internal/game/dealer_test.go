package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-cli/internal/deck"
)

func mustDealer(t *testing.T, ranks ...deck.Rank) *Dealer {
	t.Helper()
	d, err := NewDealer(cards(ranks...))
	require.NoError(t, err)
	return d
}

func TestDealerShouldHit(t *testing.T) {
	tests := []struct {
		name  string
		ranks []deck.Rank
		hit   bool
	}{
		{name: "soft 17 hits", ranks: []deck.Rank{deck.Ace, deck.Six}, hit: true},
		{name: "hard 17 stands", ranks: []deck.Rank{deck.Ten, deck.Seven}, hit: false},
		{name: "sixteen hits", ranks: []deck.Rank{deck.Ten, deck.Six}, hit: true},
		{name: "twelve hits", ranks: []deck.Rank{deck.Ten, deck.Two}, hit: true},
		{name: "eighteen stands", ranks: []deck.Rank{deck.Ten, deck.Eight}, hit: false},
		{name: "soft 18 stands", ranks: []deck.Rank{deck.Ace, deck.Seven}, hit: false},
		{name: "blackjack absorbing", ranks: []deck.Rank{deck.Ace, deck.King}, hit: false},
		{name: "bust absorbing", ranks: []deck.Rank{deck.Ten, deck.Six, deck.King}, hit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustDealer(t, tt.ranks...)
			d.RevealHoleCard()
			assert.Equal(t, tt.hit, d.ShouldHit())
		})
	}
}

func TestDealerPeekBlackjack(t *testing.T) {
	d := mustDealer(t, deck.Ace, deck.Queen)
	assert.True(t, d.HasBlackjack(), "blackjack is detectable before the reveal")
	assert.True(t, d.HoleCardHidden())

	d = mustDealer(t, deck.Ten, deck.Seven)
	assert.False(t, d.HasBlackjack())
}

func TestDealerRevealIdempotent(t *testing.T) {
	d := mustDealer(t, deck.Ten, deck.Seven)
	require.True(t, d.HoleCardHidden())
	assert.False(t, d.HasRevealed())

	d.RevealHoleCard()
	assert.False(t, d.HoleCardHidden())
	assert.True(t, d.HasRevealed())

	// second reveal is a no-op
	d.RevealHoleCard()
	assert.False(t, d.HoleCardHidden())
	assert.True(t, d.HasRevealed())
}

func TestDealerUpCards(t *testing.T) {
	d := mustDealer(t, deck.Ten, deck.Seven)

	up := d.UpCards()
	require.Len(t, up, 1, "hole card stays hidden")
	assert.Equal(t, deck.Seven, up[0].Rank)

	d.RevealHoleCard()
	up = d.UpCards()
	require.Len(t, up, 2)
	assert.Equal(t, deck.Ten, up[0].Rank)
}

func TestDealerHitLoopTerminatesOnBust(t *testing.T) {
	d := mustDealer(t, deck.Ten, deck.Six)
	d.RevealHoleCard()
	require.True(t, d.ShouldHit())

	d.Hand.AddCard(deck.NewCard(deck.Clubs, deck.King))
	assert.True(t, d.Hand.IsBust())
	assert.False(t, d.ShouldHit(), "bust is terminal")
}
