package deck

import "testing"

func TestPointValue(t *testing.T) {
	tests := []struct {
		name     string
		card     Card
		low      int
		high     int
		flexible bool
	}{
		{name: "two", card: Card{Suit: Spades, Rank: Two}, low: 2, high: 2},
		{name: "nine", card: Card{Suit: Hearts, Rank: Nine}, low: 9, high: 9},
		{name: "ten", card: Card{Suit: Diamonds, Rank: Ten}, low: 10, high: 10},
		{name: "jack", card: Card{Suit: Clubs, Rank: Jack}, low: 10, high: 10},
		{name: "queen", card: Card{Suit: Spades, Rank: Queen}, low: 10, high: 10},
		{name: "king", card: Card{Suit: Hearts, Rank: King}, low: 10, high: 10},
		{name: "ace", card: Card{Suit: Spades, Rank: Ace}, low: 1, high: 11, flexible: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.card.PointValue()

			if tt.flexible {
				low, high, ok := v.Flexible()
				if !ok {
					t.Fatalf("expected flexible value for %s", tt.card)
				}
				if low != tt.low || high != tt.high {
					t.Errorf("expected %d/%d, got %d/%d", tt.low, tt.high, low, high)
				}
				if _, ok := v.Fixed(); ok {
					t.Errorf("flexible value should not report as fixed")
				}
			} else {
				n, ok := v.Fixed()
				if !ok {
					t.Fatalf("expected fixed value for %s", tt.card)
				}
				if n != tt.low {
					t.Errorf("expected %d, got %d", tt.low, n)
				}
			}
		})
	}
}

func TestPointValueInvalidRankPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid rank")
		}
	}()

	Card{Suit: Spades, Rank: Rank(99)}.PointValue()
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card     Card
		expected string
	}{
		{Card{Suit: Spades, Rank: Ace}, "A♠"},
		{Card{Suit: Hearts, Rank: Ten}, "T♥"},
		{Card{Suit: Diamonds, Rank: Two}, "2♦"},
		{Card{Suit: Clubs, Rank: King}, "K♣"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.expected {
			t.Errorf("expected %s, got %s", tt.expected, got)
		}
	}
}

func TestIsAce(t *testing.T) {
	if !(Card{Suit: Spades, Rank: Ace}).IsAce() {
		t.Error("ace should report as ace")
	}
	if (Card{Suit: Spades, Rank: King}).IsAce() {
		t.Error("king should not report as ace")
	}
}

func TestValueLow(t *testing.T) {
	if got := (Card{Suit: Spades, Rank: Ace}).PointValue().Low(); got != 1 {
		t.Errorf("ace low value: expected 1, got %d", got)
	}
	if got := (Card{Suit: Hearts, Rank: King}).PointValue().Low(); got != 10 {
		t.Errorf("king low value: expected 10, got %d", got)
	}
	if got := (Card{Suit: Clubs, Rank: Seven}).PointValue().Low(); got != 7 {
		t.Errorf("seven low value: expected 7, got %d", got)
	}
}

func TestIsRed(t *testing.T) {
	if !(Card{Suit: Hearts, Rank: Five}).IsRed() {
		t.Error("hearts should be red")
	}
	if (Card{Suit: Spades, Rank: Five}).IsRed() {
		t.Error("spades should not be red")
	}
}
