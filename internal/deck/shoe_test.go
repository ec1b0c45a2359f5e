package deck

import (
	"errors"
	"testing"

	"github.com/lox/blackjack-cli/internal/randutil"
)

func TestNewShoeConservation(t *testing.T) {
	s := NewShoe(randutil.New(1), 6, DefaultCutRange)

	if total := s.Remaining() + s.Discarded(); total != 6*52 {
		t.Errorf("expected %d cards across shoe and discard, got %d", 6*52, total)
	}

	cut := s.Discarded()
	if cut < DefaultCutRange.Min || cut > DefaultCutRange.Max {
		t.Errorf("cut of %d outside range %d-%d", cut, DefaultCutRange.Min, DefaultCutRange.Max)
	}
}

func TestShoeConservationThroughPlay(t *testing.T) {
	s := NewShoe(randutil.New(42), 2, CutRange{Min: 10, Max: 20})

	var hands [][]Card
	for i := 0; i < 5; i++ {
		cards, err := s.Draw(2)
		if err != nil {
			t.Fatalf("draw failed: %v", err)
		}
		hands = append(hands, cards)
	}

	held := 0
	for _, h := range hands {
		held += len(h)
	}
	if total := s.Remaining() + s.Discarded() + held; total != 2*52 {
		t.Errorf("conservation violated: %d cards accounted for, want %d", total, 2*52)
	}

	// Returning hands to the discard pile keeps the total stable
	for _, h := range hands {
		s.Discard(h...)
	}
	if total := s.Remaining() + s.Discarded(); total != 2*52 {
		t.Errorf("conservation violated after discard: %d, want %d", total, 2*52)
	}
}

func TestDrawEmptyShoe(t *testing.T) {
	s := NewShoe(randutil.New(7), 1, CutRange{Min: 0, Max: 0})

	remaining := s.Remaining()
	if _, err := s.Draw(remaining + 1); !errors.Is(err, ErrEmptyShoe) {
		t.Fatalf("expected ErrEmptyShoe, got %v", err)
	}

	// A failed draw must not consume cards
	if s.Remaining() != remaining {
		t.Errorf("failed draw consumed cards: %d remaining, want %d", s.Remaining(), remaining)
	}

	if _, err := s.Draw(remaining); err != nil {
		t.Fatalf("draining the shoe exactly should succeed: %v", err)
	}
	if s.Remaining() != 0 {
		t.Errorf("expected empty shoe, %d remaining", s.Remaining())
	}
}

func TestShoeDeterministicWithSeed(t *testing.T) {
	a := NewShoe(randutil.New(99), 6, DefaultCutRange)
	b := NewShoe(randutil.New(99), 6, DefaultCutRange)

	ca, err := a.Draw(20)
	if err != nil {
		t.Fatal(err)
	}
	cb, err := b.Draw(20)
	if err != nil {
		t.Fatal(err)
	}

	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("same seed produced different shoes at card %d: %s vs %s", i, ca[i], cb[i])
		}
	}
}

func TestShoeContainsFullDecks(t *testing.T) {
	s := NewShoe(randutil.New(3), 2, CutRange{Min: 0, Max: 0})

	cards, err := s.Draw(s.Remaining())
	if err != nil {
		t.Fatal(err)
	}

	counts := make(map[Card]int)
	for _, c := range cards {
		counts[c]++
	}

	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			card := NewCard(suit, rank)
			if counts[card] != 2 {
				t.Errorf("expected 2 copies of %s, got %d", card, counts[card])
			}
		}
	}
}
