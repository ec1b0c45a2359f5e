package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrEmptyShoe is returned when a draw asks for more cards than remain
var ErrEmptyShoe = errors.New("shoe is empty")

// DefaultNumDecks is the casino-standard shoe size
const DefaultNumDecks = 6

// CutRange bounds the random cut taken from the bottom of a fresh shoe.
// Casinos cut a block of cards out of play so the shoe never runs down to
// a predictable tail.
type CutRange struct {
	Min int
	Max int
}

// DefaultCutRange removes 60-75 cards from the bottom of the shoe
var DefaultCutRange = CutRange{Min: 60, Max: 75}

// Shoe is a shuffled multi-deck stack of cards plus a discard pile.
// The remaining and discarded sequences are disjoint owned slices; a card
// is always in exactly one of the shoe, a hand, or the discard pile.
type Shoe struct {
	numDecks int
	cards    []Card
	discard  []Card
	rng      *rand.Rand
}

// NewShoe builds a shoe from numDecks shuffled standard decks, then cuts a
// random block (within cut) from the bottom into the discard pile.
func NewShoe(rng *rand.Rand, numDecks int, cut CutRange) *Shoe {
	if numDecks <= 0 {
		numDecks = DefaultNumDecks
	}

	s := &Shoe{
		numDecks: numDecks,
		cards:    make([]Card, 0, numDecks*52),
		rng:      rng,
	}

	for i := 0; i < numDecks; i++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}

	rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})

	s.cut(cut)
	return s
}

// NewStackedShoe builds a shoe that deals the given cards in order, with no
// shuffle and no cut. Tests use it to rig specific deals.
func NewStackedShoe(numDecks int, cards []Card) *Shoe {
	return &Shoe{
		numDecks: numDecks,
		cards:    append([]Card(nil), cards...),
	}
}

// cut moves a random block of cards from the bottom of the shoe into the
// discard pile. The block size never exceeds what the shoe can spare.
func (s *Shoe) cut(cut CutRange) {
	if cut.Max < cut.Min || cut.Min < 0 {
		cut = DefaultCutRange
	}
	n := cut.Min
	if cut.Max > cut.Min {
		n += s.rng.IntN(cut.Max - cut.Min + 1)
	}
	if n >= len(s.cards) {
		n = len(s.cards) / 2
	}

	bottom := len(s.cards) - n
	s.discard = append(s.discard, s.cards[bottom:]...)
	s.cards = s.cards[:bottom]
}

// Draw removes and returns the top n cards from the shoe. It fails with
// ErrEmptyShoe when fewer than n cards remain, leaving the shoe untouched.
func (s *Shoe) Draw(n int) ([]Card, error) {
	if n > len(s.cards) {
		return nil, fmt.Errorf("draw %d of %d remaining: %w", n, len(s.cards), ErrEmptyShoe)
	}

	cards := make([]Card, n)
	copy(cards, s.cards[:n])
	s.cards = s.cards[n:]
	return cards, nil
}

// Discard returns cards from completed hands to the discard pile
func (s *Shoe) Discard(cards ...Card) {
	s.discard = append(s.discard, cards...)
}

// Remaining returns the number of cards left to draw
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// Discarded returns the number of cards in the discard pile
func (s *Shoe) Discarded() int {
	return len(s.discard)
}

// NumDecks returns the number of decks the shoe was built from
func (s *Shoe) NumDecks() int {
	return s.numDecks
}
