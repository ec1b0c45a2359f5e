package game

import "errors"

var (
	// ErrShortHand is returned when a hand is constructed with fewer than
	// the two cards of an initial deal
	ErrShortHand = errors.New("hand requires an initial two-card deal")

	// ErrInvalidBankroll is returned when a player is created with a
	// non-positive starting bankroll
	ErrInvalidBankroll = errors.New("starting bankroll must be positive")

	// ErrNoActivePlayers is returned when a round starts with nobody able
	// to bet
	ErrNoActivePlayers = errors.New("no active players remaining")
)
