package game

import (
	"time"

	"github.com/lox/blackjack-cli/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeRoundStart   EventType = "round_start"
	EventTypeBetPlaced    EventType = "bet_placed"
	EventTypePlayerAction EventType = "player_action"
	EventTypeCardDealt    EventType = "card_dealt"
	EventTypeDealerReveal EventType = "dealer_reveal"
	EventTypeRoundResult  EventType = "round_result"
	EventTypeRoundEnd     EventType = "round_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a round
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartEvent is published when a new round begins
type RoundStartEvent struct {
	Round     int
	Players   []PlayerView
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundStartEvent creates a new round start event
func NewRoundStartEvent(round int, players []PlayerView) RoundStartEvent {
	return RoundStartEvent{Round: round, Players: players, timestamp: time.Now()}
}

// BetPlacedEvent is published when a player's wager settles for the round.
// Folded is set when the player could not (or chose not to) cover the
// table minimum.
type BetPlacedEvent struct {
	PlayerName string
	Requested  int
	Amount     int
	AllIn      bool
	Folded     bool
	timestamp  time.Time
}

func (e BetPlacedEvent) EventType() EventType { return EventTypeBetPlaced }
func (e BetPlacedEvent) Timestamp() time.Time { return e.timestamp }

// NewBetPlacedEvent creates a new bet placed event
func NewBetPlacedEvent(playerName string, requested, amount int, allIn, folded bool) BetPlacedEvent {
	return BetPlacedEvent{
		PlayerName: playerName,
		Requested:  requested,
		Amount:     amount,
		AllIn:      allIn,
		Folded:     folded,
		timestamp:  time.Now(),
	}
}

// PlayerActionEvent is published when a player hits or stands
type PlayerActionEvent struct {
	PlayerName string
	Action     Action
	Totals     []int
	BestTotal  int
	Busted     bool
	timestamp  time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// NewPlayerActionEvent creates a new player action event
func NewPlayerActionEvent(playerName string, action Action, totals []int, bestTotal int, busted bool) PlayerActionEvent {
	return PlayerActionEvent{
		PlayerName: playerName,
		Action:     action,
		Totals:     append([]int(nil), totals...),
		BestTotal:  bestTotal,
		Busted:     busted,
		timestamp:  time.Now(),
	}
}

// CardDealtEvent is published when a card lands in a hand. Dealer draws
// during the dealer turn use the reserved name "dealer".
type CardDealtEvent struct {
	PlayerName string
	Card       deck.Card
	timestamp  time.Time
}

func (e CardDealtEvent) EventType() EventType { return EventTypeCardDealt }
func (e CardDealtEvent) Timestamp() time.Time { return e.timestamp }

// NewCardDealtEvent creates a new card dealt event
func NewCardDealtEvent(playerName string, card deck.Card) CardDealtEvent {
	return CardDealtEvent{PlayerName: playerName, Card: card, timestamp: time.Now()}
}

// DealerRevealEvent is published when the hole card turns face up
type DealerRevealEvent struct {
	HoleCard  deck.Card
	Cards     []deck.Card
	Totals    []int
	Blackjack bool
	timestamp time.Time
}

func (e DealerRevealEvent) EventType() EventType { return EventTypeDealerReveal }
func (e DealerRevealEvent) Timestamp() time.Time { return e.timestamp }

// NewDealerRevealEvent creates a new dealer reveal event
func NewDealerRevealEvent(holeCard deck.Card, cards []deck.Card, totals []int, blackjack bool) DealerRevealEvent {
	return DealerRevealEvent{
		HoleCard:  holeCard,
		Cards:     append([]deck.Card(nil), cards...),
		Totals:    append([]int(nil), totals...),
		Blackjack: blackjack,
		timestamp: time.Now(),
	}
}

// RoundResultEvent is published per settled bet at showdown
type RoundResultEvent struct {
	PlayerName string
	Outcome    Outcome
	Bet        int
	Credited   int
	Bankroll   int
	timestamp  time.Time
}

func (e RoundResultEvent) EventType() EventType { return EventTypeRoundResult }
func (e RoundResultEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundResultEvent creates a new round result event
func NewRoundResultEvent(playerName string, outcome Outcome, bet, credited, bankroll int) RoundResultEvent {
	return RoundResultEvent{
		PlayerName: playerName,
		Outcome:    outcome,
		Bet:        bet,
		Credited:   credited,
		Bankroll:   bankroll,
		timestamp:  time.Now(),
	}
}

// RoundEndEvent is published once all payouts have settled
type RoundEndEvent struct {
	Round       int
	DealerCards []deck.Card
	DealerBest  int
	Players     []PlayerView
	timestamp   time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundEndEvent creates a new round end event
func NewRoundEndEvent(round int, dealerCards []deck.Card, dealerBest int, players []PlayerView) RoundEndEvent {
	return RoundEndEvent{
		Round:       round,
		DealerCards: append([]deck.Card(nil), dealerCards...),
		DealerBest:  dealerBest,
		Players:     players,
		timestamp:   time.Now(),
	}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
