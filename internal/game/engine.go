package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/deck"
)

// maxDealerDraws caps the dealer hitting loop. Totals only grow, so the
// loop terminates long before this in practice.
const maxDealerDraws = 16

// Rules holds the table configuration for an engine
type Rules struct {
	NumDecks int
	CutRange deck.CutRange
	MinBet   int
	MaxBet   int
}

// DefaultRules returns the standard table: a six-deck shoe cut by 60-75
// cards, $10 minimum and $100 maximum bets.
func DefaultRules() Rules {
	return Rules{
		NumDecks: deck.DefaultNumDecks,
		CutRange: deck.DefaultCutRange,
		MinBet:   10,
		MaxBet:   100,
	}
}

// PlayerResult is one player's settled outcome for a round
type PlayerResult struct {
	PlayerName string
	Outcome    Outcome
	Bet        int
	Credited   int
	Bankroll   int
}

// RoundResult contains the results of a completed round
type RoundResult struct {
	Round           int
	DealerBlackjack bool
	DealerBust      bool
	DealerBest      int
	Results         []PlayerResult
	Quit            bool
}

// Engine drives the round lifecycle: betting, the dealer peek, player
// turns, the dealer turn, showdown and payouts. It owns the shoe, the
// hands and the bankrolls for its entire lifetime; agents only ever see
// read-only views and return decisions.
type Engine struct {
	rules    Rules
	rng      *rand.Rand
	shoe     *deck.Shoe
	players  []*Player
	agents   map[string]Agent
	dealer   *Dealer
	state    RoundState
	round    int
	logger   *log.Logger
	eventBus EventBus
}

// Option configures an engine at construction
type Option func(*Engine)

// WithShoe replaces the freshly shuffled shoe, usually with a stacked one
// for deterministic tests.
func WithShoe(s *deck.Shoe) Option {
	return func(e *Engine) {
		e.shoe = s
	}
}

// NewEngine creates an engine with a fresh shoe. The rng drives the shoe
// shuffle and cut; pass a seeded randutil.New for reproducible sessions.
func NewEngine(rng *rand.Rand, rules Rules, logger *log.Logger, opts ...Option) *Engine {
	e := &Engine{
		rules:    rules,
		rng:      rng,
		shoe:     deck.NewShoe(rng, rules.NumDecks, rules.CutRange),
		agents:   make(map[string]Agent),
		state:    Betting,
		logger:   logger,
		eventBus: NewEventBus(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EventBus returns the bus presentation layers subscribe to
func (e *Engine) EventBus() EventBus {
	return e.eventBus
}

// AddPlayer seats a player with a buy-in and the agent that will decide for
// them, and deals their initial hand. Players act in the order they were
// seated, every round.
func (e *Engine) AddPlayer(name string, buyIn int, agent Agent) (*Player, error) {
	cards, err := e.shoe.Draw(2)
	if err != nil {
		return nil, err
	}

	player, err := NewPlayer(name, buyIn, cards)
	if err != nil {
		return nil, err
	}

	e.players = append(e.players, player)
	e.agents[name] = agent
	return player, nil
}

// Players returns the seated players in acting order
func (e *Engine) Players() []*Player {
	return e.players
}

// Dealer returns the current dealer, nil before the first round
func (e *Engine) Dealer() *Dealer {
	return e.dealer
}

// State returns the current round state
func (e *Engine) State() RoundState {
	return e.state
}

// Round returns the number of the round in progress (1-based)
func (e *Engine) Round() int {
	return e.round
}

// Shoe returns the engine's shoe
func (e *Engine) Shoe() *deck.Shoe {
	return e.shoe
}

// AllBankrupt reports whether nobody at the table can bet again
func (e *Engine) AllBankrupt() bool {
	for _, p := range e.players {
		if !p.Bankrupt {
			return false
		}
	}
	return len(e.players) > 0
}

// PlayRound runs a complete round from betting to payout and returns the
// result. The caller drives continuation: call ResetForNextRound before
// the next PlayRound.
func (e *Engine) PlayRound() (*RoundResult, error) {
	if err := e.ensureDealer(); err != nil {
		return nil, err
	}

	e.round++
	result := &RoundResult{Round: e.round}

	e.logger.Debug("starting round", "round", e.round)
	e.state = Betting
	e.eventBus.Publish(NewRoundStartEvent(e.round, e.playerViews()))

	if e.collectBets() == 0 {
		return nil, ErrNoActivePlayers
	}

	e.state = PlayerTurn

	// Peek: a dealer natural ends the round before anyone hits
	if e.dealer.HasBlackjack() {
		e.logger.Debug("dealer blackjack on the deal", "round", e.round)
		e.revealDealer()
		e.settle(result)
		return result, e.validateCardConservation()
	}

	for _, p := range e.players {
		quit, err := e.playTurn(p)
		if err != nil {
			return nil, err
		}
		if quit {
			result.Quit = true
			return result, nil
		}
	}

	// The dealer only plays against standing hands; an all-busted table
	// settles against the dealer's cards as dealt.
	if e.anyPlayerStanding() {
		e.state = DealerTurn
		if err := e.playDealer(); err != nil {
			return nil, err
		}
	}

	e.settle(result)
	return result, e.validateCardConservation()
}

// ensureDealer deals the dealer's initial hand on the first round
func (e *Engine) ensureDealer() error {
	if e.dealer != nil {
		return nil
	}

	cards, err := e.shoe.Draw(2)
	if err != nil {
		return err
	}

	dealer, err := NewDealer(cards)
	if err != nil {
		return err
	}
	e.dealer = dealer
	return nil
}

// collectBets runs the betting phase and returns how many live bets were
// staked. Bankrupt players are skipped entirely; everyone else is asked.
func (e *Engine) collectBets() int {
	staked := 0
	for _, p := range e.players {
		if p.Bankrupt {
			continue
		}

		requested := e.agents[p.Name].PlaceBet(e.viewFor(p))
		amount := p.PlaceBet(requested, e.rules.MinBet, e.rules.MaxBet)
		allIn := amount > 0 && p.Bankroll == 0

		e.logger.Debug("bet placed",
			"player", p.Name,
			"requested", requested,
			"staked", amount,
			"allIn", allIn,
			"folded", p.Folded)
		e.eventBus.Publish(NewBetPlacedEvent(p.Name, requested, amount, allIn, p.Folded))

		if amount > 0 {
			staked++
		}
	}
	return staked
}

// playTurn runs one player's hit/stand loop. Returns true if the player
// chose to quit the game.
func (e *Engine) playTurn(p *Player) (bool, error) {
	for p.CanAct() {
		action := e.agents[p.Name].Decide(e.viewFor(p))

		switch action {
		case Hit:
			cards, err := e.shoe.Draw(1)
			if err != nil {
				return false, err
			}
			p.Hand.AddCard(cards[0])
			e.eventBus.Publish(NewCardDealtEvent(p.Name, cards[0]))

			if p.Hand.IsBust() {
				p.Busted = true
			}
			e.logger.Debug("player hits",
				"player", p.Name,
				"card", cards[0].String(),
				"totals", p.Hand.Totals(),
				"busted", p.Busted)
			e.eventBus.Publish(NewPlayerActionEvent(p.Name, Hit, p.Hand.Totals(), p.Hand.BestTotal(), p.Busted))

		case Stand:
			e.logger.Debug("player stands", "player", p.Name, "total", p.Hand.BestTotal())
			e.eventBus.Publish(NewPlayerActionEvent(p.Name, Stand, p.Hand.Totals(), p.Hand.BestTotal(), false))
			return false, nil

		case Quit:
			e.logger.Info("player quit", "player", p.Name, "round", e.round)
			return true, nil

		default:
			return false, fmt.Errorf("unknown action %d from agent for %s", action, p.Name)
		}
	}
	return false, nil
}

// playDealer reveals the hole card and runs the house hitting loop
func (e *Engine) playDealer() error {
	e.revealDealer()

	for draws := 0; e.dealer.ShouldHit(); draws++ {
		if draws >= maxDealerDraws {
			return fmt.Errorf("dealer exceeded %d draws, hand %s", maxDealerDraws, e.dealer.Hand)
		}

		cards, err := e.shoe.Draw(1)
		if err != nil {
			return err
		}
		e.dealer.Hand.AddCard(cards[0])

		e.logger.Debug("dealer hits",
			"card", cards[0].String(),
			"totals", e.dealer.Hand.Totals())
		e.eventBus.Publish(NewCardDealtEvent("dealer", cards[0]))
	}
	return nil
}

// revealDealer turns the hole card face up and announces it once
func (e *Engine) revealDealer() {
	if !e.dealer.HoleCardHidden() {
		return
	}
	e.dealer.RevealHoleCard()
	e.eventBus.Publish(NewDealerRevealEvent(
		e.dealer.HoleCard(),
		e.dealer.Hand.Cards(),
		e.dealer.Hand.Totals(),
		e.dealer.HasBlackjack(),
	))
}

// settle resolves every live bet against the dealer, credits payouts and
// updates bankruptcy flags.
func (e *Engine) settle(result *RoundResult) {
	e.state = Showdown
	e.revealDealer()

	result.DealerBlackjack = e.dealer.HasBlackjack()
	result.DealerBust = e.dealer.Hand.IsBust()
	result.DealerBest = e.dealer.Hand.BestTotal()

	for _, p := range e.players {
		if !p.HasBet() {
			continue
		}

		outcome := DetermineOutcome(p, e.dealer)
		credited := Payout(outcome, p.Bet)
		p.Credit(credited)

		e.logger.Debug("bet settled",
			"player", p.Name,
			"outcome", outcome,
			"bet", p.Bet,
			"credited", credited,
			"bankroll", p.Bankroll)
		e.eventBus.Publish(NewRoundResultEvent(p.Name, outcome, p.Bet, credited, p.Bankroll))

		result.Results = append(result.Results, PlayerResult{
			PlayerName: p.Name,
			Outcome:    outcome,
			Bet:        p.Bet,
			Credited:   credited,
			Bankroll:   p.Bankroll,
		})
	}

	e.state = RoundEnd
	e.eventBus.Publish(NewRoundEndEvent(e.round, e.dealer.Hand.Cards(), result.DealerBest, e.playerViews()))
}

// ResetForNextRound returns all hands to the discard pile, deals fresh
// two-card hands to every non-bankrupt player, recreates the dealer and
// clears the per-round bets. Bankrupt players keep their seat but receive
// no hand and no bet. The shoe is replaced with a new one only when it can
// no longer cover the next deal.
func (e *Engine) ResetForNextRound() error {
	for _, p := range e.players {
		if p.Hand.Size() > 0 {
			e.shoe.Discard(p.Hand.Cards()...)
			p.Hand = Hand{}
		}
		p.Bet = 0
		p.Busted = false
		p.Folded = false
	}

	if e.dealer != nil {
		e.shoe.Discard(e.dealer.Hand.Cards()...)
		e.dealer = nil
	}

	needed := 2 // dealer
	for _, p := range e.players {
		if !p.Bankrupt {
			needed += 2
		}
	}
	if e.shoe.Remaining() < needed {
		e.logger.Info("shoe exhausted, bringing in a new one",
			"remaining", e.shoe.Remaining(), "needed", needed)
		e.shoe = deck.NewShoe(e.rng, e.rules.NumDecks, e.rules.CutRange)
	}

	for _, p := range e.players {
		if p.Bankrupt {
			continue
		}
		cards, err := e.shoe.Draw(2)
		if err != nil {
			return err
		}
		hand, err := NewHand(cards)
		if err != nil {
			return err
		}
		p.Hand = hand
	}

	if err := e.ensureDealer(); err != nil {
		return err
	}

	e.state = Betting
	return nil
}

// validateCardConservation checks that every card is in exactly one of the
// shoe, a hand, or the discard pile.
func (e *Engine) validateCardConservation() error {
	held := e.dealer.Hand.Size()
	for _, p := range e.players {
		held += p.Hand.Size()
	}

	total := e.shoe.Remaining() + e.shoe.Discarded() + held
	if want := e.shoe.NumDecks() * 52; total != want {
		return fmt.Errorf("card conservation violated: %d cards accounted for, want %d", total, want)
	}
	return nil
}

// anyPlayerStanding reports whether at least one live bet survived the
// player turns.
func (e *Engine) anyPlayerStanding() bool {
	for _, p := range e.players {
		if p.HasBet() && !p.Busted {
			return true
		}
	}
	return false
}

// viewFor builds the read-only snapshot an agent decides from
func (e *Engine) viewFor(p *Player) TableView {
	dv := DealerView{
		UpCards:    e.dealer.UpCards(),
		HoleHidden: e.dealer.HoleCardHidden(),
	}
	if !e.dealer.HoleCardHidden() {
		dv.Totals = e.dealer.Hand.Totals()
	}

	return TableView{
		State:  e.state,
		Round:  e.round,
		MinBet: e.rules.MinBet,
		MaxBet: e.rules.MaxBet,
		Player: e.playerView(p),
		Dealer: dv,
	}
}

func (e *Engine) playerView(p *Player) PlayerView {
	pv := PlayerView{
		Name:     p.Name,
		Bankroll: p.Bankroll,
		Bet:      p.Bet,
		Busted:   p.Busted,
	}
	if p.Hand.Size() > 0 {
		pv.Cards = p.Hand.Cards()
		pv.Totals = p.Hand.Totals()
		pv.BestTotal = p.Hand.BestTotal()
	}
	return pv
}

func (e *Engine) playerViews() []PlayerView {
	views := make([]PlayerView, len(e.players))
	for i, p := range e.players {
		views[i] = e.playerView(p)
	}
	return views
}
