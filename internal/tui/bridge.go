package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
)

// EventLogger subscribes to the engine's event bus and narrates the round
// into the TUI log, hand-history style.
type EventLogger struct {
	tui       *Model
	humanName string
}

// NewEventLogger creates a subscriber that writes game events to the TUI
func NewEventLogger(tui *Model, humanName string) *EventLogger {
	return &EventLogger{tui: tui, humanName: humanName}
}

// OnEvent renders a game event into log lines
func (l *EventLogger) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.RoundStartEvent:
		l.tui.AddLogEntry("")
		l.tui.AddLogEntry(fmt.Sprintf("=== Round %d ===", e.Round))
		for _, p := range e.Players {
			if p.Name == l.humanName && len(p.Cards) > 0 {
				l.tui.AddLogEntry(fmt.Sprintf("Dealt to you: %s %s",
					l.tui.FormatCards(p.Cards), formatTotals(p.Totals)))
			}
		}

	case game.BetPlacedEvent:
		switch {
		case e.Folded:
			l.tui.AddLogEntry(fmt.Sprintf("%s sits this round out", l.name(e.PlayerName)))
		case e.AllIn:
			l.tui.AddLogEntry(fmt.Sprintf("%s bets $%d - all in!", l.name(e.PlayerName), e.Amount))
		case e.Amount != e.Requested:
			l.tui.AddLogEntry(fmt.Sprintf("%s bets $%d (asked for $%d)",
				l.name(e.PlayerName), e.Amount, e.Requested))
		default:
			l.tui.AddLogEntry(fmt.Sprintf("%s bets $%d", l.name(e.PlayerName), e.Amount))
		}

	case game.CardDealtEvent:
		l.tui.AddLogEntry(fmt.Sprintf("%s draws %s",
			l.name(e.PlayerName), l.tui.FormatCards([]deck.Card{e.Card})))

	case game.PlayerActionEvent:
		switch {
		case e.Busted:
			l.tui.AddLogEntry(ErrorStyle.Render(
				fmt.Sprintf("%s busts at %d!", l.name(e.PlayerName), e.BestTotal)))
		case e.Action == game.Stand:
			l.tui.AddLogEntry(fmt.Sprintf("%s stands on %d", l.name(e.PlayerName), e.BestTotal))
		default:
			l.tui.AddLogEntry(fmt.Sprintf("%s hits to %s",
				l.name(e.PlayerName), formatTotals(e.Totals)))
		}

	case game.DealerRevealEvent:
		line := fmt.Sprintf("Dealer reveals %s - %s %s",
			e.HoleCard, l.tui.FormatCards(e.Cards), formatTotals(e.Totals))
		if e.Blackjack {
			line += ErrorStyle.Render("  BLACKJACK")
		}
		l.tui.AddLogEntry(line)

	case game.RoundResultEvent:
		var verdict string
		switch e.Outcome {
		case game.Win:
			verdict = SuccessStyle.Render(fmt.Sprintf("wins $%d", e.Credited-e.Bet))
		case game.Push:
			verdict = WarningStyle.Render("pushes")
		case game.Bust:
			verdict = ErrorStyle.Render(fmt.Sprintf("busted, loses $%d", e.Bet))
		default:
			verdict = ErrorStyle.Render(fmt.Sprintf("loses $%d", e.Bet))
		}
		l.tui.AddLogEntry(fmt.Sprintf("%s %s (bankroll $%d)",
			l.name(e.PlayerName), verdict, e.Bankroll))

	case game.RoundEndEvent:
		l.tui.AddLogEntry(fmt.Sprintf("Dealer: %s (%d)",
			l.tui.FormatCards(e.DealerCards), e.DealerBest))
	}
}

func (l *EventLogger) name(playerName string) string {
	if playerName == l.humanName {
		return "You"
	}
	if playerName == "dealer" {
		return "Dealer"
	}
	return playerName
}

// DealerPacer slows the dealer's draws down to human speed. It subscribes
// to the bus and sleeps after each dealer card so the reveal reads like a
// real table instead of a log dump.
type DealerPacer struct {
	clock quartz.Clock
	delay time.Duration
}

// NewDealerPacer creates a pacer with the given delay between dealer cards
func NewDealerPacer(clock quartz.Clock, delay time.Duration) *DealerPacer {
	return &DealerPacer{clock: clock, delay: delay}
}

// OnEvent pauses after dealer cards and reveals
func (p *DealerPacer) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.CardDealtEvent:
		if e.PlayerName == "dealer" {
			p.pause()
		}
	case game.DealerRevealEvent:
		p.pause()
	}
}

func (p *DealerPacer) pause() {
	done := make(chan struct{})
	timer := p.clock.AfterFunc(p.delay, func() {
		close(done)
	})
	defer timer.Stop()
	<-done
}

// Session drives the interactive round loop: play a round, show the
// result, wait for the human, reset, repeat until they quit or go broke.
type Session struct {
	engine *game.Engine
	tui    *Model
	human  *HumanAgent
	logger *log.Logger
}

// NewSession creates an interactive session over an engine that already
// has its players seated.
func NewSession(engine *game.Engine, tui *Model, human *HumanAgent, logger *log.Logger) *Session {
	return &Session{
		engine: engine,
		tui:    tui,
		human:  human,
		logger: logger.WithPrefix("session"),
	}
}

// Run plays rounds until the human quits or everyone is bankrupt. It
// blocks, so run it in its own goroutine alongside the Bubble Tea loop.
func (s *Session) Run() error {
	defer s.tui.SendQuitSignal()

	for {
		s.updateSidebar()

		result, err := s.engine.PlayRound()
		if err != nil {
			if s.human.QuitRequested() {
				return nil
			}
			if s.engine.AllBankrupt() {
				s.gameOver()
				return nil
			}
			// Everyone sat the round out; idle rather than end the session
			if errors.Is(err, game.ErrNoActivePlayers) {
				s.tui.AddLogEntry("Nobody bet this round.")
				if quit := s.waitForNextRound(); quit {
					s.tui.AddLogEntry("Thanks for playing!")
					return nil
				}
				if err := s.engine.ResetForNextRound(); err != nil {
					return err
				}
				continue
			}
			return err
		}
		s.updateSidebar()

		if result.Quit || s.human.QuitRequested() {
			s.tui.AddLogEntry("Thanks for playing!")
			return nil
		}

		if s.engine.AllBankrupt() {
			s.gameOver()
			return nil
		}

		if quit := s.waitForNextRound(); quit {
			s.tui.AddLogEntry("Thanks for playing!")
			return nil
		}

		if err := s.engine.ResetForNextRound(); err != nil {
			return err
		}
	}
}

func (s *Session) gameOver() {
	s.tui.AddLogEntry("")
	s.tui.AddLogEntry(ErrorStyle.Render("The table is bankrupt. Game over."))
}

// waitForNextRound pauses between rounds, returning true on quit
func (s *Session) waitForNextRound() bool {
	s.tui.SetPrompt(PromptContinue, "")
	defer s.tui.SetPrompt(PromptNone, "")

	input := strings.ToLower(strings.TrimSpace(s.tui.WaitForInput()))
	return input == "quit" || input == "q"
}

func (s *Session) updateSidebar() {
	players := make([]PlayerInfo, 0, len(s.engine.Players()))
	for _, p := range s.engine.Players() {
		players = append(players, PlayerInfo{
			Name:     p.Name,
			Bankroll: p.Bankroll,
			Bet:      p.Bet,
			Bankrupt: p.Bankrupt,
		})
	}
	s.tui.SetTableInfo(s.engine.Round(), s.engine.Shoe().Remaining(), players)
}
