package tui

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack-cli/internal/game"
)

// DefaultDecisionTimeout is how long the human has to act before the table
// acts for them: minimum bet during betting, stand during play.
const DefaultDecisionTimeout = 60 * time.Second

// HumanAgent is the engine-side agent for the human seat. It prompts
// through the TUI and blocks the round loop until input arrives or the
// decision clock runs out.
type HumanAgent struct {
	tui     *Model
	logger  *log.Logger
	clock   quartz.Clock
	timeout time.Duration
	quit    atomic.Bool
}

// NewHumanAgent creates an agent backed by the TUI. The clock drives the
// decision timeout; tests pass a mock.
func NewHumanAgent(tui *Model, logger *log.Logger, clock quartz.Clock, timeout time.Duration) *HumanAgent {
	if timeout <= 0 {
		timeout = DefaultDecisionTimeout
	}
	return &HumanAgent{
		tui:     tui,
		logger:  logger.WithPrefix("human"),
		clock:   clock,
		timeout: timeout,
	}
}

// QuitRequested reports whether the human asked to leave the table
func (a *HumanAgent) QuitRequested() bool {
	return a.quit.Load()
}

// PlaceBet prompts for a wager. An empty line bets the table minimum, a
// timeout does the same, and "quit" folds out of the round and flags the
// session to end.
func (a *HumanAgent) PlaceBet(view game.TableView) int {
	if a.quit.Load() {
		return 0
	}

	a.tui.SetPrompt(PromptBet, fmt.Sprintf("Bankroll: $%d  Table: $%d-$%d",
		view.Player.Bankroll, view.MinBet, view.MaxBet))
	defer a.tui.SetPrompt(PromptNone, "")

	for {
		input, timedOut := a.waitForInput()
		if timedOut {
			a.logger.Warn("bet timed out, betting the table minimum", "minBet", view.MinBet)
			a.tui.AddLogEntry(fmt.Sprintf("Time's up - betting the minimum $%d", view.MinBet))
			return view.MinBet
		}

		fields := strings.Fields(strings.ToLower(input))
		switch {
		case len(fields) == 0:
			return view.MinBet

		case fields[0] == "quit":
			a.quit.Store(true)
			return 0

		case fields[0] == "bet" && len(fields) > 1:
			if amount, err := strconv.Atoi(fields[1]); err == nil {
				return amount
			}
			a.tui.AddLogEntry(fmt.Sprintf("Invalid amount: %s", fields[1]))

		default:
			if amount, err := strconv.Atoi(fields[0]); err == nil {
				return amount
			}
			a.tui.AddLogEntry(fmt.Sprintf("Unknown command: %s (try 'bet 20' or Enter for $%d)",
				fields[0], view.MinBet))
		}
	}
}

// Decide prompts for hit or stand. A timeout stands.
func (a *HumanAgent) Decide(view game.TableView) game.Action {
	if a.quit.Load() {
		return game.Quit
	}

	hand := fmt.Sprintf("Hand: %s %s  Dealer shows: %s",
		a.tui.FormatCards(view.Player.Cards), formatTotals(view.Player.Totals),
		a.tui.FormatCards(view.Dealer.UpCards))
	a.tui.SetPrompt(PromptAction, hand)
	defer a.tui.SetPrompt(PromptNone, "")

	for {
		input, timedOut := a.waitForInput()
		if timedOut {
			a.logger.Warn("decision timed out, standing")
			a.tui.AddLogEntry("Time's up - standing")
			return game.Stand
		}

		switch strings.ToLower(strings.TrimSpace(input)) {
		case "h", "hit":
			return game.Hit
		case "s", "stand", "":
			return game.Stand
		case "q", "quit":
			a.quit.Store(true)
			return game.Quit
		default:
			a.tui.AddLogEntry(fmt.Sprintf("Unknown action: %s (hit, stand, or quit)", input))
		}
	}
}

// waitForInput races the TUI input channel against the decision clock
func (a *HumanAgent) waitForInput() (string, bool) {
	timedOut := make(chan struct{})
	timer := a.clock.AfterFunc(a.timeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	inputCh := make(chan string, 1)
	go func() {
		inputCh <- a.tui.WaitForInput()
	}()

	select {
	case input := <-inputCh:
		return input, false
	case <-timedOut:
		return "", true
	}
}

// formatTotals renders a totals set the way players read it: "17" for a
// hard hand, "7/17" for a soft one.
func formatTotals(totals []int) string {
	if len(totals) == 0 {
		return ""
	}
	parts := make([]string, len(totals))
	for i, t := range totals {
		parts[i] = strconv.Itoa(t)
	}
	return strings.Join(parts, "/")
}
