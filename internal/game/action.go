package game

import (
	"fmt"
	"strings"
)

// Stage is the phase of a hand.
type Stage int

const (
	Preflop Stage = iota
	Flop
	Turn
	River
	Showdown
	Complete
)

func (s Stage) String() string {
	if s < Preflop || s > Complete {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return [...]string{"preflop", "flop", "turn", "river", "showdown", "complete"}[s]
}

// boardSize is the number of community cards visible once s is reached.
func (s Stage) boardSize() int {
	switch s {
	case Preflop:
		return 0
	case Flop:
		return 3
	case Turn:
		return 4
	default:
		return 5
	}
}

// ActionKind is the closed set of player actions.
type ActionKind int

const (
	Fold ActionKind = iota
	Check
	Call
	Raise
	AllIn
)

func (k ActionKind) String() string {
	if k < Fold || k > AllIn {
		return fmt.Sprintf("action(%d)", int(k))
	}
	return [...]string{"fold", "check", "call", "raise", "allin"}[k]
}

// ParseActionKind parses the lower-case names produced by String.
func ParseActionKind(s string) (ActionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fold":
		return Fold, nil
	case "check":
		return Check, nil
	case "call":
		return Call, nil
	case "raise", "bet":
		return Raise, nil
	case "allin", "all-in":
		return AllIn, nil
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// Action is a decision submitted for the seat whose turn it is. Amount is
// only read for Raise and is the absolute number of chips the seat will
// have committed this hand, not the increment.
type Action struct {
	Kind   ActionKind
	Amount int
}

// RaiseTo builds a raise to an absolute hand commitment.
func RaiseTo(amount int) Action {
	return Action{Kind: Raise, Amount: amount}
}

func (a Action) String() string {
	if a.Kind == Raise {
		return fmt.Sprintf("raise %d", a.Amount)
	}
	return a.Kind.String()
}

// ActionRecord is an applied action as it is shown to observers. Kind may
// differ from the submitted action: a call that empties the stack is
// recorded as AllIn.
type ActionRecord struct {
	Seat      int
	Stage     Stage
	Kind      ActionKind
	Committed int // chips moved from stack to bets by this action
	Total     int // seat's hand commitment afterwards
}

func (r ActionRecord) String() string {
	return fmt.Sprintf("seat %d %s %d (total %d)", r.Seat, r.Kind, r.Committed, r.Total)
}
