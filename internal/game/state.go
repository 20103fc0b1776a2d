package game

import (
	"github.com/lox/holdem-engine/poker"
)

// NoSeat marks an empty turn or round-closing marker.
const NoSeat = -1

// PublicState is the part of a hand every player may see. Values handed
// out by Hand are snapshots: nothing in them aliases the engine's state.
type PublicState struct {
	NumPlayers int
	Dealer     int
	Turn       int
	Stage      Stage
	SmallBlind int
	BigBlind   int

	Bets    []int // chips committed this hand per seat
	Chips   []int // chips still behind per seat
	IsQuit  []bool
	IsAllIn []bool

	NumQuit  int
	NumAllIn int

	MaxBet            int
	MinRaiseIncrement int

	PublicCards []poker.Card

	// RoundClosingMarker is the last seat that still has to act this
	// street: its action, if it is not a raise, closes the street. After a
	// raise it is the eligible seat before the raiser, not the raiser.
	RoundClosingMarker int

	LastAction *ActionRecord
}

// Pot returns the chips committed by every seat this hand.
func (s PublicState) Pot() int {
	total := 0
	for _, b := range s.Bets {
		total += b
	}
	return total
}

// ToCall returns the chips seat must add to match the current bet.
func (s PublicState) ToCall(seat int) int {
	return max(0, s.MaxBet-s.Bets[seat])
}

func (s *PublicState) eligible(seat int) bool {
	return !s.IsQuit[seat] && !s.IsAllIn[seat]
}

func (s *PublicState) live() int {
	return s.NumPlayers - s.NumQuit
}

func (s PublicState) clone() PublicState {
	out := s
	out.Bets = append([]int(nil), s.Bets...)
	out.Chips = append([]int(nil), s.Chips...)
	out.IsQuit = append([]bool(nil), s.IsQuit...)
	out.IsAllIn = append([]bool(nil), s.IsAllIn...)
	out.PublicCards = append([]poker.Card{}, s.PublicCards...)
	if s.LastAction != nil {
		last := *s.LastAction
		out.LastAction = &last
	}
	return out
}

// PrivateState is the hidden part of a hand.
type PrivateState struct {
	HoleCards [][2]poker.Card
	Undealt   []poker.Card // community cards reserved but not yet revealed
}

func (p PrivateState) clone() PrivateState {
	return PrivateState{
		HoleCards: append([][2]poker.Card(nil), p.HoleCards...),
		Undealt:   append([]poker.Card{}, p.Undealt...),
	}
}

// Amount describes a fixed-size action. Total is the seat's hand
// commitment afterwards; Cost is what leaves the stack.
type Amount struct {
	Total int
	Cost  int
}

// Bounds are the inclusive absolute raise targets.
type Bounds struct {
	Min int
	Max int
}

// LegalActions lists what the seat to act may do. Absent options are nil
// or false.
type LegalActions struct {
	Fold  bool
	Check bool
	Call  *Amount
	Raise *Bounds
	AllIn *Amount
}

// Allows reports whether a is inside the legal set. A call is allowed
// wherever a check is, since Forward plays it as a check.
func (l LegalActions) Allows(a Action) bool {
	switch a.Kind {
	case Fold:
		return l.Fold
	case Check:
		return l.Check
	case Call:
		return l.Call != nil || l.Check
	case Raise:
		return l.Raise != nil && a.Amount >= l.Raise.Min && a.Amount <= l.Raise.Max
	case AllIn:
		return l.AllIn != nil
	}
	return false
}

// Info is the view of the hand delivered to one seat.
type Info struct {
	Seat      int
	Public    PublicState
	HoleCards *[2]poker.Card // the recipient's own cards only
	Legal     *LegalActions  // set only when it is the recipient's turn
}

// MyTurn reports whether the recipient is the seat to act.
func (i Info) MyTurn() bool {
	return i.Legal != nil
}

// Step is returned by Init and Forward.
type Step struct {
	Terminal bool
	Scores   []int // net chips per seat, set on the terminal step only
	Infos    []Info
}
