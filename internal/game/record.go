package game

import (
	"slices"

	"github.com/lox/holdem-engine/poker"
)

// HandRecord is the ordered log of a hand, enough to replay or export it.
type HandRecord struct {
	HandID         string
	Dealer         int
	SmallBlind     int
	BigBlind       int
	SmallBlindSeat int
	BigBlindSeat   int
	StartingStacks []int
	Blinds         []int // chips each seat posted as a blind
	HoleCards      [][2]poker.Card
	Dealt          []bool // seats that received hole cards
	Board          []poker.Card
	Actions        []ActionRecord
	Payouts        []int
	Showdown       bool
}

// Committed returns the chips each seat put into the pot over the hand,
// blinds included.
func (r HandRecord) Committed() []int {
	out := make([]int, len(r.StartingStacks))
	copy(out, r.Blinds)
	for _, a := range r.Actions {
		out[a.Seat] = a.Total
	}
	return out
}

func (r HandRecord) clone() HandRecord {
	out := r
	out.StartingStacks = slices.Clone(r.StartingStacks)
	out.Blinds = slices.Clone(r.Blinds)
	out.HoleCards = slices.Clone(r.HoleCards)
	out.Dealt = slices.Clone(r.Dealt)
	out.Board = slices.Clone(r.Board)
	out.Actions = slices.Clone(r.Actions)
	out.Payouts = slices.Clone(r.Payouts)
	return out
}
