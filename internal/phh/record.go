package phh

import (
	"slices"

	"github.com/lox/holdem-engine/internal/game"
)

// FromRecord converts a finished hand. names labels the seats and is left
// out of the history unless it has one entry per seat.
func FromRecord(rec game.HandRecord, names []string) *HandHistory {
	n := len(rec.StartingStacks)
	h := &HandHistory{
		Variant:           VariantNoLimitHoldem,
		SeatCount:         n,
		Antes:             make([]int, n),
		BlindsOrStraddles: padded(rec.Blinds, n),
		MinBet:            rec.BigBlind,
		StartingStacks:    slices.Clone(rec.StartingStacks),
		Winnings:          padded(rec.Payouts, n),
		HandID:            rec.HandID,
		Metadata: map[string]any{
			"dealer": player(rec.Dealer),
		},
	}
	if len(names) == n {
		h.Players = slices.Clone(names)
	}

	for seat, dealt := range rec.Dealt {
		if dealt {
			h.Actions = append(h.Actions, dealHole(seat, rec.HoleCards[seat]))
		}
	}

	totals := padded(rec.Blinds, n)
	streetStart := make([]int, n)
	maxTotal := 0
	if n > 0 {
		maxTotal = slices.Max(totals)
	}
	folded := make([]bool, n)
	stage := game.Preflop

	for _, a := range rec.Actions {
		for stage < a.Stage && stage < game.River {
			stage++
			if cards := streetCards(rec.Board, stage); cards != nil {
				h.Actions = append(h.Actions, dealBoard(cards))
			}
			copy(streetStart, totals)
		}

		raiseTo := 0
		if (a.Kind == game.Raise || a.Kind == game.AllIn) && a.Total > maxTotal {
			raiseTo = a.Total - streetStart[a.Seat]
		}
		h.Actions = append(h.Actions, FormatAction(a.Seat, a.Kind, raiseTo))

		totals[a.Seat] = a.Total
		maxTotal = max(maxTotal, a.Total)
		if a.Kind == game.Fold {
			folded[a.Seat] = true
		}
	}

	// Streets dealt without further betting, as in an all-in runout.
	for stage < game.River {
		cards := streetCards(rec.Board, stage+1)
		if cards == nil {
			break
		}
		stage++
		h.Actions = append(h.Actions, dealBoard(cards))
	}

	if rec.Showdown {
		for seat, dealt := range rec.Dealt {
			if dealt && !folded[seat] {
				h.Actions = append(h.Actions, showHole(seat, rec.HoleCards[seat]))
			}
		}
	}

	committed := rec.Committed()
	h.FinishingStacks = make([]int, n)
	for i := range n {
		h.FinishingStacks[i] = rec.StartingStacks[i] - committed[i] + h.Winnings[i]
	}
	return h
}

// padded copies s into a slice of length n.
func padded(s []int, n int) []int {
	out := make([]int, n)
	copy(out, s)
	return out
}
