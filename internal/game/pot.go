package game

import (
	"slices"

	"github.com/lox/holdem-engine/poker"
)

// Pot is one layer of the chips committed in a hand (main or side).
type Pot struct {
	Amount   int
	Cap      int   // per-seat commitment that bounds this layer
	Eligible []int // seats that may win this layer
	Winners  []int // seats that were paid from this layer
}

// AllocationInput is everything the allocator needs to split the pots.
type AllocationInput struct {
	Bets   []int
	Folded []bool
	Ranks  []*poker.HandRank // nil for folded seats; nil ranks lose to any rank
	Dealer int
}

// Allocation is the result of splitting the pots.
type Allocation struct {
	Payouts []int
	Pots    []Pot
}

// AllocatePots splits the committed chips into layered pots and pays each
// layer to the best eligible hands. Payouts always sum to the total bets.
func AllocatePots(in AllocationInput) Allocation {
	n := len(in.Bets)
	out := Allocation{Payouts: make([]int, n)}

	levels := make([]int, 0, n)
	for seat, bet := range in.Bets {
		if !in.Folded[seat] {
			levels = append(levels, bet)
		}
	}
	slices.Sort(levels)
	levels = slices.Compact(levels)
	if len(levels) == 0 {
		return out
	}

	prev := 0
	for i, level := range levels {
		top := i == len(levels)-1

		pot := Pot{Cap: level}
		for seat, bet := range in.Bets {
			if top {
				// Anything above the last live level was committed by seats
				// that folded; it stays with the last layer.
				pot.Amount += max(0, bet-prev)
			} else {
				pot.Amount += min(bet, level) - min(bet, prev)
			}
			if !in.Folded[seat] && bet >= level {
				pot.Eligible = append(pot.Eligible, seat)
			}
		}
		prev = level

		if pot.Amount == 0 {
			continue
		}
		pot.Winners = bestHands(pot.Eligible, in.Ranks)
		award(out.Payouts, pot.Amount, clockwiseFrom(pot.Winners, in.Dealer, n))
		out.Pots = append(out.Pots, pot)
	}
	return out
}

// bestHands returns the seats holding the strongest rank among eligible.
func bestHands(eligible []int, ranks []*poker.HandRank) []int {
	var best []int
	var bestRank *poker.HandRank
	for _, seat := range eligible {
		r := rankOf(ranks, seat)
		switch {
		case best == nil:
			best, bestRank = []int{seat}, r
		case compareRanks(r, bestRank) == poker.Greater:
			best, bestRank = []int{seat}, r
		case compareRanks(r, bestRank) == poker.Equal:
			best = append(best, seat)
		}
	}
	return best
}

func rankOf(ranks []*poker.HandRank, seat int) *poker.HandRank {
	if seat < len(ranks) {
		return ranks[seat]
	}
	return nil
}

func compareRanks(a, b *poker.HandRank) poker.Ordering {
	switch {
	case a == nil && b == nil:
		return poker.Equal
	case a == nil:
		return poker.Less
	case b == nil:
		return poker.Greater
	}
	return poker.Compare(*a, *b)
}

// clockwiseFrom orders seats starting left of the dealer, dealer last.
func clockwiseFrom(seats []int, dealer, n int) []int {
	ordered := slices.Clone(seats)
	dist := func(seat int) int { return ((seat-dealer-1)%n + n) % n }
	slices.SortFunc(ordered, func(a, b int) int { return dist(a) - dist(b) })
	return ordered
}

// award splits amount equally; the odd chips all go to the first winner in
// the given order.
func award(payouts []int, amount int, winners []int) {
	if len(winners) == 0 {
		return
	}
	share, rem := amount/len(winners), amount%len(winners)
	for _, seat := range winners {
		payouts[seat] += share
	}
	payouts[winners[0]] += rem
}
