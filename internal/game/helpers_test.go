package game

import (
	rand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-engine/internal/randutil"
	"github.com/lox/holdem-engine/poker"
)

func newTestHand(t *testing.T, stacks []int, dealer int, opts ...HandOption) *Hand {
	t.Helper()
	opts = append([]HandOption{WithRNG(randutil.New(42))}, opts...)
	h, err := NewHand(HandConfig{
		Stacks:     stacks,
		Dealer:     dealer,
		SmallBlind: 5,
		BigBlind:   10,
	}, opts...)
	require.NoError(t, err)
	return h
}

func stackedDeck(t *testing.T, cards string) HandOption {
	t.Helper()
	deck, err := poker.NewStackedDeck(poker.MustParseCards(cards)...)
	require.NoError(t, err)
	return WithDeck(deck)
}

func mustInit(t *testing.T, h *Hand) Step {
	t.Helper()
	step, err := h.Init()
	require.NoError(t, err)
	return step
}

func act(t *testing.T, h *Hand, seat int, a Action) Step {
	t.Helper()
	step, err := h.Forward(seat, a)
	require.NoError(t, err, "seat %d %s", seat, a)
	return step
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

// randomAction picks uniformly among the legal options.
func randomAction(rng *rand.Rand, legal *LegalActions) Action {
	opts := []Action{{Kind: Fold}}
	if legal.Check {
		opts = append(opts, Action{Kind: Check})
	}
	if legal.Call != nil {
		opts = append(opts, Action{Kind: Call})
	}
	if legal.Raise != nil {
		opts = append(opts, RaiseTo(legal.Raise.Min+rng.IntN(legal.Raise.Max-legal.Raise.Min+1)))
	}
	if legal.AllIn != nil {
		opts = append(opts, Action{Kind: AllIn})
	}
	return opts[rng.IntN(len(opts))]
}
