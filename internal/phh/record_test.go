package phh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-engine/internal/game"
	"github.com/lox/holdem-engine/internal/phh"
	"github.com/lox/holdem-engine/internal/randutil"
	"github.com/lox/holdem-engine/poker"
)

func hole(s string) [2]poker.Card {
	c := poker.MustParseCards(s)
	return [2]poker.Card{c[0], c[1]}
}

func TestFromRecord(t *testing.T) {
	t.Parallel()

	rec := game.HandRecord{
		HandID:         "t-1",
		Dealer:         0,
		SmallBlind:     1,
		BigBlind:       2,
		SmallBlindSeat: 1,
		BigBlindSeat:   2,
		StartingStacks: []int{200, 200, 200},
		Blinds:         []int{0, 1, 2},
		HoleCards:      [][2]poker.Card{hole("AsAd"), hole("7d2c"), hole("QsJs")},
		Dealt:          []bool{true, true, true},
		Board:          poker.MustParseCards("Ah Kd 7c 2s 9h"),
		Actions: []game.ActionRecord{
			{Seat: 0, Stage: game.Preflop, Kind: game.Raise, Committed: 6, Total: 6},
			{Seat: 1, Stage: game.Preflop, Kind: game.Fold, Total: 1},
			{Seat: 2, Stage: game.Preflop, Kind: game.Call, Committed: 4, Total: 6},
			{Seat: 2, Stage: game.Flop, Kind: game.Check, Total: 6},
			{Seat: 0, Stage: game.Flop, Kind: game.Raise, Committed: 10, Total: 16},
			{Seat: 2, Stage: game.Flop, Kind: game.Call, Committed: 10, Total: 16},
			{Seat: 2, Stage: game.Turn, Kind: game.Check, Total: 16},
			{Seat: 0, Stage: game.Turn, Kind: game.Check, Total: 16},
			{Seat: 2, Stage: game.River, Kind: game.AllIn, Committed: 184, Total: 200},
			{Seat: 0, Stage: game.River, Kind: game.AllIn, Committed: 184, Total: 200},
		},
		Payouts:  []int{401, 0, 0},
		Showdown: true,
	}

	h := phh.FromRecord(rec, []string{"alice", "bob", "carol"})

	assert.Equal(t, phh.VariantNoLimitHoldem, h.Variant)
	assert.Equal(t, 3, h.SeatCount)
	assert.Equal(t, []int{0, 0, 0}, h.Antes)
	assert.Equal(t, []int{0, 1, 2}, h.BlindsOrStraddles)
	assert.Equal(t, 2, h.MinBet)
	assert.Equal(t, []int{401, 199, 0}, h.FinishingStacks)
	assert.Equal(t, []int{401, 0, 0}, h.Winnings)
	assert.Equal(t, []string{"alice", "bob", "carol"}, h.Players)
	assert.Equal(t, "t-1", h.HandID)
	assert.Equal(t, "p1", h.Metadata["dealer"])
	assert.Equal(t, []string{
		"d dh p1 AsAd",
		"d dh p2 7d2c",
		"d dh p3 QsJs",
		"p1 cbr 6",
		"p2 f",
		"p3 cc",
		"d db AhKd7c",
		"p3 cc",
		"p1 cbr 10",
		"p3 cc",
		"d db 2s",
		"p3 cc",
		"p1 cc",
		"d db 9h",
		"p3 cbr 184",
		"p1 cc",
		"p1 sm AsAd",
		"p3 sm QsJs",
	}, h.Actions)
}

func TestFromRecordRunout(t *testing.T) {
	t.Parallel()

	rec := game.HandRecord{
		HandID:         "t-2",
		Dealer:         1,
		SmallBlind:     5,
		BigBlind:       10,
		SmallBlindSeat: 1,
		BigBlindSeat:   0,
		StartingStacks: []int{100, 300},
		Blinds:         []int{10, 5},
		HoleCards:      [][2]poker.Card{hole("KcKd"), hole("9s8s")},
		Dealt:          []bool{true, true},
		Board:          poker.MustParseCards("2c 3d 4h 5s Jc"),
		Actions: []game.ActionRecord{
			{Seat: 1, Stage: game.Preflop, Kind: game.Raise, Committed: 295, Total: 300},
			{Seat: 0, Stage: game.Preflop, Kind: game.AllIn, Committed: 90, Total: 100},
		},
		Payouts:  []int{200, 200},
		Showdown: true,
	}

	h := phh.FromRecord(rec, nil)

	assert.Nil(t, h.Players)
	assert.Equal(t, []string{
		"d dh p1 KcKd",
		"d dh p2 9s8s",
		"p2 cbr 300",
		"p1 cc",
		"d db 2c3d4h",
		"d db 5s",
		"d db Jc",
		"p1 sm KcKd",
		"p2 sm 9s8s",
	}, h.Actions)
	assert.Equal(t, []int{200, 200}, h.FinishingStacks)
}

func TestFromRecordUncontested(t *testing.T) {
	t.Parallel()

	rec := game.HandRecord{
		HandID:         "t-3",
		StartingStacks: []int{100, 100, 0},
		Blinds:         []int{5, 10, 0},
		HoleCards:      [][2]poker.Card{hole("AsKs"), hole("7d2c"), {}},
		Dealt:          []bool{true, true, false},
		Board:          poker.MustParseCards("2c 3d 4h 5s Jc"),
		Actions: []game.ActionRecord{
			{Seat: 0, Stage: game.Preflop, Kind: game.Fold, Total: 5},
		},
		Payouts: []int{0, 15, 0},
	}

	h := phh.FromRecord(rec, []string{"a", "b", "c"})

	assert.Equal(t, []string{"d dh p1 AsKs", "d dh p2 7d2c", "p1 f"}, h.Actions)
	assert.Equal(t, []int{95, 105, 0}, h.FinishingStacks)
}

func TestFromRecordOfPlayedHands(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 25; seed++ {
		stacks := []int{300, 120, 500, 60}
		h, err := game.NewHand(game.HandConfig{
			Stacks:     stacks,
			Dealer:     int(seed) % len(stacks),
			SmallBlind: 5,
			BigBlind:   10,
		}, game.WithRNG(randutil.New(seed)))
		require.NoError(t, err)

		rng := randutil.New(seed * 7)
		step, err := h.Init()
		require.NoError(t, err)
		for !step.Terminal {
			turn := step.Infos[0].Public.Turn
			step, err = h.Forward(turn, pick(rng.IntN(4), step.Infos[turn].Legal))
			require.NoError(t, err)
		}

		hh := phh.FromRecord(h.Record(), nil)
		total := 0
		for _, c := range hh.FinishingStacks {
			require.GreaterOrEqual(t, c, 0)
			total += c
		}
		assert.Equal(t, 980, total, "seed %d", seed)
		assert.Equal(t, len(stacks), countPrefix(hh.Actions, "d dh "), "seed %d", seed)
		assert.LessOrEqual(t, countPrefix(hh.Actions, "d db "), 3, "seed %d", seed)
	}
}

func pick(r int, legal *game.LegalActions) game.Action {
	switch {
	case r == 0 && legal.Raise != nil:
		return game.RaiseTo(legal.Raise.Min)
	case r == 1 && legal.AllIn != nil:
		return game.Action{Kind: game.AllIn}
	case r == 2 && legal.Call != nil:
		return game.Action{Kind: game.Call}
	case legal.Check:
		return game.Action{Kind: game.Check}
	default:
		return game.Action{Kind: game.Fold}
	}
}

func countPrefix(lines []string, prefix string) int {
	n := 0
	for _, l := range lines {
		if len(l) >= len(prefix) && l[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}
