package bot

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-engine/internal/game"
	"github.com/lox/holdem-engine/internal/randutil"
	"github.com/lox/holdem-engine/internal/tournament"
	"github.com/lox/holdem-engine/poker"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"call", "fold", "maniac", "random", "tag"}, Names())

	for _, name := range Names() {
		b, err := New(name, randutil.New(1), nil)
		require.NoError(t, err, name)
		require.NotNil(t, b)
	}

	_, err := New("shark", randutil.New(1), nil)
	assert.ErrorContains(t, err, "unknown strategy")
}

func TestBotsOnlyTakeLegalActions(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			for seed := int64(1); seed <= 30; seed++ {
				bots := make([]Bot, 4)
				for i := range bots {
					b, err := New(name, randutil.New(seed+int64(i)), nil)
					require.NoError(t, err)
					bots[i] = b
				}

				h, err := game.NewHand(game.HandConfig{
					Stacks:     []int{1000, 400, 150, 1000},
					Dealer:     int(seed) % 4,
					SmallBlind: 5,
					BigBlind:   10,
				}, game.WithRNG(randutil.New(seed)))
				require.NoError(t, err)

				step, err := h.Init()
				require.NoError(t, err)
				for !step.Terminal {
					for seat, info := range step.Infos {
						bots[seat].ReceiveInfo(info)
					}
					turn := step.Infos[0].Public.Turn
					a, err := bots[turn].TakeAction(context.Background())
					require.NoError(t, err)

					legal := step.Infos[turn].Legal
					require.True(t, legal.Allows(a), "%s chose %s, legal %+v", name, a, legal)

					step, err = h.Forward(turn, a)
					require.NoError(t, err)
				}
			}
		})
	}
}

func TestTakeActionOffTurn(t *testing.T) {
	t.Parallel()

	b := NewCallBot(nil)
	_, err := b.TakeAction(context.Background())
	assert.ErrorIs(t, err, ErrNotMyTurn)

	b.ReceiveInfo(game.Info{Seat: 1})
	_, err = b.TakeAction(context.Background())
	assert.ErrorIs(t, err, ErrNotMyTurn)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = b.TakeAction(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOverlappingTakeAction(t *testing.T) {
	t.Parallel()

	info := game.Info{
		Seat:   0,
		Public: game.PublicState{Turn: 0, BigBlind: 10, Chips: []int{1000}},
		Legal: &game.LegalActions{
			Fold:  true,
			Call:  &game.Amount{Total: 20, Cost: 10},
			Raise: &game.Bounds{Min: 30, Max: 1000},
			AllIn: &game.Amount{Total: 1000, Cost: 990},
		},
	}

	for _, name := range []string{"random", "maniac"} {
		b, err := New(name, randutil.New(7), nil)
		require.NoError(t, err)
		b.ReceiveInfo(info)

		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 50 {
					a, err := b.TakeAction(context.Background())
					assert.NoError(t, err)
					assert.True(t, info.Legal.Allows(a), "%s chose %s", name, a)
				}
			}()
		}
		wg.Wait()
	}
}

func TestSimpleBots(t *testing.T) {
	t.Parallel()

	facingBet := game.Info{Legal: &game.LegalActions{
		Fold:  true,
		Call:  &game.Amount{Total: 20, Cost: 10},
		Raise: &game.Bounds{Min: 30, Max: 500},
		AllIn: &game.Amount{Total: 500, Cost: 490},
	}}
	unopened := game.Info{Legal: &game.LegalActions{
		Fold:  true,
		Check: true,
		Raise: &game.Bounds{Min: 20, Max: 500},
		AllIn: &game.Amount{Total: 500, Cost: 490},
	}}

	assert.Equal(t, game.Call, NewCallBot(nil).decide(facingBet).Kind)
	assert.Equal(t, game.Check, NewCallBot(nil).decide(unopened).Kind)
	assert.Equal(t, game.Fold, NewFoldBot(nil).decide(facingBet).Kind)
	assert.Equal(t, game.Check, NewFoldBot(nil).decide(unopened).Kind)
}

func TestTAGHandSelection(t *testing.T) {
	t.Parallel()

	hole := func(s string) [2]poker.Card {
		c := poker.MustParseCards(s)
		return [2]poker.Card{c[0], c[1]}
	}

	tag := NewTAGBot(randutil.New(1), nil)
	preflop := func(h string, legal *game.LegalActions) game.Action {
		c := hole(h)
		return tag.decide(game.Info{
			HoleCards: &c,
			Public:    game.PublicState{Stage: game.Preflop, BigBlind: 10},
			Legal:     legal,
		})
	}
	facingRaise := &game.LegalActions{
		Fold:  true,
		Call:  &game.Amount{Total: 30, Cost: 25},
		Raise: &game.Bounds{Min: 50, Max: 1000},
		AllIn: &game.Amount{Total: 1000, Cost: 995},
	}
	facingLimp := &game.LegalActions{
		Fold:  true,
		Call:  &game.Amount{Total: 10, Cost: 10},
		Raise: &game.Bounds{Min: 20, Max: 1000},
		AllIn: &game.Amount{Total: 1000, Cost: 1000},
	}

	assert.Equal(t, game.Raise, preflop("AsAh", facingRaise).Kind)
	assert.Equal(t, game.Raise, preflop("AsJs", facingRaise).Kind)
	assert.Equal(t, game.Call, preflop("8s8h", facingLimp).Kind)

	board := poker.MustParseCards("Kh 7s 2d")
	assert.True(t, madeHand(hole("7d8c"), board))
	assert.True(t, madeHand(hole("3c3d"), board))
	assert.False(t, madeHand(hole("AsQs"), board))
}

func TestBotsPlayATournament(t *testing.T) {
	t.Parallel()

	cfg := tournament.DefaultConfig()
	cfg.MaxHands = 200
	cfg.DecisionTimeout = 0

	players := make([]tournament.Strategy, 0, len(Names()))
	for i, name := range Names() {
		b, err := New(name, randutil.New(int64(i)), nil)
		require.NoError(t, err)
		players = append(players, b)
	}

	l, err := tournament.New(cfg, tournament.WithRNG(randutil.New(3)))
	require.NoError(t, err)
	res, err := l.Run(context.Background(), players)
	require.NoError(t, err)

	total := 0
	for _, c := range res.FinalChips {
		total += c
	}
	assert.Equal(t, len(players)*cfg.StartingStack, total)
}
