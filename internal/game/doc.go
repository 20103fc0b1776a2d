// Package game implements a single hand of no-limit Texas Hold'em.
//
// The main type is Hand, a state machine driven by the caller one decision
// at a time. Every step returns an Info per seat: the public state, that
// seat's own hole cards, and the legal actions when it is the seat to act.
//
// # Basic Usage
//
//	h, err := game.NewHand(game.HandConfig{
//	    Stacks:     []int{1000, 1000, 1000},
//	    Dealer:     0,
//	    SmallBlind: 5,
//	    BigBlind:   10,
//	}, game.WithRNG(randutil.New(42)))
//	step, err := h.Init()
//	for !step.Terminal {
//	    seat := step.Infos[0].Public.Turn
//	    step, err = h.Forward(seat, game.Action{Kind: game.Call})
//	}
//	res, _ := h.Result()
//
// # Deterministic Testing
//
// A seeded *rand.Rand shuffles the same deck every time. For exact boards
// pass a stacked deck; cards are dealt one at a time to each seat starting
// left of the dealer, twice around, and the next five form the board:
//
//	deck, _ := poker.NewStackedDeck(poker.MustParseCards("As Kd Ah Kc 2s 7h 9d Tc Jc")...)
//	h, _ := game.NewHand(cfg, game.WithDeck(deck))
//
// # Amounts
//
// Bets are the chips each seat has committed over the whole hand, not per
// street. Raise amounts are absolute hand totals: RaiseTo(30) leaves the
// seat with 30 committed. Payouts from Result are kept apart from
// PublicState.Chips so that Chips plus Bets is constant for the whole hand.
//
// # Architecture
//
// Hand delegates to small pure helpers:
//   - validate and legalActions: action legality and its effect
//   - nextPlayer and isRoundClosed: turn order and street closure
//   - AllocatePots: main and side pot layering and odd-chip placement
//   - poker.Evaluator: showdown ranking
package game
