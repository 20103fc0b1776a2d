// Package tournament chains hands of the game engine into a single-table
// match: stacks carry over, the dealer button rotates, blinds escalate and
// busted players leave until one player holds every chip.
package tournament

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-engine/internal/game"
	"github.com/lox/holdem-engine/internal/gameid"
	"github.com/lox/holdem-engine/internal/randutil"
	"github.com/lox/holdem-engine/poker"
)

// Loop runs matches for one table. A Loop is not safe for concurrent use;
// parallel tables each get their own.
type Loop struct {
	cfg       Config
	id        string
	rng       *rand.Rand
	clock     quartz.Clock
	logger    *log.Logger
	evaluator poker.Evaluator
	history   []HistorySink
}

// Result is the outcome of a match. Slices are indexed by player.
type Result struct {
	TournamentID string
	Scores       []float64 // chips won per hand played
	FinalChips   []int
	HandsPlayed  []int
	Hands        int
	Eliminated   []int // players in the order they busted
	Winner       int   // -1 when the hand limit stopped the match first
	SmallBlind   int   // blinds in force when the match ended
	BigBlind     int
}

// New validates cfg and builds a Loop.
func New(cfg Config, opts ...Option) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tournament config: %w", err)
	}
	if cfg.DefaultAction == "" {
		cfg.DefaultAction = CheckFold
	}

	l := &Loop{cfg: cfg}
	for _, opt := range opts {
		opt(l)
	}
	if l.id == "" {
		l.id = gameid.Generate()
	}
	if l.rng == nil {
		l.rng = randutil.New(randutil.Seed(0))
	}
	if l.clock == nil {
		l.clock = quartz.NewReal()
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	if l.evaluator == nil {
		l.evaluator = poker.DefaultEvaluator
	}
	l.logger = l.logger.WithPrefix("tournament").With("id", l.id)
	return l, nil
}

// ID returns the tournament identifier.
func (l *Loop) ID() string {
	return l.id
}

// Round plays a match and returns each player's chips won per hand played.
func (l *Loop) Round(ctx context.Context, players []Strategy) ([]float64, error) {
	res, err := l.Run(ctx, players)
	if err != nil {
		return nil, err
	}
	return res.Scores, nil
}

// Run plays a match between players, each starting with the configured
// stack, until one player holds every chip or the hand limit is reached.
func (l *Loop) Run(ctx context.Context, players []Strategy) (*Result, error) {
	n := len(players)
	if n < 2 {
		return nil, game.ErrInsufficientPlayers
	}

	chips := make([]int, n)
	for i := range chips {
		chips[i] = l.cfg.StartingStack
	}
	res := &Result{
		TournamentID: l.id,
		HandsPlayed:  make([]int, n),
		Winner:       -1,
	}

	sb, bb := l.cfg.SmallBlind, l.cfg.BigBlind
	dealer := l.cfg.StartDealer % n
	l.logger.Info("match started", "players", n, "stack", l.cfg.StartingStack, "blinds", fmt.Sprintf("%d/%d", sb, bb))

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		seated := seatedPlayers(chips)
		if len(seated) < 2 {
			break
		}
		if l.cfg.MaxHands > 0 && res.Hands >= l.cfg.MaxHands {
			break
		}
		if res.Hands > 0 && l.cfg.BlindInterval > 0 && res.Hands%l.cfg.BlindInterval == 0 {
			sb, bb = escalate(sb, bb, l.cfg.BlindMultiplier)
			l.logger.Info("blinds increased", "hand", res.Hands+1, "small", sb, "big", bb)
		}

		stacks := make([]int, len(seated))
		strategies := make([]Strategy, len(seated))
		dealerSeat := 0
		for seat, p := range seated {
			stacks[seat] = chips[p]
			strategies[seat] = players[p]
			if p == dealer {
				dealerSeat = seat
			}
		}

		handNum := res.Hands + 1
		h, err := game.NewHand(game.HandConfig{
			Stacks:     stacks,
			Dealer:     dealerSeat,
			SmallBlind: sb,
			BigBlind:   bb,
		},
			game.WithRNG(l.rng),
			game.WithEvaluator(l.evaluator),
			game.WithLogger(l.logger),
			game.WithHandID(fmt.Sprintf("%s-%d", l.id, handNum)),
		)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", handNum, err)
		}

		hr, err := l.playHand(ctx, h, strategies)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", handNum, err)
		}

		final := h.Public().Chips
		for seat, p := range seated {
			chips[p] = final[seat] + hr.Payouts[seat]
			res.HandsPlayed[p]++
		}
		res.Hands = handNum

		if len(l.history) > 0 {
			rec := h.Record()
			for _, sink := range l.history {
				if err := sink.RecordHand(l.id, handNum, seated, rec); err != nil {
					l.logger.Warn("failed to record hand", "hand", handNum, "error", err)
				}
			}
		}

		for _, p := range seated {
			if chips[p] == 0 {
				res.Eliminated = append(res.Eliminated, p)
				l.logger.Info("player eliminated", "player", p, "hand", handNum)
			}
		}

		dealer = nextFunded(chips, dealer)
	}

	res.FinalChips = chips
	res.SmallBlind, res.BigBlind = sb, bb
	if seated := seatedPlayers(chips); len(seated) == 1 {
		res.Winner = seated[0]
	}
	res.Scores = make([]float64, n)
	for p := range n {
		if res.HandsPlayed[p] > 0 {
			res.Scores[p] = float64(chips[p]-l.cfg.StartingStack) / float64(res.HandsPlayed[p])
		}
	}

	l.logger.Info("match finished", "hands", res.Hands, "winner", res.Winner)
	return res, nil
}

// playHand drives h to completion, asking each strategy in turn.
func (l *Loop) playHand(ctx context.Context, h *game.Hand, strategies []Strategy) (*game.Result, error) {
	step, err := h.Init()
	if err != nil {
		return nil, err
	}

	for {
		for seat, info := range step.Infos {
			strategies[seat].ReceiveInfo(info)
		}
		if step.Terminal {
			res, _ := h.Result()
			return res, nil
		}

		turn := step.Infos[0].Public.Turn
		info := step.Infos[turn]
		a, err := l.decide(ctx, strategies[turn], info)
		if err != nil {
			return nil, err
		}

		step, err = h.Forward(turn, a)
		var illegal *game.IllegalActionError
		if errors.As(err, &illegal) {
			l.logger.Warn("illegal action replaced", "seat", turn, "action", a, "reason", illegal.Reason)
			step, err = h.Forward(turn, l.cfg.DefaultAction.Action(info.Legal))
		}
		if err != nil {
			return nil, err
		}
	}
}

// seatedPlayers returns the players that still hold chips, in player order.
func seatedPlayers(chips []int) []int {
	var seated []int
	for p, c := range chips {
		if c > 0 {
			seated = append(seated, p)
		}
	}
	return seated
}

// nextFunded returns the next player after from, clockwise, that still
// holds chips.
func nextFunded(chips []int, from int) int {
	n := len(chips)
	for i := 1; i <= n; i++ {
		p := (from + i) % n
		if chips[p] > 0 {
			return p
		}
	}
	return from
}
