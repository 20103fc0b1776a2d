// Package bot provides built-in strategies for the tournament loop.
package bot

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/game"
)

// ErrNotMyTurn is returned by TakeAction when the last view received did
// not put the bot on turn.
var ErrNotMyTurn = errors.New("bot: not on turn")

// Bot is a tournament strategy.
type Bot interface {
	ReceiveInfo(info game.Info)
	TakeAction(ctx context.Context) (game.Action, error)
}

// decider chooses an action from a view that is on turn.
type decider interface {
	decide(info game.Info) game.Action
}

// seat keeps the latest view delivered to a bot and turns it into a Bot
// around a decider.
type seat struct {
	name   string
	logger *log.Logger
	d      decider

	mu   sync.Mutex
	info game.Info
	has  bool

	// decideMu serialises decide, which may use an unsynchronised rng. A
	// TakeAction abandoned after a timeout can still be running when the
	// next one starts.
	decideMu sync.Mutex
}

func newSeat(name string, logger *log.Logger, d decider) *seat {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &seat{name: name, logger: logger.WithPrefix(name), d: d}
}

func (s *seat) ReceiveInfo(info game.Info) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = info
	s.has = true
}

func (s *seat) TakeAction(ctx context.Context) (game.Action, error) {
	if err := ctx.Err(); err != nil {
		return game.Action{}, err
	}

	s.mu.Lock()
	info, has := s.info, s.has
	s.mu.Unlock()
	if !has || !info.MyTurn() {
		return game.Action{}, ErrNotMyTurn
	}

	s.decideMu.Lock()
	a := s.d.decide(info)
	s.decideMu.Unlock()
	s.logger.Debug("decision", "seat", info.Seat, "stage", info.Public.Stage, "action", a)
	return a, nil
}

func (s *seat) String() string {
	return s.name
}

type constructor func(rng *rand.Rand, logger *log.Logger) Bot

var registry = map[string]constructor{
	"random": func(rng *rand.Rand, logger *log.Logger) Bot { return NewRandBot(rng, logger) },
	"call":   func(_ *rand.Rand, logger *log.Logger) Bot { return NewCallBot(logger) },
	"fold":   func(_ *rand.Rand, logger *log.Logger) Bot { return NewFoldBot(logger) },
	"maniac": func(rng *rand.Rand, logger *log.Logger) Bot { return NewManiacBot(rng, logger) },
	"tag":    func(rng *rand.Rand, logger *log.Logger) Bot { return NewTAGBot(rng, logger) },
}

// New builds the named strategy. rng drives any randomness it uses.
func New(name string, rng *rand.Rand, logger *log.Logger) (Bot, error) {
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (known: %v)", name, Names())
	}
	return c(rng, logger), nil
}

// Names lists the registered strategies in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// checkOr checks when possible and otherwise takes a.
func checkOr(legal *game.LegalActions, a game.Action) game.Action {
	if legal.Check {
		return game.Action{Kind: game.Check}
	}
	return a
}
