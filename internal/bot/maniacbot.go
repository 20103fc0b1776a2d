package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/game"
)

// ManiacBot is an extremely aggressive bot that shoves frequently
type ManiacBot struct {
	*seat
	rng *rand.Rand
}

// NewManiacBot creates a new ManiacBot instance
func NewManiacBot(rng *rand.Rand, logger *log.Logger) *ManiacBot {
	b := &ManiacBot{rng: rng}
	b.seat = newSeat("maniac", logger, b)
	return b
}

func (m *ManiacBot) decide(info game.Info) game.Action {
	legal := info.Legal
	shove := game.Action{Kind: game.AllIn}
	if legal.AllIn == nil && legal.Raise != nil {
		shove = game.RaiseTo(legal.Raise.Max)
	}

	if legal.Check {
		// Unopened: bet most of the time.
		if m.rng.Float64() >= 0.85 {
			return game.Action{Kind: game.Check}
		}
		short := info.Public.Chips[info.Seat] <= 20*info.Public.BigBlind
		if short || m.rng.Float64() < 0.3 || legal.Raise == nil {
			return shove
		}
		return game.RaiseTo(legal.Raise.Min + (legal.Raise.Max-legal.Raise.Min)*3/4)
	}

	// Facing a bet: shove 40%, call 40%, fold the rest.
	switch r := m.rng.Float64(); {
	case r < 0.4:
		return shove
	case r < 0.8 && legal.Call != nil:
		return game.Action{Kind: game.Call}
	default:
		return game.Action{Kind: game.Fold}
	}
}
