package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/game"
)

// RandBot picks uniformly among the legal actions, and uniformly among
// raise sizes when it raises.
type RandBot struct {
	*seat
	rng *rand.Rand
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	b := &RandBot{rng: rng}
	b.seat = newSeat("random", logger, b)
	return b
}

func (r *RandBot) decide(info game.Info) game.Action {
	legal := info.Legal
	options := []game.Action{{Kind: game.Fold}}
	if legal.Check {
		options = append(options, game.Action{Kind: game.Check})
	}
	if legal.Call != nil {
		options = append(options, game.Action{Kind: game.Call})
	}
	if legal.Raise != nil {
		amount := legal.Raise.Min + r.rng.IntN(legal.Raise.Max-legal.Raise.Min+1)
		options = append(options, game.RaiseTo(amount))
	}
	if legal.AllIn != nil {
		options = append(options, game.Action{Kind: game.AllIn})
	}
	return options[r.rng.IntN(len(options))]
}
