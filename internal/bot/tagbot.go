package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/game"
	"github.com/lox/holdem-engine/poker"
)

// TAGBot is a Tight Aggressive bot: it raises strong starting hands and
// made hands and folds most of the rest
type TAGBot struct {
	*seat
	rng *rand.Rand
}

// NewTAGBot creates a new TAGBot instance
func NewTAGBot(rng *rand.Rand, logger *log.Logger) *TAGBot {
	b := &TAGBot{rng: rng}
	b.seat = newSeat("tag", logger, b)
	return b
}

func (t *TAGBot) decide(info game.Info) game.Action {
	legal := info.Legal
	hole := *info.HoleCards

	cat := poker.Categorize(hole[0], hole[1])
	strong := cat >= poker.Strong
	if info.Public.Stage != game.Preflop {
		strong = madeHand(hole, info.Public.PublicCards)
	}

	if strong {
		if legal.Raise != nil {
			return game.RaiseTo(legal.Raise.Min + (legal.Raise.Max-legal.Raise.Min)/4)
		}
		if legal.Call != nil {
			return game.Action{Kind: game.Call}
		}
		return checkOr(legal, game.Action{Kind: game.AllIn})
	}

	if legal.Check {
		return game.Action{Kind: game.Check}
	}
	// Medium hands see cheap flops.
	if legal.Call != nil && info.Public.Stage == game.Preflop && cat == poker.Medium &&
		legal.Call.Cost <= 3*info.Public.BigBlind {
		return game.Action{Kind: game.Call}
	}
	if legal.Call != nil && t.rng.Float64() < 0.15 {
		return game.Action{Kind: game.Call}
	}
	return game.Action{Kind: game.Fold}
}

// madeHand reports a pocket pair or a hole card paired on the board.
func madeHand(hole [2]poker.Card, board []poker.Card) bool {
	if hole[0].Rank() == hole[1].Rank() {
		return true
	}
	for _, b := range board {
		if b.Rank() == hole[0].Rank() || b.Rank() == hole[1].Rank() {
			return true
		}
	}
	return false
}
