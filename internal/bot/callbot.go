package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/game"
)

// CallBot checks or calls every street, going all-in when a call would
// take its whole stack.
type CallBot struct {
	*seat
}

// NewCallBot creates a new CallBot instance
func NewCallBot(logger *log.Logger) *CallBot {
	b := &CallBot{}
	b.seat = newSeat("call", logger, b)
	return b
}

func (c *CallBot) decide(info game.Info) game.Action {
	if info.Legal.Call == nil {
		return checkOr(info.Legal, game.Action{Kind: game.Fold})
	}
	return checkOr(info.Legal, game.Action{Kind: game.Call})
}
