package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/game"
)

// FoldBot checks when it can and folds otherwise.
type FoldBot struct {
	*seat
}

// NewFoldBot creates a new FoldBot instance
func NewFoldBot(logger *log.Logger) *FoldBot {
	b := &FoldBot{}
	b.seat = newSeat("fold", logger, b)
	return b
}

func (f *FoldBot) decide(info game.Info) game.Action {
	return checkOr(info.Legal, game.Action{Kind: game.Fold})
}
