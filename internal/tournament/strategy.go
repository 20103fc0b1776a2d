package tournament

import (
	"context"

	"github.com/lox/holdem-engine/internal/game"
)

// Strategy is a player. ReceiveInfo is called with the player's view after
// every step of a hand; TakeAction is called only when the last view showed
// it was the player's turn.
//
// TakeAction may run on its own goroutine and outlive its deadline, so an
// implementation must be safe for ReceiveInfo and for the next TakeAction
// to be called while an abandoned TakeAction is still running. It should
// return promptly once ctx is done.
type Strategy interface {
	ReceiveInfo(info game.Info)
	TakeAction(ctx context.Context) (game.Action, error)
}

// HistorySink receives every completed hand of a match. players maps each
// seat of the hand to the index of the player in the match. rec is shared
// between sinks and must not be modified.
type HistorySink interface {
	RecordHand(tournamentID string, hand int, players []int, rec game.HandRecord) error
}
