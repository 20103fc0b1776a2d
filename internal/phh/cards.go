package phh

import (
	"fmt"

	"github.com/lox/holdem-engine/internal/game"
	"github.com/lox/holdem-engine/poker"
)

// player returns the PHH name for a zero-based seat.
func player(seat int) string {
	return fmt.Sprintf("p%d", seat+1)
}

func dealHole(seat int, hole [2]poker.Card) string {
	return fmt.Sprintf("d dh %s %s", player(seat), poker.FormatCards(hole[:]))
}

func dealBoard(cards []poker.Card) string {
	return "d db " + poker.FormatCards(cards)
}

func showHole(seat int, hole [2]poker.Card) string {
	return fmt.Sprintf("%s sm %s", player(seat), poker.FormatCards(hole[:]))
}

// streetCards returns the board cards first shown on stage.
func streetCards(board []poker.Card, stage game.Stage) []poker.Card {
	var lo, hi int
	switch stage {
	case game.Flop:
		lo, hi = 0, 3
	case game.Turn:
		lo, hi = 3, 4
	case game.River:
		lo, hi = 4, 5
	default:
		return nil
	}
	if hi > len(board) {
		return nil
	}
	return board[lo:hi]
}
