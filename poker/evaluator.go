package poker

import (
	ph "github.com/paulhankin/poker"
)

// HandRank is the strength of a best five-card hand. Higher scores are
// stronger; equal scores tie.
type HandRank struct {
	Score       int
	Description string
}

// Ordering is the result of comparing two hand ranks.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "unknown"
	}
}

// Compare orders a against b.
func Compare(a, b HandRank) Ordering {
	switch {
	case a.Score > b.Score:
		return Greater
	case a.Score < b.Score:
		return Less
	default:
		return Equal
	}
}

// Evaluator ranks two hole cards together with the community cards.
type Evaluator interface {
	Rank(hole [2]Card, board []Card) HandRank
}

// EvaluatorFunc adapts a function to the Evaluator interface.
type EvaluatorFunc func(hole [2]Card, board []Card) HandRank

// Rank calls f(hole, board).
func (f EvaluatorFunc) Rank(hole [2]Card, board []Card) HandRank {
	return f(hole, board)
}

// DefaultEvaluator ranks seven-card hands with github.com/paulhankin/poker.
var DefaultEvaluator Evaluator = sevenCardEvaluator{}

type sevenCardEvaluator struct{}

// Rank needs a full five-card board; anything shorter ranks as the zero
// (weakest) HandRank.
func (sevenCardEvaluator) Rank(hole [2]Card, board []Card) HandRank {
	if len(board) != 5 {
		return HandRank{}
	}

	var cards [7]ph.Card
	for i, c := range append([]Card{hole[0], hole[1]}, board...) {
		pc, err := toEvalCard(c)
		if err != nil {
			return HandRank{}
		}
		cards[i] = pc
	}

	rank := HandRank{Score: int(ph.Eval7(&cards))}
	if desc, err := ph.Describe(cards[:]); err == nil {
		rank.Description = desc
	}
	return rank
}

// toEvalCard converts to the evaluator's card form, where ranks run
// ace=1 through king=13.
func toEvalCard(c Card) (ph.Card, error) {
	rank := ph.Rank(c.Rank() + 2)
	if c.Rank() == Ace {
		rank = ph.Rank(1)
	}
	return ph.MakeCard(ph.Suit(c.Suit()), rank)
}
