package game

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/poker"
)

// HandConfig holds the required inputs of a hand. Stacks are indexed by
// seat; seats with an empty stack sit the hand out.
type HandConfig struct {
	Stacks     []int
	Dealer     int
	SmallBlind int
	BigBlind   int
}

// HandOption configures a Hand during creation.
type HandOption func(*handOptions)

type handOptions struct {
	rng       *rand.Rand
	deck      *poker.Deck
	evaluator poker.Evaluator
	logger    *log.Logger
	id        string
}

// WithRNG shuffles a fresh deck with rng.
func WithRNG(rng *rand.Rand) HandOption {
	return func(o *handOptions) {
		o.rng = rng
	}
}

// WithDeck deals from deck instead of shuffling. It takes precedence over
// WithRNG and is how tests script exact boards.
func WithDeck(deck *poker.Deck) HandOption {
	return func(o *handOptions) {
		o.deck = deck
	}
}

// WithEvaluator replaces poker.DefaultEvaluator at showdown.
func WithEvaluator(e poker.Evaluator) HandOption {
	return func(o *handOptions) {
		o.evaluator = e
	}
}

// WithLogger sets the logger for blinds, actions and awards.
func WithLogger(logger *log.Logger) HandOption {
	return func(o *handOptions) {
		o.logger = logger
	}
}

// WithHandID labels the hand in logs and its record.
func WithHandID(id string) HandOption {
	return func(o *handOptions) {
		o.id = id
	}
}
