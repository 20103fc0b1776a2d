package tournament

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-engine/poker"
)

// Option configures a Loop.
type Option func(*Loop)

// WithRNG shuffles every hand of the match from rng.
func WithRNG(rng *rand.Rand) Option {
	return func(l *Loop) {
		l.rng = rng
	}
}

// WithClock replaces the real clock used for decision deadlines.
func WithClock(clock quartz.Clock) Option {
	return func(l *Loop) {
		l.clock = clock
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// WithEvaluator ranks showdown hands with e.
func WithEvaluator(e poker.Evaluator) Option {
	return func(l *Loop) {
		l.evaluator = e
	}
}

// WithHistory records every completed hand to sink. It may be given more
// than once; sinks are called in order.
func WithHistory(sink HistorySink) Option {
	return func(l *Loop) {
		l.history = append(l.history, sink)
	}
}

// WithTournamentID sets the identifier used in logs, hand IDs and history.
func WithTournamentID(id string) Option {
	return func(l *Loop) {
		l.id = id
	}
}
