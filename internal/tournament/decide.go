package tournament

import (
	"context"

	"github.com/lox/holdem-engine/internal/game"
)

type decision struct {
	action game.Action
	err    error
}

// decide asks s for an action, falling back to the configured default when
// the strategy errors or misses its deadline. Only cancellation of ctx is
// returned as an error.
func (l *Loop) decide(ctx context.Context, s Strategy, info game.Info) (game.Action, error) {
	fallback := l.cfg.DefaultAction.Action(info.Legal)

	actx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The timer is armed before the strategy starts so that a mocked clock
	// advanced from inside TakeAction always finds it.
	timedOut := make(chan struct{})
	if l.cfg.DecisionTimeout > 0 {
		timer := l.clock.AfterFunc(l.cfg.DecisionTimeout, func() {
			close(timedOut)
		}, "decide")
		defer timer.Stop()
	}

	done := make(chan decision, 1)
	go func() {
		a, err := s.TakeAction(actx)
		done <- decision{action: a, err: err}
	}()

	select {
	case d := <-done:
		if d.err != nil {
			if err := ctx.Err(); err != nil {
				return game.Action{}, err
			}
			l.logger.Warn("strategy failed, using default action", "seat", info.Seat, "error", d.err, "action", fallback)
			return fallback, nil
		}
		return d.action, nil

	case <-timedOut:
		l.logger.Warn("decision timeout, using default action", "seat", info.Seat,
			"timeout", l.cfg.DecisionTimeout, "action", fallback)
		return fallback, nil

	case <-ctx.Done():
		return game.Action{}, ctx.Err()
	}
}
