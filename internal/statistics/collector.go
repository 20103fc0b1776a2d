package statistics

import (
	"slices"
	"sync"

	"github.com/lox/holdem-engine/internal/game"
)

// Collector builds per-player Statistics from completed hands. It records
// hands from any number of concurrent matches.
type Collector struct {
	mu      sync.Mutex
	players []Statistics
}

// NewCollector tracks n players.
func NewCollector(n int) *Collector {
	return &Collector{players: make([]Statistics, n)}
}

// RecordHand adds the hand to every player that was dealt in. players maps
// seats to player indexes; players the collector does not know are ignored.
func (c *Collector) RecordHand(_ string, _ int, players []int, rec game.HandRecord) error {
	if rec.BigBlind <= 0 {
		return nil
	}
	committed := rec.Committed()
	bb := float64(rec.BigBlind)
	pot := 0
	for _, v := range committed {
		pot += v
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for seat, p := range players {
		if seat >= len(rec.Dealt) || !rec.Dealt[seat] || p < 0 || p >= len(c.players) {
			continue
		}
		won := 0
		if seat < len(rec.Payouts) {
			won = rec.Payouts[seat]
		}
		c.players[p].Add(HandResult{
			NetBB:          float64(won-committed[seat]) / bb,
			WentToShowdown: rec.Showdown && !folded(rec, seat),
			PotBB:          float64(pot) / bb,
		})
	}
	return nil
}

// Player returns a copy of player p's statistics.
func (c *Collector) Player(p int) Statistics {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.players[p]
	s.Values = slices.Clone(s.Values)
	return s
}

func folded(rec game.HandRecord, seat int) bool {
	for _, a := range rec.Actions {
		if a.Seat == seat && a.Kind == game.Fold {
			return true
		}
	}
	return false
}
