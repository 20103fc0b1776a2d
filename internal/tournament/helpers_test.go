package tournament

import (
	"context"
	"sync"

	"github.com/lox/holdem-engine/internal/game"
)

// scripted answers every decision with choose(info).
type scripted struct {
	mu     sync.Mutex
	info   game.Info
	choose func(game.Info) (game.Action, error)
}

func (s *scripted) ReceiveInfo(info game.Info) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = info
}

func (s *scripted) TakeAction(context.Context) (game.Action, error) {
	s.mu.Lock()
	info := s.info
	s.mu.Unlock()
	return s.choose(info)
}

func callStation() *scripted {
	return &scripted{choose: func(info game.Info) (game.Action, error) {
		if info.Legal.Check {
			return game.Action{Kind: game.Check}, nil
		}
		return game.Action{Kind: game.Call}, nil
	}}
}

func shover() *scripted {
	return &scripted{choose: func(info game.Info) (game.Action, error) {
		if info.Legal.AllIn != nil {
			return game.Action{Kind: game.AllIn}, nil
		}
		return game.Action{Kind: game.Check}, nil
	}}
}

// blocking signals entered and then waits for its context to end.
type blocking struct {
	entered chan struct{}
}

func newBlocking() *blocking {
	return &blocking{entered: make(chan struct{}, 1)}
}

func (b *blocking) ReceiveInfo(game.Info) {}

func (b *blocking) TakeAction(ctx context.Context) (game.Action, error) {
	b.entered <- struct{}{}
	<-ctx.Done()
	return game.Action{}, ctx.Err()
}

type recordedHand struct {
	hand    int
	players []int
	rec     game.HandRecord
}

type memoryHistory struct {
	mu    sync.Mutex
	hands []recordedHand
}

func (m *memoryHistory) RecordHand(_ string, hand int, players []int, rec game.HandRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hands = append(m.hands, recordedHand{hand: hand, players: players, rec: rec})
	return nil
}

func sumInts(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
