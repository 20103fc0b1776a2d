package game

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/poker"
)

// Hand plays one hand of no-limit Texas Hold'em. It is driven by Init and
// then Forward, once per decision, until a terminal Step is returned.
//
// A Hand is not safe for concurrent use.
type Hand struct {
	id     string
	cfg    HandConfig
	deck   *poker.Deck
	eval   poker.Evaluator
	logger *log.Logger

	pub     PublicState
	priv    PrivateState
	record  HandRecord
	started bool
	result  *Result
}

// Result is the outcome of a finished hand. Payouts are the chips each seat
// takes from the pots; they are not added to PublicState.Chips.
type Result struct {
	Payouts  []int
	Scores   []int // payout minus chips committed
	Pots     []Pot
	Ranks    []*poker.HandRank // nil for seats that did not reach showdown
	Showdown bool
}

// NewHand validates cfg and prepares a hand. No cards are dealt and no
// blinds are posted until Init.
func NewHand(cfg HandConfig, opts ...HandOption) (*Hand, error) {
	o := handOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	n := len(cfg.Stacks)
	funded := 0
	for seat, stack := range cfg.Stacks {
		if stack < 0 {
			return nil, fmt.Errorf("seat %d has negative stack %d", seat, stack)
		}
		if stack > 0 {
			funded++
		}
	}
	if funded < 2 {
		return nil, ErrInsufficientPlayers
	}
	if cfg.Dealer < 0 || cfg.Dealer >= n {
		return nil, fmt.Errorf("dealer seat %d out of range [0,%d)", cfg.Dealer, n)
	}
	if cfg.BigBlind <= 0 || cfg.SmallBlind < 0 || cfg.SmallBlind > cfg.BigBlind {
		return nil, fmt.Errorf("invalid blinds %d/%d", cfg.SmallBlind, cfg.BigBlind)
	}

	deck := o.deck
	if deck == nil {
		if o.rng == nil {
			return nil, errors.New("hand needs an rng or a deck")
		}
		deck = poker.NewDeck(o.rng)
	}
	if o.evaluator == nil {
		o.evaluator = poker.DefaultEvaluator
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.id != "" {
		o.logger = o.logger.With("hand", o.id)
	}

	cfg.Stacks = slices.Clone(cfg.Stacks)
	return &Hand{
		id:     o.id,
		cfg:    cfg,
		deck:   deck,
		eval:   o.evaluator,
		logger: o.logger,
	}, nil
}

// Init deals, posts the blinds and returns the first step. If no decision
// is possible after the blinds, the hand is run out and Init returns the
// terminal step.
func (h *Hand) Init() (Step, error) {
	if h.started {
		return Step{}, ErrAlreadyStarted
	}

	n := len(h.cfg.Stacks)
	h.pub = PublicState{
		NumPlayers:         n,
		Dealer:             h.cfg.Dealer,
		Stage:              Preflop,
		SmallBlind:         h.cfg.SmallBlind,
		BigBlind:           h.cfg.BigBlind,
		Bets:               make([]int, n),
		Chips:              slices.Clone(h.cfg.Stacks),
		IsQuit:             make([]bool, n),
		IsAllIn:            make([]bool, n),
		MinRaiseIncrement:  h.cfg.BigBlind,
		Turn:               NoSeat,
		RoundClosingMarker: NoSeat,
	}
	for seat, stack := range h.cfg.Stacks {
		if stack == 0 {
			h.pub.IsQuit[seat] = true
			h.pub.NumQuit++
		}
	}

	if err := h.deal(); err != nil {
		return Step{}, err
	}
	h.started = true

	sb, bb := h.blindSeats()
	h.record = HandRecord{
		HandID:         h.id,
		Dealer:         h.cfg.Dealer,
		SmallBlind:     h.cfg.SmallBlind,
		BigBlind:       h.cfg.BigBlind,
		SmallBlindSeat: sb,
		BigBlindSeat:   bb,
		StartingStacks: slices.Clone(h.cfg.Stacks),
		Blinds:         make([]int, n),
		HoleCards:      slices.Clone(h.priv.HoleCards),
		Dealt:          slices.Clone(h.pub.IsQuit),
	}
	for seat := range h.record.Dealt {
		h.record.Dealt[seat] = !h.record.Dealt[seat]
	}

	h.post(bb, h.cfg.BigBlind)
	h.post(sb, h.cfg.SmallBlind)
	h.pub.MaxBet = max(h.pub.Bets[bb], h.pub.Bets[sb])
	h.logger.Debug("blinds posted",
		"dealer", h.cfg.Dealer,
		"sb_seat", sb, "sb", h.pub.Bets[sb],
		"bb_seat", bb, "bb", h.pub.Bets[bb])

	openStreet(&h.pub, bb)
	if bettingLocked(&h.pub) {
		h.runOut()
	}
	return h.step(), nil
}

// deal hands out two hole cards to every funded seat, starting left of
// the dealer, and reserves the five community cards.
func (h *Hand) deal() error {
	n := h.pub.NumPlayers
	h.priv = PrivateState{HoleCards: make([][2]poker.Card, n)}

	for round := range 2 {
		for i := 1; i <= n; i++ {
			seat := (h.cfg.Dealer + i) % n
			if h.pub.IsQuit[seat] {
				continue
			}
			cards := h.deck.Deal(1)
			if cards == nil {
				return errors.New("deck exhausted while dealing hole cards")
			}
			h.priv.HoleCards[seat][round] = cards[0]
		}
	}

	h.priv.Undealt = h.deck.Deal(5)
	if h.priv.Undealt == nil {
		return errors.New("deck exhausted while reserving the board")
	}
	return nil
}

// blindSeats returns the small and big blind seats. Heads-up, the dealer
// posts the small blind.
func (h *Hand) blindSeats() (sb, bb int) {
	dealer := h.cfg.Dealer
	if h.pub.live() == 2 {
		sb = dealer
		if h.pub.IsQuit[dealer] {
			sb = nextPlayer(&h.pub, dealer)
		}
		return sb, nextPlayer(&h.pub, sb)
	}
	sb = nextPlayer(&h.pub, dealer)
	return sb, nextPlayer(&h.pub, sb)
}

func (h *Hand) post(seat, blind int) {
	amount := min(blind, h.pub.Chips[seat])
	h.pub.Chips[seat] -= amount
	h.pub.Bets[seat] += amount
	h.record.Blinds[seat] += amount
	if h.pub.Chips[seat] == 0 && !h.pub.IsAllIn[seat] {
		h.pub.IsAllIn[seat] = true
		h.pub.NumAllIn++
	}
}

// Forward applies the action of seat. Rejected actions leave the hand
// untouched.
func (h *Hand) Forward(seat int, a Action) (Step, error) {
	switch {
	case !h.started:
		return Step{}, ErrNotStarted
	case h.result != nil:
		return Step{}, ErrTerminalState
	case seat != h.pub.Turn:
		return Step{}, &OutOfTurnError{Seat: seat, Turn: h.pub.Turn}
	}

	e, err := validate(&h.pub, seat, a)
	if err != nil {
		return Step{}, err
	}
	h.pub.apply(seat, e)

	rec := ActionRecord{
		Seat:      seat,
		Stage:     h.pub.Stage,
		Kind:      e.kind,
		Committed: e.commit,
		Total:     h.pub.Bets[seat],
	}
	h.pub.LastAction = &rec
	h.record.Actions = append(h.record.Actions, rec)
	h.logger.Debug("action", "seat", seat, "stage", rec.Stage, "action", rec.Kind,
		"committed", rec.Committed, "total", rec.Total, "pot", h.pub.Pot())

	switch {
	case h.pub.live() == 1:
		h.awardUncontested()
	case isRoundClosed(&h.pub, seat, e.raise):
		h.closeStreet()
	default:
		h.pub.Turn = nextPlayer(&h.pub, seat)
	}
	return h.step(), nil
}

// closeStreet moves to the next street, or runs out the board when no
// further betting is possible.
func (h *Hand) closeStreet() {
	if bettingLocked(&h.pub) || h.pub.Stage == River {
		h.runOut()
		return
	}

	h.reveal(h.pub.Stage + 1)
	h.pub.MinRaiseIncrement = h.cfg.BigBlind
	openStreet(&h.pub, h.pub.Dealer)
	if bettingLocked(&h.pub) {
		h.runOut()
	}
}

// reveal advances to stage and turns the matching community cards face up.
func (h *Hand) reveal(stage Stage) {
	want := stage.boardSize()
	if have := len(h.pub.PublicCards); want > have {
		h.pub.PublicCards = append(h.pub.PublicCards, h.priv.Undealt[:want-have]...)
		h.priv.Undealt = h.priv.Undealt[want-have:]
	}
	h.pub.Stage = stage
	h.logger.Debug("street", "stage", stage, "board", poker.FormatCards(h.pub.PublicCards))
}

// runOut deals the rest of the board and settles the hand at showdown.
func (h *Hand) runOut() {
	for h.pub.Stage < River {
		h.reveal(h.pub.Stage + 1)
	}
	h.reveal(Showdown)
	h.showdown()
}

func (h *Hand) showdown() {
	n := h.pub.NumPlayers
	ranks := make([]*poker.HandRank, n)
	for seat := range n {
		if h.pub.IsQuit[seat] {
			continue
		}
		r := h.eval.Rank(h.priv.HoleCards[seat], h.pub.PublicCards)
		ranks[seat] = &r
		h.logger.Debug("showdown", "seat", seat,
			"cards", poker.FormatCards(h.priv.HoleCards[seat][:]), "hand", r.Description)
	}

	alloc := AllocatePots(AllocationInput{
		Bets:   h.pub.Bets,
		Folded: h.pub.IsQuit,
		Ranks:  ranks,
		Dealer: h.pub.Dealer,
	})
	h.finish(alloc.Payouts, alloc.Pots, ranks, true)
}

func (h *Hand) awardUncontested() {
	winner := slices.Index(h.pub.IsQuit, false)
	payouts := make([]int, h.pub.NumPlayers)
	payouts[winner] = h.pub.Pot()
	pot := Pot{
		Amount:   payouts[winner],
		Cap:      h.pub.MaxBet,
		Eligible: []int{winner},
		Winners:  []int{winner},
	}
	h.finish(payouts, []Pot{pot}, make([]*poker.HandRank, h.pub.NumPlayers), false)
}

func (h *Hand) finish(payouts []int, pots []Pot, ranks []*poker.HandRank, showdown bool) {
	scores := make([]int, len(payouts))
	for seat, p := range payouts {
		scores[seat] = p - h.pub.Bets[seat]
	}

	h.result = &Result{
		Payouts:  payouts,
		Scores:   scores,
		Pots:     pots,
		Ranks:    ranks,
		Showdown: showdown,
	}
	h.pub.Stage = Complete
	h.pub.Turn = NoSeat
	h.pub.RoundClosingMarker = NoSeat

	h.record.Board = slices.Clone(h.pub.PublicCards)
	h.record.Payouts = slices.Clone(payouts)
	h.record.Showdown = showdown

	for seat, p := range payouts {
		if p > 0 {
			h.logger.Debug("award", "seat", seat, "amount", p, "showdown", showdown)
		}
	}
}

// step builds the per-seat views of the current state.
func (h *Hand) step() Step {
	n := h.pub.NumPlayers
	st := Step{Terminal: h.result != nil, Infos: make([]Info, n)}
	if st.Terminal {
		st.Scores = slices.Clone(h.result.Scores)
	}

	for seat := range n {
		info := Info{Seat: seat, Public: h.pub.clone()}
		if h.record.Dealt[seat] {
			cards := h.priv.HoleCards[seat]
			info.HoleCards = &cards
		}
		if !st.Terminal && seat == h.pub.Turn {
			legal := legalActions(&h.pub, seat)
			info.Legal = &legal
		}
		st.Infos[seat] = info
	}
	return st
}

// ID returns the identifier set with WithHandID.
func (h *Hand) ID() string {
	return h.id
}

// Public returns a snapshot of the public state.
func (h *Hand) Public() PublicState {
	return h.pub.clone()
}

// Private returns a snapshot of the hidden state.
func (h *Hand) Private() PrivateState {
	return h.priv.clone()
}

// Result returns the outcome once the hand is terminal.
func (h *Hand) Result() (*Result, bool) {
	if h.result == nil {
		return nil, false
	}
	r := *h.result
	r.Payouts = slices.Clone(r.Payouts)
	r.Scores = slices.Clone(r.Scores)
	r.Pots = slices.Clone(r.Pots)
	r.Ranks = slices.Clone(r.Ranks)
	return &r, true
}

// Record returns the event log of the hand so far.
func (h *Hand) Record() HandRecord {
	return h.record.clone()
}

// TotalChips is the sum of stacks and committed chips. It never changes
// while a hand is played.
func (h *Hand) TotalChips() int {
	total := h.pub.Pot()
	for _, c := range h.pub.Chips {
		total += c
	}
	return total
}
