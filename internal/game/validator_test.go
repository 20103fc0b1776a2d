package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeHanded is preflop with blinds 5/10 posted by seats 1 and 2.
func threeHanded() *PublicState {
	return &PublicState{
		NumPlayers:         3,
		Turn:               0,
		Bets:               []int{0, 5, 10},
		Chips:              []int{1000, 995, 990},
		IsQuit:             make([]bool, 3),
		IsAllIn:            make([]bool, 3),
		MaxBet:             10,
		MinRaiseIncrement:  10,
		RoundClosingMarker: 2,
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		seat    int
		chips   int
		action  Action
		wantErr bool
		kind    ActionKind
		commit  int
		maxBet  int
		inc     int
		allIn   bool
		raise   bool
	}{
		{name: "fold", seat: 0, action: Action{Kind: Fold}, kind: Fold, maxBet: 10, inc: 10},
		{name: "check while owing", seat: 0, action: Action{Kind: Check}, wantErr: true},
		{name: "check when matched", seat: 2, action: Action{Kind: Check}, kind: Check, maxBet: 10, inc: 10},
		{name: "call", seat: 1, action: Action{Kind: Call}, kind: Call, commit: 5, maxBet: 10, inc: 10},
		{name: "call with nothing owed", seat: 2, action: Action{Kind: Call}, kind: Check, maxBet: 10, inc: 10},
		{name: "short call is all-in", seat: 0, chips: 4, action: Action{Kind: Call}, kind: AllIn, commit: 4, maxBet: 10, inc: 10, allIn: true},
		{name: "min raise", seat: 0, action: RaiseTo(20), kind: Raise, commit: 20, maxBet: 20, inc: 10, raise: true},
		{name: "bigger raise", seat: 1, action: RaiseTo(45), kind: Raise, commit: 40, maxBet: 45, inc: 35, raise: true},
		{name: "raise below minimum", seat: 0, action: RaiseTo(19), wantErr: true},
		{name: "raise beyond stack", seat: 0, chips: 50, action: RaiseTo(51), wantErr: true},
		{name: "raise of whole stack", seat: 0, chips: 50, action: RaiseTo(50), kind: Raise, commit: 50, maxBet: 50, inc: 40, allIn: true, raise: true},
		{name: "all-in over max", seat: 0, chips: 100, action: Action{Kind: AllIn}, kind: AllIn, commit: 100, maxBet: 100, inc: 90, allIn: true, raise: true},
		{name: "all-in short of full raise", seat: 0, chips: 15, action: Action{Kind: AllIn}, kind: AllIn, commit: 15, maxBet: 15, inc: 10, allIn: true, raise: true},
		{name: "all-in under max", seat: 0, chips: 6, action: Action{Kind: AllIn}, kind: AllIn, commit: 6, maxBet: 10, inc: 10, allIn: true},
		{name: "all-in with nothing", seat: 0, chips: -1, action: Action{Kind: AllIn}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := threeHanded()
			switch {
			case tt.chips > 0:
				s.Chips[tt.seat] = tt.chips
			case tt.chips < 0:
				s.Chips[tt.seat] = 0
			}
			before := s.clone()

			e, err := validate(s, tt.seat, tt.action)
			assert.Equal(t, before, s.clone(), "validate must not mutate")
			if tt.wantErr {
				var ia *IllegalActionError
				require.ErrorAs(t, err, &ia)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, e.kind)
			assert.Equal(t, tt.commit, e.commit)
			assert.Equal(t, tt.maxBet, e.maxBet)
			assert.Equal(t, tt.inc, e.minRaise)
			assert.Equal(t, tt.allIn, e.allIn)
			assert.Equal(t, tt.raise, e.raise)

			legal := legalActions(&before, tt.seat)
			assert.True(t, legal.Allows(tt.action), "legal set should allow %s", tt.action)
		})
	}
}

func TestApplyRaiseMovesMarker(t *testing.T) {
	t.Parallel()

	s := threeHanded()
	e, err := validate(s, 1, RaiseTo(30))
	require.NoError(t, err)
	s.apply(1, e)

	assert.Equal(t, []int{0, 30, 10}, s.Bets)
	assert.Equal(t, []int{1000, 970, 990}, s.Chips)
	assert.Equal(t, 30, s.MaxBet)
	assert.Equal(t, 20, s.MinRaiseIncrement)
	assert.Equal(t, 0, s.RoundClosingMarker)
}

func TestApplyFoldAndAllIn(t *testing.T) {
	t.Parallel()

	s := threeHanded()
	e, err := validate(s, 0, Action{Kind: Fold})
	require.NoError(t, err)
	s.apply(0, e)
	assert.True(t, s.IsQuit[0])
	assert.Equal(t, 1, s.NumQuit)

	e, err = validate(s, 1, Action{Kind: AllIn})
	require.NoError(t, err)
	s.apply(1, e)
	assert.True(t, s.IsAllIn[1])
	assert.Equal(t, 1, s.NumAllIn)
	assert.Equal(t, 0, s.Chips[1])
	assert.Equal(t, 1000, s.MaxBet)
	assert.Equal(t, 2, s.RoundClosingMarker)
}

func TestLegalActionsCallWhenNothingOwed(t *testing.T) {
	t.Parallel()

	s := threeHanded()
	s.Bets[0] = s.MaxBet
	legal := legalActions(s, 0)
	require.True(t, legal.Check)
	assert.Nil(t, legal.Call)
	assert.True(t, legal.Allows(Action{Kind: Call}))

	e, err := validate(s, 0, Action{Kind: Call})
	require.NoError(t, err)
	assert.Equal(t, Check, e.kind)
	assert.Zero(t, e.commit)
}

func TestLegalActionsShortStack(t *testing.T) {
	t.Parallel()

	s := threeHanded()
	s.Chips[0] = 8
	legal := legalActions(s, 0)

	assert.True(t, legal.Fold)
	assert.False(t, legal.Check)
	assert.Equal(t, &Amount{Total: 8, Cost: 8}, legal.Call)
	assert.Nil(t, legal.Raise)
	assert.Equal(t, &Amount{Total: 8, Cost: 8}, legal.AllIn)

	assert.True(t, legal.Allows(Action{Kind: Call}))
	assert.False(t, legal.Allows(RaiseTo(20)))
	assert.False(t, legal.Allows(Action{Kind: Check}))
}
