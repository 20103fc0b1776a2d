package game

// effect is a validated action, ready to be applied in one step.
type effect struct {
	kind     ActionKind // resolved kind; a stack-emptying call becomes AllIn
	commit   int        // chips moved from stack to bets
	allIn    bool
	raise    bool // reopens the betting
	maxBet   int
	minRaise int
}

// validate checks a against the state for seat and computes its effect.
// It never mutates s.
func validate(s *PublicState, seat int, a Action) (effect, error) {
	chips, bet := s.Chips[seat], s.Bets[seat]
	owed := s.MaxBet - bet
	e := effect{kind: a.Kind, maxBet: s.MaxBet, minRaise: s.MinRaiseIncrement}

	switch a.Kind {
	case Fold:
		return e, nil

	case Check:
		if owed > 0 {
			return effect{}, illegal(seat, a, "must call %d", owed)
		}
		return e, nil

	case Call:
		if chips <= 0 {
			return effect{}, illegal(seat, a, "no chips behind")
		}
		if owed <= 0 {
			e.kind = Check
			return e, nil
		}
		e.commit = min(chips, owed)
		if e.commit == chips {
			e.kind = AllIn
			e.allIn = true
		}
		return e, nil

	case Raise:
		minTo := s.MaxBet + s.MinRaiseIncrement
		if a.Amount < minTo {
			return effect{}, illegal(seat, a, "raise too small, minimum %d", minTo)
		}
		if a.Amount-bet > chips {
			return effect{}, illegal(seat, a, "insufficient chips, maximum %d", bet+chips)
		}
		e.commit = a.Amount - bet
		e.allIn = e.commit == chips
		e.raise = true
		e.maxBet = a.Amount
		e.minRaise = a.Amount - s.MaxBet
		return e, nil

	case AllIn:
		if chips <= 0 {
			return effect{}, illegal(seat, a, "no chips behind")
		}
		e.commit = chips
		e.allIn = true
		if total := bet + chips; total > s.MaxBet {
			e.raise = true
			e.maxBet = total
			e.minRaise = max(s.MinRaiseIncrement, total-s.MaxBet)
		}
		return e, nil
	}

	return effect{}, illegal(seat, a, "unknown action")
}

// apply commits a validated effect for seat.
func (s *PublicState) apply(seat int, e effect) {
	if e.kind == Fold {
		s.IsQuit[seat] = true
		s.NumQuit++
		return
	}

	s.Chips[seat] -= e.commit
	s.Bets[seat] += e.commit
	if e.allIn && !s.IsAllIn[seat] {
		s.IsAllIn[seat] = true
		s.NumAllIn++
	}
	s.MaxBet = e.maxBet
	s.MinRaiseIncrement = e.minRaise
	if e.raise {
		s.RoundClosingMarker = prevPlayer(s, seat)
	}
}

// legalActions computes the bounds of every action seat may take.
func legalActions(s *PublicState, seat int) LegalActions {
	chips, bet := s.Chips[seat], s.Bets[seat]
	owed := s.MaxBet - bet

	legal := LegalActions{Fold: true, Check: owed <= 0}
	if owed > 0 && chips > 0 {
		cost := min(chips, owed)
		legal.Call = &Amount{Total: bet + cost, Cost: cost}
	}
	if minTo, maxTo := s.MaxBet+s.MinRaiseIncrement, bet+chips; maxTo >= minTo {
		legal.Raise = &Bounds{Min: minTo, Max: maxTo}
	}
	if chips > 0 {
		legal.AllIn = &Amount{Total: bet + chips, Cost: chips}
	}
	return legal
}
