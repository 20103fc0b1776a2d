package game

// nextPlayer walks clockwise from current, skipping folded and all-in
// seats. current itself is considered last. It returns NoSeat when nobody
// can act.
func nextPlayer(s *PublicState, current int) int {
	n := s.NumPlayers
	for i := 1; i <= n; i++ {
		pos := ((current+i)%n + n) % n
		if s.eligible(pos) {
			return pos
		}
	}
	return NoSeat
}

// prevPlayer is nextPlayer walking counter-clockwise.
func prevPlayer(s *PublicState, current int) int {
	n := s.NumPlayers
	for i := 1; i <= n; i++ {
		pos := ((current-i)%n + n) % n
		if s.eligible(pos) {
			return pos
		}
	}
	return NoSeat
}

// eligibleCount returns how many seats can still make decisions.
func eligibleCount(s *PublicState) int {
	return s.NumPlayers - s.NumQuit - s.NumAllIn
}

// bettingLocked reports that no further decision can change the hand:
// nobody can act, or a single seat can act and owes nothing.
func bettingLocked(s *PublicState) bool {
	switch eligibleCount(s) {
	case 0:
		return true
	case 1:
		seat := nextPlayer(s, 0)
		return s.Bets[seat] >= s.MaxBet
	default:
		return false
	}
}

// isRoundClosed reports whether the street is over after actor moved.
// The closing marker is the last seat that must act; once it acts without
// raising, everyone has had a chance to respond to the last raise.
func isRoundClosed(s *PublicState, actor int, raised bool) bool {
	if bettingLocked(s) {
		return true
	}
	return !raised && actor == s.RoundClosingMarker
}

// openStreet seats the turn at the first eligible seat after from and puts
// the closing marker on the last eligible seat before it.
func openStreet(s *PublicState, from int) {
	s.Turn = nextPlayer(s, from)
	if s.Turn == NoSeat {
		s.RoundClosingMarker = NoSeat
		return
	}
	s.RoundClosingMarker = prevPlayer(s, s.Turn)
}
