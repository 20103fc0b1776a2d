package poker

// HoleCategory is a coarse preflop strength bucket for two hole cards.
type HoleCategory int

const (
	Trash HoleCategory = iota
	Weak
	Medium
	Strong
	Premium
)

func (c HoleCategory) String() string {
	switch c {
	case Premium:
		return "premium"
	case Strong:
		return "strong"
	case Medium:
		return "medium"
	case Weak:
		return "weak"
	default:
		return "trash"
	}
}

// Categorize buckets two hole cards:
//
//	Premium  JJ+, AK
//	Strong   TT, AQ, AJ
//	Medium   77-99, suited broadway
//	Weak     22-66, suited connectors and one-gappers
//	Trash    everything else
func Categorize(a, b Card) HoleCategory {
	hi, lo := a.Rank(), b.Rank()
	if lo > hi {
		hi, lo = lo, hi
	}
	pair := hi == lo
	suited := a.Suit() == b.Suit()

	switch {
	case pair && lo >= Jack, hi == Ace && lo == King:
		return Premium
	case pair && lo == Ten, hi == Ace && (lo == Queen || lo == Jack):
		return Strong
	case pair && lo >= Seven, suited && lo >= Ten:
		return Medium
	case pair, suited && hi-lo <= 2:
		return Weak
	}
	return Trash
}
