// Package statistics summarises players' results hand by hand, in big
// blinds, so strategies can be compared with error bars.
package statistics

import (
	"math"
	"slices"
)

// HandResult is one player's outcome in one hand.
type HandResult struct {
	NetBB          float64 // chips won minus chips committed, in big blinds
	WentToShowdown bool
	PotBB          float64 // total committed by all seats, in big blinds
}

// BigPotBB is the pot size, in big blinds, from which a pot counts as big.
const BigPotBB = 50

// Statistics accumulates HandResults.
type Statistics struct {
	Hands  int
	SumBB  float64
	SumBB2 float64 // sum of squares, for variance
	Values []float64

	ShowdownWins    int
	NonShowdownWins int
	ShowdownBB      float64 // net at showdown, wins and losses
	NonShowdownBB   float64

	MaxPotBB  float64
	BigPots   int
	BigPotsBB float64 // net in big pots
}

// Mean returns the average result in big blinds per hand.
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance.
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return max(0, (s.SumBB2-float64(s.Hands)*mean*mean)/float64(s.Hands-1))
}

func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates one hand.
func (s *Statistics) Add(r HandResult) {
	s.Hands++
	s.SumBB += r.NetBB
	s.SumBB2 += r.NetBB * r.NetBB
	s.Values = append(s.Values, r.NetBB)

	if r.WentToShowdown {
		s.ShowdownBB += r.NetBB
		if r.NetBB > 0 {
			s.ShowdownWins++
		}
	} else {
		s.NonShowdownBB += r.NetBB
		if r.NetBB > 0 {
			s.NonShowdownWins++
		}
	}

	s.MaxPotBB = max(s.MaxPotBB, r.PotBB)
	if r.PotBB >= BigPotBB {
		s.BigPots++
		s.BigPotsBB += r.NetBB
	}
}

// Merge adds every hand of o to s.
func (s *Statistics) Merge(o *Statistics) {
	s.Hands += o.Hands
	s.SumBB += o.SumBB
	s.SumBB2 += o.SumBB2
	s.Values = append(s.Values, o.Values...)
	s.ShowdownWins += o.ShowdownWins
	s.NonShowdownWins += o.NonShowdownWins
	s.ShowdownBB += o.ShowdownBB
	s.NonShowdownBB += o.NonShowdownBB
	s.MaxPotBB = max(s.MaxPotBB, o.MaxPotBB)
	s.BigPots += o.BigPots
	s.BigPotsBB += o.BigPotsBB
}

func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the interpolated value at p, from 0.0 to 1.0.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := slices.Clone(s.Values)
	slices.Sort(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
