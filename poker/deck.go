package poker

import (
	"fmt"
	rand "math/rand/v2"
)

// Deck is an ordered 52-card sequence dealt from the top.
type Deck struct {
	cards [52]Card
	next  int
}

// NewDeck returns a deck shuffled with rng. The same seed always produces
// the same order.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{}
	d.fillOrdered()
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	return d
}

// NewStackedDeck returns a deck whose first cards are top, in order, followed
// by the remaining cards in canonical order. It is the fixed-sequence double
// used to script exact deals.
func NewStackedDeck(top ...Card) (*Deck, error) {
	if len(top) > 52 {
		return nil, fmt.Errorf("stacked deck has %d cards", len(top))
	}

	var seen Hand
	d := &Deck{}
	for i, c := range top {
		if !c.Valid() {
			return nil, fmt.Errorf("invalid card at position %d", i)
		}
		if seen.HasCard(c) {
			return nil, fmt.Errorf("duplicate card %s at position %d", c, i)
		}
		seen.AddCard(c)
		d.cards[i] = c
	}

	i := len(top)
	for suit := range uint8(4) {
		for rank := range uint8(13) {
			c := NewCard(rank, suit)
			if !seen.HasCard(c) {
				d.cards[i] = c
				i++
			}
		}
	}
	return d, nil
}

func (d *Deck) fillOrdered() {
	i := 0
	for suit := range uint8(4) {
		for rank := range uint8(13) {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}
}

// Deal deals n cards from the deck. It returns nil if fewer than n remain.
func (d *Deck) Deal(n int) []Card {
	if n < 0 || d.next+n > len(d.cards) {
		return nil
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// Cards returns the full deck order, dealt cards included.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards[:])
	return out
}

// CardsRemaining returns the number of cards left in the deck.
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
