package domain

import (
	"errors"
	"math/rand"
)

var (
	ErrDeckEmpty    = errors.New("deck is empty")
	ErrDiscardEmpty = errors.New("discard pile is empty")
)

// NewCards returns every card of the given number of decks in value order,
// followed by the requested jokers.
func NewCards(decks, jokers int) []Card {
	out := make([]Card, 0, decks*4*FacesPerSuit+jokers)
	for d := 0; d < decks; d++ {
		for s := Hearts; s <= Clubs; s++ {
			for f := Ace; f <= King; f++ {
				out = append(out, Card{suit: s, face: f, deck: d})
			}
		}
	}
	for j := 1; j <= jokers; j++ {
		out = append(out, Card{joker: j})
	}
	return out
}

// Deck is a draw pile with its discard pile.
type Deck struct {
	stock   []Card
	discard []Card
}

// NewDeck returns an unshuffled deck built from NewCards.
func NewDeck(decks, jokers int) *Deck {
	return &Deck{stock: NewCards(decks, jokers)}
}

// Shuffle shuffles the draw pile in place.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.stock), func(i, j int) { d.stock[i], d.stock[j] = d.stock[j], d.stock[i] })
}

// Len returns the number of cards left in the draw pile.
func (d *Deck) Len() int { return len(d.stock) }

// DiscardLen returns the size of the discard pile.
func (d *Deck) DiscardLen() int { return len(d.discard) }

// Draw takes the top card of the draw pile.
func (d *Deck) Draw() (Card, error) {
	if len(d.stock) == 0 {
		return Card{}, ErrDeckEmpty
	}
	c := d.stock[len(d.stock)-1]
	d.stock = d.stock[:len(d.stock)-1]
	return c, nil
}

// Deal draws n cards.
func (d *Deck) Deal(n int) (Hand, error) {
	if n > len(d.stock) {
		return nil, ErrDeckEmpty
	}
	hand := make(Hand, 0, n)
	for i := 0; i < n; i++ {
		c, _ := d.Draw()
		hand = append(hand, c)
	}
	return hand, nil
}

// Discard places a card face up on the discard pile.
func (d *Deck) Discard(c Card) {
	d.discard = append(d.discard, c)
}

// TopDiscard returns the visible discard without taking it.
func (d *Deck) TopDiscard() (Card, bool) {
	if len(d.discard) == 0 {
		return Card{}, false
	}
	return d.discard[len(d.discard)-1], true
}

// TakeDiscard removes and returns the visible discard.
func (d *Deck) TakeDiscard() (Card, error) {
	if len(d.discard) == 0 {
		return Card{}, ErrDiscardEmpty
	}
	c := d.discard[len(d.discard)-1]
	d.discard = d.discard[:len(d.discard)-1]
	return c, nil
}

// Reshuffle moves all but the visible discard back into the draw pile and
// shuffles it. It reports whether any card was recycled.
func (d *Deck) Reshuffle(rng *rand.Rand) bool {
	if len(d.discard) <= 1 {
		return false
	}
	top := d.discard[len(d.discard)-1]
	d.stock = append(d.stock, d.discard[:len(d.discard)-1]...)
	d.discard = append(d.discard[:0], top)
	d.Shuffle(rng)
	return true
}
