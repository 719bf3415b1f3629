package domain

import (
	"sort"
	"strings"
)

// Hand is an ordered collection of cards held by a player.
type Hand []Card

// Clone returns a copy of the hand.
func (h Hand) Clone() Hand {
	if h == nil {
		return nil
	}
	out := make(Hand, len(h))
	copy(out, h)
	return out
}

func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Contains reports whether the exact card (deck and joker id included) is in the hand.
func (h Hand) Contains(c Card) bool {
	for _, hc := range h {
		if hc == c {
			return true
		}
	}
	return false
}

// RemoveCards returns a copy of hand without one occurrence of each played card.
func RemoveCards(hand []Card, played []Card) []Card {
	out := append([]Card{}, hand...)
	for _, pc := range played {
		for i := 0; i < len(out); i++ {
			if out[i] == pc {
				out = append(out[:i], out[i+1:]...)
				break
			}
		}
	}
	return out
}

// SplitJokers separates normal cards from jokers, preserving order.
func SplitJokers(cards []Card) (normal, jokers []Card) {
	for _, c := range cards {
		if c.IsJoker() {
			jokers = append(jokers, c)
		} else {
			normal = append(normal, c)
		}
	}
	return normal, jokers
}

// SortByValue orders cards suit-major, then face, then deck, with jokers last by id.
func SortByValue(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return lessByValue(cards[i], cards[j])
	})
}

// SortByFace orders cards face-major, then suit, then deck, with jokers last by id.
func SortByFace(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		a, b := cards[i], cards[j]
		if a.IsJoker() || b.IsJoker() {
			return jokerLess(a, b)
		}
		if a.face != b.face {
			return a.face < b.face
		}
		if a.suit != b.suit {
			return a.suit < b.suit
		}
		return a.deck < b.deck
	})
}

func lessByValue(a, b Card) bool {
	if a.IsJoker() || b.IsJoker() {
		return jokerLess(a, b)
	}
	if av, bv := a.Value(), b.Value(); av != bv {
		return av < bv
	}
	return a.deck < b.deck
}

func jokerLess(a, b Card) bool {
	if a.IsJoker() != b.IsJoker() {
		return !a.IsJoker()
	}
	return a.joker < b.joker
}

// TotalPoints sums the deadwood points of the cards.
func TotalPoints(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Points()
	}
	return total
}
