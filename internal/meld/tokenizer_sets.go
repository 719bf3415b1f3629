package meld

import (
	"math/bits"

	"rummy/internal/domain"
)

const maxSetSize = 4

// addSets emits a PartialSet or Set for every choice of 2 to 4 distinct suits
// within a face, multiplied out over duplicate copies of each card.
func addSets(ps *partSet, normal, jokers []domain.Card) {
	cards := append([]domain.Card(nil), normal...)
	domain.SortByFace(cards)

	for start := 0; start < len(cards); {
		end := start + 1
		for end < len(cards) && cards[end].Face() == cards[start].Face() {
			end++
		}
		addFaceGroup(ps, groupBySuit(cards[start:end]), jokers)
		start = end
	}
}

// groupBySuit splits same-face cards (sorted by suit) into sets of copies.
func groupBySuit(cards []domain.Card) [][]domain.Card {
	var out [][]domain.Card
	for i, c := range cards {
		if i == 0 || c.Suit() != cards[i-1].Suit() {
			out = append(out, nil)
		}
		out[len(out)-1] = append(out[len(out)-1], c)
	}
	return out
}

func addFaceGroup(ps *partSet, suitSets [][]domain.Card, jokers []domain.Card) {
	n := len(suitSets)
	if n < 2 {
		return
	}
	for mask := 1; mask < 1<<n; mask++ {
		size := bits.OnesCount(uint(mask))
		if size < 2 || size > maxSetSize {
			continue
		}
		chosen := make([][]domain.Card, 0, size)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				chosen = append(chosen, suitSets[i])
			}
		}
		typ := Set
		if size == 2 {
			typ = PartialSet
		}
		for _, combo := range Product(chosen) {
			ps.add(typ, combo)
			addJokerVariants(ps, Set, combo, jokers)
		}
	}
}
