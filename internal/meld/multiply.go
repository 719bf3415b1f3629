package meld

import "rummy/internal/domain"

// Multiply extends every combination with every card of set, in order:
// [[a b] [c d]] x {e f} = [[a b e] [a b f] [c d e] [c d f]].
// Inputs are not modified.
func Multiply(combos [][]domain.Card, set []domain.Card) [][]domain.Card {
	out := make([][]domain.Card, 0, len(combos)*len(set))
	for _, combo := range combos {
		for _, c := range set {
			next := make([]domain.Card, len(combo), len(combo)+1)
			copy(next, combo)
			out = append(out, append(next, c))
		}
	}
	return out
}

// Product returns every concrete combination taking one card from each set.
func Product(sets [][]domain.Card) [][]domain.Card {
	combos := [][]domain.Card{{}}
	for _, set := range sets {
		combos = Multiply(combos, set)
	}
	return combos
}
