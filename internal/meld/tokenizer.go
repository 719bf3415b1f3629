package meld

import "rummy/internal/domain"

// Tokenizer enumerates every legal candidate part of a hand.
type Tokenizer struct {
	// WildFace, when set, lets cards of that face stand in for jokers.
	WildFace domain.Face
}

// Tokenize enumerates parts with no wild face.
func Tokenize(hand []domain.Card) []Part {
	return Tokenizer{}.Tokenize(hand)
}

// Tokenize returns the deduplicated candidate parts of hand. The result does
// not depend on the order of the input, which is left untouched.
func (t Tokenizer) Tokenize(hand []domain.Card) []Part {
	if len(hand) == 0 {
		return nil
	}
	ps := newPartSet()

	normal, jokers := domain.SplitJokers(hand)
	domain.SortByValue(normal)
	domain.SortByValue(jokers)
	tokenizePass(ps, normal, jokers)

	if t.WildFace.Valid() {
		var tame, wild []domain.Card
		for _, c := range normal {
			if c.Face() == t.WildFace {
				wild = append(wild, c)
			} else {
				tame = append(tame, c)
			}
		}
		if len(wild) > 0 {
			tokenizePass(ps, tame, append(wild, jokers...))
		}
	}
	return ps.parts
}

// tokenizePass expects normal sorted by value.
func tokenizePass(ps *partSet, normal, jokers []domain.Card) {
	for _, c := range normal {
		ps.add(Single, []domain.Card{c})
	}
	for _, j := range jokers {
		ps.add(Single, []domain.Card{j})
	}
	addSets(ps, normal, jokers)
	addRuns(ps, normal, jokers)
}

// addJokerVariants emits base plus each joker, and base plus the first two
// jokers when base has two cards.
func addJokerVariants(ps *partSet, typ PartType, base, jokers []domain.Card) {
	if len(base) < 2 || len(base) > 3 {
		return
	}
	for _, j := range jokers {
		ps.add(typ, with(base, j))
	}
	if len(base) == 2 && len(jokers) >= 2 {
		ps.add(typ, with(base, jokers[0], jokers[1]))
	}
}

func with(base []domain.Card, extra ...domain.Card) []domain.Card {
	out := make([]domain.Card, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}
