package meld

import (
	"testing"

	"rummy/internal/domain"
)

func cards(s string) []domain.Card {
	return domain.MustParseHand(s)
}

func part(typ PartType, s string) Part {
	return MustPart(typ, cards(s))
}

func keys(parts []Part) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.Key()
	}
	return out
}

func findPart(parts []Part, typ PartType, s string) bool {
	want := newPart(typ, cards(s)).Key()
	for _, p := range parts {
		if p.Key() == want {
			return true
		}
	}
	return false
}

func countType(parts []Part, typ PartType) int {
	n := 0
	for _, p := range parts {
		if p.Type() == typ {
			n++
		}
	}
	return n
}

// assertCovers checks that parts and free cards partition hand exactly.
func assertCovers(t *testing.T, hand []domain.Card, sol Solution) {
	t.Helper()
	counts := make(map[domain.Card]int)
	for _, c := range hand {
		counts[c]++
	}
	for _, c := range append(CardsOf(sol.Parts), sol.FreeCards...) {
		counts[c]--
		if counts[c] < 0 {
			t.Fatalf("card %v used more than held", c)
		}
	}
	for c, n := range counts {
		if n != 0 {
			t.Fatalf("card %v not covered", c)
		}
	}
}
