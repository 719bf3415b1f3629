package meld

import "rummy/internal/domain"

// pruneParts commits up to limit disjoint three-card natural rummies, skipping
// those with an ace unless aces is set, and drops every part, other than a
// natural rummy or rummy, that reuses one of their cards. parts must be
// sorted by strength.
func pruneParts(parts []Part, limit int, aces bool) ([]Part, int) {
	if limit <= 0 {
		return parts, 0
	}

	committed := make(map[domain.Card]bool)
	melds := 0
	for _, p := range parts {
		if melds >= limit {
			break
		}
		if p.typ != NaturalRummy || len(p.cards) != 3 || (p.hasAce && !aces) || touches(p, committed) {
			continue
		}
		for _, c := range p.cards {
			committed[c] = true
		}
		melds++
	}
	if melds == 0 {
		return parts, 0
	}

	kept := make([]Part, 0, len(parts))
	for _, p := range parts {
		if p.typ != NaturalRummy && p.typ != Rummy && touches(p, committed) {
			continue
		}
		kept = append(kept, p)
	}
	return kept, len(parts) - len(kept)
}

func touches(p Part, cards map[domain.Card]bool) bool {
	for _, c := range p.cards {
		if cards[c] {
			return true
		}
	}
	return false
}
