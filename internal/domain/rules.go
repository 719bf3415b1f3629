package domain

// SameSuit reports whether all cards share one suit.
func SameSuit(cards []Card) bool {
	for i := 1; i < len(cards); i++ {
		if cards[i].suit != cards[0].suit {
			return false
		}
	}
	return true
}

// SameFace reports whether all cards share one face.
func SameFace(cards []Card) bool {
	for i := 1; i < len(cards); i++ {
		if cards[i].face != cards[0].face {
			return false
		}
	}
	return true
}

// DistinctSuits reports whether no two cards share a suit.
func DistinctSuits(cards []Card) bool {
	var seen [Clubs + 1]bool
	for _, c := range cards {
		if seen[c.suit] {
			return false
		}
		seen[c.suit] = true
	}
	return true
}

// RunSpan returns how many consecutive faces are needed to hold the cards as a
// single sequence, counting the ace either low or high, whichever is shorter.
// It fails when two cards share a face.
func RunSpan(cards []Card) (int, bool) {
	if len(cards) == 0 {
		return 0, true
	}
	var seen [King + 2]bool
	for _, c := range cards {
		if seen[c.face] {
			return 0, false
		}
		seen[c.face] = true
	}
	low := spanOf(cards, false)
	if seen[Ace] {
		if high := spanOf(cards, true); high < low {
			return high, true
		}
	}
	return low, true
}

func spanOf(cards []Card, aceHigh bool) int {
	lo, hi := int(King)+1, 0
	for _, c := range cards {
		f := int(c.face)
		if aceHigh && c.face == Ace {
			f = int(King) + 1
		}
		if f < lo {
			lo = f
		}
		if f > hi {
			hi = f
		}
	}
	return hi - lo + 1
}
