package meld

const (
	// HandSize is the number of cards a player holds between turns.
	HandSize = 13
	// FullHandPoints is charged when a hand lacks a natural rummy plus a second rummy.
	FullHandPoints = 80
	// WinBonus is added to the score of a winning configuration.
	WinBonus = 1_000_000
)

// hasOpening reports whether parts hold a natural rummy and a second rummy
// of either kind.
func hasOpening(parts []Part) bool {
	natural, second := false, false
	for _, p := range parts {
		switch p.typ {
		case NaturalRummy:
			if natural {
				second = true
			}
			natural = true
		case Rummy:
			second = true
		}
	}
	return natural && second
}

// IsWinning reports whether parts cover exactly handSize cards with a natural
// rummy, a second rummy and nothing but sets besides.
func IsWinning(parts []Part, handSize int) bool {
	cards := 0
	for _, p := range parts {
		cards += len(p.cards)
		if !p.typ.IsComplete() {
			return false
		}
	}
	return cards == handSize && hasOpening(parts)
}

// Points counts the deadwood left by a configuration: FullHandPoints without
// an opening, otherwise the face points of cards outside complete melds.
// Zero means the hand has won.
func Points(parts []Part) int {
	if !hasOpening(parts) {
		return FullHandPoints
	}
	total := 0
	for _, p := range parts {
		if p.typ.IsComplete() {
			continue
		}
		for _, c := range p.cards {
			total += c.Points()
		}
	}
	return total
}
