package meld

import "rummy/internal/domain"

const maxRunSize = 5

// run is a maximal same-suit sequence; each element holds the copies of one card.
type run [][]domain.Card

func (r run) first() domain.Card { return r[0][0] }
func (r run) last() domain.Card  { return r[len(r)-1][0] }

// splitRuns groups value-sorted cards into maximal runs.
func splitRuns(cards []domain.Card) []run {
	var runs []run
	for i, c := range cards {
		if i > 0 {
			prev := cards[i-1]
			if c.Value() == prev.Value() {
				cur := runs[len(runs)-1]
				cur[len(cur)-1] = append(cur[len(cur)-1], c)
				continue
			}
			if c.Suit() == prev.Suit() && c.Face() == prev.Face()+1 {
				runs[len(runs)-1] = append(runs[len(runs)-1], []domain.Card{c})
				continue
			}
		}
		runs = append(runs, run{{c}})
	}
	return runs
}

// addRuns emits PartialRummy and NaturalRummy windows of every run, the
// queen-king-ace wraparound and joker bridges across one-card gaps.
func addRuns(ps *partSet, normal, jokers []domain.Card) {
	runs := splitRuns(normal)
	for _, r := range runs {
		for i := range r {
			for n := 2; n <= maxRunSize && i+n <= len(r); n++ {
				typ := NaturalRummy
				if n == 2 {
					typ = PartialRummy
				}
				for _, combo := range Product(r[i : i+n]) {
					ps.add(typ, combo)
					addJokerVariants(ps, Rummy, combo, jokers)
				}
			}
		}
	}
	addWraparound(ps, normal, jokers)
	addBridges(ps, runs, jokers)
}

// addWraparound emits Q-K-A of each suit, which value order never sees as a run.
func addWraparound(ps *partSet, normal, jokers []domain.Card) {
	for suit := domain.Hearts; suit <= domain.Clubs; suit++ {
		var q, k, a []domain.Card
		for _, c := range normal {
			if c.Suit() != suit {
				continue
			}
			switch c.Face() {
			case domain.Queen:
				q = append(q, c)
			case domain.King:
				k = append(k, c)
			case domain.Ace:
				a = append(a, c)
			}
		}
		if len(q) == 0 || len(k) == 0 || len(a) == 0 {
			continue
		}
		for _, combo := range Product([][]domain.Card{q, k, a}) {
			ps.add(NaturalRummy, combo)
			addJokerVariants(ps, Rummy, combo, jokers)
		}
	}
}

// addBridges joins two runs of one suit separated by a single missing face
// with a joker, keeping up to two cards on each side.
func addBridges(ps *partSet, runs []run, jokers []domain.Card) {
	if len(jokers) == 0 {
		return
	}
	for i := 1; i < len(runs); i++ {
		prev, next := runs[i-1], runs[i]
		if prev.last().Suit() != next.first().Suit() || prev.last().Value()+2 != next.first().Value() {
			continue
		}
		tail := prev[max(0, len(prev)-2):]
		head := next[:min(2, len(next))]

		seq := make([][]domain.Card, 0, len(tail)+1+len(head))
		seq = append(seq, tail...)
		seq = append(seq, jokers)
		seq = append(seq, head...)
		gap := len(tail)

		for start := 0; start <= gap; start++ {
			for end := gap + 1; end <= len(seq); end++ {
				if end-start < 3 {
					continue
				}
				for _, combo := range Product(seq[start:end]) {
					ps.add(Rummy, combo)
				}
			}
		}
	}
}
