package meld

import (
	"fmt"

	"rummy/internal/domain"
)

// Scorer rates one configuration of disjoint parts. Higher is better.
type Scorer interface {
	Score(parts []Part) int
}

// ScorerKind names a Scorer implementation.
type ScorerKind string

const (
	ScorerSimple   ScorerKind = "simple"
	ScorerStateful ScorerKind = "stateful"
)

// NewScorer returns a fresh scorer of the given kind. An empty kind selects
// the simple scorer.
func NewScorer(kind ScorerKind) (Scorer, error) {
	switch kind {
	case ScorerSimple, "":
		return SimpleScorer{}, nil
	case ScorerStateful:
		return NewStatefulScorer(), nil
	default:
		return nil, fmt.Errorf("unknown scorer kind: %q", kind)
	}
}

// SimpleScorer rates each part independently.
type SimpleScorer struct{}

func (SimpleScorer) Score(parts []Part) int {
	total := 0
	for _, p := range parts {
		total += simplePartScore(p)
	}
	return total
}

func simplePartScore(p Part) int {
	switch p.typ {
	case NaturalRummy:
		return 1000
	case Rummy:
		if p.hasAce {
			return 250
		}
		return 300
	case Set:
		return 200
	case PartialRummy:
		if p.hasAce {
			return 50
		}
		return 75
	case PartialSet:
		return 50
	case Single:
		if p.hasJoker {
			return 100
		}
		return -5
	default:
		panic(fmt.Sprintf("meld: cannot score part type %v", p.typ))
	}
}

// Diminishing points per type, indexed by how many parts of the type were already counted.
var statefulPoints = map[PartType][3]int{
	NaturalRummy: {1000, 500, 500},
	Rummy:        {300, 300, 300},
	Set:          {200, 100, -1000},
	PartialRummy: {75, 75, 75},
	PartialSet:   {50, 50, 25},
}

const (
	singlePoints          = -5
	jokerSinglePoints     = 100
	lockedDuplicatePoints = -20
)

// StatefulScorer rates a configuration as a whole: repeated types earn less,
// only the first four-card part is rewarded, five-card parts are neutral and
// ace runs count half. A scorer is meant for one solve and is not safe for
// concurrent use.
type StatefulScorer struct {
	counts     map[PartType]int
	hasNatural bool
	hasFour    bool
	locked     map[int]bool
}

// NewStatefulScorer returns a scorer with empty counters.
func NewStatefulScorer() *StatefulScorer {
	return &StatefulScorer{
		counts: make(map[PartType]int, len(PartTypes)),
		locked: make(map[int]bool),
	}
}

func (s *StatefulScorer) reset() {
	clear(s.counts)
	clear(s.locked)
	s.hasNatural = false
	s.hasFour = false
}

// Score evaluates parts in the given order; counters start fresh on every call.
func (s *StatefulScorer) Score(parts []Part) int {
	s.reset()
	for _, p := range parts {
		if p.typ == Set || p.typ == PartialSet {
			for _, c := range p.cards {
				if !c.IsJoker() {
					s.locked[c.Value()] = true
				}
			}
		}
	}

	total := 0.0
	for _, p := range parts {
		if p.typ == Single {
			total += float64(s.singleScore(p.cards[0]))
			continue
		}
		total += s.partScore(p)
	}
	return int(total)
}

func (s *StatefulScorer) singleScore(c domain.Card) int {
	if c.IsJoker() {
		return jokerSinglePoints
	}
	if s.locked[c.Value()] {
		return singlePoints + lockedDuplicatePoints
	}
	return singlePoints
}

func (s *StatefulScorer) partScore(p Part) float64 {
	table, ok := statefulPoints[p.typ]
	if !ok {
		panic(fmt.Sprintf("meld: cannot score part type %v", p.typ))
	}
	key := p.typ
	if key == PartialSet {
		key = Set
	}
	n := s.counts[key]
	s.counts[key] = n + 1
	if n >= len(table) {
		n = len(table) - 1
	}
	points := float64(table[n])

	if p.typ == NaturalRummy {
		s.hasNatural = true
	}
	points *= s.sizeMultiplier(p)
	if (p.typ == Rummy || p.typ == PartialRummy) && p.hasAce {
		points *= 0.5
	}
	return points
}

func (s *StatefulScorer) sizeMultiplier(p Part) float64 {
	switch len(p.cards) {
	case 4:
		if s.hasFour {
			return 0
		}
		s.hasFour = true
		if (p.typ == Set || p.typ == Rummy) && !s.hasNatural {
			return 0.5
		}
		return 1.10
	case 5:
		return 0
	default:
		return 1
	}
}
