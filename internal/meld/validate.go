package meld

import (
	"errors"
	"fmt"

	"rummy/internal/domain"
)

var ErrIllegalPart = errors.New("illegal part")

// NewPart builds a part after checking it is a legal group of its type.
func NewPart(typ PartType, cards []domain.Card) (Part, error) {
	return NewWildPart(typ, cards, domain.NoFace)
}

// NewWildPart is NewPart with cards of the wild face standing in for jokers.
func NewWildPart(typ PartType, cards []domain.Card, wild domain.Face) (Part, error) {
	p := newPart(typ, cards)
	if err := Validate(p, wild); err != nil {
		return Part{}, err
	}
	return p, nil
}

// MustPart is NewPart that panics on error.
func MustPart(typ PartType, cards []domain.Card) Part {
	p, err := NewPart(typ, cards)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate checks p against the rules of its type. Cards of the wild face
// may stand in for jokers.
func Validate(p Part, wild domain.Face) error {
	var natural, jokers []domain.Card
	for _, c := range p.cards {
		if !c.Valid() {
			return fmt.Errorf("%w: malformed card %v", ErrIllegalPart, c)
		}
		if c.IsJoker() || (wild.Valid() && c.Face() == wild) {
			jokers = append(jokers, c)
		} else {
			natural = append(natural, c)
		}
	}
	if dup := duplicateCard(p.cards); dup != nil {
		return fmt.Errorf("%w: card %v used twice", ErrIllegalPart, *dup)
	}

	fail := func(reason string) error {
		return fmt.Errorf("%w: %v %s", ErrIllegalPart, p, reason)
	}

	switch p.typ {
	case Single:
		if len(p.cards) != 1 {
			return fail("must hold one card")
		}
	case PartialSet, Set:
		lo, hi := 3, 4
		if p.typ == PartialSet {
			lo, hi = 2, 2
		}
		if len(p.cards) < lo || len(p.cards) > hi {
			return fail("has the wrong size")
		}
		if p.typ == PartialSet && len(jokers) > 0 {
			return fail("cannot hold a joker")
		}
		if len(natural) < 2 || !domain.SameFace(natural) || !domain.DistinctSuits(natural) {
			return fail("needs one face in distinct suits")
		}
	case PartialRummy, NaturalRummy, Rummy:
		return validateRun(p, natural, jokers, fail)
	default:
		return fail("has an unknown type")
	}
	return nil
}

func validateRun(p Part, natural, jokers []domain.Card, fail func(string) error) error {
	switch p.typ {
	case PartialRummy:
		if len(p.cards) != 2 || len(jokers) > 0 {
			return fail("must hold two natural cards")
		}
	case NaturalRummy:
		if len(p.cards) < 3 || len(p.cards) > maxRunSize || len(jokers) > 0 {
			return fail("must hold three to five natural cards")
		}
	case Rummy:
		if len(p.cards) < 3 || len(p.cards) > maxRunSize || len(jokers) == 0 || len(natural) < 2 {
			return fail("must hold a joker and at least two natural cards")
		}
	}
	if !domain.SameSuit(natural) {
		return fail("mixes suits")
	}
	span, ok := domain.RunSpan(natural)
	if !ok {
		return fail("repeats a face")
	}
	if len(jokers) == 0 && span != len(natural) {
		return fail("is not consecutive")
	}
	if span > len(p.cards) {
		return fail("has gaps the jokers cannot fill")
	}
	return nil
}

func duplicateCard(cards []domain.Card) *domain.Card {
	for i := range cards {
		for j := i + 1; j < len(cards); j++ {
			if cards[i] == cards[j] {
				return &cards[i]
			}
		}
	}
	return nil
}
