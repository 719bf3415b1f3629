// Package meld breaks a rummy hand into scoring groups and searches for the
// best disjoint selection of them.
package meld

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"rummy/internal/domain"
)

// PartType classifies a candidate group, strongest first.
type PartType int

const (
	NaturalRummy PartType = iota
	Rummy
	Set
	PartialRummy
	PartialSet
	Single
)

// PartTypes lists every type in strength order.
var PartTypes = []PartType{NaturalRummy, Rummy, Set, PartialRummy, PartialSet, Single}

func (t PartType) String() string {
	switch t {
	case NaturalRummy:
		return "NATURAL_RUMMY"
	case Rummy:
		return "RUMMY"
	case Set:
		return "SET"
	case PartialRummy:
		return "PARTIAL_RUMMY"
	case PartialSet:
		return "PARTIAL_SET"
	case Single:
		return "SINGLE"
	default:
		return "UNKNOWN(" + strconv.Itoa(int(t)) + ")"
	}
}

// ParsePartType reads a name produced by PartType.String.
func ParsePartType(s string) (PartType, error) {
	for _, t := range PartTypes {
		if t.String() == strings.ToUpper(s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown part type: %q", s)
}

// IsRun reports whether the type is a sequence of one suit.
func (t PartType) IsRun() bool {
	return t == NaturalRummy || t == Rummy || t == PartialRummy
}

// IsComplete reports whether the type is a finished meld that carries no deadwood.
func (t PartType) IsComplete() bool {
	return t == NaturalRummy || t == Rummy || t == Set
}

// Part is an immutable candidate group of cards.
type Part struct {
	typ      PartType
	cards    []domain.Card
	hasAce   bool
	hasJoker bool
}

func newPart(typ PartType, cards []domain.Card) Part {
	p := Part{typ: typ, cards: append([]domain.Card(nil), cards...)}
	for _, c := range p.cards {
		if c.IsAce() {
			p.hasAce = true
		}
		if c.IsJoker() {
			p.hasJoker = true
		}
	}
	return p
}

func (p Part) Type() PartType { return p.typ }
func (p Part) Len() int       { return len(p.cards) }

// Cards returns a copy of the constituent cards.
func (p Part) Cards() []domain.Card {
	return append([]domain.Card(nil), p.cards...)
}

// ContainsAce reports whether any constituent card is an ace.
func (p Part) ContainsAce() bool { return p.hasAce }

// ContainsJoker reports whether any constituent card is a joker.
func (p Part) ContainsJoker() bool { return p.hasJoker }

// Key identifies a part by type and card multiset, independent of card order.
func (p Part) Key() string {
	sorted := append([]domain.Card(nil), p.cards...)
	domain.SortByValue(sorted)
	var b strings.Builder
	b.WriteString(strconv.Itoa(int(p.typ)))
	for _, c := range sorted {
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(c.Value()))
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(c.Deck()))
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(c.JokerID()))
	}
	return b.String()
}

// Equal reports whether two parts have the same type and cards.
func (p Part) Equal(o Part) bool { return p.Key() == o.Key() }

func (p Part) String() string {
	return p.typ.String() + "[" + domain.Hand(p.cards).String() + "]"
}

// SortParts orders parts by strength, keeping the relative order of equal types.
func SortParts(parts []Part) {
	sort.SliceStable(parts, func(i, j int) bool { return parts[i].typ < parts[j].typ })
}

// CardsOf flattens the cards of all parts.
func CardsOf(parts []Part) []domain.Card {
	var out []domain.Card
	for _, p := range parts {
		out = append(out, p.cards...)
	}
	return out
}

// partSet collects parts in insertion order, dropping structural duplicates.
type partSet struct {
	seen  map[string]bool
	parts []Part
}

func newPartSet() *partSet {
	return &partSet{seen: make(map[string]bool)}
}

func (s *partSet) add(typ PartType, cards []domain.Card) {
	s.addPart(newPart(typ, cards))
}

func (s *partSet) addPart(p Part) {
	k := p.Key()
	if s.seen[k] {
		return
	}
	s.seen[k] = true
	s.parts = append(s.parts, p)
}
