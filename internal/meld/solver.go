package meld

import (
	"context"
	"errors"
	"math/bits"

	"github.com/rs/zerolog/log"

	"rummy/internal/domain"
)

const (
	// NoSolutionScore is the score of a Solution that covers nothing.
	NoSolutionScore = -999999
	// DefaultNaturalPruneCap is how many natural rummies pruning may commit.
	DefaultNaturalPruneCap = 3
	// DefaultSinglePruneParts is the part count above which branches that
	// open with singles are abandoned.
	DefaultSinglePruneParts = 24
	// DefaultExhaustiveMaxCards is the largest hand searched without heuristics.
	DefaultExhaustiveMaxCards = 10
	// maxCards bounds the card universe to one machine word.
	maxCards = 64
	// ctxCheckInterval is how many search nodes pass between deadline checks.
	ctxCheckInterval = 1024
)

var ErrTooManyCards = errors.New("more than 64 distinct cards")

// Options tunes a solve. The zero value solves a 13-card hand with the
// simple scorer and default pruning.
type Options struct {
	HandSize  int
	ExtraCard bool
	Scorer    ScorerKind
	// WildFace is only read by Resolve.
	WildFace domain.Face

	// NaturalPruneCap limits committed natural rummies. Zero selects the
	// default, negative disables the rule.
	NaturalPruneCap int
	// PruneAceRuns lets pruning commit natural rummies that hold an ace.
	PruneAceRuns bool
	// SinglePruneParts is the part count above which branches opening with a
	// single are dropped. Zero selects the default, negative disables the rule.
	SinglePruneParts int
	// ExhaustiveMaxCards is the largest card count that is always searched
	// exhaustively. Zero selects the default, negative prunes every hand.
	ExhaustiveMaxCards int
	// DisablePrune turns every heuristic off, leaving an exhaustive search.
	DisablePrune bool
}

func (o Options) withDefaults() Options {
	if o.HandSize <= 0 {
		o.HandSize = HandSize
	}
	if o.NaturalPruneCap == 0 {
		o.NaturalPruneCap = DefaultNaturalPruneCap
	}
	if o.SinglePruneParts == 0 {
		o.SinglePruneParts = DefaultSinglePruneParts
	}
	if o.ExhaustiveMaxCards == 0 {
		o.ExhaustiveMaxCards = DefaultExhaustiveMaxCards
	}
	if o.DisablePrune {
		o.NaturalPruneCap = -1
		o.SinglePruneParts = -1
	}
	return o
}

// Solution is the best configuration found by a solve.
type Solution struct {
	Parts     []Part
	Score     int
	FreeCards []domain.Card
	Winning   bool
	Points    int
	Explored  int
}

// Found reports whether the solve covered the hand.
func (s Solution) Found() bool { return s.Parts != nil }

func noSolution() Solution {
	return Solution{Score: NoSolutionScore, Points: FullHandPoints}
}

// Resolve tokenizes hand and solves it.
func Resolve(ctx context.Context, hand []domain.Card, opts Options) (Solution, error) {
	parts := Tokenizer{WildFace: opts.WildFace}.Tokenize(hand)
	return SolveContext(ctx, parts, opts)
}

// Solve picks the highest scoring set of disjoint parts that covers exactly
// HandSize cards, leaving one card free when ExtraCard is set.
func Solve(parts []Part, opts Options) Solution {
	sol, _ := SolveContext(context.Background(), parts, opts)
	return sol
}

// SolveContext is Solve with a deadline. When ctx ends the best solution seen
// so far is returned together with ctx.Err().
func SolveContext(ctx context.Context, parts []Part, opts Options) (Solution, error) {
	if err := ctx.Err(); err != nil {
		return noSolution(), err
	}
	opts = opts.withDefaults()
	scorer, err := NewScorer(opts.Scorer)
	if err != nil {
		return noSolution(), err
	}

	sorted := append([]Part(nil), parts...)
	SortParts(sorted)
	universe := cardUniverse(sorted)
	if len(universe) > maxCards {
		return noSolution(), ErrTooManyCards
	}

	candidates, dropped := sorted, 0
	singlePrune := false
	if opts.ExhaustiveMaxCards < 0 || len(universe) > opts.ExhaustiveMaxCards {
		candidates, dropped = pruneParts(sorted, opts.NaturalPruneCap, opts.PruneAceRuns)
		singlePrune = opts.SinglePruneParts > 0 && len(candidates) > opts.SinglePruneParts
	}
	heuristic := dropped > 0 || singlePrune

	s := newSearch(ctx, candidates, universe, opts, scorer)
	s.singlePrune = singlePrune
	s.run()
	explored := s.explored

	if !s.best.Found() && heuristic && s.err == nil {
		log.Debug().Int("parts", len(sorted)).Int("explored", explored).Msg("pruned search found no cover, retrying exhaustively")
		s = newSearch(ctx, sorted, universe, opts, scorer)
		s.run()
		explored += s.explored
	}

	sol := s.best
	sol.Explored = explored
	if sol.Found() {
		sol.Points = Points(sol.Parts)
	}
	log.Debug().
		Int("parts", len(sorted)).
		Int("pruned", dropped).
		Int("explored", explored).
		Int("score", sol.Score).
		Bool("winning", sol.Winning).
		Msg("solve finished")
	return sol, s.err
}

// cardUniverse returns the distinct cards of parts in value order.
func cardUniverse(parts []Part) []domain.Card {
	seen := make(map[domain.Card]bool)
	var out []domain.Card
	for _, p := range parts {
		for _, c := range p.cards {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	domain.SortByValue(out)
	return out
}

type search struct {
	ctx      context.Context
	parts    []Part
	universe []domain.Card
	masks    []uint64 // cards of each part
	overlap  []bitset // parts sharing a card with each part, itself included
	frames   []bitset // available parts per depth
	chosen   []int
	leaf     []Part

	handSize    int
	extra       int
	total       int
	scorer      Scorer
	singlePrune bool

	best     Solution
	explored int
	stopped  bool
	err      error
}

func newSearch(ctx context.Context, parts []Part, universe []domain.Card, opts Options, scorer Scorer) *search {
	s := &search{
		ctx:      ctx,
		parts:    parts,
		universe: universe,
		masks:    make([]uint64, len(parts)),
		overlap:  make([]bitset, len(parts)),
		handSize: opts.HandSize,
		total:    len(universe),
		scorer:   scorer,
		best:     noSolution(),
	}
	if opts.ExtraCard {
		s.extra = 1
	}

	index := make(map[domain.Card]int, len(universe))
	for i, c := range universe {
		index[c] = i
	}
	byCard := make([]bitset, len(universe))
	for i := range byCard {
		byCard[i] = newBitset(len(parts))
	}
	for i, p := range parts {
		for _, c := range p.cards {
			ci := index[c]
			s.masks[i] |= 1 << uint(ci)
			byCard[ci].set(i)
		}
	}
	for i, p := range parts {
		s.overlap[i] = newBitset(len(parts))
		for _, c := range p.cards {
			s.overlap[i].or(byCard[index[c]])
		}
	}

	depth := max(len(universe), s.handSize) + 2
	s.frames = make([]bitset, depth)
	for i := range s.frames {
		s.frames[i] = newBitset(len(parts))
	}
	s.frames[0].fill(len(parts))
	s.chosen = make([]int, 0, depth)
	s.leaf = make([]Part, 0, depth)
	return s
}

func (s *search) run() {
	if s.total != s.handSize+s.extra || len(s.parts) == 0 {
		return
	}
	s.explore(0, 0, 0)
}

// explore extends the configuration held in chosen[:depth]. Each depth owns
// its availability frame, so siblings never undo each other's work.
func (s *search) explore(depth, cursor int, used uint64) {
	s.explored++
	if s.explored%ctxCheckInterval == 0 {
		if err := s.ctx.Err(); err != nil {
			s.err = err
			s.stopped = true
			return
		}
	}

	n := bits.OnesCount64(used)
	if n == s.handSize && s.total-n == s.extra {
		s.record(depth, used)
		return
	}
	if n >= s.handSize {
		return
	}

	avail := s.frames[depth]
	reach := used
	for i := avail.next(cursor); i >= 0; i = avail.next(i + 1) {
		reach |= s.masks[i]
	}
	if s.total-bits.OnesCount64(reach) > s.extra {
		return
	}

	next := s.frames[depth+1]
	for i := avail.next(cursor); i >= 0; i = avail.next(i + 1) {
		// Parts are sorted, so every later candidate is a single too.
		if s.singlePrune && depth == 0 && s.parts[i].typ == Single {
			return
		}
		next.andNotInto(avail, s.overlap[i])
		s.chosen = append(s.chosen[:depth], i)
		s.explore(depth+1, i+1, used|s.masks[i])
		if s.stopped {
			return
		}
	}
}

func (s *search) record(depth int, used uint64) {
	s.leaf = s.leaf[:0]
	for _, idx := range s.chosen[:depth] {
		s.leaf = append(s.leaf, s.parts[idx])
	}
	score := s.scorer.Score(s.leaf)
	win := IsWinning(s.leaf, s.handSize)
	if win {
		score += WinBonus
	}

	if !s.best.Found() || score > s.best.Score {
		s.best = Solution{
			Parts:     append([]Part(nil), s.leaf...),
			Score:     score,
			Winning:   win,
			FreeCards: s.freeCards(used),
		}
	}
	if win {
		s.stopped = true
	}
}

func (s *search) freeCards(used uint64) []domain.Card {
	out := []domain.Card{}
	for i, c := range s.universe {
		if used&(1<<uint(i)) == 0 {
			out = append(out, c)
		}
	}
	return out
}
