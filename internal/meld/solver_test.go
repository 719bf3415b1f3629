package meld

import (
	"context"
	"errors"
	"math/bits"
	"math/rand"
	"reflect"
	"testing"

	"rummy/internal/domain"
)

func TestSolveWinningHand(t *testing.T) {
	hand := cards("2H 3H 4H 5H 7S 7C 7D 9H 10H JH KH KS KC")
	for _, kind := range []ScorerKind{ScorerSimple, ScorerStateful} {
		t.Run(string(kind), func(t *testing.T) {
			sol, err := Resolve(context.Background(), hand, Options{Scorer: kind})
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if !sol.Winning {
				t.Fatalf("hand not recognised as winning: %v", sol.Parts)
			}
			if sol.Points != 0 {
				t.Errorf("Points = %d, want 0", sol.Points)
			}
			if sol.Score < WinBonus {
				t.Errorf("Score = %d, want at least %d", sol.Score, WinBonus)
			}
			if len(sol.FreeCards) != 0 {
				t.Errorf("FreeCards = %v, want none", sol.FreeCards)
			}
			assertCovers(t, hand, sol)
		})
	}
}

func TestSolveJokerBridge(t *testing.T) {
	hand := cards("2H 3H jk 5H 6H")
	sol := Solve(Tokenize(hand), Options{HandSize: 5})
	if sol.Score != 375 {
		t.Fatalf("Score = %d, want 375: %v", sol.Score, sol.Parts)
	}
	if countType(sol.Parts, Rummy) != 1 || countType(sol.Parts, PartialRummy) != 1 {
		t.Fatalf("Parts = %v, want a rummy and a partial rummy", sol.Parts)
	}
	assertCovers(t, hand, sol)
}

func TestSolveExtraCardLeavesOneFree(t *testing.T) {
	hand := cards("2H 3H 4H 5H 7S 7C 7D 9H 10H JH KH KS KC 4D")
	sol, err := Resolve(context.Background(), hand, Options{ExtraCard: true})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(sol.FreeCards) != 1 {
		t.Fatalf("FreeCards = %v, want one card", sol.FreeCards)
	}
	if want := cards("4D")[0]; sol.FreeCards[0] != want {
		t.Errorf("FreeCards[0] = %v, want %v", sol.FreeCards[0], want)
	}
	if !sol.Winning {
		t.Errorf("Winning = false, parts %v", sol.Parts)
	}
	assertCovers(t, hand, sol)
}

func TestSolveNoCover(t *testing.T) {
	hand := cards("2H 3H 4H 5H 7S 7C 7D 9H 10H JH KH KS")
	sol := Solve(Tokenize(hand), Options{})
	if sol.Found() {
		t.Fatalf("found a cover for 12 cards: %v", sol.Parts)
	}
	if sol.Score != NoSolutionScore || sol.Points != FullHandPoints {
		t.Fatalf("sentinel = %+v", sol)
	}
	if empty := Solve(nil, Options{}); empty.Found() {
		t.Fatalf("found a cover for no parts")
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	hand := cards("AH 2H 3H 3S 3D 8C 9C jk QD QS KD 5H 6S")
	for _, kind := range []ScorerKind{ScorerSimple, ScorerStateful} {
		first := Solve(Tokenize(hand), Options{Scorer: kind})
		for i := 0; i < 3; i++ {
			again := Solve(Tokenize(hand), Options{Scorer: kind})
			if again.Score != first.Score || !reflect.DeepEqual(keys(again.Parts), keys(first.Parts)) {
				t.Fatalf("%s: run %d differs: %v vs %v", kind, i, again.Parts, first.Parts)
			}
		}
		assertCovers(t, hand, first)
	}
}

func TestSolveContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Resolve(ctx, cards("2H 3H 4H"), Options{HandSize: 3})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want %v", err, context.Canceled)
	}
}

func TestSolveUnknownScorer(t *testing.T) {
	if _, err := Resolve(context.Background(), cards("2H 3H 4H"), Options{HandSize: 3, Scorer: "nope"}); err == nil {
		t.Fatalf("Resolve() accepted an unknown scorer")
	}
}

func TestPruneCommitsNaturals(t *testing.T) {
	parts := Tokenize(cards("2H 3H 4H 4S 4D AC 2C 3C"))
	SortParts(parts)
	kept, dropped := pruneParts(parts, DefaultNaturalPruneCap, false)
	if dropped == 0 {
		t.Fatalf("nothing pruned")
	}
	if findPart(kept, Set, "4H 4S 4D") {
		t.Errorf("set sharing a committed card survived")
	}
	if !findPart(kept, PartialSet, "4S 4D") {
		t.Errorf("partial set on free cards was pruned")
	}
	if !findPart(kept, PartialRummy, "AC 2C") {
		t.Errorf("ace run was committed")
	}
	if off, n := pruneParts(parts, -1, false); n != 0 || len(off) != len(parts) {
		t.Errorf("disabled pruning dropped %d parts", n)
	}

	withAces, _ := pruneParts(parts, DefaultNaturalPruneCap, true)
	if findPart(withAces, PartialRummy, "AC 2C") {
		t.Errorf("ace run was not committed with aces enabled")
	}
	if !findPart(withAces, NaturalRummy, "AC 2C 3C") {
		t.Errorf("committed natural rummy was dropped")
	}
}

// densePool holds two decks of ace to six in hearts and diamonds plus two
// jokers, so random draws are rich in duplicates, runs and sets.
func densePool() []domain.Card {
	var pool []domain.Card
	for deck := 0; deck < 2; deck++ {
		for _, suit := range []domain.Suit{domain.Hearts, domain.Diamonds} {
			for face := domain.Ace; face <= domain.Six; face++ {
				pool = append(pool, domain.MustCard(face, suit, deck))
			}
		}
	}
	return append(pool, domain.MustJoker(1), domain.MustJoker(2))
}

// Default options must score small hands exactly like the exhaustive search.
func TestPruningMatchesExhaustiveSearch(t *testing.T) {
	pool := densePool()
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 400; i++ {
		size := 6 + rng.Intn(5)
		hand := make([]domain.Card, 0, size)
		for _, j := range rng.Perm(len(pool))[:size] {
			hand = append(hand, pool[j])
		}
		parts := Tokenize(hand)
		for _, kind := range []ScorerKind{ScorerSimple, ScorerStateful} {
			pruned := Solve(parts, Options{HandSize: size, Scorer: kind})
			full := Solve(parts, Options{HandSize: size, Scorer: kind, DisablePrune: true})
			if pruned.Score != full.Score {
				t.Fatalf("%v %s: default score %d %v, exhaustive %d %v",
					domain.Hand(hand), kind, pruned.Score, pruned.Parts, full.Score, full.Parts)
			}
			assertCovers(t, hand, pruned)
		}
	}
}

func TestPruningKeepsBestSmallHands(t *testing.T) {
	hands := []string{
		"2H 3H 6D 5H AH jk jk AD",
		"6D 2H 3H 5H 6D 2D 4H",
	}
	for _, h := range hands {
		hand := cards(h)
		for _, kind := range []ScorerKind{ScorerSimple, ScorerStateful} {
			pruned := Solve(Tokenize(hand), Options{HandSize: len(hand), Scorer: kind})
			full := Solve(Tokenize(hand), Options{HandSize: len(hand), Scorer: kind, DisablePrune: true})
			if pruned.Score != full.Score {
				t.Errorf("%s %s: default score %d, exhaustive %d", h, kind, pruned.Score, full.Score)
			}
		}
	}
}

// Only a single in first position is abandoned, so one meld plus singles
// survives even when heuristics are forced on.
func TestSinglePruneOnlyAtFirstPart(t *testing.T) {
	hand := cards("2H 3H 6D 5H AH jk jk AD")
	parts := Tokenize(hand)
	if len(parts) <= DefaultSinglePruneParts {
		t.Fatalf("only %d parts, single pruning would stay off", len(parts))
	}
	sol := Solve(parts, Options{HandSize: len(hand), ExhaustiveMaxCards: -1})
	if sol.Score != 1185 {
		t.Fatalf("Score = %d, want 1185: %v", sol.Score, sol.Parts)
	}
	if !findPart(sol.Parts, NaturalRummy, "AH 2H 3H") {
		t.Fatalf("Parts = %v, want the natural rummy A-2-3", sol.Parts)
	}
	assertCovers(t, hand, sol)
}

// bruteForce scores every subset of parts that covers the hand exactly.
func bruteForce(parts []Part, handSize int, scorer Scorer) int {
	sorted := append([]Part(nil), parts...)
	SortParts(sorted)
	universe := cardUniverse(sorted)
	index := map[domain.Card]int{}
	for i, c := range universe {
		index[c] = i
	}
	masks := make([]uint64, len(sorted))
	for i, p := range sorted {
		for _, c := range p.cards {
			masks[i] |= 1 << uint(index[c])
		}
	}

	best := NoSolutionScore
	for subset := 1; subset < 1<<len(sorted); subset++ {
		var used uint64
		var chosen []Part
		ok := true
		for i := range sorted {
			if subset&(1<<i) == 0 {
				continue
			}
			if used&masks[i] != 0 {
				ok = false
				break
			}
			used |= masks[i]
			chosen = append(chosen, sorted[i])
		}
		if !ok || bits.OnesCount64(used) != handSize || len(universe) != handSize {
			continue
		}
		if score := scorer.Score(chosen); score > best {
			best = score
		}
	}
	return best
}

func TestExhaustiveSearchMatchesBruteForce(t *testing.T) {
	hands := []string{
		"2H 3H 4H 4S 4D",
		"7S 7C 7D 8S 9S",
		"AD 2D 3D QD KD",
		"5C 6C 6H 6S 7C",
	}
	for _, h := range hands {
		hand := cards(h)
		parts := Tokenize(hand)
		for _, kind := range []ScorerKind{ScorerSimple, ScorerStateful} {
			scorer, _ := NewScorer(kind)
			want := bruteForce(parts, len(hand), scorer)
			got := Solve(parts, Options{HandSize: len(hand), Scorer: kind, DisablePrune: true})
			if got.Score != want {
				t.Errorf("%s %s: Solve() = %d, brute force = %d", h, kind, got.Score, want)
			}
		}
	}
}

func TestSolveRandomHandsCoverExactly(t *testing.T) {
	if testing.Short() {
		t.Skip("random hand sweep")
	}
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 20; i++ {
		deck := domain.NewDeck(2, 2)
		deck.Shuffle(rng)
		size := HandSize
		extra := i%2 == 1
		if extra {
			size++
		}
		hand, err := deck.Deal(size)
		if err != nil {
			t.Fatalf("Deal() error = %v", err)
		}
		kind := ScorerSimple
		if i%4 >= 2 {
			kind = ScorerStateful
		}
		sol, err := Resolve(context.Background(), hand, Options{ExtraCard: extra, Scorer: kind})
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if !sol.Found() {
			t.Fatalf("hand %v: no cover", domain.Hand(hand))
		}
		assertCovers(t, hand, sol)
		if extra && len(sol.FreeCards) != 1 {
			t.Fatalf("hand %v: free cards %v", domain.Hand(hand), sol.FreeCards)
		}
		if sol.Winning != IsWinning(sol.Parts, HandSize) {
			t.Fatalf("hand %v: Winning flag disagrees with parts", domain.Hand(hand))
		}
	}
}

func BenchmarkResolve(b *testing.B) {
	hand := cards("AH 2H 3H 3S 3D 8C 9C jk QD QS KD 5H 6S 6S")
	for i := 0; i < b.N; i++ {
		_, _ = Resolve(context.Background(), hand, Options{ExtraCard: true, Scorer: ScorerStateful})
	}
}
