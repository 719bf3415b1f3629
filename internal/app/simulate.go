package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"rummy/internal/config"
)

var ErrNegativeGames = errors.New("game count must not be negative")

// BatchResult aggregates a run of simulated rounds.
type BatchResult struct {
	Games      int
	Wins       map[string]int
	Unfinished int
	TotalTurns int
}

// AverageTurns returns the mean round length.
func (r BatchResult) AverageTurns() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.TotalTurns) / float64(r.Games)
}

// Leaders returns bot IDs ordered by wins, ties broken by ID.
func (r BatchResult) Leaders() []string {
	ids := make([]string, 0, len(r.Wins))
	for id := range r.Wins {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if r.Wins[ids[i]] != r.Wins[ids[j]] {
			return r.Wins[ids[i]] > r.Wins[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids
}

type roundResult struct {
	winner string
	turns  int
}

// Simulate plays games independent rounds between the configured bots.
// Round i is seeded with seed+i, so a batch is reproducible.
func Simulate(ctx context.Context, cfg *config.GameConfig, games int, seed int64) (BatchResult, error) {
	if games < 0 {
		return BatchResult{}, fmt.Errorf("%w: %d", ErrNegativeGames, games)
	}
	results := make([]roundResult, games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < games; i++ {
		i := i
		g.Go(func() error {
			agents, err := NewAgents(cfg)
			if err != nil {
				return err
			}
			svc := NewService(rand.New(rand.NewSource(seed+int64(i))), cfg)
			game, _, err := svc.StartGame(ctx, agents)
			if err != nil {
				return err
			}
			if _, err := svc.RunGame(ctx, game, agents); err != nil {
				return err
			}
			results[i] = roundResult{winner: game.Winner, turns: game.Turns}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BatchResult{}, err
	}

	out := BatchResult{Games: games, Wins: make(map[string]int, len(cfg.Bots))}
	for _, bc := range cfg.Bots {
		out.Wins[bc.ID] = 0
	}
	for _, r := range results {
		out.TotalTurns += r.turns
		if r.winner == "" {
			out.Unfinished++
			continue
		}
		out.Wins[r.winner]++
	}
	log.Info().
		Int("games", games).
		Int("unfinished", out.Unfinished).
		Float64("avg_turns", out.AverageTurns()).
		Msg("simulation finished")
	return out, nil
}
