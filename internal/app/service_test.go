package app

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"rummy/internal/bot"
	"rummy/internal/config"
	"rummy/internal/domain"
)

func testConfig() *config.GameConfig {
	c := config.Default()
	c.NumDecks = 1
	c.NumJokers = 0
	c.MaxTurns = 20
	return c
}

func newTestGame(t *testing.T, cfg *config.GameConfig, seed int64) (*Service, *domain.Game, []*bot.Agent, []Event) {
	t.Helper()
	agents, err := NewAgents(cfg)
	if err != nil {
		t.Fatalf("NewAgents() error = %v", err)
	}
	svc := NewService(rand.New(rand.NewSource(seed)), cfg)
	game, events, err := svc.StartGame(context.Background(), agents)
	if err != nil {
		t.Fatalf("StartGame() error = %v", err)
	}
	return svc, game, agents, events
}

func TestStartGame(t *testing.T) {
	cfg := testConfig()
	_, game, agents, events := newTestGame(t, cfg, 1)

	if _, err := uuid.Parse(game.ID); err != nil {
		t.Fatalf("game ID %q is not a uuid: %v", game.ID, err)
	}
	if len(events) != len(agents)+1 {
		t.Fatalf("events = %d, want %d", len(events), len(agents)+1)
	}
	if events[len(events)-1].Kind != EventGameStarted {
		t.Fatalf("last event = %v, want %v", events[len(events)-1].Kind, EventGameStarted)
	}
	for _, a := range agents {
		pl := game.Players[a.ID]
		if pl == nil || len(pl.Hand) != cfg.HandSize {
			t.Fatalf("player %s hand = %v", a.ID, pl)
		}
	}
	if want := 52 - len(agents)*cfg.HandSize - 1; game.Deck.Len() != want {
		t.Fatalf("stock = %d, want %d", game.Deck.Len(), want)
	}
	if game.CurrentTurn != agents[0].ID {
		t.Fatalf("CurrentTurn = %s, want %s", game.CurrentTurn, agents[0].ID)
	}
}

func TestStartGameErrors(t *testing.T) {
	cfg := testConfig()
	agents, err := NewAgents(cfg)
	if err != nil {
		t.Fatalf("NewAgents() error = %v", err)
	}
	svc := NewService(rand.New(rand.NewSource(1)), cfg)
	if _, _, err := svc.StartGame(context.Background(), agents[:1]); !errors.Is(err, ErrTooFewPlayers) {
		t.Fatalf("StartGame() error = %v, want %v", err, ErrTooFewPlayers)
	}

	crowded := append(append([]*bot.Agent{}, agents...), agents...)
	crowded = append(crowded, agents...)
	crowded = append(crowded, agents...)
	if _, _, err := svc.StartGame(context.Background(), crowded); !errors.Is(err, ErrNotEnoughCards) {
		t.Fatalf("StartGame() error = %v, want %v", err, ErrNotEnoughCards)
	}
}

func TestPlayTurn(t *testing.T) {
	cfg := testConfig()
	svc, game, agents, _ := newTestGame(t, cfg, 2)

	if _, err := svc.PlayTurn(context.Background(), game, agents[1]); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("PlayTurn() error = %v, want %v", err, ErrNotYourTurn)
	}

	events, err := svc.PlayTurn(context.Background(), game, agents[0])
	if err != nil {
		t.Fatalf("PlayTurn() error = %v", err)
	}
	var discarded *CardDiscardedPayload
	for _, ev := range events {
		if p, ok := ev.Payload.(CardDiscardedPayload); ok {
			discarded = &p
		}
	}
	if discarded == nil {
		t.Fatalf("no discard event in %v", events)
	}
	top, _ := game.Deck.TopDiscard()
	if top != discarded.Card {
		t.Fatalf("top discard %v, event %v", top, discarded.Card)
	}
	if game.Turns != 1 {
		t.Fatalf("Turns = %d, want 1", game.Turns)
	}
	if game.Phase == domain.PhasePlaying && game.CurrentTurn != agents[1].ID {
		t.Fatalf("CurrentTurn = %s, want %s", game.CurrentTurn, agents[1].ID)
	}
	if got := len(game.Players[agents[0].ID].Hand); got != cfg.HandSize {
		t.Fatalf("hand size after turn = %d", got)
	}
}

func TestRunGameConservesCards(t *testing.T) {
	cfg := testConfig()
	svc, game, agents, _ := newTestGame(t, cfg, 3)

	events, err := svc.RunGame(context.Background(), game, agents)
	if err != nil {
		t.Fatalf("RunGame() error = %v", err)
	}
	if game.Phase != domain.PhaseEnded {
		t.Fatalf("Phase = %v, want %v", game.Phase, domain.PhaseEnded)
	}
	if last := events[len(events)-1]; last.Kind != EventGameEnded {
		t.Fatalf("last event = %v, want %v", last.Kind, EventGameEnded)
	}
	if game.Turns > cfg.MaxTurns {
		t.Fatalf("Turns = %d exceeds %d", game.Turns, cfg.MaxTurns)
	}

	total := game.Deck.Len() + game.Deck.DiscardLen()
	for _, pl := range game.Players {
		total += len(pl.Hand)
	}
	if total != 52 {
		t.Fatalf("cards in play = %d, want 52", total)
	}
	if game.Winner != "" && game.Players[game.Winner].Points != 0 {
		t.Fatalf("winner %s holds %d points", game.Winner, game.Players[game.Winner].Points)
	}
}

func TestPlayTurnAfterEnd(t *testing.T) {
	cfg := testConfig()
	svc, game, agents, _ := newTestGame(t, cfg, 4)
	game.Phase = domain.PhaseEnded
	if _, err := svc.PlayTurn(context.Background(), game, agents[0]); !errors.Is(err, ErrNotPlaying) {
		t.Fatalf("PlayTurn() error = %v, want %v", err, ErrNotPlaying)
	}
}
