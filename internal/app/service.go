package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"rummy/internal/bot"
	"rummy/internal/config"
	"rummy/internal/domain"
)

// Service contains round use-cases operating on domain state.
type Service struct {
	rng *rand.Rand
	cfg *config.GameConfig
}

// NewService constructs a Service with provided rng or a time-seeded default,
// and cfg or the loaded game configuration.
func NewService(rng *rand.Rand, cfg *config.GameConfig) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg == nil {
		cfg = config.GetGameConfig()
	}
	return &Service{rng: rng, cfg: cfg}
}

var (
	ErrNotPlaying     = errors.New("game not in playing phase")
	ErrTooFewPlayers  = errors.New("not enough players to start")
	ErrUnknownPlayer  = errors.New("player not found")
	ErrNotYourTurn    = errors.New("not this player's turn")
	ErrNotEnoughCards = errors.New("deck too small for the table")
)

// NewAgents builds the bots listed in the configuration.
func NewAgents(cfg *config.GameConfig) ([]*bot.Agent, error) {
	tuning := bot.Tuning{PickupThreshold: cfg.PickupThreshold, SolveTimeout: cfg.SolveTimeout()}
	agents := make([]*bot.Agent, 0, len(cfg.Bots))
	for _, bc := range cfg.Bots {
		level, err := bot.ParseLevel(bc.Level)
		if err != nil {
			return nil, fmt.Errorf("bot %s: %w", bc.ID, err)
		}
		brain, err := bot.NewBrain(level, cfg.SolverOptions(), tuning)
		if err != nil {
			return nil, err
		}
		a := bot.NewAgent(bc.ID, brain)
		a.Tuning = tuning
		agents = append(agents, a)
	}
	return agents, nil
}

// StartGame shuffles, deals a hand to every agent in seat order and turns up
// the first discard.
func (s *Service) StartGame(ctx context.Context, agents []*bot.Agent) (*domain.Game, []Event, error) {
	if len(agents) < MinPlayersToStartGame {
		return nil, nil, ErrTooFewPlayers
	}
	wild, err := s.cfg.Wild()
	if err != nil {
		return nil, nil, err
	}

	deck := domain.NewDeck(s.cfg.NumDecks, s.cfg.NumJokers)
	if deck.Len() < len(agents)*s.cfg.HandSize+1 {
		return nil, nil, ErrNotEnoughCards
	}
	deck.Shuffle(s.rng)

	game := &domain.Game{
		ID:       uuid.NewString(),
		Phase:    domain.PhasePlaying,
		Players:  make(map[string]*domain.Player, len(agents)),
		Deck:     deck,
		WildFace: wild,
		HandSize: s.cfg.HandSize,
	}

	events := make([]Event, 0, len(agents)+1)
	for i, a := range agents {
		hand, err := deck.Deal(s.cfg.HandSize)
		if err != nil {
			return nil, nil, err
		}
		if err := a.Deal(ctx, hand); err != nil {
			return nil, nil, fmt.Errorf("deal to %s: %w", a.ID, err)
		}
		game.Players[a.ID] = &domain.Player{
			UserID: a.ID,
			Seat:   i + 1,
			Hand:   a.Hand(),
			Points: a.Points(),
		}
		game.Seats = append(game.Seats, a.ID)

		events = append(events, Event{
			Kind: EventHandDealt,
			Payload: HandDealtPayload{
				UserID: a.ID,
				Hand:   a.Hand(),
				Score:  a.Score(),
				Points: a.Points(),
			},
			Recipients: []string{a.ID},
		})
	}

	up, err := deck.Draw()
	if err != nil {
		return nil, nil, err
	}
	deck.Discard(up)
	game.CurrentTurn = game.Seats[0]

	events = append(events, Event{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			GameID:          game.ID,
			Phase:           game.Phase,
			FirstTurnUserID: game.CurrentTurn,
			Discard:         up,
			WildFace:        wild,
		},
	})

	log.Info().Str("game", game.ID).Int("players", len(agents)).Int("stock", deck.Len()).Msg("game started")
	return game, events, nil
}

// PlayTurn lets the agent whose turn it is take the discard or draw, then
// discard, and ends the round when the agent wins or the turn limit is hit.
func (s *Service) PlayTurn(ctx context.Context, game *domain.Game, agent *bot.Agent) ([]Event, error) {
	if game.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	pl, ok := game.Players[agent.ID]
	if !ok {
		return nil, ErrUnknownPlayer
	}
	if game.CurrentTurn != agent.ID {
		return nil, ErrNotYourTurn
	}

	var events []Event
	var move bot.Move
	kept := false
	if top, ok := game.Deck.TopDiscard(); ok {
		m, keep, err := agent.CheckPickup(ctx, top)
		if err != nil {
			return nil, err
		}
		if keep {
			if _, err := game.Deck.TakeDiscard(); err != nil {
				return nil, err
			}
			move, kept = m, true
			events = append(events, Event{
				Kind:    EventDiscardTaken,
				Payload: DiscardTakenPayload{UserID: agent.ID, Card: top},
			})
		}
	}

	if !kept {
		if game.Deck.Len() == 0 {
			if !game.Deck.Reshuffle(s.rng) {
				return append(events, s.endGame(game, "")), nil
			}
			events = append(events, Event{
				Kind:    EventDeckReshuffled,
				Payload: DeckReshuffledPayload{Remaining: game.Deck.Len()},
			})
		}
		card, err := game.Deck.Draw()
		if err != nil {
			return nil, err
		}
		m, err := agent.DrawAndDiscard(ctx, card)
		if err != nil {
			return nil, err
		}
		move = m
		events = append(events, Event{
			Kind:       EventCardDrawn,
			Payload:    CardDrawnPayload{UserID: agent.ID, Card: card},
			Recipients: []string{agent.ID},
		})
	}

	game.Deck.Discard(move.Discard)
	pl.Hand = agent.Hand()
	pl.Points = agent.Points()
	game.Turns++

	log.Debug().
		Str("game", game.ID).
		Int("turn", game.Turns).
		Str("player", agent.ID).
		Bool("took_discard", kept).
		Str("discard", move.Discard.String()).
		Str("hand", pl.Hand.String()).
		Int("points", pl.Points).
		Msg("turn played")

	next := game.NextSeat(agent.ID)
	events = append(events, Event{
		Kind: EventCardDiscarded,
		Payload: CardDiscardedPayload{
			UserID:         agent.ID,
			Card:           move.Discard,
			NextTurnUserID: next,
		},
	})

	switch {
	case move.Won:
		events = append(events, s.endGame(game, agent.ID))
	case s.cfg.MaxTurns > 0 && game.Turns >= s.cfg.MaxTurns:
		events = append(events, s.endGame(game, ""))
	default:
		game.CurrentTurn = next
	}
	return events, nil
}

// RunGame plays turns until the round ends or ctx is done.
func (s *Service) RunGame(ctx context.Context, game *domain.Game, agents []*bot.Agent) ([]Event, error) {
	byID := make(map[string]*bot.Agent, len(agents))
	for _, a := range agents {
		byID[a.ID] = a
	}

	var events []Event
	for game.Phase == domain.PhasePlaying {
		if err := ctx.Err(); err != nil {
			return events, err
		}
		a, ok := byID[game.CurrentTurn]
		if !ok {
			return events, ErrUnknownPlayer
		}
		evs, err := s.PlayTurn(ctx, game, a)
		if err != nil {
			return events, err
		}
		events = append(events, evs...)
	}
	return events, nil
}

func (s *Service) endGame(game *domain.Game, winner string) Event {
	game.Phase = domain.PhaseEnded
	game.Winner = winner
	points := make(map[string]int, len(game.Players))
	for id, pl := range game.Players {
		points[id] = pl.Points
	}
	log.Info().Str("game", game.ID).Str("winner", winner).Int("turns", game.Turns).Msg("game ended")
	return Event{
		Kind: EventGameEnded,
		Payload: GameEndedPayload{
			GameID: game.ID,
			Winner: winner,
			Turns:  game.Turns,
			Points: points,
		},
	}
}
