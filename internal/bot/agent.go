package bot

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"rummy/internal/domain"
	"rummy/internal/meld"
)

var (
	ErrNoCover   = errors.New("hand has no cover")
	ErrNoHand    = errors.New("agent has not been dealt a hand")
	ErrNoDiscard = errors.New("solution left no card to discard")
)

// Agent is a bot player holding a hand between turns.
type Agent struct {
	ID       string
	Strategy Brain
	Tuning   Tuning

	hand   domain.Hand
	score  int
	points int
	won    bool
}

// NewAgent returns an agent using brain with DefaultTuning.
func NewAgent(id string, brain Brain) *Agent {
	return &Agent{ID: id, Strategy: brain, Tuning: DefaultTuning}
}

// Hand returns a copy of the current hand.
func (a *Agent) Hand() domain.Hand { return a.hand.Clone() }

// Score returns the solver score of the current hand.
func (a *Agent) Score() int { return a.score }

// Points returns the deadwood of the current hand.
func (a *Agent) Points() int { return a.points }

// Won reports whether the current hand is a winning hand.
func (a *Agent) Won() bool { return a.won }

// Deal gives the agent a fresh hand and rates it.
func (a *Agent) Deal(ctx context.Context, hand domain.Hand) error {
	sol, err := a.Strategy.Evaluate(ctx, hand, false)
	if err != nil {
		return err
	}
	a.hand = hand.Clone()
	a.score, a.points, a.won = sol.Score, sol.Points, sol.Winning
	return nil
}

// CheckPickup decides whether to take the visible discard. When the card is
// kept, the hand is rebuilt around it and the returned move names the card
// thrown away in exchange.
func (a *Agent) CheckPickup(ctx context.Context, card domain.Card) (Move, bool, error) {
	if a.hand == nil {
		return Move{}, false, ErrNoHand
	}
	sol, err := a.Strategy.Evaluate(ctx, append(a.hand.Clone(), card), true)
	if err != nil {
		return Move{}, false, err
	}
	keep := sol.Winning || a.improves(sol.Score)
	log.Debug().
		Str("bot", a.ID).
		Str("card", card.String()).
		Int("current", a.score).
		Int("candidate", sol.Score).
		Bool("keep", keep).
		Msg("pickup decision")
	if !keep {
		return Move{}, false, nil
	}
	move, err := a.adopt(sol)
	move.TookDiscard = true
	return move, true, err
}

// DrawAndDiscard adds a drawn card to the hand and discards the card the
// solver leaves free.
func (a *Agent) DrawAndDiscard(ctx context.Context, card domain.Card) (Move, error) {
	if a.hand == nil {
		return Move{}, ErrNoHand
	}
	sol, err := a.Strategy.Evaluate(ctx, append(a.hand.Clone(), card), true)
	if err != nil {
		return Move{}, err
	}
	return a.adopt(sol)
}

func (a *Agent) improves(candidate int) bool {
	if a.score <= 0 {
		return candidate > a.score
	}
	return float64(candidate) >= float64(a.score)*a.Tuning.PickupThreshold
}

func (a *Agent) adopt(sol meld.Solution) (Move, error) {
	if len(sol.FreeCards) == 0 {
		return Move{}, ErrNoDiscard
	}
	a.hand = domain.Hand(meld.CardsOf(sol.Parts))
	a.score, a.points, a.won = sol.Score, sol.Points, sol.Winning
	return Move{
		Discard: sol.FreeCards[0],
		Won:     sol.Winning,
		Score:   sol.Score,
		Points:  sol.Points,
	}, nil
}
