package bot

import (
	"context"

	"rummy/internal/domain"
	"rummy/internal/meld"
)

// Move describes what a bot did with the card offered on its turn.
type Move struct {
	TookDiscard bool
	Discard     domain.Card
	Won         bool
	Score       int
	Points      int
}

// Brain rates hands for a bot.
type Brain interface {
	// Evaluate solves hand; with extraCard one card is left free to discard.
	Evaluate(ctx context.Context, hand domain.Hand, extraCard bool) (meld.Solution, error)
	Level() BotLevel
}
