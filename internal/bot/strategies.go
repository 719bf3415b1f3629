package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"rummy/internal/domain"
	"rummy/internal/meld"
)

// BotLevel selects how a bot values its hand.
type BotLevel int

const (
	// BotLevelSimple rates every meld on its own.
	BotLevelSimple BotLevel = iota
	// BotLevelStrategic rates the hand as a whole with diminishing returns.
	BotLevelStrategic
)

func (l BotLevel) String() string {
	switch l {
	case BotLevelSimple:
		return "simple"
	case BotLevelStrategic:
		return "strategic"
	default:
		return fmt.Sprintf("BotLevel(%d)", int(l))
	}
}

// ParseLevel reads a level name as used in configuration.
func ParseLevel(s string) (BotLevel, error) {
	switch s {
	case "simple", "":
		return BotLevelSimple, nil
	case "strategic":
		return BotLevelStrategic, nil
	default:
		return 0, fmt.Errorf("unknown bot level: %q", s)
	}
}

// solverBrain evaluates hands with the meld solver and one scorer kind.
type solverBrain struct {
	level   BotLevel
	opts    meld.Options
	timeout time.Duration
	resolve func(context.Context, []domain.Card, meld.Options) (meld.Solution, error)
}

func (b *solverBrain) Level() BotLevel { return b.level }

// Evaluate solves hand within the brain's timeout. On timeout the best cover
// seen so far is used; if there is none yet the solve is repeated without
// the timeout, bounded only by ctx.
func (b *solverBrain) Evaluate(ctx context.Context, hand domain.Hand, extraCard bool) (meld.Solution, error) {
	opts := b.opts
	opts.ExtraCard = extraCard

	solveCtx := ctx
	if b.timeout > 0 {
		var cancel context.CancelFunc
		solveCtx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}
	sol, err := b.resolve(solveCtx, hand, opts)
	if errors.Is(err, context.DeadlineExceeded) && sol.Found() {
		return sol, nil
	}
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		log.Warn().Dur("timeout", b.timeout).Int("cards", len(hand)).Msg("no cover before deadline, solving without it")
		sol, err = b.resolve(ctx, hand, opts)
	}
	if err != nil {
		return sol, err
	}
	if !sol.Found() {
		return sol, fmt.Errorf("%w: %d cards", ErrNoCover, len(hand))
	}
	return sol, nil
}
