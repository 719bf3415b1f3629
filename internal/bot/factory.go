package bot

import (
	"fmt"

	"rummy/internal/meld"
)

// NewBrain creates a brain for the given level. opts carries the hand size,
// wild face and pruning settings; the scorer is chosen by level.
func NewBrain(level BotLevel, opts meld.Options, tuning Tuning) (Brain, error) {
	switch level {
	case BotLevelSimple:
		opts.Scorer = meld.ScorerSimple
	case BotLevelStrategic:
		opts.Scorer = meld.ScorerStateful
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
	return &solverBrain{level: level, opts: opts, timeout: tuning.SolveTimeout, resolve: meld.Resolve}, nil
}
