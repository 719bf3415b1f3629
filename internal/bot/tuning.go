package bot

import "time"

// Tuning holds the knobs of a bot's draw decisions.
type Tuning struct {
	// PickupThreshold is the score ratio the discard must reach before a bot
	// takes it instead of drawing blind.
	PickupThreshold float64
	// SolveTimeout bounds one hand evaluation. Zero means no limit.
	SolveTimeout time.Duration
}

// DefaultTuning takes the discard when it improves the hand by 15%.
var DefaultTuning = Tuning{
	PickupThreshold: 1.15,
}
