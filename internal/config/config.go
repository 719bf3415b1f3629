package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"rummy/internal/domain"
	"rummy/internal/meld"
)

// SolverConfig tunes the hand solver.
type SolverConfig struct {
	Scorer           string `json:"scorer"`
	NaturalPruneCap  int    `json:"natural_prune_cap"`
	PruneAceRuns     bool   `json:"prune_ace_runs"`
	SinglePruneParts int    `json:"single_prune_parts"`
	DisablePrune     bool   `json:"disable_prune"`
	// ExhaustiveMaxCards is the largest hand solved without pruning heuristics.
	ExhaustiveMaxCards int `json:"exhaustive_max_cards"`
	// TimeoutMs bounds a single solve. Zero means no deadline.
	TimeoutMs int `json:"timeout_ms"`
}

// BotConfig declares one simulated player.
type BotConfig struct {
	ID    string `json:"id"`
	Level string `json:"level"` // "simple" or "strategic"
}

type GameConfig struct {
	HandSize  int `json:"hand_size"`
	NumDecks  int `json:"num_decks"`
	NumJokers int `json:"num_jokers"`
	// WildFace names a face ("7", "K") whose cards act as jokers. Empty disables it.
	WildFace        string       `json:"wild_face"`
	MaxTurns        int          `json:"max_turns"`
	PickupThreshold float64      `json:"pickup_threshold"`
	Solver          SolverConfig `json:"solver"`
	Bots            []BotConfig  `json:"bots"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// Default returns the configuration used when nothing was loaded.
func Default() *GameConfig {
	return &GameConfig{
		HandSize:        meld.HandSize,
		NumDecks:        2,
		NumJokers:       2,
		MaxTurns:        200,
		PickupThreshold: 1.15,
		Solver:          SolverConfig{Scorer: string(meld.ScorerSimple)},
		Bots: []BotConfig{
			{ID: "bot-strategic", Level: "strategic"},
			{ID: "bot-simple", Level: "simple"},
		},
	}
}

// Parse decodes a configuration, filling unset fields from Default.
func Parse(data []byte) (*GameConfig, error) {
	c := Default()
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate reports settings no game can run with.
func (c *GameConfig) Validate() error {
	if c.HandSize <= 0 {
		return fmt.Errorf("hand_size must be positive, got %d", c.HandSize)
	}
	if c.NumDecks <= 0 {
		return fmt.Errorf("num_decks must be positive, got %d", c.NumDecks)
	}
	if c.NumJokers < 0 {
		return fmt.Errorf("num_jokers must not be negative, got %d", c.NumJokers)
	}
	if _, err := c.Wild(); err != nil {
		return err
	}
	if _, err := meld.NewScorer(meld.ScorerKind(c.Solver.Scorer)); err != nil {
		return err
	}
	return nil
}

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}
		c, err := Parse(data)
		if err != nil {
			loadErr = err
			return
		}
		cfg = c
	})
	return loadErr
}

// GetGameConfig returns the loaded configuration, or Default if none was loaded.
func GetGameConfig() *GameConfig {
	if cfg == nil {
		return Default()
	}
	return cfg
}

// Wild returns the configured wild face, or NoFace.
func (c *GameConfig) Wild() (domain.Face, error) {
	if c.WildFace == "" {
		return domain.NoFace, nil
	}
	f, err := domain.ParseFace(c.WildFace)
	if err != nil {
		return domain.NoFace, fmt.Errorf("wild_face: %w", err)
	}
	return f, nil
}

// SolverOptions converts the solver settings for a hand of the configured size.
func (c *GameConfig) SolverOptions() meld.Options {
	wild, _ := c.Wild()
	return meld.Options{
		HandSize:           c.HandSize,
		Scorer:             meld.ScorerKind(c.Solver.Scorer),
		WildFace:           wild,
		NaturalPruneCap:    c.Solver.NaturalPruneCap,
		PruneAceRuns:       c.Solver.PruneAceRuns,
		SinglePruneParts:   c.Solver.SinglePruneParts,
		ExhaustiveMaxCards: c.Solver.ExhaustiveMaxCards,
		DisablePrune:       c.Solver.DisablePrune,
	}
}

// SolveTimeout returns the per-solve deadline, zero when unbounded.
func (c *GameConfig) SolveTimeout() time.Duration {
	if c.Solver.TimeoutMs <= 0 {
		return 0
	}
	return time.Duration(c.Solver.TimeoutMs) * time.Millisecond
}
