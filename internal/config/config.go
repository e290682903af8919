// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load layers file/env on top.
// - Every engine constant the formulas depend on lives here, never inline.
package config

import (
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/pricing"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/scoring"
)

// Season filter modes accepted in configuration.
const (
	SeasonModeRecent = "recent"
	SeasonModeExact  = "exact"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataFiles is the priority-ordered list of dataset candidates.
	DataFiles []string `koanf:"data_files"`

	// SeasonMode selects the default window: "recent" or "exact".
	SeasonMode string `koanf:"season_mode"`

	// SeasonWindow is the trailing season count for recent mode.
	SeasonWindow int `koanf:"season_window"`

	// Season is the calendar year used in exact mode.
	Season int `koanf:"season"`

	// FormulaFamily selects the scoring family: raw-points or
	// normalized-index.
	FormulaFamily string `koanf:"formula_family"`

	// PricingStrategy selects the price curve: rank-decay or
	// exponential-capped.
	PricingStrategy string `koanf:"pricing_strategy"`

	// MinMatches excludes players with fewer distinct matches in the
	// filtered window.
	MinMatches int `koanf:"min_matches"`

	// ComboWeight is the fractional credit for the weaker skill when
	// combining scores.
	ComboWeight float64 `koanf:"combo_weight"`

	// DeathRelief scales the death-overs economy discount; 0 disables it.
	DeathRelief float64 `koanf:"death_relief"`

	// Benchmarks are the elite reference values for the index family.
	Benchmarks scoring.Benchmarks `koanf:"benchmarks"`

	// BattingWeights and BowlingWeights are the index family's
	// sub-index weights; each side must sum to 1.
	BattingWeights scoring.BattingWeights `koanf:"batting_weights"`
	BowlingWeights scoring.BowlingWeights `koanf:"bowling_weights"`

	// Pricing holds the curve constants for both strategies.
	Pricing PricingConfig `koanf:"pricing"`

	// WorkerCount sets the number of precompute workers.
	WorkerCount int `koanf:"worker_count"`

	// QueueCapacity bounds the precompute request queue.
	QueueCapacity int `koanf:"queue_capacity"`

	// CacheSize bounds the memoized valuation tables.
	CacheSize int `koanf:"cache_size"`

	// MaxBoardLimit caps GET /valuations?limit.
	MaxBoardLimit int `koanf:"max_board_limit"`
}

// PricingConfig mirrors pricing.Params for configuration loading.
type PricingConfig struct {
	Ceiling       float64 `koanf:"ceiling"`
	DecayK        float64 `koanf:"decay_k"`
	Base          float64 `koanf:"base"`
	GrowthRate    float64 `koanf:"growth_rate"`
	SpecialistCap float64 `koanf:"specialist_cap"`
	AllRounderCap float64 `koanf:"all_rounder_cap"`
}

// Params converts to the pricing package's parameter struct.
func (p PricingConfig) Params() pricing.Params {
	return pricing.Params{
		Ceiling:       p.Ceiling,
		DecayK:        p.DecayK,
		Base:          p.Base,
		GrowthRate:    p.GrowthRate,
		SpecialistCap: p.SpecialistCap,
		AllRounderCap: p.AllRounderCap,
	}
}

// ScoringParams converts the scoring-related fields to the scoring
// package's parameter struct.
func (c *Config) ScoringParams() scoring.Params {
	return scoring.Params{
		ComboWeight:    c.ComboWeight,
		Benchmarks:     c.Benchmarks,
		BattingWeights: c.BattingWeights,
		BowlingWeights: c.BowlingWeights,
		DeathRelief:    c.DeathRelief,
	}
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":9080",
		DataFiles:       []string{"ipl_ball_by_ball_2008_2025.csv", "data.zip"},
		SeasonMode:      SeasonModeRecent,
		SeasonWindow:    2,
		FormulaFamily:   scoring.FamilyRawPoints,
		PricingStrategy: pricing.StrategyRankDecay,
		MinMatches:      3,
		ComboWeight:     0.3,
		DeathRelief:     0,
		Pricing: PricingConfig{
			Ceiling: 30.0,
			DecayK:  0.04,
		},
		WorkerCount:   2,
		QueueCapacity: 1024,
		CacheSize:     64,
		MaxBoardLimit: 200,
	}
}
