package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/pricing"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/scoring"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if CRICVAL_CONFIG is set
//  3. env (prefix CRICVAL_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("CRICVAL_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: CRICVAL_ADDR, CRICVAL_FORMULA_FAMILY, ...
	// Keys keep their underscores to match the koanf tags; nested
	// sections (benchmarks, weights, pricing) come from the YAML file.
	envProvider := env.Provider("CRICVAL_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "cricval_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if len(c.DataFiles) == 0 {
		return fmt.Errorf("%w: data_files must not be empty", ErrInvalidConfig)
	}
	switch c.SeasonMode {
	case SeasonModeRecent, SeasonModeExact:
	default:
		return fmt.Errorf("%w: unknown season_mode %q", ErrInvalidConfig, c.SeasonMode)
	}
	if c.SeasonMode == SeasonModeExact && c.Season <= 0 {
		return fmt.Errorf("%w: exact season_mode requires season", ErrInvalidConfig)
	}
	switch c.FormulaFamily {
	case scoring.FamilyRawPoints, scoring.FamilyNormalizedIndex:
	default:
		return fmt.Errorf("%w: unknown formula_family %q", ErrInvalidConfig, c.FormulaFamily)
	}
	switch c.PricingStrategy {
	case pricing.StrategyRankDecay, pricing.StrategyExponential:
	default:
		return fmt.Errorf("%w: unknown pricing_strategy %q", ErrInvalidConfig, c.PricingStrategy)
	}
	if c.MinMatches < 1 {
		return fmt.Errorf("%w: min_matches must be at least 1", ErrInvalidConfig)
	}
	if c.ComboWeight <= 0 || c.ComboWeight >= 1 {
		return fmt.Errorf("%w: combo_weight must be in (0, 1)", ErrInvalidConfig)
	}
	// The index family validates its own weights and benchmarks when
	// constructed; checking here would duplicate the invariants.
	return nil
}
