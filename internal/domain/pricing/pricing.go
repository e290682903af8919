// Package pricing maps combined performance scores to capped market
// prices under selectable curve strategies.
package pricing

import (
	"fmt"
	"sort"

	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/model"
)

// Strategy names recognized in configuration.
const (
	StrategyRankDecay   = "rank-decay"
	StrategyExponential = "exponential-capped"
)

// Strategy assigns ranks and prices to valuation rows in place. Rows
// arrive unranked; Price must leave every row with Price in
// [0, Ceiling] and Rank set from 1.
type Strategy interface {
	// Name identifies the pricing strategy.
	Name() string

	// Ceiling is the documented upper bound for prices under this strategy.
	Ceiling() float64

	// Price ranks rows by combined score and assigns prices.
	Price(rows []model.Valuation)
}

// NewStrategy builds the named pricing strategy from params.
func NewStrategy(name string, params Params) (Strategy, error) {
	switch name {
	case StrategyRankDecay, "":
		return NewRankDecay(params.Ceiling, params.DecayK), nil
	case StrategyExponential:
		return NewExponentialCapped(params.Base, params.GrowthRate, params.SpecialistCap, params.AllRounderCap), nil
	default:
		return nil, fmt.Errorf("pricing: %w: %q", ErrUnknownStrategy, name)
	}
}

// Params carries every tunable pricing constant. Zero-valued fields
// fall back to documented defaults.
type Params struct {
	// Rank-decay knobs.
	Ceiling float64
	DecayK  float64

	// Exponential knobs.
	Base          float64
	GrowthRate    float64
	SpecialistCap float64
	AllRounderCap float64
}

// rankRows sorts rows by combined score descending, breaking ties by
// player name ascending so output order is deterministic, and writes
// 1-based ranks.
func rankRows(rows []model.Valuation) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Combined != rows[j].Combined {
			return rows[i].Combined > rows[j].Combined
		}
		return rows[i].Player < rows[j].Player
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
}

// clamp bounds v into [0, ceiling].
func clamp(v, ceiling float64) float64 {
	if v < 0 {
		return 0
	}
	if v > ceiling {
		return ceiling
	}
	return v
}
