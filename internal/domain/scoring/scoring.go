// Package scoring converts per-player aggregates into skill scores,
// combines them and derives a role.
package scoring

import (
	"fmt"
	"math"

	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/model"
)

// Strategy family names recognized in configuration.
const (
	FamilyRawPoints       = "raw-points"
	FamilyNormalizedIndex = "normalized-index"
)

// defaultComboWeight is the fractional credit given to the weaker of a
// player's two skills when combining. Kept below 1 so marginal
// secondary skills cannot stack additively.
const defaultComboWeight = 0.3

// Strategy scores one skill side of a player's aggregates. The two
// families produce figures on very different scales (unbounded points
// versus [0,1] indices), so RoleThreshold is scale-specific.
type Strategy interface {
	// Name identifies the formula family.
	Name() string

	// BatScore scores a batting aggregate.
	BatScore(agg model.BattingAggregate) float64

	// BowlScore scores a bowling aggregate.
	BowlScore(agg model.BowlingAggregate) float64

	// RoleThreshold is the score both skills must exceed for a player
	// to count as an all-rounder under this family.
	RoleThreshold() float64
}

// NewStrategy builds the named strategy family from params.
func NewStrategy(family string, params Params) (Strategy, error) {
	switch family {
	case FamilyRawPoints, "":
		return NewRawPoints(), nil
	case FamilyNormalizedIndex:
		return NewNormalizedIndex(params.Benchmarks, params.BattingWeights, params.BowlingWeights, params.DeathRelief)
	default:
		return nil, fmt.Errorf("scoring: %w: %q", ErrUnknownFamily, family)
	}
}

// Params carries every tunable scoring constant. Zero-valued fields
// fall back to documented defaults.
type Params struct {
	ComboWeight    float64
	Benchmarks     Benchmarks
	BattingWeights BattingWeights
	BowlingWeights BowlingWeights
	// DeathRelief scales the economy discount for balls bowled in the
	// death phase; 0 disables the pressure adjustment.
	DeathRelief float64
}

// Combine merges a player's two skill scores into one figure:
// the stronger skill in full plus a fractional credit for the weaker.
func Combine(batScore, bowlScore, comboWeight float64) float64 {
	if comboWeight <= 0 {
		comboWeight = defaultComboWeight
	}
	hi := math.Max(batScore, bowlScore)
	lo := math.Min(batScore, bowlScore)
	return hi + comboWeight*lo
}

// AssignRole derives the role from the two skill scores. It is a pure
// function of its inputs: all-rounder when both sides clear threshold,
// otherwise batter only when the batting score is strictly greater.
func AssignRole(batScore, bowlScore, threshold float64) model.Role {
	if batScore > threshold && bowlScore > threshold {
		return model.RoleAllRounder
	}
	if batScore > bowlScore {
		return model.RoleBatter
	}
	return model.RoleBowler
}

// Sanitize maps NaN and infinities to 0 so degenerate arithmetic can
// never leak into prices.
func Sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
