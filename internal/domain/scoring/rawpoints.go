package scoring

import (
	"math"

	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/model"
)

// Raw-points formula constants. These produce unbounded point scores
// that can run into the thousands; they are not indices.
const (
	// rawBatDivisor tempers the strike-rate-squared batting score.
	rawBatDivisor = 1.25

	// rawBowlEliteEconomy is the economy treated as elite; the bowling
	// score squares the ratio of this figure to the actual economy.
	rawBowlEliteEconomy = 9.0

	// rawBowlEconomyFloor clamps the economy used in the excellence
	// ratio. Without it, ultra-economical small samples blow the ratio
	// up; with it the ratio tops out at 9/4.
	rawBowlEconomyFloor = 4.0

	// rawBowlWicketMultiplier scales wickets into the same ballpark as
	// batting points.
	rawBowlWicketMultiplier = 35.0

	// rawRoleThreshold is the points figure both skills must exceed for
	// an all-rounder call under this family.
	rawRoleThreshold = 500.0
)

// RawPoints is the unbounded point-score family.
type RawPoints struct{}

// NewRawPoints creates the raw-points strategy. It has no tunables.
func NewRawPoints() *RawPoints {
	return &RawPoints{}
}

// Name identifies the formula family.
func (s *RawPoints) Name() string { return FamilyRawPoints }

// BatScore computes runs weighted by the squared strike-rate ratio:
// runs x (SR/100)^2 / 1.25.
func (s *RawPoints) BatScore(agg model.BattingAggregate) float64 {
	sr := agg.StrikeRate() / 100
	return Sanitize(float64(agg.Runs) * sr * sr / rawBatDivisor)
}

// BowlScore computes wickets weighted by the squared excellence ratio:
// wickets x (9 / max(4, economy))^2 x 35. Wicketless bowlers score 0.
func (s *RawPoints) BowlScore(agg model.BowlingAggregate) float64 {
	if agg.Wickets <= 0 {
		return 0
	}
	ratio := rawBowlEliteEconomy / math.Max(rawBowlEconomyFloor, agg.Economy())
	return Sanitize(float64(agg.Wickets) * ratio * ratio * rawBowlWicketMultiplier)
}

// RoleThreshold returns the all-rounder points threshold.
func (s *RawPoints) RoleThreshold() float64 { return rawRoleThreshold }
