package scoring

import (
	"math"

	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/model"
)

// Elite benchmark defaults. Each raw ratio is divided by its benchmark
// and clipped to 1, so a player at the benchmark scores a full 1.0 on
// that sub-index.
const (
	defaultBenchStrikeRate     = 160.0
	defaultBenchRunsPerMatch   = 45.0
	defaultBenchBoundaryRate   = 0.22
	defaultBenchWicketsPerGame = 1.8
	defaultBenchEconomy        = 6.5
	defaultBenchDotBallRate    = 0.45
)

// Default sub-index weights. Each side must sum to 1.
const (
	defaultBatWeightStrikeRate   = 0.45
	defaultBatWeightRunsPerMatch = 0.35
	defaultBatWeightBoundary     = 0.20

	defaultBowlWeightWickets = 0.40
	defaultBowlWeightEconomy = 0.40
	defaultBowlWeightDots    = 0.20
)

// indexRoleThreshold is the normalized score both skills must exceed
// for an all-rounder call under this family.
const indexRoleThreshold = 0.35

// weightSumTolerance absorbs float error when validating weight sums.
const weightSumTolerance = 1e-9

// Benchmarks are the elite reference values for each normalized
// sub-metric. Zero fields fall back to defaults.
type Benchmarks struct {
	StrikeRate      float64 `koanf:"strike_rate"`
	RunsPerMatch    float64 `koanf:"runs_per_match"`
	BoundaryRate    float64 `koanf:"boundary_rate"`
	WicketsPerMatch float64 `koanf:"wickets_per_match"`
	Economy         float64 `koanf:"economy"`
	DotBallRate     float64 `koanf:"dot_ball_rate"`
}

func (b Benchmarks) withDefaults() Benchmarks {
	if b.StrikeRate <= 0 {
		b.StrikeRate = defaultBenchStrikeRate
	}
	if b.RunsPerMatch <= 0 {
		b.RunsPerMatch = defaultBenchRunsPerMatch
	}
	if b.BoundaryRate <= 0 {
		b.BoundaryRate = defaultBenchBoundaryRate
	}
	if b.WicketsPerMatch <= 0 {
		b.WicketsPerMatch = defaultBenchWicketsPerGame
	}
	if b.Economy <= 0 {
		b.Economy = defaultBenchEconomy
	}
	if b.DotBallRate <= 0 {
		b.DotBallRate = defaultBenchDotBallRate
	}
	return b
}

// BattingWeights weight the three batting sub-indices; they must sum to 1.
type BattingWeights struct {
	StrikeRate   float64 `koanf:"strike_rate"`
	RunsPerMatch float64 `koanf:"runs_per_match"`
	BoundaryRate float64 `koanf:"boundary_rate"`
}

func (w BattingWeights) isZero() bool {
	return w.StrikeRate == 0 && w.RunsPerMatch == 0 && w.BoundaryRate == 0
}

func (w BattingWeights) sum() float64 {
	return w.StrikeRate + w.RunsPerMatch + w.BoundaryRate
}

// BowlingWeights weight the three bowling sub-indices; they must sum to 1.
type BowlingWeights struct {
	WicketsPerMatch float64 `koanf:"wickets_per_match"`
	Economy         float64 `koanf:"economy"`
	DotBallRate     float64 `koanf:"dot_ball_rate"`
}

func (w BowlingWeights) isZero() bool {
	return w.WicketsPerMatch == 0 && w.Economy == 0 && w.DotBallRate == 0
}

func (w BowlingWeights) sum() float64 {
	return w.WicketsPerMatch + w.Economy + w.DotBallRate
}

// NormalizedIndex is the bounded [0,1] index family: each ratio is
// benchmarked, clipped, then weight-summed per skill.
type NormalizedIndex struct {
	bench       Benchmarks
	batWeights  BattingWeights
	bowlWeights BowlingWeights
	deathRelief float64
}

// NewNormalizedIndex creates the index strategy, validating that each
// side's weights sum to 1.
func NewNormalizedIndex(bench Benchmarks, bat BattingWeights, bowl BowlingWeights, deathRelief float64) (*NormalizedIndex, error) {
	if bat.isZero() {
		bat = BattingWeights{
			StrikeRate:   defaultBatWeightStrikeRate,
			RunsPerMatch: defaultBatWeightRunsPerMatch,
			BoundaryRate: defaultBatWeightBoundary,
		}
	}
	if bowl.isZero() {
		bowl = BowlingWeights{
			WicketsPerMatch: defaultBowlWeightWickets,
			Economy:         defaultBowlWeightEconomy,
			DotBallRate:     defaultBowlWeightDots,
		}
	}
	if math.Abs(bat.sum()-1) > weightSumTolerance {
		return nil, ErrBatWeightSum
	}
	if math.Abs(bowl.sum()-1) > weightSumTolerance {
		return nil, ErrBowlWeightSum
	}
	if deathRelief < 0 || deathRelief > 1 {
		return nil, ErrDeathRelief
	}
	return &NormalizedIndex{
		bench:       bench.withDefaults(),
		batWeights:  bat,
		bowlWeights: bowl,
		deathRelief: deathRelief,
	}, nil
}

// Name identifies the formula family.
func (s *NormalizedIndex) Name() string { return FamilyNormalizedIndex }

// BatScore returns the weighted sum of the three batting sub-indices,
// each clipped into [0,1], so the result is itself in [0,1].
func (s *NormalizedIndex) BatScore(agg model.BattingAggregate) float64 {
	sr := subIndex(agg.StrikeRate(), s.bench.StrikeRate)
	rpm := subIndex(agg.RunsPerMatch(), s.bench.RunsPerMatch)
	bnd := subIndex(agg.BoundaryRate(), s.bench.BoundaryRate)
	return Sanitize(s.batWeights.StrikeRate*sr + s.batWeights.RunsPerMatch*rpm + s.batWeights.BoundaryRate*bnd)
}

// BowlScore returns the weighted sum of the three bowling sub-indices.
// Economy is inverted (benchmark over actual) so lower is better, and
// optionally relaxed for death-overs workload before indexing.
func (s *NormalizedIndex) BowlScore(agg model.BowlingAggregate) float64 {
	eco := agg.Economy()
	if s.deathRelief > 0 {
		eco *= 1 - s.deathRelief*agg.DeathBallFraction()
	}
	wpm := subIndex(agg.WicketsPerMatch(), s.bench.WicketsPerMatch)
	var ecoIdx float64
	if eco > 0 {
		ecoIdx = clip01(s.bench.Economy / eco)
	}
	dots := subIndex(agg.DotBallRate(), s.bench.DotBallRate)
	return Sanitize(s.bowlWeights.WicketsPerMatch*wpm + s.bowlWeights.Economy*ecoIdx + s.bowlWeights.DotBallRate*dots)
}

// RoleThreshold returns the all-rounder index threshold.
func (s *NormalizedIndex) RoleThreshold() float64 { return indexRoleThreshold }

func subIndex(value, benchmark float64) float64 {
	if benchmark <= 0 {
		return 0
	}
	return clip01(value / benchmark)
}

func clip01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
