package pricing

import (
	"math"

	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/model"
)

// Exponential curve defaults, tuned so a combined index of 1.0 (an
// elite single-skill player) prices near 18: 4 x e^(1.5 x 1.0) = 17.9.
const (
	defaultBase       = 4.0
	defaultGrowthRate = 1.5

	// Role caps: specialists are bounded lower than all-rounders,
	// reflecting scarcity of genuine two-skill players.
	defaultSpecialistCap = 18.0
	defaultAllRounderCap = 24.0
)

// ExponentialCapped prices players on base x e^(growth x combined),
// hard-capped per role.
type ExponentialCapped struct {
	base          float64
	growth        float64
	specialistCap float64
	allRounderCap float64
}

// NewExponentialCapped creates the exponential strategy. Non-positive
// arguments fall back to defaults.
func NewExponentialCapped(base, growth, specialistCap, allRounderCap float64) *ExponentialCapped {
	if base <= 0 {
		base = defaultBase
	}
	if growth <= 0 {
		growth = defaultGrowthRate
	}
	if specialistCap <= 0 {
		specialistCap = defaultSpecialistCap
	}
	if allRounderCap <= 0 {
		allRounderCap = defaultAllRounderCap
	}
	return &ExponentialCapped{
		base:          base,
		growth:        growth,
		specialistCap: specialistCap,
		allRounderCap: allRounderCap,
	}
}

// Name identifies the pricing strategy.
func (s *ExponentialCapped) Name() string { return StrategyExponential }

// Ceiling returns the highest price any role can reach.
func (s *ExponentialCapped) Ceiling() float64 {
	return math.Max(s.specialistCap, s.allRounderCap)
}

// Price ranks rows and assigns the capped exponential curve. Combined
// scores below 0 (or NaN, already sanitized upstream) price at base.
func (s *ExponentialCapped) Price(rows []model.Valuation) {
	rankRows(rows)
	for i := range rows {
		combined := rows[i].Combined
		if combined < 0 || math.IsNaN(combined) {
			combined = 0
		}
		raw := s.base * math.Exp(s.growth*combined)
		roleCap := s.specialistCap
		if rows[i].Role == model.RoleAllRounder {
			roleCap = s.allRounderCap
		}
		rows[i].Price = clamp(math.Min(raw, roleCap), s.Ceiling())
	}
}
