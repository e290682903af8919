package pricing

import "github.com/syedmahboobhussain12-ai/cricval/internal/domain/model"

// Rank-decay curve defaults: a flat privileged top (rank 1 at the
// ceiling, ranks 2-3 on a small fixed markdown) followed by a
// reciprocal decay.
const (
	defaultCeiling = 30.0
	defaultDecayK  = 0.04

	// topMarkdownBase and topMarkdownPerRank give ranks 2-3 their fixed
	// markdown: ceiling - base - perRank x rank.
	topMarkdownBase    = 2.0
	topMarkdownPerRank = 0.5

	// privilegedRanks is how many leading ranks bypass the decay curve.
	privilegedRanks = 3
)

// RankDecay prices players purely by their rank on the combined score.
type RankDecay struct {
	ceiling float64
	k       float64
}

// NewRankDecay creates the rank-decay strategy. Non-positive arguments
// fall back to defaults.
func NewRankDecay(ceiling, k float64) *RankDecay {
	if ceiling <= 0 {
		ceiling = defaultCeiling
	}
	if k <= 0 {
		k = defaultDecayK
	}
	return &RankDecay{ceiling: ceiling, k: k}
}

// Name identifies the pricing strategy.
func (s *RankDecay) Name() string { return StrategyRankDecay }

// Ceiling returns the price upper bound.
func (s *RankDecay) Ceiling() float64 { return s.ceiling }

// Price ranks rows and assigns the decay curve. The result is
// monotonically non-increasing in rank and bounded by the ceiling.
func (s *RankDecay) Price(rows []model.Valuation) {
	rankRows(rows)
	for i := range rows {
		rows[i].Price = clamp(s.priceAt(rows[i].Rank), s.ceiling)
	}
}

func (s *RankDecay) priceAt(rank int) float64 {
	switch {
	case rank <= 1:
		return s.ceiling
	case rank <= privilegedRanks:
		return s.ceiling - topMarkdownBase - topMarkdownPerRank*float64(rank)
	default:
		// The reciprocal curve can sit above the last privileged price
		// for small k; clamp so price never increases with rank.
		decay := s.ceiling / (1 + s.k*float64(rank-1))
		floor := s.ceiling - topMarkdownBase - topMarkdownPerRank*privilegedRanks
		if decay > floor {
			return floor
		}
		return decay
	}
}
