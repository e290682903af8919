// Package valuation runs the full engine pipeline: aggregate the
// delivery log, score each player, assign roles and price the board.
package valuation

import (
	"context"
	"sort"

	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/aggregate"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/model"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/pricing"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/scoring"
)

// Request selects the window and formulas for one valuation run. Two
// identical Requests over the same dataset always produce identical
// tables, which is what makes memoizing them safe.
type Request struct {
	Filter   aggregate.SeasonFilter
	Family   string // scoring family; empty means raw-points
	Strategy string // pricing strategy; empty means rank-decay
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithAggregator replaces the default aggregator.
func WithAggregator(a *aggregate.Aggregator) Option {
	return func(e *Engine) {
		if a != nil {
			e.aggregator = a
		}
	}
}

// WithScoringParams sets the tunable scoring constants.
func WithScoringParams(p scoring.Params) Option {
	return func(e *Engine) {
		e.scoringParams = p
	}
}

// WithPricingParams sets the tunable pricing constants.
func WithPricingParams(p pricing.Params) Option {
	return func(e *Engine) {
		e.pricingParams = p
	}
}

// Engine is the synchronous valuation pipeline. It holds only
// configuration; every Valuate call is a pure function of its inputs.
type Engine struct {
	aggregator    *aggregate.Aggregator
	scoringParams scoring.Params
	pricingParams pricing.Params
}

// New creates an Engine with configuration options.
func New(opts ...Option) *Engine {
	e := &Engine{
		aggregator: aggregate.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Valuate computes the valuation table for req over deliveries. An
// empty window yields an empty table, never an error; errors surface
// only for unknown formula or strategy names.
func (e *Engine) Valuate(ctx context.Context, deliveries []model.Delivery, req Request) ([]model.Valuation, error) {
	scorer, err := scoring.NewStrategy(req.Family, e.scoringParams)
	if err != nil {
		return nil, err
	}
	pricer, err := pricing.NewStrategy(req.Strategy, e.pricingParams)
	if err != nil {
		return nil, err
	}

	agg := e.aggregator.Aggregate(ctx, deliveries, req.Filter)
	if len(agg.Batting) == 0 && len(agg.Bowling) == 0 {
		return []model.Valuation{}, nil
	}

	teams := aggregate.LastTeams(deliveries)
	rows := e.join(agg, teams, scorer)
	pricer.Price(rows)

	// Present the board highest price first; pricing already wrote
	// deterministic ranks, so mirror that order.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Rank < rows[j].Rank
	})
	return rows, nil
}

// join outer-joins the two aggregate tables on player, filling the
// missing side with zeros, and scores every row.
func (e *Engine) join(agg aggregate.Result, teams map[string]string, scorer scoring.Strategy) []model.Valuation {
	players := make(map[string]struct{}, len(agg.Batting)+len(agg.Bowling))
	for p := range agg.Batting {
		players[p] = struct{}{}
	}
	for p := range agg.Bowling {
		players[p] = struct{}{}
	}

	rows := make([]model.Valuation, 0, len(players))
	for player := range players {
		bat := agg.Batting[player]  // zero value when the player never batted
		bowl := agg.Bowling[player] // zero value when the player never bowled

		batScore := scoring.Sanitize(scorer.BatScore(bat))
		bowlScore := scoring.Sanitize(scorer.BowlScore(bowl))
		combined := scoring.Sanitize(scoring.Combine(batScore, bowlScore, e.scoringParams.ComboWeight))

		team, ok := teams[player]
		if !ok {
			team = aggregate.FreeAgentCode
		}

		rows = append(rows, model.Valuation{
			Player:     player,
			Team:       team,
			Role:       scoring.AssignRole(batScore, bowlScore, scorer.RoleThreshold()),
			BatScore:   batScore,
			BowlScore:  bowlScore,
			Combined:   combined,
			Runs:       bat.Runs,
			StrikeRate: bat.StrikeRate(),
			Wickets:    bowl.Wickets,
			Economy:    bowl.Economy(),
		})
	}
	return rows
}
