// Package aggregate turns a flat delivery log into per-player batting
// and bowling summaries for a season window.
package aggregate

import (
	"context"

	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/model"
)

// Default aggregation policy constants.
const (
	// defaultMinMatches suppresses single-appearance debutants whose
	// ratios are too unstable to price.
	defaultMinMatches = 3

	// defaultRecentWindow covers the two most recent seasons in the data.
	defaultRecentWindow = 2

	boundaryFour = 4
	boundarySix  = 6
)

// FilterMode selects how SeasonFilter restricts the dataset.
type FilterMode int

// Filter modes.
const (
	// RecentWindow keeps the last N seasons observed in the dataset.
	RecentWindow FilterMode = iota
	// ExactSeason keeps exactly one season.
	ExactSeason
)

// SeasonFilter restricts aggregation to a window of seasons. The zero
// value means "recent window of the default width".
type SeasonFilter struct {
	Mode   FilterMode
	Window int // RecentWindow: number of trailing seasons; 0 means default
	Season int // ExactSeason: the calendar year to keep
}

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithMinMatches sets the minimum distinct matches a player must have
// in the filtered window to be included.
func WithMinMatches(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.minMatches = n
		}
	}
}

// Aggregator groups deliveries by player. It is a pure transform: the
// input slice is never mutated and every call builds fresh maps.
type Aggregator struct {
	minMatches int
}

// New creates an Aggregator with configuration options.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{
		minMatches: defaultMinMatches,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// MinMatches returns the configured inclusion threshold.
func (a *Aggregator) MinMatches() int {
	return a.minMatches
}

// Result holds both aggregate tables for one filtered window.
type Result struct {
	Batting map[string]model.BattingAggregate
	Bowling map[string]model.BowlingAggregate
}

// Aggregate produces batting and bowling summaries for the deliveries
// admitted by filter. An empty window yields empty maps, not an error.
func (a *Aggregator) Aggregate(_ context.Context, deliveries []model.Delivery, filter SeasonFilter) Result {
	res := Result{
		Batting: make(map[string]model.BattingAggregate),
		Bowling: make(map[string]model.BowlingAggregate),
	}

	keep := a.admit(deliveries, filter)

	// Distinct-match tracking per player per side.
	batMatches := make(map[string]map[string]struct{})
	bowlMatches := make(map[string]map[string]struct{})

	for _, d := range deliveries {
		if !keep(d) {
			continue
		}

		bat := res.Batting[d.Striker]
		bat.Player = d.Striker
		bat.Runs += d.RunsOffBat
		bat.Balls++
		if d.RunsOffBat == boundaryFour || d.RunsOffBat == boundarySix {
			bat.Boundaries++
		}
		res.Batting[d.Striker] = bat
		if batMatches[d.Striker] == nil {
			batMatches[d.Striker] = make(map[string]struct{})
		}
		batMatches[d.Striker][d.MatchID] = struct{}{}

		bowl := res.Bowling[d.Bowler]
		bowl.Player = d.Bowler
		if d.Wicket {
			bowl.Wickets++
		}
		bowl.RunsConceded += d.TotalRuns
		bowl.Balls++
		if d.TotalRuns == 0 {
			bowl.DotBalls++
		}
		if d.Over >= model.DeathOverStart {
			bowl.DeathBalls++
		}
		res.Bowling[d.Bowler] = bowl
		if bowlMatches[d.Bowler] == nil {
			bowlMatches[d.Bowler] = make(map[string]struct{})
		}
		bowlMatches[d.Bowler][d.MatchID] = struct{}{}
	}

	// Fill match counts and apply the minimum-sample filter.
	for player, agg := range res.Batting {
		agg.Matches = len(batMatches[player])
		if agg.Matches < a.minMatches {
			delete(res.Batting, player)
			continue
		}
		res.Batting[player] = agg
	}
	for player, agg := range res.Bowling {
		agg.Matches = len(bowlMatches[player])
		if agg.Matches < a.minMatches {
			delete(res.Bowling, player)
			continue
		}
		res.Bowling[player] = agg
	}

	return res
}

// admit builds the per-delivery predicate for filter. Deliveries with
// no resolvable season are dropped from every season-scoped view.
func (a *Aggregator) admit(deliveries []model.Delivery, filter SeasonFilter) func(model.Delivery) bool {
	switch filter.Mode {
	case ExactSeason:
		season := filter.Season
		return func(d model.Delivery) bool {
			return d.HasSeason() && d.Season == season
		}
	case RecentWindow:
		fallthrough
	default:
		window := filter.Window
		if window <= 0 {
			window = defaultRecentWindow
		}
		latest := latestSeason(deliveries)
		if latest == 0 {
			// No delivery carries a parseable date: the season view is empty.
			return func(model.Delivery) bool { return false }
		}
		floor := latest - window + 1
		return func(d model.Delivery) bool {
			return d.HasSeason() && d.Season >= floor
		}
	}
}

func latestSeason(deliveries []model.Delivery) int {
	latest := 0
	for _, d := range deliveries {
		if d.Season > latest {
			latest = d.Season
		}
	}
	return latest
}
