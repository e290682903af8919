// Package model contains domain models passed between layers.
package model

import "time"

// BallsPerOver is the 6-ball-over convention used for economy rates.
// Economy is runs conceded per BallsPerOver deliveries.
const BallsPerOver = 6

// DeathOverStart is the first over (0-based over number 16 of a 20-over
// innings) counted as the death phase for pressure adjustments.
const DeathOverStart = 16

// Delivery represents one ball bowled in a match. Records are immutable
// after ingestion; the engine never writes to them.
type Delivery struct {
	MatchID     string    // match identifier, unique per fixture
	Date        time.Time // match date; zero when the source date did not parse
	Season      int       // calendar year of Date; 0 when unknown
	Innings     int       // innings number within the match
	Over        int       // over number within the innings, 0-based
	Ball        int       // ball number within the over
	Striker     string    // batter on strike
	Bowler      string    // bowler delivering
	BattingTeam string    // free-text team name of the batting side
	BowlingTeam string    // free-text team name of the bowling side
	RunsOffBat  int       // runs credited to the striker
	TotalRuns   int       // runs off bat plus extras
	Wicket      bool      // a dismissal occurred on this delivery
}

// HasSeason reports whether the delivery carries a resolvable season.
// Deliveries without one are excluded from season-scoped views.
func (d Delivery) HasSeason() bool {
	return d.Season > 0
}

// BattingAggregate summarizes one player's batting over a filtered window.
type BattingAggregate struct {
	Player     string
	Runs       int
	Balls      int
	Matches    int
	Boundaries int // deliveries scoring 4 or 6 off the bat
}

// StrikeRate returns runs per 100 balls. A zero ball count is replaced
// with 1 before dividing, so an empty aggregate rates 0 rather than NaN.
func (b BattingAggregate) StrikeRate() float64 {
	balls := b.Balls
	if balls == 0 {
		balls = 1
	}
	return float64(b.Runs) * 100 / float64(balls)
}

// RunsPerMatch returns average runs per appearance, 0 when Matches is 0.
func (b BattingAggregate) RunsPerMatch() float64 {
	if b.Matches == 0 {
		return 0
	}
	return float64(b.Runs) / float64(b.Matches)
}

// BoundaryRate returns the fraction of balls faced that went for 4 or 6.
func (b BattingAggregate) BoundaryRate() float64 {
	balls := b.Balls
	if balls == 0 {
		balls = 1
	}
	return float64(b.Boundaries) / float64(balls)
}

// BowlingAggregate summarizes one player's bowling over a filtered window.
type BowlingAggregate struct {
	Player       string
	Wickets      int
	RunsConceded int
	Balls        int
	Matches      int
	DotBalls     int // deliveries conceding no runs at all
	DeathBalls   int // deliveries bowled in the death phase (over >= DeathOverStart)
}

// Economy returns runs conceded per over. A zero ball count is replaced
// with 1 before dividing, matching the batting-side guard.
func (b BowlingAggregate) Economy() float64 {
	balls := b.Balls
	if balls == 0 {
		balls = 1
	}
	return float64(b.RunsConceded) * BallsPerOver / float64(balls)
}

// WicketsPerMatch returns average wickets per appearance, 0 when Matches is 0.
func (b BowlingAggregate) WicketsPerMatch() float64 {
	if b.Matches == 0 {
		return 0
	}
	return float64(b.Wickets) / float64(b.Matches)
}

// DotBallRate returns the fraction of balls bowled that conceded nothing.
func (b BowlingAggregate) DotBallRate() float64 {
	balls := b.Balls
	if balls == 0 {
		balls = 1
	}
	return float64(b.DotBalls) / float64(balls)
}

// DeathBallFraction returns the share of balls bowled in the death phase.
func (b BowlingAggregate) DeathBallFraction() float64 {
	balls := b.Balls
	if balls == 0 {
		balls = 1
	}
	return float64(b.DeathBalls) / float64(balls)
}

// Role categorizes a player by the balance of their two skill scores.
type Role string

// Role values. Role is always derived from the computed scores and is
// never set independently.
const (
	RoleBatter     Role = "Batter"
	RoleBowler     Role = "Bowler"
	RoleAllRounder Role = "All-Rounder"
)

// Valuation is one output row of the engine: a player's computed skill
// scores, role, rank and market price, plus the headline stats the
// board displays alongside them.
type Valuation struct {
	Player     string  `json:"player"`
	Team       string  `json:"team"`
	Role       Role    `json:"role"`
	BatScore   float64 `json:"bat_score"`
	BowlScore  float64 `json:"bowl_score"`
	Combined   float64 `json:"combined_score"`
	Rank       int     `json:"rank"`
	Price      float64 `json:"price"`
	Runs       int     `json:"runs"`
	StrikeRate float64 `json:"strike_rate"`
	Wickets    int     `json:"wickets"`
	Economy    float64 `json:"economy"`
}
