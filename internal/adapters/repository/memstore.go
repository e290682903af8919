package repository

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/model"
)

// playerIndex collects a player's delivery positions split by side.
type playerIndex struct {
	batting []int
	bowling []int
}

// MemStore implements Store over a fully materialized delivery slice.
// All indexes are built once in the constructor; afterwards the store
// is immutable and safe for concurrent reads without locking.
type MemStore struct {
	deliveries  []model.Delivery
	seasons     []int
	players     map[string]playerIndex
	fingerprint string
}

// NewMemStore indexes deliveries and returns the store.
func NewMemStore(_ context.Context, deliveries []model.Delivery) *MemStore {
	s := &MemStore{
		deliveries: deliveries,
		players:    make(map[string]playerIndex),
	}

	seasonSet := make(map[int]struct{})
	h := fnv.New64a()
	for i, d := range deliveries {
		if d.HasSeason() {
			seasonSet[d.Season] = struct{}{}
		}
		pi := s.players[d.Striker]
		pi.batting = append(pi.batting, i)
		s.players[d.Striker] = pi

		pi = s.players[d.Bowler]
		pi.bowling = append(pi.bowling, i)
		s.players[d.Bowler] = pi

		// Fingerprint over identifying fields only; the hash needs to
		// change when the dataset changes, not survive reordering.
		fmt.Fprintf(h, "%s|%d|%d|%s|%s|%d|%d|%t\n",
			d.MatchID, d.Over, d.Ball, d.Striker, d.Bowler, d.RunsOffBat, d.TotalRuns, d.Wicket)
	}

	s.seasons = make([]int, 0, len(seasonSet))
	for season := range seasonSet {
		s.seasons = append(s.seasons, season)
	}
	sort.Ints(s.seasons)
	s.fingerprint = fmt.Sprintf("%x", h.Sum64())
	return s
}

// Deliveries returns the full delivery log.
func (s *MemStore) Deliveries(_ context.Context) []model.Delivery {
	return s.deliveries
}

// Seasons returns the distinct seasons observed, ascending.
func (s *MemStore) Seasons(_ context.Context) []int {
	return s.seasons
}

// Fingerprint identifies the loaded dataset for cache keying.
func (s *MemStore) Fingerprint(_ context.Context) string {
	return s.fingerprint
}

// Count returns the number of deliveries in the dataset.
func (s *MemStore) Count(_ context.Context) int {
	return len(s.deliveries)
}

// Players returns the number of distinct players in the dataset.
func (s *MemStore) Players(_ context.Context) int {
	return len(s.players)
}

// Career returns a player's all-seasons totals and per-season lines.
func (s *MemStore) Career(_ context.Context, player string) (Career, error) {
	pi, ok := s.players[player]
	if !ok {
		return Career{}, fmt.Errorf("repository: %q: %w", player, ErrPlayerNotFound)
	}

	career := Career{Player: player}
	perSeason := make(map[int]*SeasonLine)
	line := func(season int) *SeasonLine {
		sl, ok := perSeason[season]
		if !ok {
			sl = &SeasonLine{Season: season}
			perSeason[season] = sl
		}
		return sl
	}

	var ballsFaced, ballsBowled, runsConceded int
	for _, i := range pi.batting {
		d := s.deliveries[i]
		career.Runs += d.RunsOffBat
		ballsFaced++
		if d.HasSeason() {
			sl := line(d.Season)
			sl.Runs += d.RunsOffBat
			sl.Balls++
		}
	}
	for _, i := range pi.bowling {
		d := s.deliveries[i]
		if d.Wicket {
			career.Wickets++
		}
		runsConceded += d.TotalRuns
		ballsBowled++
		if d.HasSeason() {
			sl := line(d.Season)
			if d.Wicket {
				sl.Wickets++
			}
			sl.RunsConceded += d.TotalRuns
			sl.BallsBowled++
		}
	}

	if ballsFaced > 0 {
		career.StrikeRate = float64(career.Runs) * 100 / float64(ballsFaced)
	}
	if ballsBowled > 0 {
		career.Economy = float64(runsConceded) * model.BallsPerOver / float64(ballsBowled)
	}

	career.Seasons = make([]SeasonLine, 0, len(perSeason))
	for _, sl := range perSeason {
		if sl.Balls > 0 {
			sl.StrikeRate = float64(sl.Runs) * 100 / float64(sl.Balls)
		}
		if sl.BallsBowled > 0 {
			sl.Economy = float64(sl.RunsConceded) * model.BallsPerOver / float64(sl.BallsBowled)
		}
		career.Seasons = append(career.Seasons, *sl)
	}
	// Most recent season first, matching the board's breakdown table.
	sort.Slice(career.Seasons, func(i, j int) bool {
		return career.Seasons[i].Season > career.Seasons[j].Season
	})
	return career, nil
}
