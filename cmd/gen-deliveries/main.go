// Command gen-deliveries writes a synthetic ball-by-ball CSV for local
// runs and load checks. Output follows the same column layout the
// ingest loader expects.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Generation defaults.
const (
	defaultSeasons        = 3
	defaultMatches        = 20
	defaultOversPerInning = 20
	defaultSeed           = 42
	playersPerTeam        = 7
	ballsPerOver          = 6
)

var teams = []string{ //nolint:gochecknoglobals // static fixture data
	"Chennai Super Kings", "Mumbai Indians", "Royal Challengers Bengaluru",
	"Kolkata Knight Riders", "Sunrisers Hyderabad", "Rajasthan Royals",
	"Delhi Capitals", "Punjab Kings", "Lucknow Super Giants", "Gujarat Titans",
}

func main() {
	var (
		out     = flag.String("out", "deliveries.csv", "Output CSV path")
		seasons = flag.Int("seasons", defaultSeasons, "Number of seasons to generate, ending at the current year")
		matches = flag.Int("matches", defaultMatches, "Matches per season")
		seed    = flag.Int64("seed", defaultSeed, "Random seed (deterministic output for a given seed)")
	)
	flag.Parse()

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintln(os.Stderr, "create output:", err)
		os.Exit(1)
	}
	defer f.Close()

	rng := rand.New(rand.NewSource(*seed)) //nolint:gosec // deterministic fixture data
	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"match_id", "date", "innings", "ball", "batter", "bowler",
		"batting_team", "bowling_team", "runs_off_bat", "total_runs", "is_wicket",
	}
	if err := w.Write(header); err != nil {
		fmt.Fprintln(os.Stderr, "write header:", err)
		os.Exit(1)
	}

	endYear := time.Now().Year()
	rows := 0
	for year := endYear - *seasons + 1; year <= endYear; year++ {
		for m := 0; m < *matches; m++ {
			rows += writeMatch(w, rng, year)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintln(os.Stderr, "write rows:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d deliveries to %s\n", rows, *out)
}

// writeMatch emits both innings of one synthetic fixture.
func writeMatch(w *csv.Writer, rng *rand.Rand, year int) int {
	matchID := uuid.New().String()
	date := time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, rng.Intn(70)).Format("2006-01-02")

	home := teams[rng.Intn(len(teams))]
	away := teams[rng.Intn(len(teams))]
	for away == home {
		away = teams[rng.Intn(len(teams))]
	}

	rows := 0
	rows += writeInnings(w, rng, matchID, date, 1, home, away)
	rows += writeInnings(w, rng, matchID, date, 2, away, home)
	return rows
}

func writeInnings(w *csv.Writer, rng *rand.Rand, matchID, date string, innings int, batting, bowling string) int {
	rows := 0
	for over := 0; over < defaultOversPerInning; over++ {
		batter := playerName(batting, rng.Intn(playersPerTeam))
		bowler := playerName(bowling, rng.Intn(playersPerTeam))
		for ball := 1; ball <= ballsPerOver; ball++ {
			runs := rollRuns(rng)
			wicket := rng.Float64() < 0.05
			extras := 0
			if rng.Float64() < 0.06 {
				extras = 1
			}
			record := []string{
				matchID,
				date,
				strconv.Itoa(innings),
				fmt.Sprintf("%d.%d", over, ball),
				batter,
				bowler,
				batting,
				bowling,
				strconv.Itoa(runs),
				strconv.Itoa(runs + extras),
				boolTo01(wicket),
			}
			_ = w.Write(record)
			rows++
		}
	}
	return rows
}

// rollRuns draws a per-ball outcome weighted toward dots and singles.
func rollRuns(rng *rand.Rand) int {
	switch r := rng.Float64(); {
	case r < 0.35:
		return 0
	case r < 0.70:
		return 1
	case r < 0.82:
		return 2
	case r < 0.85:
		return 3
	case r < 0.95:
		return 4
	default:
		return 6
	}
}

func playerName(team string, n int) string {
	return fmt.Sprintf("%s Player %d", team, n+1)
}

func boolTo01(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
