// Package ingest loads the ball-by-ball delivery dataset from disk.
//
// The loader is fail-safe in the same way the engine is: it walks a
// priority list of candidate files (plain CSV first, then a zip
// archive) and uses the first one it can read. Unparseable dates
// degrade a row to "no season" instead of failing the load; missing
// required columns fail the whole load, since the engine must never
// see a malformed dataset.
package ingest

import (
	"archive/zip"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/model"
	"github.com/syedmahboobhussain12-ai/cricval/pkg/logger"
)

// Required dataset columns, matched case-insensitively against the
// CSV header.
const (
	colMatchID     = "match_id"
	colDate        = "date"
	colInnings     = "innings"
	colBall        = "ball"
	colStriker     = "batter"
	colBowler      = "bowler"
	colBattingTeam = "batting_team"
	colBowlingTeam = "bowling_team"
	colRunsOffBat  = "runs_off_bat"
	colTotalRuns   = "total_runs"
	colWicket      = "is_wicket"
)

// dateLayouts are tried in order when parsing the date column.
var dateLayouts = []string{ //nolint:gochecknoglobals // static parse table
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	time.RFC3339,
}

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithCandidates sets the priority-ordered list of files to try.
func WithCandidates(paths ...string) Option {
	return func(l *Loader) {
		if len(paths) > 0 {
			l.candidates = paths
		}
	}
}

// WithLogger sets a custom logger for the loader.
func WithLogger(lg logger.Logger) Option {
	return func(l *Loader) {
		if lg != nil {
			l.logger = lg
		}
	}
}

// Loader reads delivery datasets.
type Loader struct {
	candidates []string
	logger     logger.Logger
}

// New creates a Loader with configuration options.
func New(opts ...Option) *Loader {
	l := &Loader{
		candidates: []string{"ipl_ball_by_ball_2008_2025.csv", "data.zip"},
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = logger.Get().Named("ingest")
	}
	return l
}

// Load reads the first readable candidate file and returns its
// deliveries. It fails only when no candidate can be read or the
// chosen file is structurally malformed.
func (l *Loader) Load(ctx context.Context) ([]model.Delivery, error) {
	var lastErr error
	for _, path := range l.candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		deliveries, err := l.loadFile(ctx, path)
		if err != nil {
			l.logger.Warn(ctx, "candidate file unreadable, trying next",
				logger.String("path", path),
				logger.Error(err),
			)
			lastErr = err
			continue
		}
		l.logger.Info(ctx, "dataset loaded",
			logger.String("path", path),
			logger.Int("deliveries", len(deliveries)),
		)
		return deliveries, nil
	}
	if lastErr != nil {
		return nil, fmt.Errorf("ingest: %w: %w", ErrNoDataset, lastErr)
	}
	return nil, ErrNoDataset
}

func (l *Loader) loadFile(ctx context.Context, path string) ([]model.Delivery, error) {
	if strings.HasSuffix(strings.ToLower(path), ".zip") {
		return l.loadZip(ctx, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()
	return l.parseCSV(ctx, f)
}

// loadZip reads the first CSV member of a zip archive.
func (l *Loader) loadZip(ctx context.Context, path string) ([]model.Delivery, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open zip %s: %w", path, err)
	}
	defer zr.Close()

	for _, member := range zr.File {
		if !strings.HasSuffix(strings.ToLower(member.Name), ".csv") {
			continue
		}
		rc, err := member.Open()
		if err != nil {
			return nil, fmt.Errorf("ingest: open zip member %s: %w", member.Name, err)
		}
		deliveries, err := l.parseCSV(ctx, rc)
		rc.Close()
		return deliveries, err
	}
	return nil, fmt.Errorf("ingest: %w in %s", ErrNoCSVMember, path)
}

// parseCSV decodes delivery rows from r. The header row decides column
// positions; every required column must be present.
func (l *Loader) parseCSV(ctx context.Context, r io.Reader) ([]model.Delivery, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged trailing columns are tolerated

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("ingest: read header: %w", err)
	}
	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var (
		deliveries []model.Delivery
		badDates   int
		skipped    int
	)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: read row: %w", err)
		}

		d, ok := cols.decode(row)
		if !ok {
			skipped++
			continue
		}
		if d.Season == 0 {
			badDates++
		}
		deliveries = append(deliveries, d)
	}

	if badDates > 0 || skipped > 0 {
		l.logger.Warn(ctx, "dataset has degraded rows",
			logger.Int("unparseable_dates", badDates),
			logger.Int("skipped_rows", skipped),
		)
	}
	return deliveries, nil
}

// columnIndex maps required column names to header positions.
type columnIndex map[string]int

func indexColumns(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	required := []string{
		colMatchID, colDate, colBall, colStriker, colBowler,
		colBattingTeam, colBowlingTeam, colRunsOffBat, colTotalRuns, colWicket,
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("ingest: %w: %s", ErrMissingColumn, name)
		}
	}
	return idx, nil
}

// decode builds a Delivery from one CSV row. Rows without a striker or
// bowler are unusable and rejected; everything else degrades softly.
func (c columnIndex) decode(row []string) (model.Delivery, bool) {
	get := func(name string) string {
		i, ok := c[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	striker := get(colStriker)
	bowler := get(colBowler)
	if striker == "" || bowler == "" {
		return model.Delivery{}, false
	}

	d := model.Delivery{
		MatchID:     get(colMatchID),
		Striker:     striker,
		Bowler:      bowler,
		BattingTeam: get(colBattingTeam),
		BowlingTeam: get(colBowlingTeam),
		RunsOffBat:  atoiSoft(get(colRunsOffBat)),
		TotalRuns:   atoiSoft(get(colTotalRuns)),
		Wicket:      parseWicket(get(colWicket)),
		Innings:     atoiSoft(get(colInnings)),
	}
	d.Over, d.Ball = parseBallMarker(get(colBall))
	if t, ok := parseDate(get(colDate)); ok {
		d.Date = t
		d.Season = t.Year()
	}
	return d, true
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseBallMarker splits the "over.ball" sequence marker, e.g. "15.3"
// means the third ball of over 15.
func parseBallMarker(s string) (over, ball int) {
	if s == "" {
		return 0, 0
	}
	parts := strings.SplitN(s, ".", 2)
	over = atoiSoft(parts[0])
	if len(parts) == 2 {
		ball = atoiSoft(parts[1])
	}
	return over, ball
}

func parseWicket(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "t", "yes":
		return true
	default:
		return false
	}
}

// atoiSoft parses an integer, tolerating float-formatted values
// ("4.0") and returning 0 for anything unparseable.
func atoiSoft(s string) int {
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}
