package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/syedmahboobhussain12-ai/cricval/internal/adapters/http/api"
	repository "github.com/syedmahboobhussain12-ai/cricval/internal/adapters/repository"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/aggregate"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/model"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/scoring"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/valuation"
)

// fakeDeps is a canned Dependencies implementation that records the
// last valuation request it served.
type fakeDeps struct {
	rows    []model.Valuation
	lastReq valuation.Request
}

func (f *fakeDeps) Valuations(_ context.Context, req valuation.Request) ([]model.Valuation, error) {
	f.lastReq = req
	if req.Family != "" && req.Family != scoring.FamilyRawPoints && req.Family != scoring.FamilyNormalizedIndex {
		return nil, fmt.Errorf("scoring: %w: %q", scoring.ErrUnknownFamily, req.Family)
	}
	return f.rows, nil
}

func (f *fakeDeps) Career(_ context.Context, name string) (repository.Career, error) {
	if name != "V Kohli" {
		return repository.Career{}, fmt.Errorf("repository: %q: %w", name, repository.ErrPlayerNotFound)
	}
	return repository.Career{Player: name, Runs: 144}, nil
}

func (f *fakeDeps) Seasons(_ context.Context) []int {
	return []int{2024, 2025}
}

func (f *fakeDeps) DefaultRequest() valuation.Request {
	return valuation.Request{Filter: aggregate.SeasonFilter{Mode: aggregate.RecentWindow, Window: 2}}
}

type fakeStats struct{}

func (fakeStats) GetStats() map[string]interface{} {
	return map[string]interface{}{"started": true}
}

func board(n int) []model.Valuation {
	rows := make([]model.Valuation, n)
	for i := range rows {
		rows[i] = model.Valuation{
			Player: fmt.Sprintf("Player %02d", i),
			Rank:   i + 1,
			Price:  30.0 - float64(i),
		}
	}
	return rows
}

func newTestServer(t *testing.T, deps *fakeDeps) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	api.NewServer(deps, fakeStats{}, 10).Register(context.Background(), mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if v != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatal(err)
		}
	}
	return resp.StatusCode
}

func TestValuationsEndpoint(t *testing.T) {
	deps := &fakeDeps{rows: board(8)}
	srv := newTestServer(t, deps)

	var rows []model.Valuation
	if code := getJSON(t, srv.URL+"/valuations", &rows); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(rows) != 8 {
		t.Errorf("expected full board, got %d rows", len(rows))
	}
	if rows[0].Rank != 1 {
		t.Errorf("expected rank 1 first, got %d", rows[0].Rank)
	}

	// The default request must pass through untouched.
	if deps.lastReq.Filter.Mode != aggregate.RecentWindow || deps.lastReq.Filter.Window != 2 {
		t.Errorf("unexpected default filter: %+v", deps.lastReq.Filter)
	}
}

func TestValuationsEndpoint_Limit(t *testing.T) {
	deps := &fakeDeps{rows: board(8)}
	srv := newTestServer(t, deps)

	var rows []model.Valuation
	if code := getJSON(t, srv.URL+"/valuations?limit=3", &rows); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(rows) != 3 {
		t.Errorf("expected 3 rows, got %d", len(rows))
	}

	for _, q := range []string{"limit=0", "limit=-1", "limit=abc", "limit=11"} {
		if code := getJSON(t, srv.URL+"/valuations?"+q, nil); code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", q, code)
		}
	}
}

func TestValuationsEndpoint_Params(t *testing.T) {
	deps := &fakeDeps{rows: board(3)}
	srv := newTestServer(t, deps)

	if code := getJSON(t, srv.URL+"/valuations?season=2024", nil); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if deps.lastReq.Filter.Mode != aggregate.ExactSeason || deps.lastReq.Filter.Season != 2024 {
		t.Errorf("season param not applied: %+v", deps.lastReq.Filter)
	}

	if code := getJSON(t, srv.URL+"/valuations?window=4", nil); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if deps.lastReq.Filter.Mode != aggregate.RecentWindow || deps.lastReq.Filter.Window != 4 {
		t.Errorf("window param not applied: %+v", deps.lastReq.Filter)
	}

	if code := getJSON(t, srv.URL+"/valuations?formula=normalized-index&pricing=exponential-capped", nil); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if deps.lastReq.Family != scoring.FamilyNormalizedIndex {
		t.Errorf("formula param not applied: %q", deps.lastReq.Family)
	}

	// Malformed filters are caller errors.
	for _, q := range []string{"season=abc", "season=-1", "window=0"} {
		if code := getJSON(t, srv.URL+"/valuations?"+q, nil); code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", q, code)
		}
	}

	// So is an unknown formula family.
	if code := getJSON(t, srv.URL+"/valuations?formula=vibes", nil); code != http.StatusBadRequest {
		t.Errorf("unknown formula: expected 400, got %d", code)
	}
}

func TestValuationsEndpoint_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, &fakeDeps{rows: board(1)})

	resp, err := http.Post(srv.URL+"/valuations", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for POST, got %d", resp.StatusCode)
	}
}

func TestPlayersEndpoint(t *testing.T) {
	rows := board(2)
	rows[0].Player = "V Kohli"
	deps := &fakeDeps{rows: rows}
	srv := newTestServer(t, deps)

	var resp struct {
		Valued    bool              `json:"valued"`
		Valuation model.Valuation   `json:"valuation"`
		Career    repository.Career `json:"career"`
	}
	if code := getJSON(t, srv.URL+"/players/V%20Kohli", &resp); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !resp.Valued {
		t.Error("expected player to be valued on the default board")
	}
	if resp.Valuation.Player != "V Kohli" {
		t.Errorf("expected board row for V Kohli, got %q", resp.Valuation.Player)
	}
	if resp.Career.Runs != 144 {
		t.Errorf("expected career runs 144, got %d", resp.Career.Runs)
	}

	if code := getJSON(t, srv.URL+"/players/Nobody", nil); code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown player, got %d", code)
	}
	if code := getJSON(t, srv.URL+"/players/", nil); code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty name, got %d", code)
	}
}

func TestSeasonsEndpoint(t *testing.T) {
	srv := newTestServer(t, &fakeDeps{})

	var seasons []int
	if code := getJSON(t, srv.URL+"/seasons", &seasons); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(seasons) != 2 || seasons[0] != 2024 {
		t.Errorf("unexpected seasons: %v", seasons)
	}
}

func TestStatsEndpoint(t *testing.T) {
	srv := newTestServer(t, &fakeDeps{})

	var stats map[string]interface{}
	if code := getJSON(t, srv.URL+"/stats", &stats); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if stats["started"] != true {
		t.Errorf("expected started=true, got %v", stats["started"])
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, &fakeDeps{})

	if code := getJSON(t, srv.URL+"/healthz", nil); code != http.StatusOK {
		t.Errorf("expected 200, got %d", code)
	}
}
