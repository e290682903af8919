// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/syedmahboobhussain12-ai/cricval/internal/adapters/repository"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/model"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/valuation"
)

// Dependencies required by HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to the service.
type Dependencies interface {
	// Valuations returns the (possibly memoized) table for req.
	Valuations(ctx context.Context, req valuation.Request) ([]model.Valuation, error)

	// Career returns a player's all-seasons stats.
	Career(ctx context.Context, name string) (repository.Career, error)

	// Seasons lists the seasons observed in the dataset.
	Seasons(ctx context.Context) []int

	// DefaultRequest is the board served without query parameters.
	DefaultRequest() valuation.Request
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	valuationsHandler *ValuationsHandler
	playersHandler    *PlayersHandler
	seasonsHandler    *SeasonsHandler
	dashboardHandler  *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxBoardLimit int) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		valuationsHandler: NewValuationsHandler(deps, maxBoardLimit),
		playersHandler:    NewPlayersHandler(deps),
		seasonsHandler:    NewSeasonsHandler(deps),
		dashboardHandler:  newDashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/valuations", MetricsMiddleware(s.valuationsHandler.HandleGetValuations, "valuations"))
	mux.HandleFunc("/players/", MetricsMiddleware(s.playersHandler.HandleGetPlayer, "players"))
	mux.HandleFunc("/seasons", MetricsMiddleware(s.seasonsHandler.HandleGetSeasons, "seasons"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found errors to 404 without
// tightly coupling the handler layer to specific packages.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, repository.ErrPlayerNotFound) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "not found")
}
