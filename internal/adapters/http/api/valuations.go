// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/aggregate"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/pricing"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/scoring"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/valuation"
)

// defaultBoardLimit caps the board size when no limit is given.
const defaultBoardLimit = 50

// ValuationsHandler handles market-board requests.
type ValuationsHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewValuationsHandler creates a new valuations handler.
func NewValuationsHandler(deps Dependencies, maxLimit int) *ValuationsHandler {
	if maxLimit <= 0 {
		maxLimit = defaultBoardLimit
	}
	return &ValuationsHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// HandleGetValuations handles
// GET /valuations?limit=N&season=Y&window=N&formula=F&pricing=P.
// Absent parameters fall back to the service's configured defaults.
func (h *ValuationsHandler) HandleGetValuations(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_valuations"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	req, err := h.parseRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, err))
		return
	}
	limit, err := h.parseLimit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, err))
		return
	}

	rows, err := h.deps.Valuations(r.Context(), req)
	if err != nil {
		// Unknown formula or strategy names are caller mistakes.
		if errors.Is(err, scoring.ErrUnknownFamily) || errors.Is(err, pricing.ErrUnknownStrategy) {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}
	writeJSON(w, http.StatusOK, rows)
}

// parseRequest builds the valuation request from query parameters,
// starting from the service default.
func (h *ValuationsHandler) parseRequest(r *http.Request) (valuation.Request, error) {
	req := h.deps.DefaultRequest()
	q := r.URL.Query()

	if season := q.Get("season"); season != "" {
		year, err := strconv.Atoi(season)
		if err != nil || year <= 0 {
			return valuation.Request{}, ErrBadRequest
		}
		req.Filter = aggregate.SeasonFilter{Mode: aggregate.ExactSeason, Season: year}
	} else if window := q.Get("window"); window != "" {
		n, err := strconv.Atoi(window)
		if err != nil || n < 1 {
			return valuation.Request{}, ErrBadRequest
		}
		req.Filter = aggregate.SeasonFilter{Mode: aggregate.RecentWindow, Window: n}
	}

	if family := q.Get("formula"); family != "" {
		req.Family = family
	}
	if strategy := q.Get("pricing"); strategy != "" {
		req.Strategy = strategy
	}
	return req, nil
}

func (h *ValuationsHandler) parseLimit(r *http.Request) (int, error) {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return h.maxLimit, nil
	}
	n, err := strconv.Atoi(limitStr)
	if err != nil || n < 1 {
		return 0, ErrBadRequest
	}
	if n > h.maxLimit {
		return 0, ErrLimitExceeded
	}
	return n, nil
}
