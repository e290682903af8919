// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/syedmahboobhussain12-ai/cricval/internal/adapters/repository"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/model"
)

// PlayersHandler handles player deep-dive requests.
type PlayersHandler struct {
	deps Dependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps Dependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

// playerResponse is the deep-dive payload: the player's board row
// under the default request (when they priced onto it) plus their
// career totals and season breakdown.
type playerResponse struct {
	Valued    bool              `json:"valued"`
	Valuation model.Valuation   `json:"valuation"`
	Career    repository.Career `json:"career"`
}

// HandleGetPlayer handles GET /players/{name} requests. The name
// segment is URL-escaped ("MS%20Dhoni").
func (h *PlayersHandler) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_player"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/players/")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	name = strings.TrimSpace(name)
	if name == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	career, err := h.deps.Career(r.Context(), name)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	resp := playerResponse{Career: career}
	rows, err := h.deps.Valuations(r.Context(), h.deps.DefaultRequest())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	for _, row := range rows {
		if row.Player == name {
			resp.Valuation = row
			resp.Valued = true
			break
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
