// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// SeasonsHandler handles season listing requests.
type SeasonsHandler struct {
	deps Dependencies
}

// NewSeasonsHandler creates a new seasons handler.
func NewSeasonsHandler(deps Dependencies) *SeasonsHandler {
	return &SeasonsHandler{deps: deps}
}

// HandleGetSeasons handles GET /seasons requests, returning the
// distinct seasons present in the dataset, ascending.
func (h *SeasonsHandler) HandleGetSeasons(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Seasons(r.Context()))
}
