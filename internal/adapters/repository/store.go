// Package repository defines the in-memory delivery dataset store.
//
// The dataset is the only resource the engine holds: loaded once,
// read-only for the lifetime of the process. The store indexes it by
// season and by player so the API can serve career views without
// rescanning the full log.
package repository

import (
	"context"

	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/model"
)

// SeasonLine is one season row of a player's career breakdown.
type SeasonLine struct {
	Season       int     `json:"season"`
	Runs         int     `json:"runs"`
	Balls        int     `json:"balls"`
	StrikeRate   float64 `json:"strike_rate"`
	Wickets      int     `json:"wickets"`
	RunsConceded int     `json:"runs_conceded"`
	BallsBowled  int     `json:"balls_bowled"`
	Economy      float64 `json:"economy"`
}

// Career is a player's all-seasons summary plus per-season lines.
type Career struct {
	Player     string       `json:"player"`
	Runs       int          `json:"runs"`
	StrikeRate float64      `json:"strike_rate"`
	Wickets    int          `json:"wickets"`
	Economy    float64      `json:"economy"`
	Seasons    []SeasonLine `json:"seasons"`
}

// Store provides read access to the loaded dataset.
type Store interface {
	// Deliveries returns the full delivery log. Callers must treat the
	// slice as read-only.
	Deliveries(ctx context.Context) []model.Delivery

	// Seasons returns the distinct seasons observed, ascending.
	Seasons(ctx context.Context) []int

	// Career returns a player's all-seasons totals and breakdown.
	// Returns ErrPlayerNotFound for players absent from the dataset.
	Career(ctx context.Context, player string) (Career, error)

	// Fingerprint identifies the loaded dataset for cache keying.
	Fingerprint(ctx context.Context) string

	// Count returns the number of deliveries in the dataset.
	Count(ctx context.Context) int

	// Players returns the number of distinct players in the dataset.
	Players(ctx context.Context) int
}
