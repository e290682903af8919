package repository

import "errors"

// Sentinel kinds for dataset store errors.
var (
	ErrPlayerNotFound = errors.New("player not found")
)
