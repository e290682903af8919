package ingest

import "errors"

// Sentinel kinds for ingestion errors.
var (
	ErrNoDataset     = errors.New("no readable dataset file found")
	ErrNoCSVMember   = errors.New("zip archive contains no csv member")
	ErrMissingColumn = errors.New("dataset missing required column")
)
