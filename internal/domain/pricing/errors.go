package pricing

import "errors"

// Sentinel kinds for pricing errors.
var (
	ErrUnknownStrategy = errors.New("unknown pricing strategy")
)
