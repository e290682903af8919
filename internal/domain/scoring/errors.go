package scoring

import "errors"

// Sentinel kinds for scoring errors.
var (
	ErrUnknownFamily = errors.New("unknown formula family")
	ErrBatWeightSum  = errors.New("batting weights must sum to 1")
	ErrBowlWeightSum = errors.New("bowling weights must sum to 1")
	ErrDeathRelief   = errors.New("death relief must be within [0, 1]")
)
