// Package worker runs the precompute pool that warms the valuation
// memo cache.
package worker

import (
	"github.com/syedmahboobhussain12-ai/cricval/pkg/logger"
)

// Option applies a configuration option to the Pool.
type Option func(*Pool)

// WithCount sets the number of worker goroutines.
func WithCount(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.count = n
		}
	}
}

// WithLogger sets a custom logger for the pool.
func WithLogger(lg logger.Logger) Option {
	return func(p *Pool) {
		if lg != nil {
			p.logger = lg
		}
	}
}
