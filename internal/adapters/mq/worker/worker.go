// Package worker runs the precompute pool that warms the valuation
// memo cache.
package worker

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/syedmahboobhussain12-ai/cricval/internal/adapters/mq/queue"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/model"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/valuation"
	"github.com/syedmahboobhussain12-ai/cricval/pkg/logger"
	"github.com/syedmahboobhussain12-ai/cricval/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerCount  = 2
	poolShutdownTimeout = 30 * time.Second
)

// Computer runs the valuation pipeline for one request.
type Computer interface {
	Valuate(ctx context.Context, deliveries []model.Delivery, req valuation.Request) ([]model.Valuation, error)
}

// Cache stores computed tables under their job key.
type Cache interface {
	Put(ctx context.Context, key string, rows []model.Valuation)
	Size() int64
}

// DatasetSource supplies the delivery log to value against.
type DatasetSource interface {
	Deliveries(ctx context.Context) []model.Delivery
}

// Pool fans queued jobs out over a fixed set of goroutines. Each job
// is independent, so no coordination beyond the queue is needed.
type Pool struct {
	count    int
	queue    queue.Queue
	computer Computer
	cache    Cache
	source   DatasetSource
	logger   logger.Logger

	wg      sync.WaitGroup
	started bool
	mu      sync.Mutex
}

// NewPool creates a worker pool with configuration options.
func NewPool(q queue.Queue, computer Computer, cache Cache, source DatasetSource, opts ...Option) *Pool {
	p := &Pool{
		count:    defaultWorkerCount,
		queue:    q,
		computer: computer,
		cache:    cache,
		source:   source,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logger.Get().Named("worker")
	}
	return p
}

// Start launches the worker goroutines. Calling Start twice is a no-op.
func (p *Pool) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true

	metrics.UpdateWorkerCount(p.count)
	for i := 0; i < p.count; i++ {
		p.wg.Add(1)
		go p.run(ctx, "precompute-"+strconv.Itoa(i))
	}
}

// Stop waits for in-flight jobs to finish. The queue must be closed
// first so the run loops can drain and exit.
func (p *Pool) Stop() {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(poolShutdownTimeout):
		p.logger.Warn(context.Background(), "worker pool shutdown timed out")
	}
	metrics.UpdateWorkerCount(0)
}

// run is one worker loop: dequeue, compute, cache, repeat.
func (p *Pool) run(ctx context.Context, name string) {
	defer p.wg.Done()
	log := p.logger.Named(name)

	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.queue.Dequeue(ctx):
			if !ok {
				return
			}
			metrics.RecordDequeue()
			if err := p.process(ctx, job); err != nil {
				metrics.RecordWorkerError()
				log.Error(ctx, "precompute failed",
					logger.String("key", job.Key),
					logger.Error(err),
				)
			}
		}
	}
}

func (p *Pool) process(ctx context.Context, job queue.Job) error {
	start := time.Now()
	rows, err := p.computer.Valuate(ctx, p.source.Deliveries(ctx), job.Request)
	if err != nil {
		metrics.RecordValuationError()
		return fmt.Errorf("worker: valuate %s: %w", job.Key, err)
	}
	p.cache.Put(ctx, job.Key, rows)

	metrics.RecordValuationComputed()
	metrics.ObserveValuationDuration(float64(time.Since(start).Milliseconds()))
	metrics.UpdateCacheSize(p.cache.Size())

	p.logger.Debug(ctx, "precomputed valuation table",
		logger.String("key", job.Key),
		logger.Int("players", len(rows)),
	)
	return nil
}
