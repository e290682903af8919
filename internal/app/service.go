// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/syedmahboobhussain12-ai/cricval/internal/adapters/ingest"
	jobqueue "github.com/syedmahboobhussain12-ai/cricval/internal/adapters/mq/queue"
	workerpool "github.com/syedmahboobhussain12-ai/cricval/internal/adapters/mq/worker"
	"github.com/syedmahboobhussain12-ai/cricval/internal/adapters/repository"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/aggregate"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/memo"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/model"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/pricing"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/scoring"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/valuation"
	"github.com/syedmahboobhussain12-ai/cricval/pkg/logger"
	"github.com/syedmahboobhussain12-ai/cricval/pkg/metrics"
)

// Service wires the ingestion, engine, cache and precompute pipeline
// behind the read API the HTTP layer consumes.
type Service struct {
	mu sync.RWMutex

	// Core components
	store  repository.Store
	cache  memo.Cache
	engine *valuation.Engine
	queue  jobqueue.Queue
	pool   *workerpool.Pool
	loader *ingest.Loader

	// Configuration
	dataFiles      []string
	workerCount    int
	queueCapacity  int
	cacheSize      int
	minMatches     int
	scoringParams  scoring.Params
	pricingParams  pricing.Params
	defaultRequest valuation.Request

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDataFiles sets the dataset candidate paths.
func WithDataFiles(paths ...string) Option {
	return func(s *Service) {
		if len(paths) > 0 {
			s.dataFiles = paths
		}
	}
}

// WithWorkerCount sets the number of precompute workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueCapacity bounds the precompute request queue.
func WithQueueCapacity(capacity int) Option {
	return func(s *Service) {
		if capacity > 0 {
			s.queueCapacity = capacity
		}
	}
}

// WithCacheSize bounds the memoized valuation tables.
func WithCacheSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.cacheSize = size
		}
	}
}

// WithMinMatches sets the aggregator's inclusion threshold.
func WithMinMatches(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.minMatches = n
		}
	}
}

// WithScoringParams sets the tunable scoring constants.
func WithScoringParams(p scoring.Params) Option {
	return func(s *Service) {
		s.scoringParams = p
	}
}

// WithPricingParams sets the tunable pricing constants.
func WithPricingParams(p pricing.Params) Option {
	return func(s *Service) {
		s.pricingParams = p
	}
}

// WithDefaultRequest sets the request served when the API asks for the
// board without parameters.
func WithDefaultRequest(req valuation.Request) Option {
	return func(s *Service) {
		s.defaultRequest = req
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(lg logger.Logger) Option {
	return func(s *Service) {
		if lg != nil {
			s.logger = lg
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:   2,
		queueCapacity: 1024,
		cacheSize:     64,
		minMatches:    3,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the dataset, builds the engine and warms the cache.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting valuation service...")

	loaderOpts := []ingest.Option{ingest.WithLogger(s.logger.Named("ingest"))}
	if len(s.dataFiles) > 0 {
		loaderOpts = append(loaderOpts, ingest.WithCandidates(s.dataFiles...))
	}
	s.loader = ingest.New(loaderOpts...)

	deliveries, err := s.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("service: load dataset: %w", err)
	}

	s.store = repository.NewMemStore(ctx, deliveries)
	metrics.UpdateDatasetDeliveries(s.store.Count(ctx))
	metrics.UpdateDatasetPlayers(s.store.Players(ctx))

	s.cache = memo.NewInMemoryCache(memo.WithMaxSize(s.cacheSize))
	s.engine = valuation.New(
		valuation.WithAggregator(aggregate.New(aggregate.WithMinMatches(s.minMatches))),
		valuation.WithScoringParams(s.scoringParams),
		valuation.WithPricingParams(s.pricingParams),
	)

	s.queue = jobqueue.NewInMemoryQueue(jobqueue.WithCapacity(s.queueCapacity))
	s.pool = workerpool.NewPool(s.queue, s.engine, s.cache, s.store,
		workerpool.WithCount(s.workerCount),
		workerpool.WithLogger(s.logger.Named("worker")),
	)
	s.pool.Start(ctx)

	s.warmCache(ctx)

	s.started = true
	s.logger.Info(ctx, "valuation service started",
		logger.Int("deliveries", s.store.Count(ctx)),
		logger.Int("players", s.store.Players(ctx)),
		logger.Int("workers", s.workerCount),
	)
	return nil
}

// warmCache enqueues the default board plus one exact-season request
// per observed season, all under the configured formulas. Jobs the
// queue cannot take are simply computed on first request instead.
func (s *Service) warmCache(ctx context.Context) {
	requests := []valuation.Request{s.defaultRequest}
	for _, season := range s.store.Seasons(ctx) {
		req := s.defaultRequest
		req.Filter = aggregate.SeasonFilter{Mode: aggregate.ExactSeason, Season: season}
		requests = append(requests, req)
	}
	for _, req := range requests {
		job := jobqueue.Job{Key: s.cacheKey(ctx, req), Request: req}
		if !s.queue.Enqueue(ctx, job) {
			s.logger.Warn(ctx, "precompute queue full, skipping warm job",
				logger.String("key", job.Key),
			)
		}
	}
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping valuation service...")

	if s.queue != nil {
		_ = s.queue.Close()
	}
	if s.pool != nil {
		s.pool.Stop()
	}

	s.started = false
	s.logger.Info(ctx, "valuation service stopped")
}

// cacheKey identifies one (dataset, request) computation.
func (s *Service) cacheKey(ctx context.Context, req valuation.Request) string {
	return fmt.Sprintf("%s|mode%d|w%d|y%d|%s|%s",
		s.store.Fingerprint(ctx),
		req.Filter.Mode, req.Filter.Window, req.Filter.Season,
		req.Family, req.Strategy,
	)
}

// DefaultRequest returns the request served without parameters.
func (s *Service) DefaultRequest() valuation.Request {
	return s.defaultRequest
}

// Valuations returns the table for req, serving a memoized copy when
// one exists and computing (then caching) otherwise.
func (s *Service) Valuations(ctx context.Context, req valuation.Request) ([]model.Valuation, error) {
	key := s.cacheKey(ctx, req)
	if rows, ok := s.cache.Get(ctx, key); ok {
		metrics.RecordCacheHit()
		return rows, nil
	}
	metrics.RecordCacheMiss()

	start := time.Now()
	rows, err := s.engine.Valuate(ctx, s.store.Deliveries(ctx), req)
	if err != nil {
		metrics.RecordValuationError()
		return nil, fmt.Errorf("service: valuate: %w", err)
	}
	metrics.RecordValuationComputed()
	metrics.ObserveValuationDuration(float64(time.Since(start).Milliseconds()))

	s.cache.Put(ctx, key, rows)
	metrics.UpdateCacheSize(s.cache.Size())
	return rows, nil
}

// Career returns a player's all-seasons totals and season breakdown.
func (s *Service) Career(ctx context.Context, name string) (repository.Career, error) {
	career, err := s.store.Career(ctx, name)
	if err != nil {
		return repository.Career{}, fmt.Errorf("service: career: %w", err)
	}
	return career, nil
}

// Seasons returns the distinct seasons observed in the dataset.
func (s *Service) Seasons(ctx context.Context) []int {
	return s.store.Seasons(ctx)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started": s.started,
	}
	if s.store != nil {
		stats["deliveries"] = s.store.Count(ctx)
		stats["players"] = s.store.Players(ctx)
		stats["seasons"] = len(s.store.Seasons(ctx))
		stats["dataset_fingerprint"] = s.store.Fingerprint(ctx)
	}
	if s.cache != nil {
		stats["cached_tables"] = s.cache.Size()
	}
	if s.queue != nil {
		stats["queue_depth"] = s.queue.Len(ctx)
	}
	stats["workers"] = s.workerCount
	return stats
}
