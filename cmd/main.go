package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/syedmahboobhussain12-ai/cricval/internal/adapters/http/api"
	"github.com/syedmahboobhussain12-ai/cricval/internal/adapters/http/site"
	"github.com/syedmahboobhussain12-ai/cricval/internal/adapters/http/swagger"
	app "github.com/syedmahboobhussain12-ai/cricval/internal/app"
	"github.com/syedmahboobhussain12-ai/cricval/internal/config"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/aggregate"
	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/valuation"
	"github.com/syedmahboobhussain12-ai/cricval/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Disable default Go metrics collection; the custom registry
	// carries only the service's own metrics.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := app.New(
		app.WithLogger(log),
		app.WithDataFiles(cfg.DataFiles...),
		app.WithWorkerCount(cfg.WorkerCount),
		app.WithQueueCapacity(cfg.QueueCapacity),
		app.WithCacheSize(cfg.CacheSize),
		app.WithMinMatches(cfg.MinMatches),
		app.WithScoringParams(cfg.ScoringParams()),
		app.WithPricingParams(cfg.Pricing.Params()),
		app.WithDefaultRequest(defaultRequest(cfg)),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	// HTTP mux and routes.
	mux := http.NewServeMux()

	// API docs under /api-docs.
	swagger.Register(ctx, mux)

	// Business API routes.
	apiServer := api.NewServer(svc, svc, cfg.MaxBoardLimit)
	apiServer.Register(ctx, mux)

	// Embedded market board at /.
	site.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// defaultRequest translates the configured season mode into the board
// served without query parameters.
func defaultRequest(cfg *config.Config) valuation.Request {
	req := valuation.Request{
		Family:   cfg.FormulaFamily,
		Strategy: cfg.PricingStrategy,
	}
	if cfg.SeasonMode == config.SeasonModeExact {
		req.Filter = aggregate.SeasonFilter{Mode: aggregate.ExactSeason, Season: cfg.Season}
	} else {
		req.Filter = aggregate.SeasonFilter{Mode: aggregate.RecentWindow, Window: cfg.SeasonWindow}
	}
	return req
}
