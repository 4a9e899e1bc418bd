// Package maintenance runs periodic background tasks as Go tickers: plan
// retention pruning, rate limiter sweeping and cache statistics logging.
package maintenance

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/albapepper/sportspeed/internal/cache"
	"github.com/albapepper/sportspeed/internal/store"
)

// Config controls maintenance task intervals. Zero duration disables a task.
type Config struct {
	PruneInterval      time.Duration // delete plans older than Retention
	Retention          time.Duration // zero keeps plans forever
	CacheStatsInterval time.Duration
	SweepInterval      time.Duration // drop idle per-IP rate limiters
}

// Sweeper drops state that has gone idle as of now and reports how much.
type Sweeper interface {
	Sweep(now time.Time) int
}

// DefaultConfig returns sensible production defaults.
func DefaultConfig() Config {
	return Config{
		PruneInterval:      1 * time.Hour,
		Retention:          180 * 24 * time.Hour,
		CacheStatsInterval: 15 * time.Minute,
		SweepInterval:      10 * time.Minute,
	}
}

// Start launches all configured maintenance tickers. sw may be nil. Blocks
// until ctx is cancelled. Intended to be called with `go`.
func Start(ctx context.Context, st store.Store, c *cache.Cache, sw Sweeper, cfg Config, logger *slog.Logger) {
	logger.Info("Maintenance tickers started",
		"prune", cfg.PruneInterval,
		"retention", cfg.Retention,
		"cache_stats", cfg.CacheStatsInterval,
		"sweep", cfg.SweepInterval)

	tickers := make([]*time.Ticker, 0, 3)
	defer func() {
		for _, t := range tickers {
			t.Stop()
		}
	}()

	if cfg.PruneInterval > 0 && cfg.Retention > 0 {
		t := time.NewTicker(cfg.PruneInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, "prune", func() {
			_, err := Prune(ctx, st, c, cfg.Retention, time.Now(), logger)
			if err != nil && !errors.Is(err, store.ErrDisabled) {
				logger.Warn("Prune: failed", "error", err)
			}
		})
	}

	if cfg.SweepInterval > 0 && sw != nil {
		t := time.NewTicker(cfg.SweepInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, "sweep", func() {
			if n := sw.Sweep(time.Now()); n > 0 {
				logger.Debug("Sweep: dropped idle rate limiters", "count", n)
			}
		})
	}

	if cfg.CacheStatsInterval > 0 && c != nil {
		t := time.NewTicker(cfg.CacheStatsInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, "cache_stats", func() { logCacheStats(c, logger) })
	}

	<-ctx.Done()
	logger.Info("Maintenance tickers stopped")
}

func runLoop(ctx context.Context, ch <-chan time.Time, name string, fn func()) {
	for {
		select {
		case <-ch:
			fn()
		case <-ctx.Done():
			return
		}
	}
}

func logCacheStats(c *cache.Cache, logger *slog.Logger) {
	stats := c.Stats()
	logger.Info("Cache stats",
		"active_keys", stats["active_keys"],
		"expired_keys", stats["expired_keys"],
		"hits", stats["hits"],
		"misses", stats["misses"])
}
