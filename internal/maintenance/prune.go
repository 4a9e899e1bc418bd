package maintenance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/albapepper/sportspeed/internal/cache"
	"github.com/albapepper/sportspeed/internal/store"
)

// Prune deletes plans created more than retention before now and drops the
// cached plan responses when anything was removed. Shared by the ticker and
// `speedctl plan prune`. A disabled store returns store.ErrDisabled.
func Prune(ctx context.Context, st store.Store, c *cache.Cache, retention time.Duration, now time.Time, logger *slog.Logger) (int64, error) {
	if retention <= 0 {
		return 0, nil
	}
	cutoff := now.Add(-retention)

	start := time.Now()
	n, err := st.PruneBefore(ctx, cutoff)
	dur := time.Since(start).Round(time.Millisecond)
	if errors.Is(err, store.ErrDisabled) {
		return 0, err
	}
	if err != nil {
		return 0, fmt.Errorf("prune before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	if n > 0 {
		if c != nil {
			c.DeletePrefix(cache.PrefixPlan)
		}
		logger.Info("Prune: deleted old plans", "count", n, "cutoff", cutoff, "duration", dur)
	}
	return n, nil
}
