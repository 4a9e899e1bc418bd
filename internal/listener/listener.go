// Package listener provides a Postgres LISTEN/NOTIFY consumer that keeps the
// API response cache consistent across instances. It holds a dedicated pgx
// connection (not from the pool) listening on the `plans_changed` channel.
//
// The plans table trigger sends the plan id on every insert, update and
// delete; the listener drops the matching cached plan response.
package listener

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/albapepper/sportspeed/internal/cache"
)

const (
	Channel          = "plans_changed"
	reconnectBackoff = 5 * time.Second
	maxReconnect     = 30 * time.Second
)

// Start opens a dedicated connection and listens on the plans_changed
// channel. It reconnects automatically on connection loss. Blocks until ctx
// is cancelled. Intended to be called with `go`.
func Start(ctx context.Context, dbURL string, c *cache.Cache, logger *slog.Logger) {
	backoff := reconnectBackoff

	for {
		err := listenLoop(ctx, dbURL, c, logger)
		if ctx.Err() != nil {
			logger.Info("Plan listener stopped (context cancelled)")
			return
		}

		logger.Error("Plan listener disconnected, reconnecting...",
			"error", err, "backoff", backoff)

		select {
		case <-time.After(backoff):
			backoff = min(backoff*2, maxReconnect)
		case <-ctx.Done():
			return
		}
	}
}

func listenLoop(ctx context.Context, dbURL string, c *cache.Cache, logger *slog.Logger) error {
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+Channel); err != nil {
		return fmt.Errorf("LISTEN %s: %w", Channel, err)
	}
	logger.Info("Plan listener connected", "channel", Channel)

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}
		Invalidate(c, notification.Payload, logger)
	}
}

// Invalidate drops the cached response for the plan id carried by a
// plans_changed payload. An empty payload clears every cached plan.
func Invalidate(c *cache.Cache, payload string, logger *slog.Logger) {
	id := strings.TrimSpace(payload)
	if id == "" {
		n := c.DeletePrefix(cache.PrefixPlan)
		logger.Debug("Plan cache cleared", "removed", n)
		return
	}
	c.Delete(cache.PlanKey(id))
	logger.Debug("Plan cache invalidated", "plan_id", id)
}
