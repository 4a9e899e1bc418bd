package store

import (
	"context"
	"fmt"

	"github.com/albapepper/sportspeed/internal/config"
	"github.com/albapepper/sportspeed/internal/db"
)

// Open returns the Store selected by cfg.PlanStore. For postgres the embedded
// migrations run before the pool is created, since the pool prepares
// statements against the plans table.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.PlanStore {
	case config.StoreNone:
		return Disabled{}, nil
	case config.StorePostgres:
		if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
			return nil, err
		}
		pool, err := db.New(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		return NewPostgres(pool), nil
	default:
		return OpenSQLite(cfg.SQLiteDataDir)
	}
}
