// Package db provides a pgxpool-based connection pool with prepared statement
// registration, health checking and schema migrations for the Postgres plan
// store.
package db

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albapepper/sportspeed/internal/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

// RunMigrations applies all pending embedded migrations. The plans table and
// its plans_changed notify trigger are created here.
func RunMigrations(dsn string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("opening embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// Statement names, shared with the Postgres store.
const (
	StmtHealthCheck   = "health_check"
	StmtPlanInsert    = "plan_insert"
	StmtPlanGet       = "plan_get"
	StmtPlanList      = "plan_list"
	StmtPlanListSport = "plan_list_sport"
	StmtPlanDelete    = "plan_delete"
	StmtPlanPrune     = "plan_prune"
)

func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		StmtHealthCheck: "SELECT 1",

		// Plans (document is the full JSON plan)
		StmtPlanInsert:    "INSERT INTO plans (id, sport, athlete_name, created_at, document) VALUES ($1, $2, $3, $4, $5)",
		StmtPlanGet:       "SELECT document FROM plans WHERE id = $1",
		StmtPlanList:      "SELECT document FROM plans ORDER BY created_at DESC, id LIMIT $1 OFFSET $2",
		StmtPlanListSport: "SELECT document FROM plans WHERE sport = $1 ORDER BY created_at DESC, id LIMIT $2 OFFSET $3",
		StmtPlanDelete:    "DELETE FROM plans WHERE id = $1",
		StmtPlanPrune:     "DELETE FROM plans WHERE created_at < $1",
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
