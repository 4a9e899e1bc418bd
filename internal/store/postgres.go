package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/albapepper/sportspeed/internal/db"
	"github.com/albapepper/sportspeed/internal/plan"
)

// Postgres stores plans in the plans table using the pool's prepared
// statements. Writes fire the plans_changed notification.
type Postgres struct {
	pool *db.Pool
}

// NewPostgres wraps an open pool. Migrations must already be applied.
func NewPostgres(pool *db.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (s *Postgres) Close() error {
	s.pool.Close()
	return nil
}

func (s *Postgres) Ping(ctx context.Context) error {
	return s.pool.HealthCheck(ctx)
}

func (s *Postgres) Save(ctx context.Context, p *plan.Plan) error {
	doc, err := encodePlan(p)
	if err != nil {
		return err
	}
	if _, err := s.pool.Exec(ctx, db.StmtPlanInsert, p.ID, p.Sport, p.Athlete.Name, p.CreatedAt, string(doc)); err != nil {
		return fmt.Errorf("insert plan %s: %w", p.ID, err)
	}
	return nil
}

func (s *Postgres) Get(ctx context.Context, id string) (*plan.Plan, error) {
	// Non-UUID ids can never match and would fail the cast.
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	var doc []byte
	err := s.pool.QueryRow(ctx, db.StmtPlanGet, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get plan %s: %w", id, err)
	}
	return decodePlan(doc)
}

func (s *Postgres) List(ctx context.Context, f Filter) ([]*plan.Plan, error) {
	f = f.Normalize()

	var (
		rows pgx.Rows
		err  error
	)
	if f.Sport != "" {
		rows, err = s.pool.Query(ctx, db.StmtPlanListSport, f.Sport, f.Limit, f.Offset)
	} else {
		rows, err = s.pool.Query(ctx, db.StmtPlanList, f.Limit, f.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	plans := []*plan.Plan{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		p, err := decodePlan(doc)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (s *Postgres) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	tag, err := s.pool.Exec(ctx, db.StmtPlanDelete, id)
	if err != nil {
		return fmt.Errorf("delete plan %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, db.StmtPlanPrune, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune plans: %w", err)
	}
	return tag.RowsAffected(), nil
}
