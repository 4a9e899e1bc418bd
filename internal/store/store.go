// Package store keeps the history of generated 16-week plans. Two backends
// implement Store: SQLite (default, single instance) and Postgres.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/albapepper/sportspeed/internal/plan"
)

var (
	ErrNotFound = errors.New("plan not found")
	ErrDisabled = errors.New("plan store disabled")
)

// List paging limits.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Filter narrows List results. Results are newest first.
type Filter struct {
	Sport  string
	Limit  int
	Offset int
}

// Normalize applies paging defaults and bounds.
func (f Filter) Normalize() Filter {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// Store persists plans.
type Store interface {
	Save(ctx context.Context, p *plan.Plan) error
	Get(ctx context.Context, id string) (*plan.Plan, error)
	List(ctx context.Context, f Filter) ([]*plan.Plan, error)
	Delete(ctx context.Context, id string) error
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

// Disabled is the Store used when PLAN_STORE=none. Every call returns
// ErrDisabled.
type Disabled struct{}

func (Disabled) Save(context.Context, *plan.Plan) error                { return ErrDisabled }
func (Disabled) Get(context.Context, string) (*plan.Plan, error)       { return nil, ErrDisabled }
func (Disabled) List(context.Context, Filter) ([]*plan.Plan, error)    { return nil, ErrDisabled }
func (Disabled) Delete(context.Context, string) error                  { return ErrDisabled }
func (Disabled) PruneBefore(context.Context, time.Time) (int64, error) { return 0, ErrDisabled }
func (Disabled) Ping(context.Context) error                            { return ErrDisabled }
func (Disabled) Close() error                                          { return nil }

func encodePlan(p *plan.Plan) ([]byte, error) {
	doc, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode plan %s: %w", p.ID, err)
	}
	return doc, nil
}

func decodePlan(doc []byte) (*plan.Plan, error) {
	var p plan.Plan
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return &p, nil
}
