package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/albapepper/sportspeed/internal/plan"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func buildPlan(t *testing.T, sport, name string, createdAt time.Time) *plan.Plan {
	t.Helper()
	p, err := plan.Build(sport, plan.Athlete{Name: name})
	if err != nil {
		t.Fatalf("plan.Build(%q): %v", sport, err)
	}
	p.CreatedAt = createdAt.UTC()
	return p
}

// TestMigrationsIdempotent opens the same database twice and verifies the
// migration is not re-applied.
func TestMigrationsIdempotent(t *testing.T) {
	dir := t.TempDir()

	s1, err := OpenSQLite(dir)
	if err != nil {
		t.Fatalf("first open failed: %v", err)
	}
	v1, err := s1.AppliedMigrations()
	if err != nil {
		t.Fatalf("AppliedMigrations: %v", err)
	}
	s1.Close()

	s2, err := OpenSQLite(dir)
	if err != nil {
		t.Fatalf("second open failed: %v", err)
	}
	defer s2.Close()
	v2, err := s2.AppliedMigrations()
	if err != nil {
		t.Fatalf("AppliedMigrations: %v", err)
	}
	if len(v1) != len(v2) || len(v1) == 0 {
		t.Errorf("migration count changed: %d -> %d", len(v1), len(v2))
	}
}

func TestSaveGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := buildPlan(t, "Soccer", "Riley", time.Now())

	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != p.ID || got.Sport != "Soccer" || got.Athlete.Name != "Riley" {
		t.Errorf("got %+v", got)
	}
	if len(got.Weeks) != len(p.Weeks) || got.Weeks[15] != p.Weeks[15] {
		t.Error("weeks not preserved")
	}
	if !got.CreatedAt.Equal(p.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, p.CreatedAt)
	}
}

func TestSaveDuplicateID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := buildPlan(t, "Football", "A", time.Now())
	if err := s.Save(ctx, p); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, p); err == nil {
		t.Error("expected error saving duplicate id")
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGetAndDeleteAcceptUUIDSpellings(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := buildPlan(t, "Soccer", "Case", time.Now())
	if err := s.Save(ctx, p); err != nil {
		t.Fatal(err)
	}

	for _, id := range []string{
		strings.ToUpper(p.ID),
		"{" + p.ID + "}",
		"urn:uuid:" + p.ID,
	} {
		got, err := s.Get(ctx, id)
		if err != nil {
			t.Errorf("Get(%q): %v", id, err)
			continue
		}
		if got.ID != p.ID {
			t.Errorf("Get(%q).ID = %q", id, got.ID)
		}
	}

	if err := s.Delete(ctx, strings.ToUpper(p.ID)); err != nil {
		t.Fatalf("Delete(upper): %v", err)
	}
	if _, err := s.Get(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete err = %v", err)
	}
}

func TestListNewestFirstAndFilter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	old := buildPlan(t, "Football", "Old", base)
	mid := buildPlan(t, "Soccer", "Mid", base.Add(time.Hour))
	recent := buildPlan(t, "Football", "New", base.Add(2*time.Hour))
	for _, p := range []*plan.Plan{old, mid, recent} {
		if err := s.Save(ctx, p); err != nil {
			t.Fatal(err)
		}
	}

	all, err := s.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 || all[0].ID != recent.ID || all[2].ID != old.ID {
		t.Errorf("unexpected order: %v", ids(all))
	}

	football, err := s.List(ctx, Filter{Sport: "Football"})
	if err != nil {
		t.Fatal(err)
	}
	if len(football) != 2 {
		t.Errorf("football plans = %d, want 2", len(football))
	}

	page, err := s.List(ctx, Filter{Limit: 1, Offset: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(page) != 1 || page[0].ID != mid.ID {
		t.Errorf("page = %v, want [%s]", ids(page), mid.ID)
	}
}

func TestListEmpty(t *testing.T) {
	s := openTestStore(t)
	plans, err := s.List(context.Background(), Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if plans == nil || len(plans) != 0 {
		t.Errorf("plans = %v, want empty non-nil slice", plans)
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := buildPlan(t, "Lacrosse", "D", time.Now())
	if err := s.Save(ctx, p); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete err = %v, want ErrNotFound", err)
	}
}

func TestPruneBefore(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	stale := buildPlan(t, "Baseball", "Stale", now.Add(-200*24*time.Hour))
	fresh := buildPlan(t, "Baseball", "Fresh", now)
	for _, p := range []*plan.Plan{stale, fresh} {
		if err := s.Save(ctx, p); err != nil {
			t.Fatal(err)
		}
	}

	n, err := s.PruneBefore(ctx, now.Add(-180*24*time.Hour))
	if err != nil {
		t.Fatalf("PruneBefore: %v", err)
	}
	if n != 1 {
		t.Errorf("pruned %d, want 1", n)
	}
	if _, err := s.Get(ctx, fresh.ID); err != nil {
		t.Errorf("fresh plan gone: %v", err)
	}
}

func TestFilterNormalize(t *testing.T) {
	f := Filter{Limit: 1000, Offset: -5}.Normalize()
	if f.Limit != MaxLimit || f.Offset != 0 {
		t.Errorf("Normalize() = %+v", f)
	}
	if (Filter{}).Normalize().Limit != DefaultLimit {
		t.Error("zero limit should become DefaultLimit")
	}
}

func TestDisabledStore(t *testing.T) {
	var s Store = Disabled{}
	if err := s.Save(context.Background(), nil); !errors.Is(err, ErrDisabled) {
		t.Errorf("Save err = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close err = %v", err)
	}
}

func ids(plans []*plan.Plan) []string {
	out := make([]string, len(plans))
	for i, p := range plans {
		out[i] = p.ID
	}
	return out
}
