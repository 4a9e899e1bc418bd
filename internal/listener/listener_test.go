package listener

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/albapepper/sportspeed/internal/cache"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInvalidateSinglePlan(t *testing.T) {
	c := cache.New(true)
	c.Set(cache.PlanKey("a"), []byte("1"), time.Minute)
	c.Set(cache.PlanKey("b"), []byte("2"), time.Minute)

	Invalidate(c, " a\n", discardLogger())

	if _, _, ok := c.Get(cache.PlanKey("a")); ok {
		t.Error("plan a still cached")
	}
	if _, _, ok := c.Get(cache.PlanKey("b")); !ok {
		t.Error("plan b should remain cached")
	}
}

func TestInvalidateEmptyPayloadClearsPlans(t *testing.T) {
	c := cache.New(true)
	c.Set(cache.PlanKey("a"), []byte("1"), time.Minute)
	c.Set("sports", []byte("s"), time.Minute)

	Invalidate(c, "", discardLogger())

	if _, _, ok := c.Get(cache.PlanKey("a")); ok {
		t.Error("plan a still cached")
	}
	if _, _, ok := c.Get("sports"); !ok {
		t.Error("catalog entry should remain cached")
	}
}

func TestStartReturnsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		Start(ctx, "postgres://invalid:1/none", cache.New(false), discardLogger())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after cancellation")
	}
}
