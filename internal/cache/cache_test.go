package cache

import (
	"testing"
	"time"
)

func TestSetGet(t *testing.T) {
	c := New(true)
	etag := c.Set("sports", []byte(`[1,2,3]`), time.Minute)

	data, got, ok := c.Get("sports")
	if !ok {
		t.Fatal("expected hit")
	}
	if string(data) != `[1,2,3]` {
		t.Errorf("data = %s", data)
	}
	if got != etag {
		t.Errorf("etag = %q, want %q", got, etag)
	}
}

func TestExpiredEntryMisses(t *testing.T) {
	c := New(true)
	c.Set("k", []byte("v"), -time.Second)
	if _, _, ok := c.Get("k"); ok {
		t.Error("expired entry returned")
	}
	c.evict()
	if n := c.Stats()["total_keys"].(int); n != 0 {
		t.Errorf("total_keys after evict = %d", n)
	}
}

func TestDisabledCache(t *testing.T) {
	c := New(false)
	etag := c.Set("k", []byte("v"), time.Minute)
	if etag == "" {
		t.Error("disabled cache should still compute an ETag")
	}
	if _, _, ok := c.Get("k"); ok {
		t.Error("disabled cache returned a hit")
	}
}

func TestDeleteAndPrefix(t *testing.T) {
	c := New(true)
	c.Set(PlanKey("a"), []byte("1"), time.Minute)
	c.Set(PlanKey("b"), []byte("2"), time.Minute)
	c.Set("sports", []byte("3"), time.Minute)

	c.Delete(PlanKey("a"))
	if _, _, ok := c.Get(PlanKey("a")); ok {
		t.Error("deleted key still present")
	}
	if n := c.DeletePrefix(PrefixPlan); n != 1 {
		t.Errorf("DeletePrefix removed %d, want 1", n)
	}
	if _, _, ok := c.Get("sports"); !ok {
		t.Error("unrelated key removed")
	}
}

func TestStatsCountsHits(t *testing.T) {
	c := New(true)
	c.Set("k", []byte("v"), time.Minute)
	c.Get("k")
	c.Get("missing")
	stats := c.Stats()
	if stats["hits"].(uint64) != 1 || stats["misses"].(uint64) != 1 {
		t.Errorf("stats = %v", stats)
	}
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("payload"))
	tests := []struct {
		header string
		want   bool
	}{
		{"", false},
		{"*", true},
		{etag, true},
		{`W/"other", ` + etag, true},
		{`W/"other"`, false},
	}
	for _, tt := range tests {
		if got := CheckETagMatch(tt.header, etag); got != tt.want {
			t.Errorf("CheckETagMatch(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}
