package cache

import (
	"testing"
	"time"
)

func TestSetGet(t *testing.T) {
	c := New[string](time.Minute)

	c.Set("k", "v")
	got, ok := c.Get("k")
	if !ok || got != "v" {
		t.Errorf("expected hit with %q, got %q (ok=%v)", "v", got, ok)
	}
}

func TestMissOnAbsentKey(t *testing.T) {
	c := New[int](time.Minute)

	if _, ok := c.Get("absent"); ok {
		t.Error("expected miss")
	}
}

func TestExpiry(t *testing.T) {
	c := New[string](10 * time.Millisecond)

	c.Set("k", "v")
	time.Sleep(30 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Error("expected entry to expire")
	}
}

func TestDelete(t *testing.T) {
	c := New[string](time.Minute)

	c.Set("k", "v")
	c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Error("expected entry removed")
	}
}

func TestCloseKeepsCacheUsable(t *testing.T) {
	c := New[string](time.Minute)

	c.Set("k", "v")
	c.Close()
	c.Close() // idempotent

	if got, ok := c.Get("k"); !ok || got != "v" {
		t.Errorf("expected hit after close, got %q (ok=%v)", got, ok)
	}
	c.Set("k2", "v2")
	if _, ok := c.Get("k2"); !ok {
		t.Error("expected writes to keep working after close")
	}
}

func TestExpiredEntryInvisibleBeforeSweep(t *testing.T) {
	// The sweeper wakes at second granularity; expiry must not wait for it.
	c := New[string](10 * time.Millisecond)
	defer c.Close()

	c.Set("k", "v")
	time.Sleep(30 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Error("expected expired entry to be invisible")
	}
	if c.Len() != 1 {
		t.Errorf("entry should still occupy memory before the sweep, len=%d", c.Len())
	}
}
